package athome

import (
	"context"
	"math"
	"math/rand/v2"
)

// PriceSource supplies the current listing price from the external AtHome
// feed. The real integration lives outside this core; callers inject an
// implementation.
type PriceSource interface {
	FetchPrice(ctx context.Context, athomeNumber string, currentPrice int64) (int64, error)
}

// StubPriceSource stands in for the real feed: it drifts the current price
// by up to ±5%, which is what the demo sync surface shows.
type StubPriceSource struct{}

func NewStubPriceSource() *StubPriceSource {
	return &StubPriceSource{}
}

func (s *StubPriceSource) FetchPrice(ctx context.Context, athomeNumber string, currentPrice int64) (int64, error) {
	change := rand.Float64()*0.1 - 0.05
	return int64(math.Round(float64(currentPrice) * (1 + change))), nil
}
