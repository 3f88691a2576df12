package property_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/state"
)

// PropertyRepo answers queries from the in-memory state and records dirty
// collections for the surrounding state transaction to persist. Mutating
// methods must only be called with an open transaction (the tx argument);
// the transaction owns the lock.
type PropertyRepo struct {
	state *state.State
}

func NewPropertyRepo(s *state.State) PropertyRepoContract {
	return &PropertyRepo{state: s}
}

func (r *PropertyRepo) ListProperties(ctx context.Context) ([]entity.PropertyEntity, *app_errors.AppError) {
	out := make([]entity.PropertyEntity, len(r.state.Properties))
	copy(out, r.state.Properties)
	return out, nil
}

func (r *PropertyRepo) GetPropertyByID(ctx context.Context, propertyID string) (*entity.PropertyEntity, *app_errors.AppError) {
	for i := range r.state.Properties {
		if r.state.Properties[i].ID == propertyID {
			p := r.state.Properties[i]
			return &p, nil
		}
	}
	return nil, app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.property", nil)
}

func (r *PropertyRepo) PropertyNumberTaken(ctx context.Context, number int, excludeID string) (bool, *app_errors.AppError) {
	for i := range r.state.Properties {
		if r.state.Properties[i].PropertyNumber == number && r.state.Properties[i].ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *PropertyRepo) InsertProperty(ctx context.Context, _ tx.Tx, property *entity.PropertyEntity) *app_errors.AppError {
	r.state.Properties = append(r.state.Properties, *property)
	r.state.MarkDirty(state.KeyProperties)
	return nil
}

func (r *PropertyRepo) UpdateProperty(ctx context.Context, _ tx.Tx, property *entity.PropertyEntity) *app_errors.AppError {
	for i := range r.state.Properties {
		if r.state.Properties[i].ID == property.ID {
			r.state.Properties[i] = *property
			r.state.MarkDirty(state.KeyProperties)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.property", nil)
}

func (r *PropertyRepo) DeleteProperty(ctx context.Context, _ tx.Tx, propertyID string) *app_errors.AppError {
	for i := range r.state.Properties {
		if r.state.Properties[i].ID == propertyID {
			r.state.Properties = append(r.state.Properties[:i], r.state.Properties[i+1:]...)
			r.state.MarkDirty(state.KeyProperties)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.property", nil)
}
