package tx

import (
	"context"

	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/state"
)

// StateTxManager serializes all mutations through the state's single lock.
// Begin snapshots the collections; Commit persists whatever was marked dirty
// and releases the lock; Rollback restores the snapshot. A property update
// and its task sync therefore land in the datastore together or not at all.
type StateTxManager struct {
	state *state.State
}

func NewStateTxManager(s *state.State) *StateTxManager {
	return &StateTxManager{state: s}
}

func (m *StateTxManager) Begin(ctx context.Context) (Tx, *app_errors.AppError) {
	m.state.Lock()
	return &StateTx{
		state:    m.state,
		snapshot: m.state.Snapshot(),
	}, nil
}

type StateTx struct {
	state    *state.State
	snapshot *state.Snapshot
	done     bool
}

func (t *StateTx) Commit(ctx context.Context) *app_errors.AppError {
	if t.done {
		return nil
	}
	t.done = true
	defer t.state.Unlock()

	if err := t.state.PersistDirty(ctx); err != nil {
		// In-memory state is already mutated; roll it back so memory and
		// datastore stay consistent.
		t.state.Restore(t.snapshot)
		return app_errors.NewAppError(app_errors.CodeInternal, app_errors.ErrInternal, "internal_error", err)
	}
	return nil
}

func (t *StateTx) Rollback(ctx context.Context) *app_errors.AppError {
	if t.done {
		return nil
	}
	t.done = true
	t.state.Restore(t.snapshot)
	t.state.ClearDirty()
	t.state.Unlock()
	return nil
}
