package tx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas0124/estate-portal/internal/entity"
	"github.com/thomas0124/estate-portal/internal/state"
)

type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStore) Put(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Close() error { return nil }

func loadState(t *testing.T) (*state.State, *memStore) {
	t.Helper()
	store := &memStore{data: make(map[string][]byte)}
	s, err := state.Load(context.Background(), store, "#fed7aa")
	assert.NoError(t, err)
	return s, store
}

func TestStateTx_CommitPersistsDirty(t *testing.T) {
	ctx := context.Background()
	s, store := loadState(t)
	manager := NewStateTxManager(s)

	txn, appErr := manager.Begin(ctx)
	assert.Nil(t, appErr)

	s.Properties = append(s.Properties, entity.PropertyEntity{ID: "property-tx", PropertyNumber: 900})
	s.MarkDirty(state.KeyProperties)

	assert.Nil(t, txn.Commit(ctx))
	assert.NotNil(t, store.data[state.KeyProperties])

	reloaded, err := state.Load(ctx, store, "#fed7aa")
	assert.NoError(t, err)
	assert.Equal(t, "property-tx", reloaded.Properties[len(reloaded.Properties)-1].ID)
}

func TestStateTx_RollbackRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	s, store := loadState(t)
	manager := NewStateTxManager(s)

	before := len(s.Properties)

	txn, appErr := manager.Begin(ctx)
	assert.Nil(t, appErr)

	s.Properties = append(s.Properties, entity.PropertyEntity{ID: "property-tx", PropertyNumber: 900})
	s.MarkDirty(state.KeyProperties)

	assert.Nil(t, txn.Rollback(ctx))
	assert.Len(t, s.Properties, before)
	assert.Nil(t, store.data[state.KeyProperties])
}

// The deferred rollback after a successful commit is a no-op, and the lock is
// free for the next transaction.
func TestStateTx_RollbackAfterCommit(t *testing.T) {
	ctx := context.Background()
	s, _ := loadState(t)
	manager := NewStateTxManager(s)

	txn, appErr := manager.Begin(ctx)
	assert.Nil(t, appErr)
	assert.Nil(t, txn.Commit(ctx))
	assert.Nil(t, txn.Rollback(ctx))

	next, appErr := manager.Begin(ctx)
	assert.Nil(t, appErr)
	assert.Nil(t, next.Rollback(ctx))
}
