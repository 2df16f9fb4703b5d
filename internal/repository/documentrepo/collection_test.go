package documentrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "govendas/internal/errors"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/repository/documentrepo"
)

type item struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// failingStore simula um substrato fora do ar.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}
func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}
func (failingStore) Close() error { return nil }

func newCollection(store kvstore.Store) *documentrepo.Collection[item] {
	return documentrepo.NewCollection[item](store, "items", time.Second, logger.NewNop())
}

func TestLoad_AbsentKeyIsEmpty(t *testing.T) {
	items, err := newCollection(kvstore.NewMemoryStore()).Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoad_MalformedIsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	for _, raw := range []string{`{not json`, `{"id":"x"}`, `null`, `"texto"`} {
		require.NoError(t, store.Set(ctx, "items", raw))

		items, err := newCollection(store).Load(ctx)
		require.NoError(t, err, raw)
		assert.NotNil(t, items, raw)
		assert.Empty(t, items, raw)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := kvstore.NewMemoryStore()
	coll := newCollection(store)
	ctx := context.Background()

	require.NoError(t, coll.Save(ctx, []item{{ID: "a", Count: 1}, {ID: "b", Count: 2}}))

	raw, err := store.Get(ctx, "items")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","count":1},{"id":"b","count":2}]`, raw)

	items, err := coll.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "a", Count: 1}, {ID: "b", Count: 2}}, items)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, newCollection(store).Save(context.Background(), nil))

	raw, err := store.Get(context.Background(), "items")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestStoreFailuresAreInternalErrors(t *testing.T) {
	coll := newCollection(failingStore{})

	_, err := coll.Load(context.Background())
	assert.IsType(t, &apperror.InternalError{}, err)

	err = coll.Save(context.Background(), []item{{ID: "a"}})
	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Contains(t, err.Error(), "connection refused")
}
