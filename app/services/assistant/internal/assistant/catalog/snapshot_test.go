package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	plants   []Raw
	products []Raw
	kits     []Raw
	err      error
}

func (s *fakeSource) FetchPlants(context.Context) ([]Raw, error)   { return s.plants, s.err }
func (s *fakeSource) FetchProducts(context.Context) ([]Raw, error) { return s.products, s.err }
func (s *fakeSource) FetchKits(context.Context) ([]Raw, error)     { return s.kits, s.err }

func TestStoreCurrentBeforeRefresh(t *testing.T) {
	store := NewStore(&fakeSource{})
	_, err := store.Current()
	assert.ErrorIs(t, err, ErrCatalogEmpty)
}

func TestStoreRefreshPublishes(t *testing.T) {
	store := NewStore(&fakeSource{plants: []Raw{validPlantRaw()}})
	snap, err := store.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Plants, 1)

	snap, err = store.Current()
	require.NoError(t, err)
	assert.Len(t, snap.Plants, 1)
	assert.Equal(t, "p1", snap.Plants[0].ID)
	assert.False(t, snap.RefreshAt.IsZero())
}

func TestStoreRefreshRejectsEmptyCatalog(t *testing.T) {
	src := &fakeSource{plants: []Raw{validPlantRaw()}}
	store := NewStore(src)
	_, err := store.Refresh(context.Background())
	require.NoError(t, err)

	src.plants = nil
	_, err = store.Refresh(context.Background())
	assert.Error(t, err)

	// Old snapshot survives the failed refresh.
	snap, err := store.Current()
	require.NoError(t, err)
	assert.Len(t, snap.Plants, 1)
}

func TestStoreRefreshKeepsSnapshotOnSourceError(t *testing.T) {
	src := &fakeSource{plants: []Raw{validPlantRaw()}}
	store := NewStore(src)
	_, err := store.Refresh(context.Background())
	require.NoError(t, err)
	before, err := store.Current()
	require.NoError(t, err)

	src.err = errors.New("source down")
	_, err = store.Refresh(context.Background())
	assert.Error(t, err)

	after, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, before.RefreshAt, after.RefreshAt)
}

func TestStoreRefreshRejectsBadRecord(t *testing.T) {
	bad := validPlantRaw()
	bad["light"] = "nope"
	store := NewStore(&fakeSource{plants: []Raw{bad}})
	_, err := store.Refresh(context.Background())
	assert.Error(t, err)
}
