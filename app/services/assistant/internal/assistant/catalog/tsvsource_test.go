package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileSourceLoadsCatalog(t *testing.T) {
	dir := t.TempDir()
	writeTSV(t, dir, "plants.tsv",
		"id\tname\tlight\twater_frequency_days\thumidity_preference\tdifficulty\tcompatible_locations\tpet_safe\tair_purifying\tpopularity\n"+
			"p1\tSnake Plant\tlow\t14\tlow\t1\tbedroom,office\tfalse\ttrue\t95\n")
	writeTSV(t, dir, "products.tsv",
		"id\tname\tcategory\tprice_cents\tcompatible_plants\tcompatible_locations\tpopularity\n"+
			"pr1\tPlanter\tpot\t1899\tp1\tbedroom\t90\n")
	writeTSV(t, dir, "kits.tsv",
		"id\tname\tprice_cents\tdifficulty\tlight\tplant_ids\tcompatible_locations\tpopularity\n"+
			"k1\tBeginner Kit\t4999\t2\tlow\tp1\tbedroom\t82\n")

	store := NewStore(NewFileSource(dir))
	_, err := store.Refresh(context.Background())
	require.NoError(t, err)

	snap, err := store.Current()
	require.NoError(t, err)
	assert.Len(t, snap.Plants, 1)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Kits, 1)
	assert.Equal(t, LightLow, snap.Plants[0].Light)
	assert.Equal(t, int64(1899), snap.Products[0].PriceCents)
}

func TestFileSourceMissingFile(t *testing.T) {
	src := NewFileSource(t.TempDir())
	_, err := src.FetchPlants(context.Background())
	assert.Error(t, err)
}
