package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/model"
	"github.com/HirushaSipsara/teddylove-comprehensive-plush/internal/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	file := NewSnapshotFile(path, nil)

	bear := model.Product{
		ID:       "1",
		Name:     "Classic Brown Teddy",
		Price:    29.99,
		Category: "Classic",
		Size:     model.SizeMedium,
		Stock:    15,
		Featured: true,
		Rating:   4.8,
		Reviews:  124,
	}
	snap := store.Snapshot{
		CurrentUser: model.RoleCashier,
		Products:    []model.Product{bear},
		Cart:        []model.CartItem{{Product: bear, Quantity: 2}},
		POSCart:     []model.CartItem{{Product: bear, Quantity: 1}},
		Orders: []model.Order{{
			ID:           "1724800000000",
			Items:        []model.CartItem{{Product: bear, Quantity: 2}},
			Total:        64.7784,
			Status:       model.StatusProcessing,
			CreatedAt:    time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
			CustomerName: "Walk-in Customer",
		}},
	}

	require.NoError(t, file.Save(snap))

	got, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestLoadMissingFile(t *testing.T) {
	file := NewSnapshotFile(filepath.Join(t.TempDir(), "missing.json"), nil)

	_, err := file.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0o644))

	_, err := NewSnapshotFile(path, nil).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")
	file := NewSnapshotFile(path, nil)

	require.NoError(t, file.Save(store.Snapshot{}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	file := NewSnapshotFile(path, nil)

	require.NoError(t, file.Save(store.Snapshot{CurrentUser: model.RoleAdmin}))
	require.NoError(t, file.Save(store.Snapshot{CurrentUser: model.RoleCustomer}))

	got, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, got.CurrentUser)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	file := NewSnapshotFile(path, nil)
	require.NoError(t, file.Save(store.Snapshot{}))

	require.NoError(t, file.Remove())
	_, err := file.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	// Removing twice is fine.
	assert.NoError(t, file.Remove())
}

func TestSeedProducts(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	require.Len(t, products, 6)

	categories := map[string]bool{}
	ids := map[string]bool{}
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.False(t, ids[p.ID], "seed ids must be unique")
		ids[p.ID] = true
		categories[p.Category] = true
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
	for _, c := range []string{"Classic", "Princess", "Mini", "Giant", "Scented", "Adventure"} {
		assert.True(t, categories[c], "seed catalog must span category %s", c)
	}

	first := products[0]
	assert.Equal(t, "Classic Brown Teddy", first.Name)
	assert.Equal(t, 29.99, first.Price)
	assert.True(t, first.Featured)

	princess := products[1]
	assert.True(t, princess.OnSale(), "Pink Princess Bear carries a struck-through price")
	assert.Equal(t, 39.99, princess.OriginalPrice)
}

func TestSeedSnapshot(t *testing.T) {
	snap, err := SeedSnapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Products, 6)
	assert.Empty(t, snap.Cart)
	assert.Empty(t, snap.POSCart)
	assert.Empty(t, snap.Orders)
	assert.Equal(t, model.RoleNone, snap.CurrentUser)
}
