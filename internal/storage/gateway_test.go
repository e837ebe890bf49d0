package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/errors"
)

func setupTestGateway(t *testing.T, quota int64) *Gateway {
	t.Helper()

	g, err := Open(t.TempDir(), quota, nil)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })
	return g
}

func TestGateway_SaveLoad_RoundTrip(t *testing.T) {
	g := setupTestGateway(t, 1<<20)

	cost := 89.5
	created := time.Date(2024, time.May, 3, 14, 30, 0, 123_000_000, time.UTC)
	items := []domain.ClothingItem{
		{
			ID:          "item-1",
			Image:       "https://example.com/jacket.jpg",
			Category:    domain.CategoryOuterwear,
			Subcategory: "Jacket",
			Cost:        &cost,
			CreatedAt:   created,
			UpdatedAt:   created,
			WearCount:   1,
			WearLogs: []domain.WearLog{
				{ID: "log-1", Date: created.Add(time.Hour), OutfitID: "outfit-1"},
			},
		},
	}

	require.NoError(t, g.Save("test:items", items))

	var loaded []domain.ClothingItem
	require.NoError(t, g.Load("test:items", &loaded))

	require.Len(t, loaded, 1)
	assert.Equal(t, items[0].ID, loaded[0].ID)
	assert.Equal(t, *items[0].Cost, *loaded[0].Cost)
	// Dates round-trip through RFC 3339 losslessly, millisecond included
	assert.True(t, loaded[0].CreatedAt.Equal(created))
	assert.True(t, loaded[0].WearLogs[0].Date.Equal(created.Add(time.Hour)))
}

func TestGateway_Load_MissingKey(t *testing.T) {
	g := setupTestGateway(t, 1<<20)

	var dest []domain.ClothingItem
	err := g.Load("test:never-written", &dest)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestGateway_Load_CorruptedRecord(t *testing.T) {
	g := setupTestGateway(t, 1<<20)

	// Scribble garbage directly into the store
	require.NoError(t, g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("test:items"), []byte("{not json"))
	}))

	var dest []domain.ClothingItem
	err := g.Load("test:items", &dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrStorage)
	assert.NotErrorIs(t, err, errors.ErrNotFound)
}

func TestGateway_Load_RecordsIndependent(t *testing.T) {
	g := setupTestGateway(t, 1<<20)

	require.NoError(t, g.Save("test:outfits", []domain.Outfit{{ID: "outfit-1", Name: "Monday"}}))
	require.NoError(t, g.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("test:items"), []byte("garbage"))
	}))

	// The corrupt items record does not affect the outfits record
	var outfits []domain.Outfit
	require.NoError(t, g.Load("test:outfits", &outfits))
	assert.Len(t, outfits, 1)
}

func TestGateway_Save_QuotaExceeded(t *testing.T) {
	g := setupTestGateway(t, 256)

	items := []domain.ClothingItem{{
		ID:    "item-1",
		Image: "data:image/jpeg;base64," + strings.Repeat("A", 1024),
	}}

	err := g.Save("test:items", items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrQuotaExceeded)

	// Nothing was written
	var dest []domain.ClothingItem
	assert.ErrorIs(t, g.Load("test:items", &dest), errors.ErrNotFound)
}

func TestGateway_Save_Overwrites(t *testing.T) {
	g := setupTestGateway(t, 1<<20)

	require.NoError(t, g.Save("test:subs", domain.CustomSubcategories{
		domain.CategoryHat: {"Bucket hat"},
	}))
	require.NoError(t, g.Save("test:subs", domain.CustomSubcategories{
		domain.CategoryHat: {"Bucket hat", "Visor"},
	}))

	var subs domain.CustomSubcategories
	require.NoError(t, g.Load("test:subs", &subs))
	assert.Equal(t, []string{"Bucket hat", "Visor"}, subs[domain.CategoryHat])
}
