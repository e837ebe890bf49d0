package service

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/storage"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

func setupTestService(t *testing.T) *WardrobeService {
	t.Helper()

	g, err := storage.Open(t.TempDir(), 1<<20, nil)
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })

	log := logger.New(logger.Config{Writer: io.Discard})
	return NewWardrobeService(
		store.NewCatalogStore(g, nil),
		store.NewOutfitStore(g, nil),
		validation.New(),
		log,
	)
}

func addItem(t *testing.T, s *WardrobeService, category, subcategory string) domain.ClothingItem {
	t.Helper()

	item, err := s.AddItem(AddItemRequest{
		Image:       "https://example.com/item.jpg",
		Category:    category,
		Subcategory: subcategory,
	})
	require.NoError(t, err)
	return item
}

func TestWardrobeService_AddItem(t *testing.T) {
	s := setupTestService(t)

	cost := 89.0
	item, err := s.AddItem(AddItemRequest{
		Image:       "https://example.com/jeans.jpg",
		Category:    "Bottom",
		Subcategory: "Jeans",
		Origin:      "Levi's",
		Cost:        &cost,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.CategoryBottom, item.Category)
	assert.Equal(t, 89.0, *item.Cost)
	assert.Zero(t, item.WearCount)
}

func TestWardrobeService_AddItem_Validation(t *testing.T) {
	s := setupTestService(t)

	_, err := s.AddItem(AddItemRequest{Category: "Top", Subcategory: "T-shirt"})
	assert.ErrorIs(t, err, errors.ErrValidation)

	_, err = s.AddItem(AddItemRequest{Image: "img", Category: "Pants", Subcategory: "Jeans"})
	assert.ErrorIs(t, err, errors.ErrValidation)

	negative := -5.0
	_, err = s.AddItem(AddItemRequest{Image: "img", Category: "Top", Subcategory: "T-shirt", Cost: &negative})
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestWardrobeService_AddItem_RegistersUnknownSubcategory(t *testing.T) {
	s := setupTestService(t)

	addItem(t, s, "Hat", "Bucket hat")

	subs, err := s.Subcategories(domain.CategoryHat)
	require.NoError(t, err)
	assert.Contains(t, subs, "Bucket hat")

	// A default subcategory is not duplicated
	addItem(t, s, "Hat", "Beanie")
	subs, err = s.Subcategories(domain.CategoryHat)
	require.NoError(t, err)
	assert.Equal(t, 1, countOf(subs, "Beanie"))
}

func countOf(values []string, want string) int {
	n := 0
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}

func TestWardrobeService_UpdateAndDeleteItem(t *testing.T) {
	s := setupTestService(t)

	item := addItem(t, s, "Top", "T-shirt")

	title := "Favorite tee"
	updated, err := s.UpdateItem(item.ID, domain.ItemPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Favorite tee", updated.Title)

	bad := domain.Category("Pants")
	_, err = s.UpdateItem(item.ID, domain.ItemPatch{Category: &bad})
	assert.ErrorIs(t, err, errors.ErrValidation)

	_, err = s.UpdateItem("item-missing", domain.ItemPatch{Title: &title})
	assert.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, s.DeleteItem(item.ID))
	assert.ErrorIs(t, s.DeleteItem(item.ID), errors.ErrNotFound)
}

func TestWardrobeService_LogItemWear(t *testing.T) {
	s := setupTestService(t)

	item := addItem(t, s, "Shoes", "Sneakers")

	log, err := s.LogItemWear(item.ID)
	require.NoError(t, err)
	assert.Empty(t, log.OutfitID)

	worn, err := s.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, worn.WearCount)

	_, err = s.LogItemWear("item-missing")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestWardrobeService_Items_Sorted(t *testing.T) {
	s := setupTestService(t)

	addItem(t, s, "Top", "Sweater")
	addItem(t, s, "Top", "Blouse")

	items := s.Items(domain.SortAlphabetical)
	require.Len(t, items, 2)
	assert.Equal(t, "Blouse", items[0].Subcategory)

	// Default order is most recent first
	items = s.Items("")
	assert.Equal(t, "Blouse", items[0].Subcategory)
}

func TestWardrobeService_CreateOutfit(t *testing.T) {
	s := setupTestService(t)

	top := addItem(t, s, "Top", "T-shirt")

	outfit, err := s.CreateOutfit(CreateOutfitRequest{
		Name:  "Casual",
		Items: map[domain.Slot]string{domain.SlotTop: top.ID},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, outfit.ID)
	assert.Equal(t, top.ID, outfit.Items[domain.SlotTop])

	_, err = s.CreateOutfit(CreateOutfitRequest{Name: ""})
	assert.ErrorIs(t, err, errors.ErrValidation)

	_, err = s.CreateOutfit(CreateOutfitRequest{
		Name:  "Bad slot",
		Items: map[domain.Slot]string{"leftShoe": top.ID},
	})
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestWardrobeService_LogOutfitWear_CascadesToItems(t *testing.T) {
	s := setupTestService(t)

	top := addItem(t, s, "Top", "T-shirt")
	shoes := addItem(t, s, "Shoes", "Sneakers")
	hat := addItem(t, s, "Hat", "Beanie")

	outfit, err := s.CreateOutfit(CreateOutfitRequest{
		Name: "Everyday",
		Items: map[domain.Slot]string{
			domain.SlotTop:   top.ID,
			domain.SlotShoes: shoes.ID,
			domain.SlotHat:   hat.ID,
		},
	})
	require.NoError(t, err)

	// Delete the hat first: the stale reference must not break the cascade
	require.NoError(t, s.DeleteItem(hat.ID))

	worn, err := s.LogOutfitWear(outfit.ID, "photo-data")
	require.NoError(t, err)
	assert.Equal(t, 1, worn.WearCount)
	assert.Equal(t, "photo-data", worn.WearLogs[0].Photo)

	for _, itemID := range []string{top.ID, shoes.ID} {
		item, err := s.Item(itemID)
		require.NoError(t, err)
		assert.Equal(t, 1, item.WearCount)
		assert.Equal(t, outfit.ID, item.WearLogs[0].OutfitID)
	}

	_, err = s.LogOutfitWear("outfit-missing", "")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestWardrobeService_ResolveOutfitItems_FiltersStale(t *testing.T) {
	s := setupTestService(t)

	top := addItem(t, s, "Top", "T-shirt")
	shoes := addItem(t, s, "Shoes", "Boots")

	outfit, err := s.CreateOutfit(CreateOutfitRequest{
		Name: "Rainy day",
		Items: map[domain.Slot]string{
			domain.SlotTop:   top.ID,
			domain.SlotShoes: shoes.ID,
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteItem(shoes.ID))

	resolved, err := s.ResolveOutfitItems(outfit.ID)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, top.ID, resolved[0].ID)
}

func TestWardrobeService_EligibleItems(t *testing.T) {
	s := setupTestService(t)

	tee := addItem(t, s, "Top", "T-shirt")
	base := addItem(t, s, "Top", "Base Layer - Thermal")

	tops, err := s.EligibleItems(domain.SlotTop)
	require.NoError(t, err)
	require.Len(t, tops, 1)
	assert.Equal(t, tee.ID, tops[0].ID)

	baseTops, err := s.EligibleItems(domain.SlotBaseTop)
	require.NoError(t, err)
	require.Len(t, baseTops, 1)
	assert.Equal(t, base.ID, baseTops[0].ID)

	_, err = s.EligibleItems("leftShoe")
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestWardrobeService_Recap(t *testing.T) {
	s := setupTestService(t)

	top := addItem(t, s, "Top", "T-shirt")
	outfit, err := s.CreateOutfit(CreateOutfitRequest{
		Name:  "Daily",
		Items: map[domain.Slot]string{domain.SlotTop: top.ID},
	})
	require.NoError(t, err)

	_, err = s.LogOutfitWear(outfit.ID, "")
	require.NoError(t, err)

	r := s.Recap(time.Now().Year())
	require.NotNil(t, r.MostWorn)
	assert.Equal(t, top.ID, r.MostWorn.Item.ID)
	assert.Equal(t, 1, r.Totals.TotalWears)
	assert.Equal(t, 1, r.Totals.OutfitsLogged)

	years := s.AvailableRecapYears()
	assert.Contains(t, years, time.Now().Year())
}

func TestWardrobeService_SeedDemoData(t *testing.T) {
	s := setupTestService(t)

	items, outfits := s.SeedDemoData()
	assert.Equal(t, 24, items)
	assert.Equal(t, 2, outfits)

	for _, item := range s.Items("") {
		assert.Equal(t, len(item.WearLogs), item.WearCount)
	}

	// Seeded outfits resolve fully against the seeded catalog
	for _, outfit := range s.Outfits() {
		resolved, err := s.ResolveOutfitItems(outfit.ID)
		require.NoError(t, err)
		assert.Len(t, resolved, len(outfit.ReferencedItemIDs()))
	}
}
