package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClothingItem_LogWear_CounterDerivesFromLogs(t *testing.T) {
	item := &ClothingItem{ID: "item-1", Category: CategoryTop, Subcategory: "T-shirt"}

	for i := 0; i < 5; i++ {
		item.LogWear("log-"+string(rune('a'+i)), time.Now(), "")
		assert.Equal(t, len(item.WearLogs), item.WearCount)
	}

	assert.Equal(t, 5, item.WearCount)
}

func TestClothingItem_LogWear_WithOutfitLink(t *testing.T) {
	item := &ClothingItem{ID: "item-1"}

	log := item.LogWear("log-1", time.Now(), "outfit-9")

	assert.Equal(t, "outfit-9", log.OutfitID)
	assert.Equal(t, "outfit-9", item.WearLogs[0].OutfitID)
}

func TestClothingItem_LogWear_RefreshesUpdatedAt(t *testing.T) {
	old := time.Now().Add(-time.Hour)
	item := &ClothingItem{ID: "item-1", UpdatedAt: old}

	item.LogWear("log-1", time.Now(), "")

	assert.True(t, item.UpdatedAt.After(old))
}

func TestClothingItem_DisplayTitle(t *testing.T) {
	item := &ClothingItem{Category: CategoryShoes}
	assert.Equal(t, "Shoes", item.DisplayTitle())

	item.Title = "Favorite sneakers"
	assert.Equal(t, "Favorite sneakers", item.DisplayTitle())
}

func TestClothingItem_CostPerWear(t *testing.T) {
	cost := 100.0
	item := &ClothingItem{Cost: &cost}

	_, ok := item.CostPerWear()
	assert.False(t, ok, "no wears yet")

	for i := 0; i < 4; i++ {
		item.LogWear("log", time.Now(), "")
	}

	cpw, ok := item.CostPerWear()
	assert.True(t, ok)
	assert.InDelta(t, 25.0, cpw, 0.001)
}

func TestClothingItem_CostPerWear_NoCost(t *testing.T) {
	item := &ClothingItem{}
	item.LogWear("log", time.Now(), "")

	_, ok := item.CostPerWear()
	assert.False(t, ok, "items without a cost are excluded, not treated as zero")
}

func TestClothingItem_WearsWithin(t *testing.T) {
	loc := time.UTC
	item := &ClothingItem{}
	item.LogWear("a", time.Date(2023, time.December, 31, 23, 0, 0, 0, loc), "")
	item.LogWear("b", time.Date(2024, time.January, 1, 0, 0, 0, 0, loc), "")
	item.LogWear("c", time.Date(2024, time.June, 15, 12, 0, 0, 0, loc), "")
	item.LogWear("d", time.Date(2024, time.December, 31, 23, 59, 59, 0, loc), "")
	item.LogWear("e", time.Date(2025, time.January, 1, 0, 0, 0, 0, loc), "")

	assert.Equal(t, 3, item.WearsWithin(YearInterval(2024, loc)))
}

func TestItemPatch_Apply_PartialUpdate(t *testing.T) {
	cost := 49.0
	item := &ClothingItem{
		ID:          "item-1",
		Image:       "img",
		Category:    CategoryTop,
		Subcategory: "T-shirt",
		Size:        "M",
		CreatedAt:   time.Now().Add(-24 * time.Hour),
	}
	created := item.CreatedAt

	newTitle := "Band tee"
	ItemPatch{Title: &newTitle, Cost: &cost}.Apply(item, time.Now())

	assert.Equal(t, "Band tee", item.Title)
	assert.Equal(t, 49.0, *item.Cost)
	// Untouched fields stay as they were
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, CategoryTop, item.Category)
	// Identity is immutable
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, created, item.CreatedAt)
}

func TestItemPatch_Apply_AdvancesUpdatedAt(t *testing.T) {
	item := &ClothingItem{UpdatedAt: time.Now().Add(-time.Minute)}
	before := item.UpdatedAt

	ItemPatch{}.Apply(item, time.Now())

	assert.False(t, item.UpdatedAt.Before(before))
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("Base Layer").Valid())
	assert.False(t, Category("").Valid())
}

func TestDefaultSubcategories_CoverAllCategories(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, DefaultSubcategories[c], string(c))
	}
}
