package domain

import (
	"time"
)

// Category is the closed set of clothing categories.
type Category string

// Clothing categories.
const (
	CategoryHat         Category = "Hat"
	CategoryTop         Category = "Top"
	CategoryOuterwear   Category = "Outerwear"
	CategoryBelt        Category = "Belt"
	CategoryBottom      Category = "Bottom"
	CategoryShoes       Category = "Shoes"
	CategorySocks       Category = "Socks"
	CategoryAccessories Category = "Accessories"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHat,
		CategoryTop,
		CategoryOuterwear,
		CategoryBelt,
		CategoryBottom,
		CategoryShoes,
		CategorySocks,
		CategoryAccessories,
	}
}

// Valid returns true if the category is a recognized value.
func (c Category) Valid() bool {
	switch c {
	case CategoryHat, CategoryTop, CategoryOuterwear, CategoryBelt,
		CategoryBottom, CategoryShoes, CategorySocks, CategoryAccessories:
		return true
	default:
		return false
	}
}

// DefaultSubcategories maps each category to its built-in subcategory list.
// User-added custom subcategories are appended after these at read time.
var DefaultSubcategories = map[Category][]string{
	CategoryHat: {"Baseball cap", "Beanie", "Sun hat", "Fedora"},
	CategoryTop: {
		"T-shirt", "Blouse", "Sweater", "Dress", "Tank top", "Button-up",
		"Base Layer - Undershirt", "Base Layer - Tank top", "Base Layer - Thermal",
	},
	CategoryOuterwear: {"Jacket", "Coat", "Hoodie", "Blazer", "Vest"},
	CategoryBelt:      {"Leather belt", "Fabric belt", "Chain belt"},
	CategoryBottom: {
		"Jeans", "Trousers", "Skirt", "Shorts", "Leggings",
		"Base Layer - Thermal", "Base Layer - Leggings",
	},
	CategoryShoes:       {"Sneakers", "Boots", "Dress shoes", "Sandals", "Heels", "Flats"},
	CategorySocks:       {"Ankle socks", "Crew socks", "Knee-high", "No-show"},
	CategoryAccessories: {"Watch", "Necklace", "Ring", "Bracelet", "Scarf", "Bag", "Sunglasses"},
}

// CustomSubcategories maps a category to the ordered list of user-added
// subcategory values. Persisted independently of the item collection.
type CustomSubcategories map[Category][]string

// WearLog is the atomic, immutable record of a single item wear.
// Logs are append-only - the wear counter derives from them.
type WearLog struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	// OutfitID links the wear to an outfit when it was logged as part of
	// an outfit wear; empty for standalone item wears.
	OutfitID string `json:"outfit_id,omitempty"`
}

// ClothingItem is a single cataloged garment.
type ClothingItem struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Image       string    `json:"image"` // Data URI or URL
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory"`
	Title       string    `json:"title,omitempty"` // Optional display name
	Size        string    `json:"size,omitempty"`
	Origin      string    `json:"origin,omitempty"` // Brand or place of purchase
	Description string    `json:"description,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`

	// WearCount always equals len(WearLogs). It is stored for wire-format
	// parity and recomputed inside LogWear, never set directly.
	WearCount int       `json:"wear_count"`
	WearLogs  []WearLog `json:"wear_logs"`
}

// DisplayTitle returns the item title, falling back to the category name.
func (i *ClothingItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return string(i.Category)
}

// LogWear appends a wear log entry and refreshes the derived counter.
// outfitID may be empty for a standalone wear. logID must be unique
// (callers generate it via the id package).
func (i *ClothingItem) LogWear(logID string, date time.Time, outfitID string) WearLog {
	log := WearLog{
		ID:       logID,
		Date:     date,
		OutfitID: outfitID,
	}
	i.WearLogs = append(i.WearLogs, log)
	i.WearCount = len(i.WearLogs)
	i.UpdatedAt = date
	return log
}

// LastWornAt returns the date of the most recent wear log,
// or the zero time if the item has never been worn.
func (i *ClothingItem) LastWornAt() time.Time {
	if len(i.WearLogs) == 0 {
		return time.Time{}
	}
	return i.WearLogs[len(i.WearLogs)-1].Date
}

// CostPerWear returns cost divided by total wear count.
// The second return is false when the item has no cost or no wears.
func (i *ClothingItem) CostPerWear() (float64, bool) {
	if i.Cost == nil || *i.Cost <= 0 || i.WearCount == 0 {
		return 0, false
	}
	return *i.Cost / float64(i.WearCount), true
}

// WearsWithin counts wear logs whose date falls inside the interval.
func (i *ClothingItem) WearsWithin(interval Interval) int {
	count := 0
	for _, log := range i.WearLogs {
		if interval.Contains(log.Date) {
			count++
		}
	}
	return count
}

// ItemPatch is a partial update for a clothing item. Nil fields are left
// unchanged. ID, CreatedAt, and the wear log cannot be patched.
type ItemPatch struct {
	Image       *string   `json:"image,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Subcategory *string   `json:"subcategory,omitempty"`
	Title       *string   `json:"title,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Origin      *string   `json:"origin,omitempty"`
	Description *string   `json:"description,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`
}

// Apply merges the patch into the item and refreshes UpdatedAt.
func (p ItemPatch) Apply(item *ClothingItem, now time.Time) {
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Subcategory != nil {
		item.Subcategory = *p.Subcategory
	}
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Size != nil {
		item.Size = *p.Size
	}
	if p.Origin != nil {
		item.Origin = *p.Origin
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Cost != nil {
		item.Cost = p.Cost
	}
	item.UpdatedAt = now
}
