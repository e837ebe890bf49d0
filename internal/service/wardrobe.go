// Package service implements the wardrobe application operations on top of
// the stores. Services validate input, translate between requests and
// domain types, and coordinate the multi-store flows (outfit wear
// cascading, custom subcategory registration).
package service

import (
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/recap"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// WardrobeService is the application facade over the catalog and outfit
// stores.
type WardrobeService struct {
	catalog   *store.CatalogStore
	outfits   *store.OutfitStore
	validator *validation.Validator
	logger    *logger.Logger
}

// NewWardrobeService creates the wardrobe service.
func NewWardrobeService(catalog *store.CatalogStore, outfits *store.OutfitStore, v *validation.Validator, log *logger.Logger) *WardrobeService {
	return &WardrobeService{
		catalog:   catalog,
		outfits:   outfits,
		validator: v,
		logger:    log,
	}
}

// AddItemRequest contains the fields for cataloging a new clothing item.
// Image, category, and subcategory are the only required fields.
type AddItemRequest struct {
	Image       string   `json:"image" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Subcategory string   `json:"subcategory" validate:"required"`
	Title       string   `json:"title"`
	Size        string   `json:"size"`
	Origin      string   `json:"origin"`
	Description string   `json:"description"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
}

// AddItem validates the request and catalogs the item. A subcategory not
// already known for the category is registered as a custom subcategory so
// it shows up in future pickers.
func (s *WardrobeService) AddItem(req AddItemRequest) (domain.ClothingItem, error) {
	if err := s.validator.Validate(req); err != nil {
		return domain.ClothingItem{}, err
	}

	category := domain.Category(req.Category)
	if !category.Valid() {
		return domain.ClothingItem{}, errors.Validationf("unknown category %q", req.Category)
	}

	s.registerSubcategory(category, req.Subcategory)

	item := s.catalog.AddItem(store.NewItem{
		Image:       req.Image,
		Category:    category,
		Subcategory: req.Subcategory,
		Title:       req.Title,
		Size:        req.Size,
		Origin:      req.Origin,
		Description: req.Description,
		Cost:        req.Cost,
	})

	s.logger.Info("item added", "item_id", item.ID, "category", item.Category, "subcategory", item.Subcategory)
	return item, nil
}

// Items returns the catalog sorted under the given option. An empty option
// means the default recent-first order.
func (s *WardrobeService) Items(opt domain.SortOption) []domain.ClothingItem {
	return domain.SortItems(s.catalog.Items(), opt)
}

// Item fetches a single item.
func (s *WardrobeService) Item(itemID string) (domain.ClothingItem, error) {
	item, ok := s.catalog.GetItem(itemID)
	if !ok {
		return domain.ClothingItem{}, errors.NotFoundf("item %s not found", itemID)
	}
	return item, nil
}

// UpdateItem applies a partial update to an item.
func (s *WardrobeService) UpdateItem(itemID string, patch domain.ItemPatch) (domain.ClothingItem, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return domain.ClothingItem{}, errors.Validationf("unknown category %q", *patch.Category)
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return domain.ClothingItem{}, errors.Validation("cost must be greater than or equal to 0")
	}

	if !s.catalog.UpdateItem(itemID, patch) {
		return domain.ClothingItem{}, errors.NotFoundf("item %s not found", itemID)
	}
	item, _ := s.catalog.GetItem(itemID)
	return item, nil
}

// DeleteItem removes an item from the catalog. Outfits referencing it keep
// the stale ID.
func (s *WardrobeService) DeleteItem(itemID string) error {
	if !s.catalog.DeleteItem(itemID) {
		return errors.NotFoundf("item %s not found", itemID)
	}
	s.logger.Info("item deleted", "item_id", itemID)
	return nil
}

// LogItemWear records a standalone wear of a single item, dated now.
func (s *WardrobeService) LogItemWear(itemID string) (domain.WearLog, error) {
	log, ok := s.catalog.LogWear(itemID, "")
	if !ok {
		return domain.WearLog{}, errors.NotFoundf("item %s not found", itemID)
	}
	return log, nil
}

// Subcategories returns the picker list for a category: defaults first,
// then the user's custom values.
func (s *WardrobeService) Subcategories(category domain.Category) ([]string, error) {
	if !category.Valid() {
		return nil, errors.Validationf("unknown category %q", category)
	}
	return s.catalog.SubcategoriesForCategory(category), nil
}

// AddCustomSubcategory registers a user-defined subcategory. Re-adding an
// existing value is a no-op.
func (s *WardrobeService) AddCustomSubcategory(category domain.Category, value string) error {
	if !category.Valid() {
		return errors.Validationf("unknown category %q", category)
	}
	if value == "" {
		return errors.Validation("subcategory is required")
	}
	s.catalog.AddCustomSubcategory(category, value)
	return nil
}

// registerSubcategory tracks a subcategory the picker does not know yet.
func (s *WardrobeService) registerSubcategory(category domain.Category, value string) {
	for _, known := range s.catalog.SubcategoriesForCategory(category) {
		if known == value {
			return
		}
	}
	s.catalog.AddCustomSubcategory(category, value)
}

// CreateOutfitRequest contains the fields for saving a new outfit.
type CreateOutfitRequest struct {
	Name  string                 `json:"name" validate:"required"`
	Items map[domain.Slot]string `json:"items"`
}

// CreateOutfit validates the request and saves the outfit. Slot keys must
// name real slots; item IDs are stored as given and resolved lazily, so a
// reference to a later-deleted item is tolerated.
func (s *WardrobeService) CreateOutfit(req CreateOutfitRequest) (domain.Outfit, error) {
	if err := s.validator.Validate(req); err != nil {
		return domain.Outfit{}, err
	}
	for slot := range req.Items {
		if _, ok := domain.SlotConfigFor(slot); !ok {
			return domain.Outfit{}, errors.Validationf("unknown slot %q", slot)
		}
	}

	outfit := s.outfits.AddOutfit(req.Name, req.Items)
	s.logger.Info("outfit created", "outfit_id", outfit.ID, "name", outfit.Name, "items", len(outfit.Items))
	return outfit, nil
}

// Outfits returns all saved outfits, most recent first.
func (s *WardrobeService) Outfits() []domain.Outfit {
	return s.outfits.Outfits()
}

// Outfit fetches a single outfit.
func (s *WardrobeService) Outfit(outfitID string) (domain.Outfit, error) {
	outfit, ok := s.outfits.GetOutfit(outfitID)
	if !ok {
		return domain.Outfit{}, errors.NotFoundf("outfit %s not found", outfitID)
	}
	return outfit, nil
}

// UpdateOutfit applies a partial update to an outfit.
func (s *WardrobeService) UpdateOutfit(outfitID string, patch domain.OutfitPatch) (domain.Outfit, error) {
	if patch.Name != nil && *patch.Name == "" {
		return domain.Outfit{}, errors.Validation("name is required")
	}
	if patch.Items != nil {
		for slot := range *patch.Items {
			if _, ok := domain.SlotConfigFor(slot); !ok {
				return domain.Outfit{}, errors.Validationf("unknown slot %q", slot)
			}
		}
	}

	if !s.outfits.UpdateOutfit(outfitID, patch) {
		return domain.Outfit{}, errors.NotFoundf("outfit %s not found", outfitID)
	}
	outfit, _ := s.outfits.GetOutfit(outfitID)
	return outfit, nil
}

// DeleteOutfit removes an outfit. The wear history already propagated to
// items stays on the items.
func (s *WardrobeService) DeleteOutfit(outfitID string) error {
	if !s.outfits.DeleteOutfit(outfitID) {
		return errors.NotFoundf("outfit %s not found", outfitID)
	}
	s.logger.Info("outfit deleted", "outfit_id", outfitID)
	return nil
}

// LogOutfitWear records a wear of the whole outfit and cascades it to
// every item the outfit currently references. photo may be empty.
//
// The cascade resolves slots at wear time: items removed from the catalog
// since the outfit was saved are skipped silently.
func (s *WardrobeService) LogOutfitWear(outfitID, photo string) (domain.Outfit, error) {
	itemIDs, ok := s.outfits.LogWear(outfitID, photo)
	if !ok {
		return domain.Outfit{}, errors.NotFoundf("outfit %s not found", outfitID)
	}

	propagated := 0
	for _, itemID := range itemIDs {
		if _, ok := s.catalog.LogWear(itemID, outfitID); ok {
			propagated++
		}
	}

	s.logger.Info("outfit wear logged", "outfit_id", outfitID, "items", propagated)
	outfit, _ := s.outfits.GetOutfit(outfitID)
	return outfit, nil
}

// ResolveOutfitItems returns the catalog items an outfit's slots point at,
// in canonical slot order, skipping stale references.
func (s *WardrobeService) ResolveOutfitItems(outfitID string) ([]domain.ClothingItem, error) {
	outfit, ok := s.outfits.GetOutfit(outfitID)
	if !ok {
		return nil, errors.NotFoundf("outfit %s not found", outfitID)
	}

	items := make([]domain.ClothingItem, 0, len(outfit.Items))
	for _, itemID := range outfit.ReferencedItemIDs() {
		if item, found := s.catalog.GetItem(itemID); found {
			items = append(items, item)
		}
	}
	return items, nil
}

// EligibleItems returns the catalog items that can fill a slot.
func (s *WardrobeService) EligibleItems(slot domain.Slot) ([]domain.ClothingItem, error) {
	cfg, ok := domain.SlotConfigFor(slot)
	if !ok {
		return nil, errors.Validationf("unknown slot %q", slot)
	}
	return cfg.EligibleItems(s.catalog.Items()), nil
}

// Recap computes the year-in-review statistics for a calendar year in the
// local time zone.
func (s *WardrobeService) Recap(year int) domain.Recap {
	return recap.Build(s.catalog.Items(), s.outfits.Outfits(), domain.YearInterval(year, time.Local))
}

// AvailableRecapYears returns the years a recap can be built for,
// descending.
func (s *WardrobeService) AvailableRecapYears() []int {
	return recap.AvailableYears(s.catalog.Items(), s.outfits.Outfits(), time.Now())
}
