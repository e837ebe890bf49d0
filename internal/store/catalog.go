package store

import (
	"slices"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/storage"
)

// CatalogStore owns the clothing item collection and the custom
// subcategory taxonomy. It is the single writer for both; all reads hand
// out snapshot copies.
type CatalogStore struct {
	gateway       *storage.Gateway
	logger        *logger.Logger
	items         []domain.ClothingItem
	subcategories domain.CustomSubcategories
}

// NewItem carries the caller-provided fields for a new clothing item.
// Validation (image/category/subcategory present) happens at the service
// boundary; the store accepts whatever well-typed payload it receives.
type NewItem struct {
	Image       string
	Category    domain.Category
	Subcategory string
	Title       string
	Size        string
	Origin      string
	Description string
	Cost        *float64
}

// NewCatalogStore loads both records from the gateway. A missing or
// corrupt record falls back to an empty collection; the other record is
// unaffected.
func NewCatalogStore(gateway *storage.Gateway, log *logger.Logger) *CatalogStore {
	s := &CatalogStore{
		gateway:       gateway,
		logger:        log,
		subcategories: domain.CustomSubcategories{},
	}

	if err := gateway.Load(keyItems, &s.items); err != nil {
		s.items = nil
	}
	if err := gateway.Load(keySubcategories, &s.subcategories); err != nil {
		s.subcategories = domain.CustomSubcategories{}
	}

	if log != nil {
		log.Info("clothing catalog loaded", "items", len(s.items))
	}
	return s
}

// Items returns a snapshot of the collection, most recent first.
func (s *CatalogStore) Items() []domain.ClothingItem {
	return slices.Clone(s.items)
}

// GetItem looks up an item by ID.
func (s *CatalogStore) GetItem(itemID string) (domain.ClothingItem, bool) {
	for _, item := range s.items {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.ClothingItem{}, false
}

// AddItem creates a new item from the given fields and prepends it to the
// collection (most-recent-first is the canonical iteration order).
func (s *CatalogStore) AddItem(fields NewItem) domain.ClothingItem {
	now := time.Now()
	item := domain.ClothingItem{
		ID:          id.MustGenerate(id.PrefixItem),
		Image:       fields.Image,
		Category:    fields.Category,
		Subcategory: fields.Subcategory,
		Title:       fields.Title,
		Size:        fields.Size,
		Origin:      fields.Origin,
		Description: fields.Description,
		Cost:        fields.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.items = append([]domain.ClothingItem{item}, s.items...)
	s.persistItems()
	return item
}

// UpdateItem merges the patch into the item and refreshes UpdatedAt.
// Returns false (a no-op) when the ID is unknown.
func (s *CatalogStore) UpdateItem(itemID string, patch domain.ItemPatch) bool {
	idx := s.indexOf(itemID)
	if idx == -1 {
		return false
	}

	patch.Apply(&s.items[idx], time.Now())
	s.persistItems()
	return true
}

// DeleteItem removes the item from the collection. Outfits referencing it
// are deliberately left untouched; stale references are filtered at read
// time. Returns false when the ID is unknown.
func (s *CatalogStore) DeleteItem(itemID string) bool {
	idx := s.indexOf(itemID)
	if idx == -1 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	s.persistItems()
	return true
}

// LogWear appends a wear log entry to the item. outfitID may be empty for
// a standalone wear. Returns false when the ID is unknown.
func (s *CatalogStore) LogWear(itemID, outfitID string) (domain.WearLog, bool) {
	idx := s.indexOf(itemID)
	if idx == -1 {
		return domain.WearLog{}, false
	}

	log := s.items[idx].LogWear(id.NewWearLogID(), time.Now(), outfitID)
	s.persistItems()
	return log, true
}

// SubcategoriesForCategory returns the default subcategories for the
// category followed by the user-added ones in insertion order. No
// deduplication: a custom value equal to a default appears twice. The
// "Other/Custom" sentinel is a UI concern and is not included here.
func (s *CatalogStore) SubcategoriesForCategory(category domain.Category) []string {
	defaults := domain.DefaultSubcategories[category]
	customs := s.subcategories[category]

	out := make([]string, 0, len(defaults)+len(customs))
	out = append(out, defaults...)
	out = append(out, customs...)
	return out
}

// AddCustomSubcategory records a user-defined subcategory for future
// reuse. Adding a value already tracked for the category is a no-op.
func (s *CatalogStore) AddCustomSubcategory(category domain.Category, value string) {
	if slices.Contains(s.subcategories[category], value) {
		return
	}

	s.subcategories[category] = append(s.subcategories[category], value)
	if err := s.gateway.Save(keySubcategories, s.subcategories); err != nil {
		s.warnPersistFailure(err, keySubcategories)
	}
}

// CustomSubcategories returns a snapshot of the custom taxonomy.
func (s *CatalogStore) CustomSubcategories() domain.CustomSubcategories {
	out := make(domain.CustomSubcategories, len(s.subcategories))
	for category, values := range s.subcategories {
		out[category] = slices.Clone(values)
	}
	return out
}

// Restore replaces the whole collection, for seeding and data import.
func (s *CatalogStore) Restore(items []domain.ClothingItem) {
	s.items = slices.Clone(items)
	s.persistItems()
}

func (s *CatalogStore) indexOf(itemID string) int {
	return slices.IndexFunc(s.items, func(i domain.ClothingItem) bool { return i.ID == itemID })
}

// persistItems writes the whole collection back. Failures never roll back
// or block the in-memory mutation; the next mutation retries implicitly.
func (s *CatalogStore) persistItems() {
	if err := s.gateway.Save(keyItems, s.items); err != nil {
		s.warnPersistFailure(err, keyItems)
	}
}

func (s *CatalogStore) warnPersistFailure(err error, key string) {
	if s.logger == nil {
		return
	}
	if errors.Is(err, errors.ErrQuotaExceeded) {
		s.logger.WithError(err).Warn(
			"storage quota exceeded - changes may not persist; remove items or use smaller images",
			"key", key,
		)
		return
	}
	s.logger.WithError(err).Warn("failed to persist snapshot - changes may not persist", "key", key)
}
