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

// OutfitStore owns the outfit collection. It never reaches into the
// catalog: slot values are carried as opaque item IDs, and propagating an
// outfit wear to the referenced items is the caller's responsibility (see
// service.Wardrobe for the cascading variant).
type OutfitStore struct {
	gateway *storage.Gateway
	logger  *logger.Logger
	outfits []domain.Outfit
}

// NewOutfitStore loads the outfit record from the gateway, falling back to
// an empty collection when missing or corrupt.
func NewOutfitStore(gateway *storage.Gateway, log *logger.Logger) *OutfitStore {
	s := &OutfitStore{
		gateway: gateway,
		logger:  log,
	}

	if err := gateway.Load(keyOutfits, &s.outfits); err != nil {
		s.outfits = nil
	}

	if log != nil {
		log.Info("outfits loaded", "outfits", len(s.outfits))
	}
	return s
}

// Outfits returns a snapshot of the collection, most recent first.
func (s *OutfitStore) Outfits() []domain.Outfit {
	return slices.Clone(s.outfits)
}

// GetOutfit looks up an outfit by ID.
func (s *OutfitStore) GetOutfit(outfitID string) (domain.Outfit, bool) {
	for _, outfit := range s.outfits {
		if outfit.ID == outfitID {
			return outfit, true
		}
	}
	return domain.Outfit{}, false
}

// AddOutfit creates a named outfit from a sparse slot mapping and prepends
// it to the collection.
func (s *OutfitStore) AddOutfit(name string, items map[domain.Slot]string) domain.Outfit {
	now := time.Now()
	outfit := domain.Outfit{
		ID:        id.MustGenerate(id.PrefixOutfit),
		Name:      name,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if outfit.Items == nil {
		outfit.Items = map[domain.Slot]string{}
	}

	s.outfits = append([]domain.Outfit{outfit}, s.outfits...)
	s.persist()
	return outfit
}

// UpdateOutfit merges the patch into the outfit and refreshes UpdatedAt.
// Returns false (a no-op) when the ID is unknown.
func (s *OutfitStore) UpdateOutfit(outfitID string, patch domain.OutfitPatch) bool {
	idx := s.indexOf(outfitID)
	if idx == -1 {
		return false
	}

	patch.Apply(&s.outfits[idx], time.Now())
	s.persist()
	return true
}

// DeleteOutfit removes the outfit. Returns false when the ID is unknown.
func (s *OutfitStore) DeleteOutfit(outfitID string) bool {
	idx := s.indexOf(outfitID)
	if idx == -1 {
		return false
	}

	s.outfits = slices.Delete(s.outfits, idx, idx+1)
	s.persist()
	return true
}

// LogWear appends a wear log entry (with an optional fit-pic photo) to the
// outfit and returns the item IDs its slots referenced at the moment of
// the call, deduped, in canonical slot order.
//
// The return value is the hand-off contract: the caller is responsible for
// logging a wear against each returned item on the catalog store. The two
// stores are not transactionally coupled - if the caller fails to
// propagate, the counters diverge.
func (s *OutfitStore) LogWear(outfitID, photo string) ([]string, bool) {
	idx := s.indexOf(outfitID)
	if idx == -1 {
		return nil, false
	}

	s.outfits[idx].LogWear(id.NewWearLogID(), time.Now(), photo)
	itemIDs := s.outfits[idx].ReferencedItemIDs()
	s.persist()
	return itemIDs, true
}

// Restore replaces the whole collection, for seeding and data import.
func (s *OutfitStore) Restore(outfits []domain.Outfit) {
	s.outfits = slices.Clone(outfits)
	s.persist()
}

func (s *OutfitStore) indexOf(outfitID string) int {
	return slices.IndexFunc(s.outfits, func(o domain.Outfit) bool { return o.ID == outfitID })
}

// persist writes the whole collection back. Failures never roll back or
// block the in-memory mutation.
func (s *OutfitStore) persist() {
	if err := s.gateway.Save(keyOutfits, s.outfits); err != nil {
		s.warnPersistFailure(err)
	}
}

func (s *OutfitStore) warnPersistFailure(err error) {
	if s.logger == nil {
		return
	}
	if errors.Is(err, errors.ErrQuotaExceeded) {
		s.logger.WithError(err).Warn(
			"storage quota exceeded - changes may not persist; remove outfits or use smaller photos",
			"key", keyOutfits,
		)
		return
	}
	s.logger.WithError(err).Warn("failed to persist snapshot - changes may not persist", "key", keyOutfits)
}
