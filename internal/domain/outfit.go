package domain

import (
	"time"
)

// OutfitWearLog records a single wear of a complete outfit.
// Unlike item wear logs it may carry a fit-pic photo instead of a backlink.
type OutfitWearLog struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Photo string    `json:"photo,omitempty"` // Data URI or URL
}

// Outfit is a named, sparse assignment of clothing items to slots.
//
// Items holds clothing item IDs, not embedded items - the catalog owns the
// items. Deleting an item does NOT clean up outfits that reference it; stale
// IDs are tolerated and filtered out wherever an outfit is resolved. This is
// a known consistency gap accepted for a single-user local tool.
type Outfit struct {
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Items     map[Slot]string `json:"items"`

	// WearCount always equals len(WearLogs), same contract as ClothingItem.
	WearCount int             `json:"wear_count"`
	WearLogs  []OutfitWearLog `json:"wear_logs"`
}

// LogWear appends a wear log entry and refreshes the derived counter.
// photo may be empty.
func (o *Outfit) LogWear(logID string, date time.Time, photo string) OutfitWearLog {
	log := OutfitWearLog{
		ID:    logID,
		Date:  date,
		Photo: photo,
	}
	o.WearLogs = append(o.WearLogs, log)
	o.WearCount = len(o.WearLogs)
	o.UpdatedAt = date
	return log
}

// ReferencedItemIDs returns the non-empty item IDs in the slot mapping,
// in canonical slot order, with duplicates removed (an item occupying two
// slots is reported once).
func (o *Outfit) ReferencedItemIDs() []string {
	seen := make(map[string]bool, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, slot := range SlotOrder() {
		itemID, ok := o.Items[slot]
		if !ok || itemID == "" || seen[itemID] {
			continue
		}
		seen[itemID] = true
		ids = append(ids, itemID)
	}
	return ids
}

// WearsWithin counts wear logs whose date falls inside the interval.
func (o *Outfit) WearsWithin(interval Interval) int {
	count := 0
	for _, log := range o.WearLogs {
		if interval.Contains(log.Date) {
			count++
		}
	}
	return count
}

// OutfitPatch is a partial update for an outfit. Nil fields are left
// unchanged. ID, CreatedAt, and the wear log cannot be patched.
type OutfitPatch struct {
	Name  *string          `json:"name,omitempty"`
	Items *map[Slot]string `json:"items,omitempty"`
}

// Apply merges the patch into the outfit and refreshes UpdatedAt.
func (p OutfitPatch) Apply(outfit *Outfit, now time.Time) {
	if p.Name != nil {
		outfit.Name = *p.Name
	}
	if p.Items != nil {
		outfit.Items = *p.Items
	}
	outfit.UpdatedAt = now
}
