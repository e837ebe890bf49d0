package domain

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects an ordering when browsing clothing items.
type SortOption string

// Sort orderings. All sorts are stable: ties keep collection order.
const (
	SortRecent       SortOption = "recent"       // createdAt descending
	SortAlphabetical SortOption = "alphabetical" // subcategory ascending
	SortCategory     SortOption = "category"     // category, then subcategory
	SortMostWorn     SortOption = "mostWorn"     // wearCount descending
	SortLeastWorn    SortOption = "leastWorn"    // wearCount ascending
	SortCostHigh     SortOption = "costHigh"     // cost descending, costless last
	SortCostLow      SortOption = "costLow"      // cost ascending, costless last
	SortLastWorn     SortOption = "lastWorn"     // most recent wear first
)

// collator provides locale-aware string comparison for subcategory and
// category labels. Collators are not safe for concurrent use; all sorting
// runs on the single mutation path, so a package-level instance is fine.
var collator = collate.New(language.English, collate.Loose)

// SortItems returns a sorted copy of items under the given ordering.
// Unknown options fall back to SortRecent.
func SortItems(items []ClothingItem, opt SortOption) []ClothingItem {
	sorted := slices.Clone(items)

	switch opt {
	case SortAlphabetical:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return collator.CompareString(a.Subcategory, b.Subcategory)
		})
	case SortCategory:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			if c := collator.CompareString(string(a.Category), string(b.Category)); c != 0 {
				return c
			}
			return collator.CompareString(a.Subcategory, b.Subcategory)
		})
	case SortMostWorn:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return b.WearCount - a.WearCount
		})
	case SortLeastWorn:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return a.WearCount - b.WearCount
		})
	case SortCostHigh:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return compareCost(b.Cost, a.Cost)
		})
	case SortCostLow:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return compareCost(a.Cost, b.Cost)
		})
	case SortLastWorn:
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return b.LastWornAt().Compare(a.LastWornAt())
		})
	default: // SortRecent
		slices.SortStableFunc(sorted, func(a, b ClothingItem) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return sorted
}

// compareCost orders by cost ascending with costless items always last.
func compareCost(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// NextSelection returns the item selected after currentID in a browsing
// list, wrapping past the end. With no current selection the first item is
// chosen. Returns false only when the list is empty (a no-op for callers).
func NextSelection(items []ClothingItem, currentID string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	idx := slices.IndexFunc(items, func(i ClothingItem) bool { return i.ID == currentID })
	if idx == -1 || idx >= len(items)-1 {
		return items[0].ID, true
	}
	return items[idx+1].ID, true
}

// PrevSelection returns the item selected before currentID, wrapping past
// the start. With no current selection the last item is chosen. Returns
// false only when the list is empty.
func PrevSelection(items []ClothingItem, currentID string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	idx := slices.IndexFunc(items, func(i ClothingItem) bool { return i.ID == currentID })
	if idx <= 0 {
		return items[len(items)-1].ID, true
	}
	return items[idx-1].ID, true
}
