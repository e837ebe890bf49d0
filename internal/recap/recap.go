// Package recap derives the year-in-review statistics from the wardrobe
// collections. Everything here is a pure function of its inputs; nothing
// is cached or persisted.
package recap

import (
	"slices"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// Build computes the recap for the given interval from full snapshots of
// the item and outfit collections.
//
// Only wear logs dated inside the interval count. Rankings are stable:
// ties resolve to whichever entry comes first in the collection, which is
// most recent first.
func Build(items []domain.ClothingItem, outfits []domain.Outfit, interval domain.Interval) domain.Recap {
	itemWears := make([]domain.ItemWearSummary, 0, len(items))
	for _, item := range items {
		if n := item.WearsWithin(interval); n > 0 {
			itemWears = append(itemWears, domain.ItemWearSummary{Item: item, WearCount: n})
		}
	}

	r := domain.Recap{
		Interval:         interval,
		MostWorn:         mostWorn(itemWears),
		BestValue:        bestValue(itemWears),
		FavoriteOutfits:  favoriteOutfits(items, outfits, interval),
		CategoryWears:    categoryWears(itemWears),
		TopSubcategories: topSubcategories(itemWears),
		NewItems:         newItems(items, interval),
		OldestInRotation: oldestInRotation(itemWears),
	}
	r.Totals = totals(items, itemWears, r.FavoriteOutfits, outfits, interval)
	return r
}

// mostWorn picks the item with the highest in-interval wear count.
func mostWorn(itemWears []domain.ItemWearSummary) *domain.ItemWearSummary {
	var best *domain.ItemWearSummary
	for i := range itemWears {
		if best == nil || itemWears[i].WearCount > best.WearCount {
			best = &itemWears[i]
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// bestValue picks the lowest cost-per-wear among items that have a
// positive cost and were worn in the interval.
func bestValue(itemWears []domain.ItemWearSummary) *domain.ItemValueSummary {
	var best *domain.ItemValueSummary
	for _, iw := range itemWears {
		if iw.Item.Cost == nil || *iw.Item.Cost <= 0 {
			continue
		}
		cpw := *iw.Item.Cost / float64(iw.WearCount)
		if best == nil || cpw < best.CostPerWear {
			best = &domain.ItemValueSummary{
				Item:        iw.Item,
				WearCount:   iw.WearCount,
				CostPerWear: cpw,
			}
		}
	}
	return best
}

// favoriteOutfits returns the top three outfits by in-interval wears,
// each with its slot references resolved against the current catalog.
// Stale item IDs drop out of the resolved list.
func favoriteOutfits(items []domain.ClothingItem, outfits []domain.Outfit, interval domain.Interval) []domain.OutfitWearSummary {
	worn := make([]domain.OutfitWearSummary, 0, len(outfits))
	for _, outfit := range outfits {
		n := outfit.WearsWithin(interval)
		if n == 0 {
			continue
		}
		worn = append(worn, domain.OutfitWearSummary{
			Outfit:    outfit,
			WearCount: n,
			Items:     resolveItems(&outfit, items),
		})
	}

	slices.SortStableFunc(worn, func(a, b domain.OutfitWearSummary) int {
		return b.WearCount - a.WearCount
	})
	if len(worn) > 3 {
		worn = worn[:3]
	}
	return worn
}

func resolveItems(outfit *domain.Outfit, items []domain.ClothingItem) []domain.ClothingItem {
	resolved := make([]domain.ClothingItem, 0, len(outfit.Items))
	for _, itemID := range outfit.ReferencedItemIDs() {
		for _, item := range items {
			if item.ID == itemID {
				resolved = append(resolved, item)
				break
			}
		}
	}
	return resolved
}

// categoryWears totals in-interval wears per category, descending, listing
// only categories that were actually worn.
func categoryWears(itemWears []domain.ItemWearSummary) []domain.CategoryWears {
	totals := map[domain.Category]int{}
	order := make([]domain.Category, 0, 8)
	for _, iw := range itemWears {
		if _, seen := totals[iw.Item.Category]; !seen {
			order = append(order, iw.Item.Category)
		}
		totals[iw.Item.Category] += iw.WearCount
	}

	out := make([]domain.CategoryWears, 0, len(order))
	for _, category := range order {
		out = append(out, domain.CategoryWears{Category: category, Wears: totals[category]})
	}
	slices.SortStableFunc(out, func(a, b domain.CategoryWears) int {
		return b.Wears - a.Wears
	})
	return out
}

// topSubcategories totals in-interval wears per subcategory and keeps the
// top five, descending.
func topSubcategories(itemWears []domain.ItemWearSummary) []domain.SubcategoryWears {
	totals := map[string]int{}
	var order []string
	for _, iw := range itemWears {
		if iw.Item.Subcategory == "" {
			continue
		}
		if _, seen := totals[iw.Item.Subcategory]; !seen {
			order = append(order, iw.Item.Subcategory)
		}
		totals[iw.Item.Subcategory] += iw.WearCount
	}

	out := make([]domain.SubcategoryWears, 0, len(order))
	for _, sub := range order {
		out = append(out, domain.SubcategoryWears{Subcategory: sub, Wears: totals[sub]})
	}
	slices.SortStableFunc(out, func(a, b domain.SubcategoryWears) int {
		return b.Wears - a.Wears
	})
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// newItems returns items created inside the interval, collection order.
func newItems(items []domain.ClothingItem, interval domain.Interval) []domain.ClothingItem {
	added := make([]domain.ClothingItem, 0)
	for _, item := range items {
		if interval.Contains(item.CreatedAt) {
			added = append(added, item)
		}
	}
	return added
}

// oldestInRotation finds the earliest-acquired item that was still worn in
// the interval.
func oldestInRotation(itemWears []domain.ItemWearSummary) *domain.ItemWearSummary {
	var oldest *domain.ItemWearSummary
	for i := range itemWears {
		if oldest == nil || itemWears[i].Item.CreatedAt.Before(oldest.Item.CreatedAt) {
			oldest = &itemWears[i]
		}
	}
	if oldest == nil {
		return nil
	}
	out := *oldest
	return &out
}

func totals(items []domain.ClothingItem, itemWears []domain.ItemWearSummary, favorites []domain.OutfitWearSummary, outfits []domain.Outfit, interval domain.Interval) domain.RecapTotals {
	t := domain.RecapTotals{TotalItems: len(items)}

	for _, iw := range itemWears {
		t.TotalWears += iw.WearCount
	}
	for _, outfit := range outfits {
		t.OutfitsLogged += outfit.WearsWithin(interval)
	}
	for _, item := range items {
		if item.Cost != nil {
			t.TotalValue += *item.Cost
		}
	}
	if t.TotalWears > 0 && t.TotalValue > 0 {
		avg := t.TotalValue / float64(t.TotalWears)
		t.AvgCostPerWear = &avg
	}
	return t
}

// AvailableYears returns the selectable recap years, descending: the
// current and previous year always, plus every year any item or outfit
// was added or worn.
func AvailableYears(items []domain.ClothingItem, outfits []domain.Outfit, now time.Time) []int {
	years := map[int]bool{
		now.Year():     true,
		now.Year() - 1: true,
	}

	for _, item := range items {
		years[item.CreatedAt.Year()] = true
		for _, log := range item.WearLogs {
			years[log.Date.Year()] = true
		}
	}
	for _, outfit := range outfits {
		years[outfit.CreatedAt.Year()] = true
		for _, log := range outfit.WearLogs {
			years[log.Date.Year()] = true
		}
	}

	out := make([]int, 0, len(years))
	for year := range years {
		out = append(out, year)
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}
