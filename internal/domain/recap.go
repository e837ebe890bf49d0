package domain

import "time"

// Interval is an inclusive date range used for recap queries.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether date falls inside the interval, inclusive of
// both endpoints.
func (iv Interval) Contains(date time.Time) bool {
	return !date.Before(iv.Start) && !date.After(iv.End)
}

// YearInterval returns the interval covering a full calendar year in the
// given location: January 1 00:00:00 through the last nanosecond of
// December 31.
func YearInterval(year int, loc *time.Location) Interval {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return Interval{
		Start: start,
		End:   start.AddDate(1, 0, 0).Add(-time.Nanosecond),
	}
}

// ItemWearSummary pairs an item with its in-interval wear count.
type ItemWearSummary struct {
	Item      ClothingItem `json:"item"`
	WearCount int          `json:"wear_count"`
}

// ItemValueSummary extends the wear summary with cost-per-wear.
type ItemValueSummary struct {
	Item        ClothingItem `json:"item"`
	WearCount   int          `json:"wear_count"`
	CostPerWear float64      `json:"cost_per_wear"`
}

// OutfitWearSummary pairs an outfit with its in-interval wear count and the
// items it currently resolves to (stale references already filtered).
type OutfitWearSummary struct {
	Outfit    Outfit         `json:"outfit"`
	WearCount int            `json:"wear_count"`
	Items     []ClothingItem `json:"items"`
}

// CategoryWears is an in-interval wear total for one category.
type CategoryWears struct {
	Category Category `json:"category"`
	Wears    int      `json:"wears"`
}

// SubcategoryWears is an in-interval wear total for one subcategory.
type SubcategoryWears struct {
	Subcategory string `json:"subcategory"`
	Wears       int    `json:"wears"`
}

// RecapTotals holds the aggregate counters of a recap.
type RecapTotals struct {
	// TotalItems is the full catalog size, not filtered by interval.
	TotalItems int `json:"total_items"`
	// TotalWears is the number of item wear logs inside the interval.
	TotalWears int `json:"total_wears"`
	// OutfitsLogged is the number of outfit wear logs inside the interval.
	OutfitsLogged int `json:"outfits_logged"`
	// TotalValue is the cost of the whole wardrobe, regardless of wear.
	TotalValue float64 `json:"total_value"`
	// AvgCostPerWear is TotalValue / TotalWears. Nil when there are no
	// in-interval wears - never NaN, never a division by zero.
	AvgCostPerWear *float64 `json:"avg_cost_per_wear,omitempty"`
}

// Recap is the derived point-in-time summary for a date interval.
// It holds no state of its own; everything recomputes from the stores.
type Recap struct {
	Interval         Interval            `json:"interval"`
	MostWorn         *ItemWearSummary    `json:"most_worn,omitempty"`
	BestValue        *ItemValueSummary   `json:"best_value,omitempty"`
	FavoriteOutfits  []OutfitWearSummary `json:"favorite_outfits"`
	CategoryWears    []CategoryWears     `json:"category_wears"`
	TopSubcategories []SubcategoryWears  `json:"top_subcategories"`
	NewItems         []ClothingItem      `json:"new_items"`
	OldestInRotation *ItemWearSummary    `json:"oldest_in_rotation,omitempty"`
	Totals           RecapTotals         `json:"totals"`
}
