package service

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
)

type seedItem struct {
	image       string
	category    domain.Category
	subcategory string
	size        string
	origin      string
	description string
	cost        float64 // 0 means no cost recorded
	wearCount   int
}

// seedItems is a realistic starter wardrobe for trying the app out.
var seedItems = []seedItem{
	{
		image:       "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=400&h=400&fit=crop",
		category:    domain.CategoryHat,
		subcategory: "Baseball cap",
		size:        "One Size",
		origin:      "Nike",
		cost:        35,
		description: "Classic black Nike cap with embroidered swoosh",
		wearCount:   24,
	},
	{
		image:       "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=400&h=400&fit=crop",
		category:    domain.CategoryHat,
		subcategory: "Beanie",
		wearCount:   12,
	},
	{
		image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
		category:    domain.CategoryTop,
		subcategory: "T-shirt",
		size:        "M",
		origin:      "Uniqlo",
		cost:        15,
		description: "Plain white cotton tee",
		wearCount:   45,
	},
	{
		image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=400&fit=crop",
		category:    domain.CategoryTop,
		subcategory: "Button-up",
		size:        "M",
		origin:      "J.Crew",
		cost:        78,
		wearCount:   18,
	},
	{
		image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=400&fit=crop",
		category:    domain.CategoryTop,
		subcategory: "Sweater",
		size:        "L",
		description: "Cozy knit sweater for fall",
		wearCount:   9,
	},
	{
		image:       "https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=400&h=400&fit=crop",
		category:    domain.CategoryTop,
		subcategory: "Base Layer - Undershirt",
		size:        "M",
		wearCount:   30,
	},
	{
		image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400&h=400&fit=crop",
		category:    domain.CategoryOuterwear,
		subcategory: "Jacket",
		size:        "M",
		origin:      "Levi's",
		cost:        120,
		description: "Classic denim trucker jacket",
		wearCount:   32,
	},
	{
		image:       "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400&h=400&fit=crop",
		category:    domain.CategoryOuterwear,
		subcategory: "Coat",
		size:        "L",
		cost:        250,
		wearCount:   15,
	},
	{
		image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=400&fit=crop",
		category:    domain.CategoryOuterwear,
		subcategory: "Hoodie",
		size:        "L",
		origin:      "Champion",
		wearCount:   42,
	},
	{
		image:       "https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=400&h=400&fit=crop",
		category:    domain.CategoryBelt,
		subcategory: "Leather belt",
		size:        "34",
		origin:      "Coach",
		cost:        85,
		description: "Brown leather dress belt",
		wearCount:   56,
	},
	{
		image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
		category:    domain.CategoryBelt,
		subcategory: "Fabric belt",
		wearCount:   8,
	},
	{
		image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=400&fit=crop",
		category:    domain.CategoryBottom,
		subcategory: "Jeans",
		size:        "32x32",
		origin:      "Levi's 501",
		cost:        89,
		description: "Classic straight fit jeans",
		wearCount:   67,
	},
	{
		image:       "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400&h=400&fit=crop",
		category:    domain.CategoryBottom,
		subcategory: "Trousers",
		size:        "32",
		origin:      "Banana Republic",
		cost:        98,
		wearCount:   23,
	},
	{
		image:       "https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=400&h=400&fit=crop",
		category:    domain.CategoryBottom,
		subcategory: "Shorts",
		size:        "M",
		wearCount:   14,
	},
	{
		image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=400&h=400&fit=crop",
		category:    domain.CategoryBottom,
		subcategory: "Base Layer - Leggings",
		size:        "M",
		cost:        45,
		wearCount:   5,
	},
	{
		image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
		category:    domain.CategoryShoes,
		subcategory: "Sneakers",
		size:        "10",
		origin:      "Nike Air Max",
		cost:        180,
		description: "Red running sneakers",
		wearCount:   89,
	},
	{
		image:       "https://images.unsplash.com/photo-1608256246200-53e635b5b65f?w=400&h=400&fit=crop",
		category:    domain.CategoryShoes,
		subcategory: "Boots",
		size:        "10",
		origin:      "Dr. Martens",
		cost:        170,
		wearCount:   34,
	},
	{
		image:       "https://images.unsplash.com/photo-1614252369475-531eba835eb1?w=400&h=400&fit=crop",
		category:    domain.CategoryShoes,
		subcategory: "Dress shoes",
		size:        "10",
		description: "Oxford dress shoes for formal occasions",
		wearCount:   11,
	},
	{
		image:       "https://images.unsplash.com/photo-1586350977771-b3b0abd50c82?w=400&h=400&fit=crop",
		category:    domain.CategorySocks,
		subcategory: "Crew socks",
		size:        "M",
		origin:      "Happy Socks",
		cost:        14,
		description: "Colorful patterned crew socks",
		wearCount:   28,
	},
	{
		image:       "https://images.unsplash.com/photo-1631006254555-de53b06dab53?w=400&h=400&fit=crop",
		category:    domain.CategorySocks,
		subcategory: "Ankle socks",
		wearCount:   50,
	},
	{
		image:       "https://images.unsplash.com/photo-1582966772680-860e372bb558?w=400&h=400&fit=crop",
		category:    domain.CategorySocks,
		subcategory: "No-show",
		size:        "M",
		cost:        8,
		wearCount:   35,
	},
	{
		image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=400&h=400&fit=crop",
		category:    domain.CategoryAccessories,
		subcategory: "Watch",
		origin:      "Seiko",
		cost:        450,
		description: "Automatic dress watch with leather strap",
		wearCount:   120,
	},
	{
		image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400&h=400&fit=crop",
		category:    domain.CategoryAccessories,
		subcategory: "Sunglasses",
		origin:      "Ray-Ban",
		cost:        165,
		wearCount:   45,
	},
	{
		image:       "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?w=400&h=400&fit=crop",
		category:    domain.CategoryAccessories,
		subcategory: "Scarf",
		description: "Wool scarf for winter",
		wearCount:   7,
	},
	{
		image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=400&h=400&fit=crop",
		category:    domain.CategoryAccessories,
		subcategory: "Bag",
		origin:      "Herschel",
		cost:        80,
		description: "Canvas backpack",
		wearCount:   92,
	},
}

// SeedDemoData replaces both collections with a demo wardrobe: two dozen
// items with wear histories spread over the past two years, plus a couple
// of saved outfits. Existing data is overwritten.
func (s *WardrobeService) SeedDemoData() (items int, outfits int) {
	now := time.Now()
	// Fixed seed keeps the demo wardrobe reproducible across runs
	rng := rand.New(rand.NewPCG(7, 13))

	seeded := make([]domain.ClothingItem, 0, len(seedItems))
	for _, si := range seedItems {
		// Acquired sometime in the past two years, worn since
		created := now.AddDate(0, 0, -(180 + rng.IntN(550)))
		item := domain.ClothingItem{
			ID:          id.MustGenerate(id.PrefixItem),
			Image:       si.image,
			Category:    si.category,
			Subcategory: si.subcategory,
			Size:        si.size,
			Origin:      si.origin,
			Description: si.description,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if si.cost > 0 {
			cost := si.cost
			item.Cost = &cost
		}
		for _, date := range wearDates(rng, created, now, si.wearCount) {
			item.LogWear(id.NewWearLogID(), date, "")
		}
		seeded = append(seeded, item)
	}

	findItem := func(subcategory string) string {
		for _, item := range seeded {
			if item.Subcategory == subcategory {
				return item.ID
			}
		}
		return ""
	}

	demoOutfits := []domain.Outfit{
		{
			ID:   id.MustGenerate(id.PrefixOutfit),
			Name: "Everyday casual",
			Items: map[domain.Slot]string{
				domain.SlotTop:       findItem("T-shirt"),
				domain.SlotOuterwear: findItem("Jacket"),
				domain.SlotBottom:    findItem("Jeans"),
				domain.SlotBelt:      findItem("Leather belt"),
				domain.SlotSocks:     findItem("Crew socks"),
				domain.SlotShoes:     findItem("Sneakers"),
				domain.SlotHat:       findItem("Baseball cap"),
				domain.SlotAccessory: findItem("Watch"),
			},
		},
		{
			ID:   id.MustGenerate(id.PrefixOutfit),
			Name: "Office ready",
			Items: map[domain.Slot]string{
				domain.SlotBaseTop:   findItem("Base Layer - Undershirt"),
				domain.SlotTop:       findItem("Button-up"),
				domain.SlotOuterwear: findItem("Coat"),
				domain.SlotBottom:    findItem("Trousers"),
				domain.SlotBelt:      findItem("Leather belt"),
				domain.SlotSocks:     findItem("No-show"),
				domain.SlotShoes:     findItem("Dress shoes"),
				domain.SlotAccessory: findItem("Watch"),
			},
		},
	}
	for i := range demoOutfits {
		created := now.AddDate(0, 0, -(30 + rng.IntN(120)))
		demoOutfits[i].CreatedAt = created
		demoOutfits[i].UpdatedAt = created
		for _, date := range wearDates(rng, created, now, 3+rng.IntN(5)) {
			demoOutfits[i].LogWear(id.NewWearLogID(), date, "")
		}
	}

	s.catalog.Restore(seeded)
	s.outfits.Restore(demoOutfits)
	s.logger.Info("demo data seeded", "items", len(seeded), "outfits", len(demoOutfits))
	return len(seeded), len(demoOutfits)
}

// wearDates generates n ascending wear dates between created and now.
func wearDates(rng *rand.Rand, created, now time.Time, n int) []time.Time {
	span := now.Sub(created)
	if span <= 0 || n <= 0 {
		return nil
	}

	dates := make([]time.Time, 0, n)
	for range n {
		dates = append(dates, created.Add(time.Duration(rng.Int64N(int64(span)))))
	}
	// Wear logs are append-only, so keep them chronological
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates
}
