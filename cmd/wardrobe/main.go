// Package main provides the command line entry point for the wardrobe
// server.
//
// Usage:
//
//	wardrobe [command] [argument] [config flags]
//
// Commands:
//
//	summary          print catalog and outfit overview (default)
//	items [sort]     list items (recent, alphabetical, category, mostWorn,
//	                 leastWorn, costHigh, costLow, lastWorn)
//	outfits          list saved outfits with their resolved items
//	recap [year]     print the year-in-review statistics
//	years            list the years a recap is available for
//	seed             replace all data with the demo wardrobe
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/do/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/di"
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
)

func main() {
	args := os.Args[1:]

	command := "summary"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	var argument string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		argument = args[0]
		args = args[1:]
	}

	injector := di.NewContainer(args)
	svc, err := di.WardrobeService(injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wardrobe: %v\n", err)
		os.Exit(1)
	}
	log := do.MustInvoke[*logger.Logger](injector)

	switch command {
	case "summary":
		err = runSummary(svc)
	case "items":
		err = runItems(svc, argument)
	case "outfits":
		err = runOutfits(svc)
	case "recap":
		err = runRecap(svc, argument)
	case "years":
		err = runYears(svc)
	case "seed":
		err = runSeed(svc)
	default:
		err = fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wardrobe: %v\n", err)
		shutdown(injector, log)
		os.Exit(1)
	}

	shutdown(injector, log)
}

func shutdown(injector *do.RootScope, log *logger.Logger) {
	if err := injector.Shutdown(); err != nil {
		log.Error("shutdown error", "error", err)
	}
}

func runSummary(svc *service.WardrobeService) error {
	items := svc.Items("")
	outfits := svc.Outfits()

	totalWears := 0
	totalValue := 0.0
	perCategory := map[domain.Category]int{}
	for _, item := range items {
		totalWears += item.WearCount
		if item.Cost != nil {
			totalValue += *item.Cost
		}
		perCategory[item.Category]++
	}

	fmt.Printf("Items:   %d\n", len(items))
	fmt.Printf("Outfits: %d\n", len(outfits))
	fmt.Printf("Wears:   %d\n", totalWears)
	fmt.Printf("Value:   $%.2f\n", totalValue)
	fmt.Println()
	for _, category := range domain.Categories() {
		if n := perCategory[category]; n > 0 {
			fmt.Printf("  %-12s %d\n", category, n)
		}
	}
	return nil
}

func runItems(svc *service.WardrobeService, sortArg string) error {
	items := svc.Items(domain.SortOption(sortArg))
	if len(items) == 0 {
		fmt.Println("No items yet. Run 'wardrobe seed' to load the demo wardrobe.")
		return nil
	}

	for _, item := range items {
		cost := "-"
		if item.Cost != nil {
			cost = fmt.Sprintf("$%.2f", *item.Cost)
		}
		fmt.Printf("%-34s %-12s %-26s %3d wears  %8s\n",
			item.ID, item.Category, item.DisplayTitle(), item.WearCount, cost)
	}
	return nil
}

func runOutfits(svc *service.WardrobeService) error {
	outfits := svc.Outfits()
	if len(outfits) == 0 {
		fmt.Println("No outfits saved.")
		return nil
	}

	for _, outfit := range outfits {
		fmt.Printf("%s  %q  %d wears\n", outfit.ID, outfit.Name, outfit.WearCount)
		resolved, err := svc.ResolveOutfitItems(outfit.ID)
		if err != nil {
			return err
		}
		for _, item := range resolved {
			fmt.Printf("    %-12s %s\n", item.Category, item.DisplayTitle())
		}
	}
	return nil
}

func runRecap(svc *service.WardrobeService, yearArg string) error {
	year := time.Now().Year()
	if yearArg != "" {
		parsed, err := strconv.Atoi(yearArg)
		if err != nil {
			return fmt.Errorf("invalid year %q", yearArg)
		}
		year = parsed
	}

	r := svc.Recap(year)

	fmt.Printf("=== %d Wrapped ===\n\n", year)
	fmt.Printf("Items in wardrobe: %d\n", r.Totals.TotalItems)
	fmt.Printf("Wears logged:      %d\n", r.Totals.TotalWears)
	fmt.Printf("Outfits logged:    %d\n", r.Totals.OutfitsLogged)
	fmt.Printf("Wardrobe value:    $%.2f\n", r.Totals.TotalValue)
	if r.Totals.AvgCostPerWear != nil {
		fmt.Printf("Avg cost/wear:     $%.2f\n", *r.Totals.AvgCostPerWear)
	}
	fmt.Println()

	if r.MostWorn != nil {
		fmt.Printf("Most worn:         %s (%d wears)\n",
			r.MostWorn.Item.DisplayTitle(), r.MostWorn.WearCount)
	}
	if r.BestValue != nil {
		fmt.Printf("Best value:        %s ($%.2f/wear)\n",
			r.BestValue.Item.DisplayTitle(), r.BestValue.CostPerWear)
	}
	if r.OldestInRotation != nil {
		fmt.Printf("Oldest in rotation: %s (since %s)\n",
			r.OldestInRotation.Item.DisplayTitle(),
			r.OldestInRotation.Item.CreatedAt.Format("Jan 2006"))
	}
	fmt.Printf("New additions:     %d\n", len(r.NewItems))

	if len(r.FavoriteOutfits) > 0 {
		fmt.Println("\nFavorite outfits:")
		for i, fav := range r.FavoriteOutfits {
			fmt.Printf("  #%d %q (%d wears)\n", i+1, fav.Outfit.Name, fav.WearCount)
		}
	}
	if len(r.CategoryWears) > 0 {
		fmt.Println("\nCategory distribution:")
		for _, cw := range r.CategoryWears {
			fmt.Printf("  %-12s %d\n", cw.Category, cw.Wears)
		}
	}
	if len(r.TopSubcategories) > 0 {
		fmt.Println("\nTop subcategories:")
		for _, sw := range r.TopSubcategories {
			fmt.Printf("  %-26s %d\n", sw.Subcategory, sw.Wears)
		}
	}
	return nil
}

func runYears(svc *service.WardrobeService) error {
	for _, year := range svc.AvailableRecapYears() {
		fmt.Println(year)
	}
	return nil
}

func runSeed(svc *service.WardrobeService) error {
	items, outfits := svc.SeedDemoData()
	fmt.Printf("Seeded %d items and %d outfits.\n", items, outfits)
	return nil
}
