package domain

import "strings"

// Slot is a named position in the outfit composition grid.
type Slot string

// Outfit slots. The first ten form the fixed grid; the three additional
// accessory slots are enabled one at a time by user action.
const (
	SlotBaseTop              Slot = "baseTop"
	SlotTop                  Slot = "top"
	SlotOuterwear            Slot = "outerwear"
	SlotBaseBottom           Slot = "baseBottom"
	SlotBottom               Slot = "bottom"
	SlotBelt                 Slot = "belt"
	SlotSocks                Slot = "socks"
	SlotShoes                Slot = "shoes"
	SlotHat                  Slot = "hat"
	SlotAccessory            Slot = "accessory"
	SlotAdditionalAccessory1 Slot = "additionalAccessory1"
	SlotAdditionalAccessory2 Slot = "additionalAccessory2"
	SlotAdditionalAccessory3 Slot = "additionalAccessory3"
)

// BaseLayerPrefix marks subcategories that belong in the dedicated base-layer
// slots rather than the plain Top/Bottom slots.
const BaseLayerPrefix = "Base Layer"

// MaxAdditionalAccessories caps the number of extra accessory slots.
const MaxAdditionalAccessories = 3

// SlotConfig describes a slot: which category it draws from and, optionally,
// a subcategory prefix that narrows the eligible items.
type SlotConfig struct {
	ID       Slot
	Label    string
	Category Category
	// SubcategoryPrefix, when set, restricts the slot to items whose
	// subcategory starts with this prefix (the base-layer slots).
	SubcategoryPrefix string
}

// OutfitGrid is the fixed body-position layout of the outfit builder.
// Nil cells are empty grid positions.
var OutfitGrid = [][]*SlotConfig{
	{
		nil,
		{ID: SlotHat, Label: "Hat", Category: CategoryHat},
		{ID: SlotAccessory, Label: "Accessory", Category: CategoryAccessories},
	},
	{
		{ID: SlotBaseTop, Label: "Base Top", Category: CategoryTop, SubcategoryPrefix: BaseLayerPrefix},
		{ID: SlotTop, Label: "Top", Category: CategoryTop},
		{ID: SlotOuterwear, Label: "Outerwear", Category: CategoryOuterwear},
	},
	{
		{ID: SlotBaseBottom, Label: "Base Bottom", Category: CategoryBottom, SubcategoryPrefix: BaseLayerPrefix},
		{ID: SlotBottom, Label: "Bottom", Category: CategoryBottom},
		{ID: SlotBelt, Label: "Belt", Category: CategoryBelt},
	},
	{
		{ID: SlotSocks, Label: "Socks", Category: CategorySocks},
		{ID: SlotShoes, Label: "Shoes", Category: CategoryShoes},
		nil,
	},
}

// AdditionalAccessorySlots are the optional extra accessory slots,
// in the order they can be enabled.
var AdditionalAccessorySlots = []SlotConfig{
	{ID: SlotAdditionalAccessory1, Label: "Accessory 2", Category: CategoryAccessories},
	{ID: SlotAdditionalAccessory2, Label: "Accessory 3", Category: CategoryAccessories},
	{ID: SlotAdditionalAccessory3, Label: "Accessory 4", Category: CategoryAccessories},
}

// GridSlots returns the fixed grid flattened in reading order, skipping
// empty cells.
func GridSlots() []SlotConfig {
	slots := make([]SlotConfig, 0, 10)
	for _, row := range OutfitGrid {
		for _, cell := range row {
			if cell != nil {
				slots = append(slots, *cell)
			}
		}
	}
	return slots
}

// AllSlots returns every slot config: the fixed grid followed by all
// additional accessory slots.
func AllSlots() []SlotConfig {
	return append(GridSlots(), AdditionalAccessorySlots...)
}

// SlotOrder returns the canonical iteration order of slot identifiers.
// Outfit item resolution walks slots in this order.
func SlotOrder() []Slot {
	all := AllSlots()
	order := make([]Slot, len(all))
	for i, cfg := range all {
		order[i] = cfg.ID
	}
	return order
}

// SlotConfigFor looks up the config for a slot identifier.
func SlotConfigFor(slot Slot) (SlotConfig, bool) {
	for _, cfg := range AllSlots() {
		if cfg.ID == slot {
			return cfg, true
		}
	}
	return SlotConfig{}, false
}

// Eligible reports whether an item can fill this slot.
//
// The item's category must match the slot's. Base-layer slots additionally
// require the subcategory prefix. The plain Top and Bottom slots exclude
// base-layer items so they only appear in their dedicated slots.
func (c SlotConfig) Eligible(item *ClothingItem) bool {
	if item.Category != c.Category {
		return false
	}

	if c.SubcategoryPrefix != "" {
		return strings.HasPrefix(item.Subcategory, c.SubcategoryPrefix)
	}

	if c.Category == CategoryTop || c.Category == CategoryBottom {
		return !strings.HasPrefix(item.Subcategory, BaseLayerPrefix)
	}

	return true
}

// EligibleItems filters items down to those that can fill the slot,
// preserving collection order.
func (c SlotConfig) EligibleItems(items []ClothingItem) []ClothingItem {
	eligible := make([]ClothingItem, 0, len(items))
	for _, item := range items {
		if c.Eligible(&item) {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// BuilderSlots tracks the slot set visible in an outfit-building session.
// The additional accessory count only ever grows, capped at
// MaxAdditionalAccessories; slots are never removed within a session.
type BuilderSlots struct {
	additional int
}

// AddAccessorySlot enables the next additional accessory slot.
// Returns false when the cap has been reached.
func (b *BuilderSlots) AddAccessorySlot() bool {
	if b.additional >= MaxAdditionalAccessories {
		return false
	}
	b.additional++
	return true
}

// AdditionalCount returns how many extra accessory slots are enabled.
func (b *BuilderSlots) AdditionalCount() int {
	return b.additional
}

// Slots returns the currently visible slot configs: the fixed grid plus the
// enabled additional accessory slots.
func (b *BuilderSlots) Slots() []SlotConfig {
	return append(GridSlots(), AdditionalAccessorySlots[:b.additional]...)
}
