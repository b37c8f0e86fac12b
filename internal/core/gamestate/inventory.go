package gamestate

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Well-known item ids.
const (
	ItemSeeds  = "seeds"
	ItemCarrot = "carrot"
)

// ItemCount is an item id and its quantity.
type ItemCount struct {
	ID    string
	Count int
}

// HasItem reports whether at least qty of the item is held.
func (gs *GameState) HasItem(id string, qty int) bool {
	if qty <= 0 {
		qty = 1
	}
	return gs.Inventory[id] >= qty
}

// ItemCount returns the quantity of an item (0 if not present).
func (gs *GameState) ItemCount(id string) int {
	return gs.Inventory[id]
}

// AddItem adds qty units of an item. Non-positive quantities are ignored.
func (gs *GameState) AddItem(id string, qty int) {
	if qty <= 0 || id == "" {
		return
	}
	gs.Inventory[id] += qty
}

// RemoveItem removes qty units of an item. It returns false without mutating
// anything when fewer than qty are held. A count reaching zero removes the key.
func (gs *GameState) RemoveItem(id string, qty int) bool {
	if qty <= 0 {
		return true
	}
	have := gs.Inventory[id]
	if have < qty {
		return false
	}
	if have == qty {
		delete(gs.Inventory, id)
	} else {
		gs.Inventory[id] = have - qty
	}
	return true
}

// Items returns all held items sorted by id.
func (gs *GameState) Items() []ItemCount {
	result := make([]ItemCount, 0, len(gs.Inventory))
	for id, n := range gs.Inventory {
		result = append(result, ItemCount{ID: id, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

var titleCaser = cases.Title(language.English)

// DisplayName returns a human readable name for an item id. Equipment uses
// its catalog name; anything else is title-cased ("wooden_sword" → "Wooden Sword").
func (gs *GameState) DisplayName(id string) string {
	if def, ok := gs.catalog[id]; ok && def.Name != "" {
		return def.Name
	}
	return DisplayName(id)
}

// DisplayName title-cases an item id.
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}
