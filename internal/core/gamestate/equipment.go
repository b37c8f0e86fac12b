package gamestate

// Slot is an equipment slot.
type Slot string

// Equipment slots.
const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Slots lists every equipment slot in display order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotAccessory}

// EquipmentDef describes one equippable item.
type EquipmentDef struct {
	ID    string
	Slot  Slot
	Name  string
	Bonus Stats
}

// Catalog maps item ids to equipment definitions.
type Catalog map[string]EquipmentDef

// DefaultCatalog returns the built-in equipment catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"wooden_sword":  {ID: "wooden_sword", Slot: SlotWeapon, Name: "Wooden Sword", Bonus: Stats{ATK: 2}},
		"iron_sword":    {ID: "iron_sword", Slot: SlotWeapon, Name: "Iron Sword", Bonus: Stats{ATK: 4}},
		"leather_armor": {ID: "leather_armor", Slot: SlotArmor, Name: "Leather Armor", Bonus: Stats{DEF: 2, HP: 2}},
		"lucky_charm":   {ID: "lucky_charm", Slot: SlotAccessory, Name: "Lucky Charm", Bonus: Stats{SPD: 1}},
	}
}

// Equipped returns the item id in a slot, or "" when the slot is empty.
func (gs *GameState) Equipped(slot Slot) string {
	return gs.Equipment[slot]
}

// EquipItem moves one unit of id from the inventory into its catalog slot and
// applies its bonuses. Whatever occupied the slot is returned to the
// inventory first. Equipping the item already in its slot succeeds without
// change. It returns false if the id is not in the catalog or not held.
func (gs *GameState) EquipItem(id string) bool {
	def, ok := gs.catalog[id]
	if !ok {
		return false
	}
	if gs.Equipment[def.Slot] == id {
		return true
	}
	if !gs.HasItem(id, 1) {
		return false
	}

	if gs.Equipment[def.Slot] != "" {
		gs.UnequipSlot(def.Slot)
	}
	gs.RemoveItem(id, 1)
	gs.Stats = gs.Stats.Add(def.Bonus)
	gs.Equipment[def.Slot] = id
	return true
}

// UnequipSlot returns the item in slot to the inventory and removes its
// bonuses. It returns false when the slot is empty.
func (gs *GameState) UnequipSlot(slot Slot) bool {
	id := gs.Equipment[slot]
	if id == "" {
		return false
	}
	if def, ok := gs.catalog[id]; ok {
		gs.Stats = gs.Stats.Sub(def.Bonus)
	}
	delete(gs.Equipment, slot)
	gs.AddItem(id, 1)
	if gs.HPCurrent > gs.Stats.HP {
		gs.HPCurrent = gs.Stats.HP
	}
	return true
}
