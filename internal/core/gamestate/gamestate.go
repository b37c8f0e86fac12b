// Package gamestate holds the player's progression record: coins, inventory,
// quest flags, upgrades, stats, level, equipment and the persisted mirror of
// farm plot state. One instance is shared by every scene for the lifetime of
// a play session; it is mutated only from the frame's update pass.
package gamestate

import "fmt"

// Well-known flag and upgrade names.
const (
	FlagQuestStarted   = "quest_started"
	FlagQuestCompleted = "quest_completed"
	FlagCropSold       = "crop_sold"
	UpgradeBoots       = "boots"
)

// DefaultCoins is the starting purse for a new game.
const DefaultCoins = 10

// DefaultPlayerName is used when no name has been chosen.
const DefaultPlayerName = "Farmer"

// PlotRecord is the persisted state of one farm plot.
type PlotRecord struct {
	State          string   `json:"state"`
	PlantedMinutes *float64 `json:"planted_minutes"`
}

// GameState holds all persistent progression data.
type GameState struct {
	Coins     int
	Inventory map[string]int
	Flags     map[string]bool
	Upgrades  map[string]bool

	PlayerName string
	PlayerRace string

	Stats         Stats
	HPCurrent     int
	Level         int
	XP            int
	UnspentPoints int

	// Equipment maps a slot to the equipped item id. Empty slots are absent.
	Equipment map[Slot]string

	// FarmingPlots mirrors live plot state across scene switches.
	FarmingPlots map[string]PlotRecord

	catalog Catalog
}

// New creates a fresh game state using the default equipment catalog.
func New() *GameState {
	return NewWithCatalog(DefaultCatalog())
}

// NewWithCatalog creates a fresh game state bound to the given catalog.
func NewWithCatalog(catalog Catalog) *GameState {
	gs := &GameState{catalog: catalog}
	gs.Reset()
	return gs
}

// Reset restores new-game defaults (for "new game").
func (gs *GameState) Reset() {
	gs.Coins = DefaultCoins
	gs.Inventory = make(map[string]int)
	gs.Flags = map[string]bool{
		FlagQuestStarted:   false,
		FlagQuestCompleted: false,
	}
	gs.Upgrades = map[string]bool{
		UpgradeBoots: false,
	}
	gs.PlayerName = DefaultPlayerName
	gs.PlayerRace = DefaultRace
	gs.Level = 1
	gs.XP = 0
	gs.UnspentPoints = 0
	gs.Equipment = make(map[Slot]string)
	gs.FarmingPlots = make(map[string]PlotRecord)
	gs.ApplyRace(DefaultRace)
}

// Catalog returns the equipment catalog this state validates against.
func (gs *GameState) Catalog() Catalog {
	return gs.catalog
}

// --- Coins ---

// AddCoins adds n coins. Negative amounts are ignored.
func (gs *GameState) AddCoins(n int) {
	if n > 0 {
		gs.Coins += n
	}
}

// SpendCoins removes n coins if the purse holds enough. It returns false and
// leaves the purse untouched otherwise.
func (gs *GameState) SpendCoins(n int) bool {
	if n < 0 || gs.Coins < n {
		return false
	}
	gs.Coins -= n
	return true
}

// --- Flags and upgrades ---

// Flag returns the value of a quest flag (false if not set).
func (gs *GameState) Flag(name string) bool {
	return gs.Flags[name]
}

// SetFlag sets a quest flag.
func (gs *GameState) SetFlag(name string, value bool) {
	gs.Flags[name] = value
}

// Upgrade reports whether an upgrade is owned.
func (gs *GameState) Upgrade(name string) bool {
	return gs.Upgrades[name]
}

// SetUpgrade grants or removes an upgrade.
func (gs *GameState) SetUpgrade(name string, owned bool) {
	gs.Upgrades[name] = owned
}

// --- Plots ---

// SetPlot records the state of one farm plot.
func (gs *GameState) SetPlot(id string, rec PlotRecord) {
	if rec.PlantedMinutes != nil {
		m := *rec.PlantedMinutes
		rec.PlantedMinutes = &m
	}
	gs.FarmingPlots[id] = rec
}

// Plot returns the recorded state of a farm plot.
func (gs *GameState) Plot(id string) (PlotRecord, bool) {
	rec, ok := gs.FarmingPlots[id]
	return rec, ok
}

// Clone creates a deep copy of the game state (useful for save states).
func (gs *GameState) Clone() *GameState {
	clone := NewWithCatalog(gs.catalog)
	clone.FromRecord(gs.ToRecord())
	return clone
}

// Debug returns a string representation of the game state for debugging
func (gs *GameState) Debug() string {
	return fmt.Sprintf("GameState{Coins: %d, Items: %d, Level: %d, XP: %d, Plots: %d}",
		gs.Coins, len(gs.Inventory), gs.Level, gs.XP, len(gs.FarmingPlots))
}
