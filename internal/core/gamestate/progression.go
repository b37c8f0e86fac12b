package gamestate

// Stats are the player's combat attributes. Equipment bonuses are folded in.
type Stats struct {
	HP  int `json:"HP"`
	ATK int `json:"ATK"`
	DEF int `json:"DEF"`
	SPD int `json:"SPD"`
}

// Add returns s plus o, field by field.
func (s Stats) Add(o Stats) Stats {
	return Stats{HP: s.HP + o.HP, ATK: s.ATK + o.ATK, DEF: s.DEF + o.DEF, SPD: s.SPD + o.SPD}
}

// Sub returns s minus o, field by field.
func (s Stats) Sub(o Stats) Stats {
	return Stats{HP: s.HP - o.HP, ATK: s.ATK - o.ATK, DEF: s.DEF - o.DEF, SPD: s.SPD - o.SPD}
}

// DefaultRace is applied to new characters and unknown race names.
const DefaultRace = "human"

// Races holds the base stats for each playable race.
var Races = map[string]Stats{
	"human": {HP: 20, ATK: 5, DEF: 5, SPD: 10},
	"elf":   {HP: 16, ATK: 5, DEF: 4, SPD: 12},
	"dwarf": {HP: 24, ATK: 6, DEF: 7, SPD: 8},
}

// Per-level stat growth.
var levelUpDelta = Stats{HP: 2, ATK: 1, DEF: 1}

// XPRequired returns the experience needed to advance past level.
func XPRequired(level int) int {
	return 50 * level
}

// ApplyRace sets the race and resets stats to its base values with a full
// health pool. Unknown races fall back to DefaultRace. Equipped items are
// re-applied on top of the new base.
func (gs *GameState) ApplyRace(race string) {
	base, ok := Races[race]
	if !ok {
		race = DefaultRace
		base = Races[DefaultRace]
	}
	gs.PlayerRace = race
	gs.Stats = base
	for _, id := range gs.Equipment {
		if def, ok := gs.catalog[id]; ok {
			gs.Stats = gs.Stats.Add(def.Bonus)
		}
	}
	gs.HPCurrent = gs.Stats.HP
}

// AddXP grants experience and applies every level-up it pays for. It returns
// the number of levels gained. Non-positive amounts are ignored.
func (gs *GameState) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	gs.XP += amount
	gained := 0
	for gs.XP >= XPRequired(gs.Level) {
		gs.XP -= XPRequired(gs.Level)
		gs.Level++
		gained++

		delta := levelUpDelta
		if gs.Level%2 == 0 {
			delta.SPD = 1
		}
		gs.Stats = gs.Stats.Add(delta)
		gs.UnspentPoints++
		gs.HPCurrent = gs.Stats.HP
	}
	return gained
}

// Heal restores hp_current to the maximum.
func (gs *GameState) Heal() {
	gs.HPCurrent = gs.Stats.HP
}
