package gamestate

// Record is the serialized form of GameState used inside save files. Pointer
// fields distinguish "missing" from zero so older saves load with defaults.
type Record struct {
	Coins         *int                  `json:"coins"`
	Inventory     map[string]int        `json:"inventory"`
	Flags         map[string]bool       `json:"flags"`
	Upgrades      map[string]bool       `json:"upgrades"`
	FarmingPlots  map[string]PlotRecord `json:"farming_plots"`
	PlayerName    string                `json:"player_name,omitempty"`
	PlayerRace    string                `json:"player_race,omitempty"`
	Stats         *Stats                `json:"stats,omitempty"`
	HPCurrent     *int                  `json:"hp_current,omitempty"`
	Level         int                   `json:"level,omitempty"`
	XP            int                   `json:"xp"`
	UnspentPoints int                   `json:"unspent_points"`
	Equipment     map[Slot]*string      `json:"equipment"`
}

// ToRecord produces a deep copy of the state in serializable form.
func (gs *GameState) ToRecord() Record {
	coins := gs.Coins
	hp := gs.HPCurrent
	stats := gs.Stats

	rec := Record{
		Coins:         &coins,
		Inventory:     make(map[string]int, len(gs.Inventory)),
		Flags:         make(map[string]bool, len(gs.Flags)),
		Upgrades:      make(map[string]bool, len(gs.Upgrades)),
		FarmingPlots:  make(map[string]PlotRecord, len(gs.FarmingPlots)),
		PlayerName:    gs.PlayerName,
		PlayerRace:    gs.PlayerRace,
		Stats:         &stats,
		HPCurrent:     &hp,
		Level:         gs.Level,
		XP:            gs.XP,
		UnspentPoints: gs.UnspentPoints,
		Equipment:     make(map[Slot]*string, len(Slots)),
	}
	for k, v := range gs.Inventory {
		rec.Inventory[k] = v
	}
	for k, v := range gs.Flags {
		rec.Flags[k] = v
	}
	for k, v := range gs.Upgrades {
		rec.Upgrades[k] = v
	}
	for k, v := range gs.FarmingPlots {
		if v.PlantedMinutes != nil {
			m := *v.PlantedMinutes
			v.PlantedMinutes = &m
		}
		rec.FarmingPlots[k] = v
	}
	for _, slot := range Slots {
		if id := gs.Equipment[slot]; id != "" {
			rec.Equipment[slot] = &id
		} else {
			rec.Equipment[slot] = nil
		}
	}
	return rec
}

// FromRecord replaces the state with the contents of rec. The state is reset
// first so any field missing from rec takes its new-game default. Inventory
// entries with non-positive counts and equipment not in the catalog are
// dropped.
func (gs *GameState) FromRecord(rec Record) {
	gs.Reset()

	if rec.Coins != nil && *rec.Coins >= 0 {
		gs.Coins = *rec.Coins
	}
	for k, v := range rec.Inventory {
		if v > 0 {
			gs.Inventory[k] = v
		}
	}
	for k, v := range rec.Flags {
		gs.Flags[k] = v
	}
	for k, v := range rec.Upgrades {
		gs.Upgrades[k] = v
	}
	for k, v := range rec.FarmingPlots {
		gs.SetPlot(k, v)
	}
	if rec.PlayerName != "" {
		gs.PlayerName = rec.PlayerName
	}
	for slot, id := range rec.Equipment {
		if id == nil || *id == "" {
			continue
		}
		if def, ok := gs.catalog[*id]; ok && def.Slot == slot {
			gs.Equipment[slot] = *id
		}
	}
	// Without saved stats the race base plus equipment bonuses stands in.
	race := rec.PlayerRace
	if race == "" {
		race = gs.PlayerRace
	}
	gs.ApplyRace(race)
	if rec.Stats != nil {
		gs.Stats = *rec.Stats
	}
	gs.HPCurrent = gs.Stats.HP
	if rec.HPCurrent != nil && *rec.HPCurrent >= 0 && *rec.HPCurrent <= gs.Stats.HP {
		gs.HPCurrent = *rec.HPCurrent
	}
	if rec.Level >= 1 {
		gs.Level = rec.Level
	}
	if rec.XP > 0 {
		gs.XP = rec.XP
	}
	if rec.UnspentPoints > 0 {
		gs.UnspentPoints = rec.UnspentPoints
	}
}
