package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the gameplay rules. Files only need to list what they change.
type Tuning struct {
	Movement MovementTuning `yaml:"movement"`
	Clock    ClockTuning    `yaml:"clock"`
	Farming  FarmingTuning  `yaml:"farming"`
	Shop     ShopTuning     `yaml:"shop"`
	Quest    QuestTuning    `yaml:"quest"`
}

// MovementTuning defines how the player moves
type MovementTuning struct {
	Speed          float64 `yaml:"speed"`           // px per second at SPD 10
	RunMultiplier  float64 `yaml:"run_multiplier"`  // applied while running with boots
	InteractRadius float64 `yaml:"interact_radius"` // reach for doors, NPCs and plots
}

// ClockTuning defines the pace of the day
type ClockTuning struct {
	MinutesPerSecond float64 `yaml:"minutes_per_second"`
	TimeSkipMinutes  float64 `yaml:"time_skip_minutes"` // debug skip step
}

// FarmingTuning defines crop growth
type FarmingTuning struct {
	GrowthMinutes float64 `yaml:"growth_minutes"`
	SeedItem      string  `yaml:"seed_item"`
	CropItem      string  `yaml:"crop_item"`
}

// ShopTuning defines prices in coins
type ShopTuning struct {
	SeedPrice  int `yaml:"seed_price"`
	CropPrice  int `yaml:"crop_price"`
	BootsPrice int `yaml:"boots_price"`
}

// QuestTuning defines the elder's quest payout
type QuestTuning struct {
	RewardCoins int `yaml:"reward_coins"`
	RewardXP    int `yaml:"reward_xp"`
}

// DefaultTuning returns the stock rules.
func DefaultTuning() *Tuning {
	return &Tuning{
		Movement: MovementTuning{
			Speed:          140,
			RunMultiplier:  1.5,
			InteractRadius: 48,
		},
		Clock: ClockTuning{
			MinutesPerSecond: 5,
			TimeSkipMinutes:  60,
		},
		Farming: FarmingTuning{
			GrowthMinutes: 720,
			SeedItem:      "seeds",
			CropItem:      "carrot",
		},
		Shop: ShopTuning{
			SeedPrice:  5,
			CropPrice:  3,
			BootsPrice: 20,
		},
		Quest: QuestTuning{
			RewardCoins: 15,
			RewardXP:    60,
		},
	}
}

// LoadTuning loads tuning from a YAML file. A missing file yields defaults.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultTuning(), nil
		}
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning overlays YAML data on the defaults.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning() // Start with defaults
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects values that would stall or break the game.
func (t *Tuning) Validate() error {
	switch {
	case t.Movement.Speed <= 0:
		return fmt.Errorf("movement.speed must be positive")
	case t.Movement.RunMultiplier < 1:
		return fmt.Errorf("movement.run_multiplier must be at least 1")
	case t.Movement.InteractRadius <= 0:
		return fmt.Errorf("movement.interact_radius must be positive")
	case t.Clock.MinutesPerSecond <= 0:
		return fmt.Errorf("clock.minutes_per_second must be positive")
	case t.Farming.GrowthMinutes <= 0:
		return fmt.Errorf("farming.growth_minutes must be positive")
	case t.Farming.SeedItem == "" || t.Farming.CropItem == "":
		return fmt.Errorf("farming items must be named")
	case t.Shop.SeedPrice < 0 || t.Shop.CropPrice < 0 || t.Shop.BootsPrice < 0:
		return fmt.Errorf("shop prices must not be negative")
	}
	return nil
}
