// Command saveinspect lists the saves in the configured store and can print
// one snapshot's summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/homestead/internal/config"
	"chosenoffset.com/homestead/internal/core/clock"
	"chosenoffset.com/homestead/internal/core/gamestate"
	"chosenoffset.com/homestead/internal/game"
	"chosenoffset.com/homestead/internal/logging"
	"chosenoffset.com/homestead/internal/save"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	autosaveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	refStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func main() {
	show := flag.String("show", "", "print the save with this ref")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.Setup(cfg.Settings)

	store, err := game.OpenStore(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open store:", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if *show != "" {
		err = printSnapshot(ctx, store, *show)
	} else {
		err = printSlots(ctx, store, cfg.SaveBackend)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		store.Close()
		os.Exit(1)
	}
}

func printSlots(ctx context.Context, store save.Store, backend string) error {
	slots, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list saves: %w", err)
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("Saves (%s backend)", backend)))
	if len(slots) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, s := range slots {
		name := save.DisplayName(s.Name)
		if s.IsAutosave {
			name = autosaveStyle.Render("autosave")
		}
		created := s.CreatedAt
		if created == "" {
			created = s.ModTime.Format(save.TimeLayout)
		}
		fmt.Printf("  %-24s %s  %s\n", name, created, refStyle.Render(s.Ref))
	}
	return nil
}

func printSnapshot(ctx context.Context, store save.Store, ref string) error {
	snap, err := store.Load(ctx, ref)
	if err != nil {
		return fmt.Errorf("load %s: %w", ref, err)
	}
	lines := []string{
		titleStyle.Render(save.DisplayName(snap.Name)),
		"Scene: " + snap.Scene,
	}
	if spawn := snap.SpawnName(); spawn != "" {
		lines = append(lines, "Spawn: "+spawn)
	}
	if pos, ok := snap.Position(); ok {
		lines = append(lines, fmt.Sprintf("Position: %.0f, %.0f", pos.X, pos.Y))
	}
	if snap.TimeMinutes != nil {
		lines = append(lines, "Time: "+clock.Text(*snap.TimeMinutes))
	}
	if rec := snap.GameState; rec != nil {
		coins := 0
		if rec.Coins != nil {
			coins = *rec.Coins
		}
		lines = append(lines,
			fmt.Sprintf("Coins: %d  Level: %d  XP: %d", coins, rec.Level, rec.XP),
			fmt.Sprintf("Plots: %d", len(rec.FarmingPlots)),
		)
		for _, id := range slices.Sorted(maps.Keys(rec.Inventory)) {
			lines = append(lines, fmt.Sprintf("  %s x%d", gamestate.DisplayName(id), rec.Inventory[id]))
		}
	}
	fmt.Println(panelStyle.Render(strings.Join(lines, "\n")))
	return nil
}
