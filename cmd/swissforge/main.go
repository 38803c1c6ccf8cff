// Command swissforge drives a tournament end to end from a TOML
// config and a folder of round CSVs: it loads the roster, replays any
// completed rounds, generates the next round, and prints the round
// plus, once at least one round is complete, the standings report.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"swissforge"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to tournament config TOML")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "swissforge:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := swissforge.LoadConfig(f)
	if err != nil {
		return err
	}

	players := make([]swissforge.Player, len(cfg.Players.IDs))
	for i, id := range cfg.Players.IDs {
		players[i] = swissforge.Player{Identifier: id, FirstName: fmt.Sprintf("Player%d", id), Active: true}
	}

	t, err := swissforge.NewTournamentFromConfig(cfg, players)
	if err != nil {
		return err
	}

	if err := loadRounds(t, cfg.RoundFolder); err != nil {
		return err
	}

	round, err := t.GenerateNextRound()
	if err != nil {
		return err
	}

	fmt.Printf("round %d:\n", round.Index)
	for _, m := range round.Matchups {
		fmt.Println(" ", m)
	}

	report, err := swissforge.BuildReport(t)
	if err == nil {
		fmt.Println()
		report.RenderTable(os.Stdout)
	}
	return nil
}

// loadRounds replays every round<N>.csv found in folder, in ascending
// numeric order, appending each as a round to t.
func loadRounds(t *swissforge.Tournament, folder string) error {
	if folder == "" {
		return nil
	}
	entries, err := os.ReadDir(folder)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	for _, rf := range swissforge.RoundCSVFiles(folder, names) {
		f, err := os.Open(rf.Path)
		if err != nil {
			return err
		}
		round, err := swissforge.ReadRoundCSV(f, rf.Index, t.Players())
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", filepath.Base(rf.Path), err)
		}
		if err := t.AppendRound(round); err != nil {
			return err
		}
	}
	return nil
}
