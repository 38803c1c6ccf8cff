package swissforge

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TournamentConfig is the loader input described in spec §6.1: a
// configuration document (TOML, format opaque to the core types
// above) supplying tournament identity, round-system choice,
// filesystem hints for CSV collaborators, tie-break method names, and
// initial player ranking.
type TournamentConfig struct {
	Title  string `toml:"title"`
	Year   int    `toml:"year"`
	Count  int    `toml:"count"`
	Rounds int    `toml:"rounds"`

	RoundSystem string `toml:"round_system"`

	Folder      string `toml:"folder"`
	RoundFolder string `toml:"round_folder"`

	TieBreakMethodsSwiss      []string `toml:"tie_break_methods_swiss"`
	TieBreakMethodsRoundRobin []string `toml:"tie_break_methods_round_robin"`

	Players struct {
		IDs []int `toml:"ids"`
	} `toml:"players"`
}

// LoadConfig decodes a TournamentConfig from r.
func LoadConfig(r io.Reader) (TournamentConfig, error) {
	var cfg TournamentConfig
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return TournamentConfig{}, fmt.Errorf("swissforge: decoding config: %w", err)
	}
	return cfg, nil
}

// ParsedRoundSystem resolves the configured round_system string
// (case-insensitive "swiss"/"berger") to a RoundSystem value.
func (c TournamentConfig) ParsedRoundSystem() (RoundSystem, error) {
	switch strings.ToLower(strings.TrimSpace(c.RoundSystem)) {
	case "swiss", "":
		return RoundSystemSwiss, nil
	case "berger":
		return RoundSystemBerger, nil
	default:
		return 0, fmt.Errorf("swissforge: unknown round_system %q", c.RoundSystem)
	}
}

// ParsedTieBreaksSwiss resolves each configured name to a
// TieBreakMethodSwiss, failing closed with UnknownTieBreakMethodError
// on the first unrecognized entry (spec §6.1).
func (c TournamentConfig) ParsedTieBreaksSwiss() ([]TieBreakMethodSwiss, error) {
	out := make([]TieBreakMethodSwiss, 0, len(c.TieBreakMethodsSwiss))
	for _, name := range c.TieBreakMethodsSwiss {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "modified_median":
			out = append(out, TieBreakModifiedMedian)
		case "solkoff":
			out = append(out, TieBreakSolkoff)
		default:
			return nil, &UnknownTieBreakMethodError{Name: name}
		}
	}
	return out, nil
}

// ParsedTieBreaksRoundRobin resolves each configured name to a
// TieBreakMethodRoundRobin, failing closed on the first unrecognized
// entry (spec §6.1).
func (c TournamentConfig) ParsedTieBreaksRoundRobin() ([]TieBreakMethodRoundRobin, error) {
	out := make([]TieBreakMethodRoundRobin, 0, len(c.TieBreakMethodsRoundRobin))
	for _, name := range c.TieBreakMethodsRoundRobin {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "sonneborn_berger":
			out = append(out, TieBreakSonnebornBerger)
		case "koya":
			out = append(out, TieBreakKoya)
		default:
			return nil, &UnknownTieBreakMethodError{Name: name}
		}
	}
	return out, nil
}

// NewTournamentFromConfig builds a Tournament from a decoded config
// and the roster it describes, in the ids order given (which defines
// initial ranking, spec §6.1).
func NewTournamentFromConfig(cfg TournamentConfig, players []Player, opts ...Option) (*Tournament, error) {
	system, err := cfg.ParsedRoundSystem()
	if err != nil {
		return nil, err
	}
	swissMethods, err := cfg.ParsedTieBreaksSwiss()
	if err != nil {
		return nil, err
	}
	rrMethods, err := cfg.ParsedTieBreaksRoundRobin()
	if err != nil {
		return nil, err
	}

	ordered := make([]Player, 0, len(cfg.Players.IDs))
	byID := make(map[int]Player, len(players))
	for _, p := range players {
		byID[p.Identifier] = p
	}
	for _, id := range cfg.Players.IDs {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
		}
		ordered = append(ordered, p)
	}

	allOpts := append([]Option{
		WithTieBreaksSwiss(swissMethods...),
		WithTieBreaksRoundRobin(rrMethods...),
	}, opts...)

	t, err := NewTournament(cfg.Title, ordered, system, cfg.Rounds, allOpts...)
	if err != nil {
		return nil, err
	}
	t.Year = cfg.Year
	return t, nil
}
