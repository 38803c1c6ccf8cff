// Package swissforge runs Swiss-system and round-robin (Berger) chess
// tournaments.
//
// Core capabilities include:
//   - Swiss pairing with duplicate-opponent and color-streak vetoes,
//     back-swap recovery, and bounded randomized restarts
//   - Full Berger round-robin schedule construction
//   - Standings and the standard tie-break metrics (Modified Median,
//     Solkoff, Sonneborn-Berger, Koya)
//   - TOML tournament configuration and round CSV import/export at the
//     edges, keeping the pairing/scoring core synchronous and pure
//
// Quick start:
//
//	players := []Player{{Identifier: 1, FirstName: "Alice"}, {Identifier: 2, FirstName: "Bob"}}
//	t, _ := NewTournament("Club Championship", players, RoundSystemSwiss, 5)
//	round, _ := t.GenerateNextRound()
//	_ = round
package swissforge
