package swissforge

import "testing"

func TestRoundIsComplete(t *testing.T) {
	m1 := NewMatchup(1, 2)
	m2 := NewMatchup(3, 4)
	r := Round{Index: 1, Matchups: []Matchup{m1, m2}}
	if r.IsComplete() {
		t.Fatalf("round with unset matchups should not be complete")
	}
	if err := m1.AddResult(Win, Loss); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := m2.AddResult(Draw, Draw); err != nil {
		t.Fatalf("setup: %v", err)
	}
	r.Matchups = []Matchup{m1, m2}
	if !r.IsComplete() {
		t.Fatalf("round with all matchups set should be complete")
	}
}

func TestRoundScoresSumToMatchCount(t *testing.T) {
	m1 := NewMatchup(1, 2)
	if err := m1.AddResult(Win, Loss); err != nil {
		t.Fatalf("setup: %v", err)
	}
	m2 := NewMatchup(3, 4)
	if err := m2.AddResult(Draw, Draw); err != nil {
		t.Fatalf("setup: %v", err)
	}
	r := Round{Index: 1, Matchups: []Matchup{m1, m2}}
	scores := r.Scores()
	var sum HalfPoints
	for _, s := range scores {
		sum += s
	}
	// spec invariant 5: sum of per-matchup scores == len(matchups), here
	// in whole-point units (2 half-points per matchup).
	if sum != HalfPoints(2*len(r.Matchups)) {
		t.Fatalf("expected score sum %d, got %d", 2*len(r.Matchups), sum)
	}
}

func TestRoundMatchupFor(t *testing.T) {
	r := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if _, ok := r.MatchupFor(3); !ok {
		t.Fatalf("expected to find matchup for player 3")
	}
	if _, ok := r.MatchupFor(99); ok {
		t.Fatalf("expected no matchup for player 99")
	}
}
