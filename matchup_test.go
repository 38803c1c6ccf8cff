package swissforge

import "testing"

func TestMatchupAddResultLegalPairs(t *testing.T) {
	legal := [][2]MatchResult{
		{Win, Loss},
		{Draw, Draw},
		{Walkover, Walkover},
		{Win, Walkover},
		{Unset, Unset},
	}
	for _, pair := range legal {
		m := NewMatchup(1, 2)
		if err := m.AddResult(pair[0], pair[1]); err != nil {
			t.Fatalf("expected %v to be legal, got error: %v", pair, err)
		}
	}
}

func TestMatchupAddResultRejectsWinWin(t *testing.T) {
	m := NewMatchup(1, 2)
	if err := m.AddResult(Win, Win); err == nil {
		t.Fatalf("expected (Win, Win) to be rejected")
	}
}

func TestMatchupSetSideResultRevalidates(t *testing.T) {
	m := NewMatchup(1, 2)
	if err := m.AddResult(Win, Loss); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := m.SetSideResult(2, Win); err == nil {
		t.Fatalf("expected (Win, Win) to be rejected via SetSideResult")
	}
	if err := m.SetSideResult(99, Win); err == nil {
		t.Fatalf("expected unknown player to be rejected")
	}
}

func TestMatchupColorOf(t *testing.T) {
	m := NewMatchup(10, 20)
	if c, ok := m.ColorOf(10); !ok || c != White {
		t.Fatalf("expected player 10 to be White, got %v, %v", c, ok)
	}
	if c, ok := m.ColorOf(20); !ok || c != Black {
		t.Fatalf("expected player 20 to be Black, got %v, %v", c, ok)
	}
	if _, ok := m.ColorOf(30); ok {
		t.Fatalf("expected player 30 to not be a participant")
	}
}

func TestMatchupIsComplete(t *testing.T) {
	m := NewMatchup(1, 2)
	if m.IsComplete() {
		t.Fatalf("fresh matchup should not be complete")
	}
	if err := m.AddResult(Win, Loss); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !m.IsComplete() {
		t.Fatalf("matchup with both sides set should be complete")
	}
}
