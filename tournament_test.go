package swissforge

import "testing"

func makePlayers(n int) []Player {
	players := make([]Player, n)
	for i := 0; i < n; i++ {
		players[i] = Player{Identifier: i + 1, FirstName: "Player", LastName: string(rune('A' + i)), Active: true}
	}
	return players
}

func TestNewTournamentRejectsOddRoster(t *testing.T) {
	_, err := NewTournament("Odd", makePlayers(3), RoundSystemSwiss, 3)
	if err != ErrOddRosterUnsupported {
		t.Fatalf("expected ErrOddRosterUnsupported, got %v", err)
	}
}

func TestNewTournamentRejectsDuplicateIDs(t *testing.T) {
	players := []Player{{Identifier: 1}, {Identifier: 1}}
	if _, err := NewTournament("Dup", players, RoundSystemSwiss, 2); err == nil {
		t.Fatalf("expected error for duplicate identifiers")
	}
}

// S2 — round index.
func TestAppendRoundIndexMismatch(t *testing.T) {
	tour, err := NewTournament("S2", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("appending round 1: %v", err)
	}
	bad := Round{Index: 3, Matchups: []Matchup{NewMatchup(1, 3), NewMatchup(2, 4)}}
	if err := tour.AppendRound(bad); err == nil {
		t.Fatalf("expected index-mismatch error appending round 3 after round 1")
	}
	if len(tour.Rounds()) != 1 {
		t.Fatalf("failed append must not mutate round history")
	}
}

func TestAppendRoundRejectsDuplicatePair(t *testing.T) {
	tour, err := NewTournament("Dup", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("appending round 1: %v", err)
	}
	r2 := Round{Index: 2, Matchups: []Matchup{NewMatchup(2, 1), NewMatchup(3, 4)}}
	if err := tour.AppendRound(r2); err == nil {
		t.Fatalf("expected duplicate-pairing error on repeated pair")
	}
	if len(tour.Rounds()) != 1 {
		t.Fatalf("failed append must not mutate round history")
	}
}

func TestRecordResultRevalidates(t *testing.T) {
	tour, err := NewTournament("Rec", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("appending round 1: %v", err)
	}
	if err := tour.RecordResult(1, 1, Win); err != nil {
		t.Fatalf("recording result: %v", err)
	}
	if err := tour.RecordResult(1, 2, Win); err == nil {
		t.Fatalf("expected (Win, Win) to be rejected")
	}
	if err := tour.RecordResult(1, 99, Win); err == nil {
		t.Fatalf("expected unknown player to be rejected")
	}
}

func TestValidateNoIncompleteRounds(t *testing.T) {
	tour, err := NewTournament("Inc", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("appending round 1: %v", err)
	}
	if err := tour.ValidateNoIncompleteRounds(); err == nil {
		t.Fatalf("expected IncompleteRoundError for round with unset results")
	}
	if err := tour.RecordResult(1, 1, Win); err != nil {
		t.Fatalf("recording result: %v", err)
	}
	if err := tour.RecordResult(1, 2, Loss); err != nil {
		t.Fatalf("recording result: %v", err)
	}
	if err := tour.RecordResult(1, 3, Draw); err != nil {
		t.Fatalf("recording result: %v", err)
	}
	if err := tour.RecordResult(1, 4, Draw); err != nil {
		t.Fatalf("recording result: %v", err)
	}
	if err := tour.ValidateNoIncompleteRounds(); err != nil {
		t.Fatalf("expected no error once all rounds complete, got %v", err)
	}
}
