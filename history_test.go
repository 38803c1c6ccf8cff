package swissforge

import "testing"

func completeMatchup(white, black PlayerID, wr, br MatchResult) Matchup {
	m := NewMatchup(white, black)
	if err := m.AddResult(wr, br); err != nil {
		panic(err)
	}
	return m
}

func TestOpponentsTracksHistory(t *testing.T) {
	tour, err := NewTournament("Hist", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{
		completeMatchup(1, 2, Win, Loss),
		completeMatchup(3, 4, Draw, Draw),
	}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("append: %v", err)
	}
	opponents, err := tour.Opponents(UntilLatest, false)
	if err != nil {
		t.Fatalf("Opponents: %v", err)
	}
	if len(opponents[1]) != 1 || opponents[1][0] != 2 {
		t.Fatalf("expected player 1 to have faced player 2, got %v", opponents[1])
	}

	inverse, err := tour.Opponents(UntilLatest, true)
	if err != nil {
		t.Fatalf("Opponents(inverse): %v", err)
	}
	if len(inverse[1]) != 2 { // players 3 and 4 unplayed
		t.Fatalf("expected player 1 to have 2 unplayed opponents, got %v", inverse[1])
	}
}

func TestColorHistoryExcludesWalkovers(t *testing.T) {
	tour, err := NewTournament("Walk", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{
		completeMatchup(1, 2, Win, Walkover),
		completeMatchup(3, 4, Draw, Draw),
	}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("append: %v", err)
	}
	history, err := tour.ColorHistory(UntilLatest)
	if err != nil {
		t.Fatalf("ColorHistory: %v", err)
	}
	if len(history[1]) != 0 || len(history[2]) != 0 {
		t.Fatalf("walkover game must not contribute to color history, got %v / %v", history[1], history[2])
	}
	if len(history[3]) != 1 || history[3][0] != 1 {
		t.Fatalf("expected player 3 to have one white entry, got %v", history[3])
	}
}

func TestColorCountsCountWalkovers(t *testing.T) {
	tour, err := NewTournament("Walk2", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{
		completeMatchup(1, 2, Win, Walkover),
		completeMatchup(3, 4, Draw, Draw),
	}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("append: %v", err)
	}
	counts, err := tour.ColorCounts(UntilLatest)
	if err != nil {
		t.Fatalf("ColorCounts: %v", err)
	}
	if counts[1].White != 1 || counts[2].Black != 1 {
		t.Fatalf("expected raw color counts to include the walkover game, got %+v / %+v", counts[1], counts[2])
	}
}

// Invariant 10: standings(until_complete) fails NoCompletedRounds on a
// zero-complete tournament.
func TestStandingsFailsWithNoCompletedRounds(t *testing.T) {
	tour, err := NewTournament("Zero", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	incomplete := Round{Index: 1, Matchups: []Matchup{NewMatchup(1, 2), NewMatchup(3, 4)}}
	if err := tour.AppendRound(incomplete); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := tour.Standings(UntilLatestComplete); err != ErrNoCompletedRounds {
		t.Fatalf("expected ErrNoCompletedRounds, got %v", err)
	}
}

func TestStandingsSumsScores(t *testing.T) {
	tour, err := NewTournament("Sum", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r1 := Round{Index: 1, Matchups: []Matchup{
		completeMatchup(1, 2, Win, Loss),
		completeMatchup(3, 4, Draw, Draw),
	}}
	if err := tour.AppendRound(r1); err != nil {
		t.Fatalf("append: %v", err)
	}
	totals, err := tour.Standings(UntilLatest)
	if err != nil {
		t.Fatalf("Standings: %v", err)
	}
	if totals[1] != 2 || totals[2] != 0 || totals[3] != 1 || totals[4] != 1 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}
