package swissforge

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInitialSwissRoundSplitsTopAndBottom(t *testing.T) {
	tour, err := NewTournament("Init", makePlayers(8), RoundSystemSwiss, 5)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	round, err := tour.GenerateNextRound()
	if err != nil {
		t.Fatalf("GenerateNextRound: %v", err)
	}
	if round.Index != 1 {
		t.Fatalf("expected round index 1, got %d", round.Index)
	}
	if len(round.Matchups) != 4 {
		t.Fatalf("expected 4 matchups, got %d", len(round.Matchups))
	}
	for _, m := range round.Matchups {
		white, black := m.Players()
		// bottom half (5-8) plays White against top half (1-4) per §4.4.5
		if white <= 4 || black > 4 {
			t.Fatalf("expected bottom-half White vs top-half Black, got white=%d black=%d", white, black)
		}
	}
}

func TestSwissRoundNeverRepeatsAnOpponent(t *testing.T) {
	tour, err := NewTournament("Repeat", makePlayers(8), RoundSystemSwiss, 5, WithRNG(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	seen := map[[2]int]bool{}
	for round := 1; round <= 5; round++ {
		r, err := tour.GenerateNextRound()
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		for _, m := range r.Matchups {
			a, b := m.PlayerIDs()
			key := normalizedPair(a, b)
			if seen[key] {
				t.Fatalf("pair %v repeated in round %d", key, round)
			}
			seen[key] = true
			if err := tour.RecordResult(round, a, Win); err != nil {
				t.Fatalf("recording result: %v", err)
			}
			if err := tour.RecordResult(round, b, Loss); err != nil {
				t.Fatalf("recording result: %v", err)
			}
		}
	}
}

// S4 — Swiss brute force: across 100 trials of 20 players over 9
// rounds with randomized results, the assigner must succeed at least
// 93 times, never silently producing an invalid round (only
// PairingExhausted or ColorStreakViolation are acceptable failures).
func TestSwissBruteForceSucceedsMostOfTheTime(t *testing.T) {
	const trials = 100
	const minSuccesses = 93
	successes := 0
	for trial := 0; trial < trials; trial++ {
		rng := rand.New(rand.NewSource(int64(trial)))
		tour, err := NewTournament("S4", makePlayers(20), RoundSystemSwiss, 9, WithRNG(rng))
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		ok := true
		for round := 1; round <= 9; round++ {
			r, err := tour.GenerateNextRound()
			if err != nil {
				if errors.Is(err, ErrPairingExhausted) {
					ok = false
					break
				}
				var streak *ColorStreakViolationError
				if errors.As(err, &streak) {
					ok = false
					break
				}
				t.Fatalf("unexpected error type: %v", err)
			}
			for _, m := range r.Matchups {
				a, b := m.PlayerIDs()
				outcome := rng.Intn(3)
				switch outcome {
				case 0:
					tour.RecordResult(round, a, Win)
					tour.RecordResult(round, b, Loss)
				case 1:
					tour.RecordResult(round, a, Loss)
					tour.RecordResult(round, b, Win)
				default:
					tour.RecordResult(round, a, Draw)
					tour.RecordResult(round, b, Draw)
				}
			}
		}
		if ok {
			successes++
		}
	}
	if successes < minSuccesses {
		t.Fatalf("expected at least %d/%d trials to succeed, got %d", minSuccesses, trials, successes)
	}
}

func TestSwissRejectsOddRoster(t *testing.T) {
	tour, err := NewTournament("Odd", makePlayers(4), RoundSystemSwiss, 3)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	tour.players = tour.players[:3]
	if _, err := tour.nextSwissRound(); err != ErrOddRosterUnsupported {
		t.Fatalf("expected ErrOddRosterUnsupported, got %v", err)
	}
}
