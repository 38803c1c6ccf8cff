package swissforge

import "fmt"

// MatchResult is the tagged outcome of one side of a Matchup.
type MatchResult int

const (
	Unset MatchResult = iota
	Win
	Loss
	Draw
	Walkover
)

func (r MatchResult) String() string {
	switch r {
	case Unset:
		return "unset"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Walkover:
		return "walkover"
	default:
		return fmt.Sprintf("MatchResult(%d)", int(r))
	}
}

// legalResultPairs is the full legal set from spec §4.1. Order within
// each pair does not matter; callers check membership unordered.
var legalResultPairs = [][2]MatchResult{
	{Win, Loss},
	{Win, Walkover},
	{Walkover, Walkover},
	{Draw, Draw},
	{Unset, Unset},
}

func resultPairLegal(a, b MatchResult) bool {
	for _, pair := range legalResultPairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// HalfPoints is a score represented as an integer number of half
// points (1.0 point == 2 half points), avoiding float equality
// pitfalls in tie-break comparisons (spec §9).
type HalfPoints int

// Float64 renders the half-point count as the familiar decimal score.
func (h HalfPoints) Float64() float64 {
	return float64(h) / 2
}

// String renders integer-normalized when whole, matching the
// standings report's display convention (spec §6.3).
func (h HalfPoints) String() string {
	if h%2 == 0 {
		return fmt.Sprintf("%d", h/2)
	}
	return fmt.Sprintf("%.1f", h.Float64())
}

// scoreHalfPoints is the scoring projection from spec §4.1: Win=1,
// Draw=0.5, Loss=0, Walkover=0 for its holder (the opposite Win still
// scores 1 via the normal Win case), Unset=0 (round not complete, the
// value is meaningless and callers must check completeness first).
func scoreHalfPoints(r MatchResult) HalfPoints {
	switch r {
	case Win:
		return 2
	case Draw:
		return 1
	case Loss, Walkover, Unset:
		return 0
	default:
		return 0
	}
}

// QuarterPoints is a score at quarter-point granularity (1.0 point ==
// 4 quarter-points). Sonneborn-Berger genuinely needs this precision:
// it credits half of a drawn opponent's own score, and that opponent
// score is itself frequently an odd number of half-points.
type QuarterPoints int

// Float64 renders the quarter-point count as a decimal score.
func (q QuarterPoints) Float64() float64 {
	return float64(q) / 4
}

// String renders integer- or half-point-normalized when possible,
// falling back to two decimal places.
func (q QuarterPoints) String() string {
	switch {
	case q%4 == 0:
		return fmt.Sprintf("%d", q/4)
	case q%2 == 0:
		return fmt.Sprintf("%.1f", q.Float64())
	default:
		return fmt.Sprintf("%.2f", q.Float64())
	}
}

// modelScoreHalfPoints is the opponent "model score" valuation used by
// Modified Median / Solkoff (spec §4.5.1), which differs from
// scoreHalfPoints only in crediting a Walkover holder half a point
// rather than zero.
func modelScoreHalfPoints(r MatchResult) HalfPoints {
	if r == Walkover {
		return 1
	}
	return scoreHalfPoints(r)
}
