package swissforge

import "sort"

// tieBreakRoundCount is the threshold denominator from spec §4.5.3:
// the configured round_count when set, otherwise the number of rounds
// actually played.
func (t *Tournament) tieBreakRoundCount() int {
	if t.roundCount > 0 {
		return t.roundCount
	}
	return len(t.rounds)
}

// opponentModelScores returns, for each player, the model scores
// (spec §4.5.1: Win=1, Draw=0.5, Loss=0, Walkover=0.5, Unset=0) of
// every opponent they faced through the last complete round, in the
// order those opponents were faced. Each opponent's model score is
// their own tournament total under the same valuation, not a
// per-game value.
func (t *Tournament) opponentModelScores() map[PlayerID][]HalfPoints {
	lastComplete, _ := t.LastCompleteRoundIndex()
	ownModelScore := make(map[PlayerID]HalfPoints, len(t.players))
	for _, p := range t.players {
		ownModelScore[p.Identifier] = 0
	}
	for _, r := range t.rounds[:lastComplete] {
		for _, m := range r.Matchups {
			w, b := m.Side(White), m.Side(Black)
			ownModelScore[w.Player] += modelScoreHalfPoints(w.Result)
			ownModelScore[b.Player] += modelScoreHalfPoints(b.Result)
		}
	}

	out := make(map[PlayerID][]HalfPoints, len(t.players))
	for _, p := range t.players {
		out[p.Identifier] = nil
	}
	for _, r := range t.rounds[:lastComplete] {
		for _, m := range r.Matchups {
			w, b := m.Side(White), m.Side(Black)
			out[w.Player] = append(out[w.Player], ownModelScore[b.Player])
			out[b.Player] = append(out[b.Player], ownModelScore[w.Player])
		}
	}
	return out
}

// Solkoff computes Solkoff(p) for every player: the unconditioned sum
// of opponents' model scores (spec §4.5.1).
func (t *Tournament) Solkoff() map[PlayerID]HalfPoints {
	scores := t.opponentModelScores()
	out := make(map[PlayerID]HalfPoints, len(scores))
	for id, list := range scores {
		var sum HalfPoints
		for _, s := range list {
			sum += s
		}
		out[id] = sum
	}
	return out
}

// ModifiedMedian computes Modified Median(p) for every player: like
// Solkoff but discarding opponent scores from the extremes, with the
// discard side and count depending on the player's own score relative
// to rounds/2 (spec §4.5.1).
func (t *Tournament) ModifiedMedian() (map[PlayerID]HalfPoints, error) {
	totals, err := t.Standings(UntilLatestComplete)
	if err != nil {
		return nil, err
	}
	scores := t.opponentModelScores()
	out := make(map[PlayerID]HalfPoints, len(scores))
	manyRounds := t.tieBreakRoundCount() >= 9
	// invariant (spec §8 item 8): with fewer than 3 rounds there isn't
	// enough data for a meaningful discard; Modified Median equals
	// Solkoff.
	tooFewRounds := t.tieBreakRoundCount() < 3
	// score(p) and rounds/2 are both whole-point quantities; totals[id]
	// is already in half-points (1 point == 2 half-points), so
	// rounds/2 in the same units is simply tieBreakRoundCount().
	for id, list := range scores {
		sorted := append([]HalfPoints(nil), list...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		dropLow, dropHigh := 1, 0
		switch {
		case tooFewRounds:
			dropLow, dropHigh = 0, 0
		case totals[id] > HalfPoints(t.tieBreakRoundCount()):
			dropLow, dropHigh = 1, 0
		case totals[id] < HalfPoints(t.tieBreakRoundCount()):
			dropLow, dropHigh = 0, 1
		default:
			dropLow, dropHigh = 1, 1
		}
		if manyRounds {
			dropLow *= 2
			dropHigh *= 2
		}
		if dropLow > len(sorted) {
			dropLow = len(sorted)
		}
		if dropHigh > len(sorted)-dropLow {
			dropHigh = len(sorted) - dropLow
		}
		kept := sorted[dropLow : len(sorted)-dropHigh]

		var sum HalfPoints
		for _, s := range kept {
			sum += s
		}
		out[id] = sum
	}
	return out, nil
}

// SonnebornBerger computes Sonneborn-Berger(p) for every player: the
// sum of defeated opponents' tournament scores plus half the sum of
// drawn opponents' tournament scores (spec §4.5.2). The result is in
// quarter-points: halving a half-point total can land on a quarter
// point, which HalfPoints cannot represent exactly.
func (t *Tournament) SonnebornBerger() (map[PlayerID]QuarterPoints, error) {
	totals, err := t.Standings(UntilLatestComplete)
	if err != nil {
		return nil, err
	}
	defeatedDrawn, _ := t.PlayerDefeatedDrawn()
	out := make(map[PlayerID]QuarterPoints, len(t.players))
	for _, p := range t.players {
		entry := defeatedDrawn[p.Identifier]
		var sum QuarterPoints
		for _, opp := range entry[0] { // defeated
			sum += QuarterPoints(totals[opp]) * 2 // half-points -> quarter-points
		}
		for _, opp := range entry[1] { // drawn, halved
			sum += QuarterPoints(totals[opp])
		}
		out[p.Identifier] = sum
	}
	return out, nil
}

// Koya computes Koya(p) for every player: the sum of p's own match
// scores against opponents whose tournament score is at least half
// the round-count threshold (spec §4.5.2).
func (t *Tournament) Koya() (map[PlayerID]HalfPoints, error) {
	totals, err := t.Standings(UntilLatestComplete)
	if err != nil {
		return nil, err
	}
	_, scoresByOpponent := t.PlayerDefeatedDrawn()
	// opponent score >= rounds/2 in half-point units is simply
	// tieBreakRoundCount() half-points (same reasoning as ModifiedMedian).
	threshold := HalfPoints(t.tieBreakRoundCount())
	out := make(map[PlayerID]HalfPoints, len(t.players))
	for _, p := range t.players {
		var sum HalfPoints
		for opp, score := range scoresByOpponent[p.Identifier] {
			if totals[opp] >= threshold {
				sum += score
			}
		}
		out[p.Identifier] = sum
	}
	return out, nil
}
