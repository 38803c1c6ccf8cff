package swissforge

import "fmt"

// UntilLatest selects every round played so far. UntilLatestComplete
// selects the greatest complete prefix, per spec §4.2.
const (
	UntilLatest         = -1
	UntilLatestComplete = -2
)

// resolveUntil turns an until selector into a concrete round count
// (number of leading rounds to consider).
func (t *Tournament) resolveUntil(until int) (int, error) {
	switch until {
	case UntilLatest:
		return len(t.rounds), nil
	case UntilLatestComplete:
		idx, ok := t.LastCompleteRoundIndex()
		if !ok {
			return 0, ErrNoCompletedRounds
		}
		return idx, nil
	default:
		if until < 0 || until > len(t.rounds) {
			return 0, fmt.Errorf("swissforge: round index %d out of range", until)
		}
		return until, nil
	}
}

// Opponents returns, for each player, the ordered list of opponents
// faced in rounds 1..until. With inverse=true it instead returns the
// complement: roster members not yet faced.
func (t *Tournament) Opponents(until int, inverse bool) (map[PlayerID][]PlayerID, error) {
	index, err := t.resolveUntil(until)
	if err != nil {
		return nil, err
	}
	result := make(map[PlayerID][]PlayerID, len(t.players))
	for _, p := range t.players {
		result[p.Identifier] = nil
	}
	for _, r := range t.rounds[:index] {
		for _, m := range r.Matchups {
			w, b := m.PlayerIDs()
			result[w] = append(result[w], b)
			result[b] = append(result[b], w)
		}
	}
	if inverse {
		for _, p := range t.players {
			played := make(map[PlayerID]bool, len(result[p.Identifier]))
			for _, opp := range result[p.Identifier] {
				played[opp] = true
			}
			var unplayed []PlayerID
			for _, other := range t.players {
				if other.Identifier == p.Identifier || played[other.Identifier] {
					continue
				}
				unplayed = append(unplayed, other.Identifier)
			}
			result[p.Identifier] = unplayed
		}
	}
	return result, nil
}

// ColorCount holds how many times a player has played each color.
type ColorCount struct {
	White, Black int
}

// ColorCounts returns each player's white/black game counts through
// round `until`. Walkovers still occupy a color slot in this raw
// tally; the Swiss assigner in swiss.go takes both its color vetoes
// and its color-balance counts from ColorHistory instead, which
// excludes walkovers (spec §4.1).
func (t *Tournament) ColorCounts(until int) (map[PlayerID]ColorCount, error) {
	index, err := t.resolveUntil(until)
	if err != nil {
		return nil, err
	}
	counts := make(map[PlayerID]ColorCount, len(t.players))
	for _, p := range t.players {
		counts[p.Identifier] = ColorCount{}
	}
	for _, r := range t.rounds[:index] {
		for _, m := range r.Matchups {
			w, b := m.PlayerIDs()
			cw := counts[w]
			cw.White++
			counts[w] = cw
			cb := counts[b]
			cb.Black++
			counts[b] = cb
		}
	}
	return counts, nil
}

// ColorHistory returns each player's sequence of +1 (white) / -1
// (black) entries through round `until`, omitting walkover games
// entirely (spec §3, §4.1).
func (t *Tournament) ColorHistory(until int) (map[PlayerID][]int, error) {
	index, err := t.resolveUntil(until)
	if err != nil {
		return nil, err
	}
	history := make(map[PlayerID][]int, len(t.players))
	for _, p := range t.players {
		history[p.Identifier] = nil
	}
	for _, r := range t.rounds[:index] {
		for _, m := range r.Matchups {
			w, b := m.Side(White), m.Side(Black)
			if w.Result == Walkover || b.Result == Walkover {
				continue
			}
			history[w.Player] = append(history[w.Player], 1)
			history[b.Player] = append(history[b.Player], -1)
		}
	}
	return history, nil
}

// Standings sums each player's score across rounds 1..until. Players
// with zero score still appear. The result is an unordered map; use
// StandingsOrder for the descending order, or the Report type for a
// display-ready rendering with tie-breaks.
func (t *Tournament) Standings(until int) (map[PlayerID]HalfPoints, error) {
	index, err := t.resolveUntil(until)
	if err != nil {
		return nil, err
	}
	totals := make(map[PlayerID]HalfPoints, len(t.players))
	for _, p := range t.players {
		totals[p.Identifier] = 0
	}
	for _, r := range t.rounds[:index] {
		for player, score := range r.Scores() {
			totals[player] += score
		}
	}
	return totals, nil
}

// StandingsOrder returns player identifiers sorted descending by
// standings score (secondary: initial rank ascending) — spec §4.4.2
// step 1's `standing_order`.
func (t *Tournament) StandingsOrder(until int) ([]PlayerID, error) {
	totals, err := t.Standings(until)
	if err != nil {
		return nil, err
	}
	ids := make([]PlayerID, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	t.sortByScoreThenRank(ids, totals)
	return ids, nil
}

// PlayerDefeatedDrawn returns, for each player, the ids of opponents
// they defeated and drew with (in that order), plus a per-opponent
// score map — the inputs Sonneborn-Berger and Koya need (spec §4.2,
// §4.5.2). Only rounds through the last complete round contribute.
func (t *Tournament) PlayerDefeatedDrawn() (defeatedDrawn map[PlayerID][2][]PlayerID, scoresByOpponent map[PlayerID]map[PlayerID]HalfPoints) {
	lastComplete, _ := t.LastCompleteRoundIndex()
	defeatedDrawn = make(map[PlayerID][2][]PlayerID, len(t.players))
	scoresByOpponent = make(map[PlayerID]map[PlayerID]HalfPoints, len(t.players))
	for _, p := range t.players {
		defeatedDrawn[p.Identifier] = [2][]PlayerID{}
		scoresByOpponent[p.Identifier] = map[PlayerID]HalfPoints{}
	}
	for _, r := range t.rounds[:lastComplete] {
		for _, m := range r.Matchups {
			w, b := m.Side(White), m.Side(Black)
			scoreW, scoreB := scoreHalfPoints(w.Result), scoreHalfPoints(b.Result)
			scoresByOpponent[w.Player][b.Player] = scoreW
			scoresByOpponent[b.Player][w.Player] = scoreB
			recordOutcome(defeatedDrawn, w.Player, b.Player, scoreW)
			recordOutcome(defeatedDrawn, b.Player, w.Player, scoreB)
		}
	}
	return defeatedDrawn, scoresByOpponent
}

func recordOutcome(dd map[PlayerID][2][]PlayerID, player, opponent PlayerID, score HalfPoints) {
	entry := dd[player]
	switch score {
	case 2: // win
		entry[0] = append(entry[0], opponent)
	case 1: // draw
		entry[1] = append(entry[1], opponent)
	}
	dd[player] = entry
}
