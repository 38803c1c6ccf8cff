package swissforge

// Round is an ordered, append-only list of matchups at position Index
// (1-based) within a tournament.
type Round struct {
	Index    int
	Matchups []Matchup
}

// IsComplete reports whether every matchup in the round has both sides
// set.
func (r Round) IsComplete() bool {
	for _, m := range r.Matchups {
		if !m.IsComplete() {
			return false
		}
	}
	return true
}

// MatchupFor returns the matchup containing player, if any.
func (r Round) MatchupFor(player PlayerID) (Matchup, bool) {
	for _, m := range r.Matchups {
		if _, ok := m.ColorOf(player); ok {
			return m, true
		}
	}
	return Matchup{}, false
}

// PlayerIDs returns the set of players participating in this round.
func (r Round) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(r.Matchups)*2)
	for _, m := range r.Matchups {
		a, b := m.PlayerIDs()
		ids = append(ids, a, b)
	}
	return ids
}

// Scores returns each participant's half-point score for this round
// alone. Callers must ensure the round is complete before trusting
// these values for anything but display.
func (r Round) Scores() map[PlayerID]HalfPoints {
	scores := make(map[PlayerID]HalfPoints, len(r.Matchups)*2)
	for _, m := range r.Matchups {
		w, b := m.Side(White), m.Side(Black)
		scores[w.Player] = scoreHalfPoints(w.Result)
		scores[b.Player] = scoreHalfPoints(b.Result)
	}
	return scores
}
