package swissforge

import (
	"fmt"
	"math/rand"
)

// computeColorVetoes derives, from each player's color history, the
// set of players who must not be given White again and the set who
// must not be given Black again (spec §4.4.1 items 2-3): a player
// lands in a veto set when their last two actual (non-walkover)
// colors were identical, since a third would be three in a row.
func computeColorVetoes(history map[PlayerID][]int) (vetoWhite, vetoBlack map[PlayerID]bool) {
	vetoWhite = map[PlayerID]bool{}
	vetoBlack = map[PlayerID]bool{}
	for id, h := range history {
		n := len(h)
		if n < 2 {
			continue
		}
		if h[n-1] == 1 && h[n-2] == 1 {
			vetoWhite[id] = true
		}
		if h[n-1] == -1 && h[n-2] == -1 {
			vetoBlack[id] = true
		}
	}
	return vetoWhite, vetoBlack
}

// lastPlayedColors returns each player's most recent actual color
// (+1 white, -1 black), or 0 if they have none yet.
func lastPlayedColors(history map[PlayerID][]int) map[PlayerID]int {
	last := make(map[PlayerID]int, len(history))
	for id, h := range history {
		if len(h) == 0 {
			last[id] = 0
			continue
		}
		last[id] = h[len(h)-1]
	}
	return last
}

// swissAttempt holds one brute-force attempt's working state: the
// snapshot of history queries it pairs against, and the matchups
// assigned so far (used both as the result and as the undo log for
// backtracking).
type swissAttempt struct {
	opponents map[PlayerID][]PlayerID
	counts    map[PlayerID]ColorCount
	lastColor map[PlayerID]int
	vetoWhite map[PlayerID]bool
	vetoBlack map[PlayerID]bool
	rank      map[PlayerID]int
	top2      map[PlayerID]bool
	swappedIn map[PlayerID]bool

	assignments []Matchup
}

func (a *swissAttempt) playedBefore(x, y PlayerID) bool {
	for _, o := range a.opponents[x] {
		if o == y {
			return true
		}
	}
	return false
}

// sameVetoSet reports whether x and y both require the same forced
// color, meaning no legal color assignment exists for pairing them
// (spec §4.4.1 item 3).
func (a *swissAttempt) sameVetoSet(x, y PlayerID) bool {
	return (a.vetoWhite[x] && a.vetoWhite[y]) || (a.vetoBlack[x] && a.vetoBlack[y])
}

func (a *swissAttempt) forbidden(x, y PlayerID) bool {
	return a.playedBefore(x, y) || a.sameVetoSet(x, y)
}

// decideColors applies the cascade from spec §4.4.1 item 4: a binding
// veto first, then minimal |white games - black games|, then
// alternation from each player's last color, then White to the
// player with the worse (higher) initial rank.
func (a *swissAttempt) decideColors(higher, lower PlayerID) (white, black PlayerID) {
	switch {
	case a.vetoWhite[higher]:
		return lower, higher
	case a.vetoWhite[lower]:
		return higher, lower
	case a.vetoBlack[higher]:
		return higher, lower
	case a.vetoBlack[lower]:
		return lower, higher
	}

	ch, cl := a.counts[higher], a.counts[lower]
	whiteDiff := ch.White - cl.White
	blackDiff := ch.Black - cl.Black
	switch {
	case whiteDiff > 0:
		return lower, higher
	case whiteDiff < 0:
		return higher, lower
	case blackDiff > 0:
		return lower, higher
	case blackDiff < 0:
		return higher, lower
	}

	hLast, lLast := a.lastColor[higher], a.lastColor[lower]
	higherWantsWhite, higherWantsBlack := hLast == -1, hLast == 1
	lowerWantsWhite, lowerWantsBlack := lLast == -1, lLast == 1
	switch {
	case higherWantsWhite && lowerWantsBlack:
		return higher, lower
	case higherWantsBlack && lowerWantsWhite:
		return lower, higher
	}

	if a.rank[higher] > a.rank[lower] {
		return higher, lower
	}
	return lower, higher
}

// validateColorChoice is a defensive invariant check: decideColors and
// the forbidden()/sameVetoSet() gating above should make this
// unreachable, but a violation here surfaces as a distinguishable
// error rather than a silently-invalid round (spec §7).
func (a *swissAttempt) validateColorChoice(white, black PlayerID) error {
	if a.vetoWhite[white] {
		return &ColorStreakViolationError{Player: white}
	}
	if a.vetoBlack[black] {
		return &ColorStreakViolationError{Player: black}
	}
	return nil
}

func removeAt(pool []PlayerID, i int) []PlayerID {
	out := make([]PlayerID, 0, len(pool)-1)
	out = append(out, pool[:i]...)
	out = append(out, pool[i+1:]...)
	return out
}

// pairFrom is the depth-first matcher of spec §4.4.2: pair the pool's
// head against the first non-forbidden candidate found, in order;
// if none exists, fall back to back-swap recovery (§4.4.3).
func (a *swissAttempt) pairFrom(pool []PlayerID) ([]Matchup, error) {
	if len(pool) == 0 {
		return append([]Matchup(nil), a.assignments...), nil
	}

	higher := pool[0]
	rest := pool[1:]
	for i, cand := range rest {
		if a.forbidden(higher, cand) {
			continue
		}
		white, black := a.decideColors(higher, cand)
		if err := a.validateColorChoice(white, black); err != nil {
			return nil, err
		}
		a.assignments = append(a.assignments, NewMatchup(white, black))
		result, err := a.pairFrom(removeAt(rest, i))
		if err == nil {
			return result, nil
		}
		a.assignments = a.assignments[:len(a.assignments)-1]
		if _, exhausted := errOrExhausted(err); !exhausted {
			return nil, err // a concrete, non-retryable violation
		}
		break // only the first non-forbidden candidate is ever tried
	}
	return a.trySwapRecovery(higher, rest)
}

// errOrExhausted reports whether err is the generic exhaustion
// sentinel itself, as opposed to a concrete invariant violation
// that should abort the whole attempt immediately.
func errOrExhausted(err error) (error, bool) {
	if err == ErrPairingExhausted {
		return err, true
	}
	return err, false
}

// trySwapRecovery implements spec §4.4.3: walk backwards through
// already-assigned matchups, and for each, try swapping one side out
// in favor of `higher` (the player with no legal partner remaining).
// The freed player re-enters the pool as the next candidate to place.
func (a *swissAttempt) trySwapRecovery(higher PlayerID, remainingPool []PlayerID) ([]Matchup, error) {
	for idx := len(a.assignments) - 1; idx >= 0; idx-- {
		original := a.assignments[idx]
		for _, outColor := range [2]Color{White, Black} {
			keepColor := outColor.Opposite()
			keep := original.Side(keepColor).Player
			out := original.Side(outColor).Player

			if a.top2[keep] || a.top2[out] {
				continue // none of the top-2 standing players may be disturbed
			}
			if a.swappedIn[out] {
				continue // a player placed by a swap is not swapped back out
			}
			if a.forbidden(keep, higher) {
				continue // A must not have faced p, and colors must be resolvable
			}
			if a.playedBefore(out, higher) {
				continue // p's replacement must not have faced the original un-paired player
			}

			white, black := a.decideColors(keep, higher)
			if err := a.validateColorChoice(white, black); err != nil {
				continue
			}

			a.assignments[idx] = NewMatchup(white, black)
			if a.swappedIn == nil {
				a.swappedIn = map[PlayerID]bool{}
			}
			a.swappedIn[higher] = true
			newPool := append([]PlayerID{out}, remainingPool...)
			if result, err := a.pairFrom(newPool); err == nil {
				return result, nil
			}
			delete(a.swappedIn, higher)
			a.assignments[idx] = original
		}
	}
	return nil, ErrPairingExhausted
}

// attemptSwissRound runs one full pairing attempt over `order`
// (already sorted/shuffled per the caller) against the tournament's
// current history.
func (t *Tournament) attemptSwissRound(order []PlayerID) (Round, error) {
	opponents, err := t.Opponents(UntilLatest, false)
	if err != nil {
		return Round{}, err
	}
	history, err := t.ColorHistory(UntilLatest)
	if err != nil {
		return Round{}, err
	}
	vetoWhite, vetoBlack := computeColorVetoes(history)

	// Color balance counts only colors actually played, so walkovers
	// (left out of ColorHistory) do not count here either.
	counts := make(map[PlayerID]ColorCount, len(history))
	for id, h := range history {
		var c ColorCount
		for _, color := range h {
			if color == 1 {
				c.White++
			} else {
				c.Black++
			}
		}
		counts[id] = c
	}

	top2 := map[PlayerID]bool{}
	for i := 0; i < len(order) && i < 2; i++ {
		top2[order[i]] = true
	}

	attempt := &swissAttempt{
		opponents: opponents,
		counts:    counts,
		lastColor: lastPlayedColors(history),
		vetoWhite: vetoWhite,
		vetoBlack: vetoBlack,
		rank:      t.rankIndex(),
		top2:      top2,
	}

	matchups, err := attempt.pairFrom(order)
	if err != nil {
		return Round{}, err
	}
	return Round{Matchups: matchups}, nil
}

// shuffleExceptPrefix randomizes order[prefixLen:] in place, leaving
// the leading prefixLen entries untouched (spec §4.4.4: the top-2
// standing players must stay at the head across restarts).
func shuffleExceptPrefix(order []PlayerID, prefixLen int, rng *rand.Rand) {
	if prefixLen > len(order) {
		prefixLen = len(order)
	}
	tail := order[prefixLen:]
	rng.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
}

// initialSwissRound implements spec §4.4.5: split the roster (already
// in initial-rank order) into top and bottom halves and pair
// top[i] vs bottom[i], with White on the bottom half per house rule.
func (t *Tournament) initialSwissRound() Round {
	n := len(t.players)
	half := n / 2
	top, bottom := t.players[:half], t.players[half:]
	matchups := make([]Matchup, half)
	for i := 0; i < half; i++ {
		matchups[i] = NewMatchup(bottom[i].Identifier, top[i].Identifier)
	}
	return Round{Index: 1, Matchups: matchups}
}

// nextSwissRound dispatches to the initial pairing rule for round 1,
// or wraps the depth-first matcher in the bounded randomized-restart
// loop of spec §4.4.4 for every later round.
func (t *Tournament) nextSwissRound() (Round, error) {
	if len(t.players)%2 != 0 {
		return Round{}, ErrOddRosterUnsupported
	}
	if len(t.rounds) == 0 {
		return t.initialSwissRound(), nil
	}
	if err := t.ValidateNoIncompleteRounds(); err != nil {
		return Round{}, err
	}

	baseOrder, err := t.StandingsOrder(UntilLatest)
	if err != nil {
		return Round{}, err
	}

	limit := t.bruteForceLimit
	if limit < 1 {
		limit = defaultBruteForceLimit
	}
	top2n := 2
	if top2n > len(baseOrder) {
		top2n = len(baseOrder)
	}

	var lastErr error
	for attempt := 1; attempt <= limit; attempt++ {
		order := append([]PlayerID(nil), baseOrder...)
		if attempt > 1 {
			shuffleExceptPrefix(order, top2n, t.rng)
		}
		round, err := t.attemptSwissRound(order)
		if err == nil {
			round.Index = len(t.rounds) + 1
			return round, nil
		}
		lastErr = err
	}
	return Round{}, fmt.Errorf("%w (after %d attempts): %v", ErrPairingExhausted, limit, lastErr)
}
