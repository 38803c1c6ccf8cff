package swissforge

import "fmt"

// Side is one participant of a Matchup: a player identifier and that
// player's outcome in the game.
type Side struct {
	Player PlayerID
	Result MatchResult
}

// PlayerID is a player Identifier used as a handle inside the engine.
type PlayerID = int

// Matchup pairs exactly two participants by Color. AddResult only
// accepts a pair of results from the legal set in spec §4.1;
// SetSideResult revalidates once the other side is set, so a pair
// with one side still Unset can exist in between.
type Matchup struct {
	sides [2]Side
}

// NewMatchup builds a Matchup between white and black, both starting
// Unset.
func NewMatchup(white, black PlayerID) Matchup {
	return Matchup{sides: [2]Side{
		White: {Player: white, Result: Unset},
		Black: {Player: black, Result: Unset},
	}}
}

// Side returns the participant playing the given color.
func (m Matchup) Side(c Color) Side {
	return m.sides[c]
}

// Players returns the white and black player identifiers.
func (m Matchup) Players() (white, black PlayerID) {
	return m.sides[White].Player, m.sides[Black].Player
}

// PlayerIDs returns both participants as an unordered pair, useful for
// duplicate-pairing checks.
func (m Matchup) PlayerIDs() (a, b PlayerID) {
	return m.sides[White].Player, m.sides[Black].Player
}

// ColorOf reports which color the given player holds in this matchup,
// and whether they are a participant at all.
func (m Matchup) ColorOf(player PlayerID) (Color, bool) {
	if m.sides[White].Player == player {
		return White, true
	}
	if m.sides[Black].Player == player {
		return Black, true
	}
	return White, false
}

// AddResult sets both sides' outcomes, failing with ErrInvalidResult
// when the unordered pair is outside the legal set.
func (m *Matchup) AddResult(whiteResult, blackResult MatchResult) error {
	if !resultPairLegal(whiteResult, blackResult) {
		return fmt.Errorf("%w: {%s, %s}", ErrInvalidResult, whiteResult, blackResult)
	}
	m.sides[White].Result = whiteResult
	m.sides[Black].Result = blackResult
	return nil
}

// SetSideResult updates the result for whichever side belongs to
// player. If the other side is already set, the pair is revalidated
// against the legal set; if the other side is still Unset, this is a
// transitional single-side update (the pair is revalidated once both
// sides are known) and is always accepted. Returns ErrUnknownPlayer if
// player is not in this matchup.
func (m *Matchup) SetSideResult(player PlayerID, result MatchResult) error {
	color, ok := m.ColorOf(player)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}
	other := m.sides[color.Opposite()].Result
	if other == Unset {
		m.sides[color].Result = result
		return nil
	}
	var white, black MatchResult
	if color == White {
		white, black = result, other
	} else {
		white, black = other, result
	}
	if !resultPairLegal(white, black) {
		return fmt.Errorf("%w: {%s, %s}", ErrInvalidResult, white, black)
	}
	m.sides[color].Result = result
	return nil
}

// IsComplete reports whether neither side's result is Unset.
func (m Matchup) IsComplete() bool {
	return m.sides[White].Result != Unset && m.sides[Black].Result != Unset
}

// WinnerLoserColors returns which color won and which lost, and
// whether the matchup was a walkover. When there is no winner (draw,
// walkover-walkover, or unset) the first return is (White, White,
// false) with ok=false.
func (m Matchup) WinnerLoserColors() (winner, loser Color, isWalkover, ok bool) {
	w, b := m.sides[White].Result, m.sides[Black].Result
	isWalkover = (w == Win && b == Walkover) || (b == Win && w == Walkover)
	switch {
	case w == Win:
		return White, Black, isWalkover, true
	case b == Win:
		return Black, White, isWalkover, true
	default:
		return White, White, isWalkover, false
	}
}

func (m Matchup) String() string {
	w, b := m.sides[White], m.sides[Black]
	return fmt.Sprintf("%d (%s) - %d (%s)", w.Player, w.Result, b.Player, b.Result)
}
