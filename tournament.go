package swissforge

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// RoundSystem selects which generator produces the next round.
type RoundSystem int

const (
	RoundSystemSwiss RoundSystem = iota
	RoundSystemBerger
)

func (s RoundSystem) String() string {
	if s == RoundSystemBerger {
		return "berger"
	}
	return "swiss"
}

// TieBreakMethodSwiss is a Swiss-system tie-break calculator choice.
type TieBreakMethodSwiss int

const (
	TieBreakModifiedMedian TieBreakMethodSwiss = iota
	TieBreakSolkoff
)

func (m TieBreakMethodSwiss) String() string {
	if m == TieBreakSolkoff {
		return "solkoff"
	}
	return "modified_median"
}

// TieBreakMethodRoundRobin is a round-robin tie-break calculator choice.
type TieBreakMethodRoundRobin int

const (
	TieBreakSonnebornBerger TieBreakMethodRoundRobin = iota
	TieBreakKoya
)

func (m TieBreakMethodRoundRobin) String() string {
	if m == TieBreakKoya {
		return "koya"
	}
	return "sonneborn_berger"
}

// defaultBruteForceLimit is BRUTE_FORCE_LIMIT from spec §4.4.4.
const defaultBruteForceLimit = 10

// Tournament owns the roster and the append-only round history. It is
// the sole mutable aggregate in the engine; external callers must
// serialize writes against a single instance (spec §5).
type Tournament struct {
	Name string
	Year int

	players     []Player // order = initial ranking, highest first
	rounds      []Round
	roundSystem RoundSystem
	roundCount  int

	tieBreakSwiss      []TieBreakMethodSwiss
	tieBreakRoundRobin []TieBreakMethodRoundRobin

	rng             *rand.Rand
	bruteForceLimit int

	bergerSchedule []Round // lazily computed, Berger systems only
}

// Option configures optional Tournament behavior.
type Option func(*Tournament)

// WithRNG supplies a caller-seeded random source for the Swiss
// assigner's randomized restarts (spec §5), making runs reproducible.
func WithRNG(rng *rand.Rand) Option {
	return func(t *Tournament) { t.rng = rng }
}

// WithBruteForceLimit overrides BRUTE_FORCE_LIMIT (default 10, spec §9).
func WithBruteForceLimit(n int) Option {
	return func(t *Tournament) { t.bruteForceLimit = n }
}

// WithTieBreaksSwiss configures the Swiss tie-break methods to compute.
func WithTieBreaksSwiss(methods ...TieBreakMethodSwiss) Option {
	return func(t *Tournament) { t.tieBreakSwiss = methods }
}

// WithTieBreaksRoundRobin configures the round-robin tie-break methods
// to compute.
func WithTieBreaksRoundRobin(methods ...TieBreakMethodRoundRobin) Option {
	return func(t *Tournament) { t.tieBreakRoundRobin = methods }
}

// NewTournament constructs a Tournament from a roster already ordered
// by initial ranking (highest first). The roster must have an even
// player count (spec §4.4.6 — bye handling is a non-goal) and unique
// identifiers.
func NewTournament(name string, players []Player, system RoundSystem, roundCount int, opts ...Option) (*Tournament, error) {
	if len(players)%2 != 0 {
		return nil, ErrOddRosterUnsupported
	}
	seen := make(map[int]bool, len(players))
	for _, p := range players {
		if seen[p.Identifier] {
			return nil, fmt.Errorf("swissforge: duplicate player identifier %d", p.Identifier)
		}
		seen[p.Identifier] = true
	}

	t := &Tournament{
		Name:            name,
		players:         append([]Player(nil), players...),
		roundSystem:     system,
		roundCount:      roundCount,
		bruteForceLimit: defaultBruteForceLimit,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Players returns a copy of the roster in initial-ranking order.
func (t *Tournament) Players() []Player {
	return append([]Player(nil), t.players...)
}

// PlayerByID returns the player with the given identifier.
func (t *Tournament) PlayerByID(id PlayerID) (Player, bool) {
	for _, p := range t.players {
		if p.Identifier == id {
			return p, true
		}
	}
	return Player{}, false
}

// Rounds returns a copy of the round history.
func (t *Tournament) Rounds() []Round {
	return append([]Round(nil), t.rounds...)
}

// RoundSystem reports which generator this tournament uses.
func (t *Tournament) RoundSystem() RoundSystem { return t.roundSystem }

// RoundCount returns the configured target round count.
func (t *Tournament) RoundCount() int { return t.roundCount }

// rankIndex returns each player's initial-ranking position (0 =
// highest), used as the final tie-break everywhere rank order matters.
func (t *Tournament) rankIndex() map[PlayerID]int {
	idx := make(map[PlayerID]int, len(t.players))
	for i, p := range t.players {
		idx[p.Identifier] = i
	}
	return idx
}

// AppendRound validates and appends round to the tournament. It fails
// closed: on any validation error the tournament is left unchanged.
func (t *Tournament) AppendRound(r Round) error {
	wantIndex := len(t.rounds) + 1
	if r.Index != wantIndex {
		return &IndexMismatchError{Got: r.Index, Want: wantIndex}
	}
	if dup := t.findDuplicatePair(r); dup != nil {
		return dup
	}
	t.rounds = append(t.rounds, r)
	return nil
}

// findDuplicatePair reports the first unordered player pair in r that
// already appears in an earlier round, or nil if none does.
func (t *Tournament) findDuplicatePair(r Round) *DuplicatePairingError {
	seen := make(map[[2]PlayerID]bool)
	for _, round := range t.rounds {
		for _, m := range round.Matchups {
			a, b := m.PlayerIDs()
			seen[normalizedPair(a, b)] = true
		}
	}
	for _, m := range r.Matchups {
		a, b := m.PlayerIDs()
		key := normalizedPair(a, b)
		if seen[key] {
			return &DuplicatePairingError{A: key[0], B: key[1], Round: r.Index}
		}
		seen[key] = true
	}
	return nil
}

func normalizedPair(a, b PlayerID) [2]PlayerID {
	if a > b {
		a, b = b, a
	}
	return [2]PlayerID{a, b}
}

// RecordResult writes a result for player into whichever matchup of
// round roundIdx they participate in, revalidating the matchup's legal
// result set.
func (t *Tournament) RecordResult(roundIdx int, player PlayerID, result MatchResult) error {
	if roundIdx < 1 || roundIdx > len(t.rounds) {
		return fmt.Errorf("swissforge: round %d does not exist", roundIdx)
	}
	round := &t.rounds[roundIdx-1]
	for i := range round.Matchups {
		if _, ok := round.Matchups[i].ColorOf(player); ok {
			return round.Matchups[i].SetSideResult(player, result)
		}
	}
	return fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
}

// ValidateNoIncompleteRounds fails with IncompleteRoundError for the
// first round (in index order) that still contains an Unset result.
func (t *Tournament) ValidateNoIncompleteRounds() error {
	for _, r := range t.rounds {
		if !r.IsComplete() {
			return &IncompleteRoundError{Index: r.Index}
		}
	}
	return nil
}

// LastCompleteRoundIndex returns the greatest i such that rounds 1..i
// are all complete, or ok=false if round 1 is not complete (or no
// round exists). A complete round after an incomplete one does not
// count.
func (t *Tournament) LastCompleteRoundIndex() (int, bool) {
	best := 0
	found := false
	for _, r := range t.rounds {
		if !r.IsComplete() {
			break
		}
		best = r.Index
		found = true
	}
	return best, found
}

// GenerateNextRound dispatches to the Swiss or Berger generator,
// appends the resulting round, and revalidates tournament invariants.
func (t *Tournament) GenerateNextRound() (Round, error) {
	var round Round
	var err error
	switch t.roundSystem {
	case RoundSystemBerger:
		round, err = t.nextBergerRound()
	default:
		round, err = t.nextSwissRound()
	}
	if err != nil {
		return Round{}, err
	}
	if err := t.AppendRound(round); err != nil {
		return Round{}, err
	}
	return round, nil
}

// sortByScoreThenRank sorts ids descending by score (secondary:
// initial rank ascending), matching spec §4.4.2 step 1.
func (t *Tournament) sortByScoreThenRank(ids []PlayerID, scores map[PlayerID]HalfPoints) {
	rank := t.rankIndex()
	sort.SliceStable(ids, func(i, j int) bool {
		si, sj := scores[ids[i]], scores[ids[j]]
		if si != sj {
			return si > sj
		}
		return rank[ids[i]] < rank[ids[j]]
	})
}
