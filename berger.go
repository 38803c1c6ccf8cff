package swissforge

import "fmt"

// bergerRound produces rank-pair tuples (not player ids) for round r
// (1-based) given the current rank rotation, following the classic
// Berger tables construction:
// https://en.wikipedia.org/wiki/Round-robin_tournament#Berger_tables
//
// Odd rounds pair ranks[i] with ranks[n-1-i] for i in [0, n/2). Even
// rounds pair the detached-and-rotated top (ranks[n-1], ranks[0])
// first, then continue ranks[i] with ranks[n-1-i] for i in [1, n/2).
// ranks[n-1] is rank n, the one rank bergerRotate never moves while
// everyone else cycles; this ordering, together with the odd-round
// top-board flip in bergerSchedule, alternates its color from round
// to round (spec §4.3).
func bergerRound(ranks []int, r int) [][2]int {
	n := len(ranks)
	half := n / 2
	pairs := make([][2]int, 0, half)
	if r%2 == 1 {
		for i := 0; i < half; i++ {
			pairs = append(pairs, [2]int{ranks[i], ranks[n-1-i]})
		}
	} else {
		pairs = append(pairs, [2]int{ranks[n-1], ranks[0]})
		for i := 1; i < half; i++ {
			pairs = append(pairs, [2]int{ranks[i], ranks[n-1-i]})
		}
	}
	return pairs
}

// bergerRotate advances the rank rotation for the next round: detach
// the last element, shift the first half rightward by the second
// half, then append the detached element (spec §4.3).
func bergerRotate(ranks []int) []int {
	n := len(ranks)
	half := n / 2
	m := n - 1
	last := ranks[n-1]

	p := append([]int(nil), ranks[:m]...) // length m
	firstHalf := append([]int(nil), p[:half]...)
	p = append(p, firstHalf...) // length m+half

	replacement := append([]int(nil), p[half:m]...)
	copy(p[0:half-1], replacement)

	kept := append([]int(nil), p[:half-1]...)
	kept = append(kept, p[m:]...)

	return append(kept, last)
}

// bergerSchedule produces all n-1 rounds of a full single round-robin
// for n (even) ranks numbered 1..n, with colors assigned per the
// standard Berger convention: the first-listed player in a pairing is
// White on odd rounds and Black on even rounds, except the top board
// of an odd round flips (anchor swap, spec §4.3) so color totals stay
// balanced across the schedule.
func bergerSchedule(n int) [][][2]int {
	ranks := make([]int, n)
	for i := range ranks {
		ranks[i] = i + 1
	}

	rounds := make([][][2]int, 0, n-1)
	for r := 1; r <= n-1; r++ {
		pairs := bergerRound(ranks, r)
		colored := make([][2]int, len(pairs))
		for i, pair := range pairs {
			a, b := pair[0], pair[1]
			whiteIsA := r%2 == 1
			if i == 0 && r%2 == 1 {
				whiteIsA = !whiteIsA
			}
			if whiteIsA {
				colored[i] = [2]int{a, b}
			} else {
				colored[i] = [2]int{b, a}
			}
		}
		rounds = append(rounds, colored)
		ranks = bergerRotate(ranks)
	}
	return rounds
}

// GenerateBergerSchedule builds the full n-1 round round-robin
// schedule for this tournament's roster, ordered by initial ranking,
// and caches it for subsequent GenerateNextRound calls.
func (t *Tournament) GenerateBergerSchedule() ([]Round, error) {
	if len(t.players)%2 != 0 {
		return nil, ErrOddRosterUnsupported
	}
	if t.bergerSchedule != nil {
		return append([]Round(nil), t.bergerSchedule...), nil
	}
	rankRounds := bergerSchedule(len(t.players))
	schedule := make([]Round, 0, len(rankRounds))
	for i, pairs := range rankRounds {
		matchups := make([]Matchup, 0, len(pairs))
		for _, pair := range pairs {
			white := t.players[pair[0]-1].Identifier
			black := t.players[pair[1]-1].Identifier
			matchups = append(matchups, NewMatchup(white, black))
		}
		schedule = append(schedule, Round{Index: i + 1, Matchups: matchups})
	}
	t.bergerSchedule = schedule
	return append([]Round(nil), schedule...), nil
}

// nextBergerRound returns the next not-yet-appended round of the
// cached Berger schedule, computing the schedule on first use.
func (t *Tournament) nextBergerRound() (Round, error) {
	schedule, err := t.GenerateBergerSchedule()
	if err != nil {
		return Round{}, err
	}
	next := len(t.rounds)
	if next >= len(schedule) {
		return Round{}, fmt.Errorf("swissforge: berger schedule exhausted after %d rounds", len(schedule))
	}
	return schedule[next], nil
}
