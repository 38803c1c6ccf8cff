package swissforge

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// csvHeader is the exact header row required by spec §6.2.
var csvHeader = []string{"white", "score_white", "black", "score_black"}

// parseScoreLiteral maps the literal score tokens from spec §6.2 to a
// MatchResult, failing with ErrUnreadableScore for anything else.
func parseScoreLiteral(tok string) (MatchResult, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "1":
		return Win, nil
	case "0":
		return Loss, nil
	case "0.5", "0,5":
		return Draw, nil
	case "wo", "walkover":
		return Walkover, nil
	case "", "unset":
		return Unset, nil
	default:
		return Unset, fmt.Errorf("%w: %q", ErrUnreadableScore, tok)
	}
}

// formatScoreLiteral renders a MatchResult back to its canonical CSV
// token, the inverse of parseScoreLiteral.
func formatScoreLiteral(r MatchResult) string {
	switch r {
	case Win:
		return "1"
	case Loss:
		return "0"
	case Draw:
		return "0.5"
	case Walkover:
		return "wo"
	default:
		return ""
	}
}

// resolvePlayer matches a CSV player column (an integer identifier or
// the exact case-insensitive full name) against the roster.
func resolvePlayer(players []Player, token string) (PlayerID, error) {
	token = strings.TrimSpace(token)
	if id, err := strconv.Atoi(token); err == nil {
		for _, p := range players {
			if p.Identifier == id {
				return id, nil
			}
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, token)
	}
	for _, p := range players {
		if strings.EqualFold(p.FullName(), token) {
			return p.Identifier, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, token)
}

// ReadRoundCSV parses one round's matchups from the exchange format of
// spec §6.2. index becomes the returned Round's Index.
func ReadRoundCSV(r io.Reader, index int, players []Player) (Round, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Round{}, fmt.Errorf("swissforge: reading round csv: %w", err)
	}
	if len(records) == 0 {
		return Round{Index: index}, nil
	}

	header := records[0]
	if len(header) < 4 || !sameHeader(header[:4], csvHeader) {
		return Round{}, fmt.Errorf("swissforge: round csv header must be %v, got %v", csvHeader, header)
	}

	matchups := make([]Matchup, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) < 4 {
			return Round{}, fmt.Errorf("swissforge: round csv row has fewer than 4 columns: %v", row)
		}
		white, err := resolvePlayer(players, row[0])
		if err != nil {
			return Round{}, err
		}
		whiteResult, err := parseScoreLiteral(row[1])
		if err != nil {
			return Round{}, err
		}
		black, err := resolvePlayer(players, row[2])
		if err != nil {
			return Round{}, err
		}
		blackResult, err := parseScoreLiteral(row[3])
		if err != nil {
			return Round{}, err
		}
		m := NewMatchup(white, black)
		if whiteResult != Unset || blackResult != Unset {
			if err := m.AddResult(whiteResult, blackResult); err != nil {
				return Round{}, err
			}
		}
		matchups = append(matchups, m)
	}
	return Round{Index: index, Matchups: matchups}, nil
}

func sameHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}

// WriteRoundCSV renders round in the exchange format of spec §6.2,
// using numeric player identifiers.
func WriteRoundCSV(w io.Writer, round Round) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, m := range round.Matchups {
		white, black := m.Side(White), m.Side(Black)
		row := []string{
			strconv.Itoa(white.Player),
			formatScoreLiteral(white.Result),
			strconv.Itoa(black.Player),
			formatScoreLiteral(black.Result),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

var roundFileRE = regexp.MustCompile(`^round(\d+)\.csv$`)

// RoundFile is a discovered round CSV: its full path and 1-based
// round index parsed from the filename.
type RoundFile struct {
	Path  string
	Index int
}

// RoundCSVFiles filters names to round<N>.csv basenames and returns
// them joined with dir, sorted ascending by numeric suffix (spec §6.2:
// "ordering on disk is by the numeric suffix").
func RoundCSVFiles(dir string, names []string) []RoundFile {
	var out []RoundFile
	for _, name := range names {
		m := roundFileRE.FindStringSubmatch(filepath.Base(name))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, RoundFile{Path: filepath.Join(dir, name), Index: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
