package swissforge

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// TieBreakColumn is one named tie-break value in a standings row, in
// the order the methods were configured (spec §6.3). Display is
// pre-formatted since calculators differ in their natural precision
// (HalfPoints vs. QuarterPoints for Sonneborn-Berger).
type TieBreakColumn struct {
	Method  string
	Display string
}

// StandingsRow is one player's entry in a Report, in display order.
type StandingsRow struct {
	Identifier  PlayerID
	DisplayName string
	Score       HalfPoints
	TieBreaks   []TieBreakColumn
}

// Report assembles the standings output described in spec §6.3:
// identifier, display name, score, and configured tie-break columns,
// sorted descending by score.
type Report struct {
	Rows []StandingsRow
}

// BuildReport computes a Report for t using whichever tie-break
// methods were configured on construction (spec §4.7, §6.3).
func BuildReport(t *Tournament) (Report, error) {
	totals, err := t.Standings(UntilLatestComplete)
	if err != nil {
		return Report{}, err
	}
	ids, err := t.StandingsOrder(UntilLatestComplete)
	if err != nil {
		return Report{}, err
	}

	columns, err := t.tieBreakColumns()
	if err != nil {
		return Report{}, err
	}

	rows := make([]StandingsRow, 0, len(ids))
	for _, id := range ids {
		player, _ := t.PlayerByID(id)
		row := StandingsRow{
			Identifier:  id,
			DisplayName: player.FullName(),
			Score:       totals[id],
		}
		for _, col := range columns {
			row.TieBreaks = append(row.TieBreaks, TieBreakColumn{Method: col.name, Display: col.values[id]})
		}
		rows = append(rows, row)
	}
	return Report{Rows: rows}, nil
}

type tieBreakColumnSource struct {
	name   string
	values map[PlayerID]string
}

func formatHalfPoints(values map[PlayerID]HalfPoints) map[PlayerID]string {
	out := make(map[PlayerID]string, len(values))
	for id, v := range values {
		out[id] = v.String()
	}
	return out
}

func formatQuarterPoints(values map[PlayerID]QuarterPoints) map[PlayerID]string {
	out := make(map[PlayerID]string, len(values))
	for id, v := range values {
		out[id] = v.String()
	}
	return out
}

// tieBreakColumns computes the configured tie-break method columns in
// configuration order, matching whichever round system is active.
func (t *Tournament) tieBreakColumns() ([]tieBreakColumnSource, error) {
	var columns []tieBreakColumnSource
	switch t.roundSystem {
	case RoundSystemBerger:
		for _, method := range t.tieBreakRoundRobin {
			switch method {
			case TieBreakSonnebornBerger:
				values, err := t.SonnebornBerger()
				if err != nil {
					return nil, err
				}
				columns = append(columns, tieBreakColumnSource{name: method.String(), values: formatQuarterPoints(values)})
			case TieBreakKoya:
				values, err := t.Koya()
				if err != nil {
					return nil, err
				}
				columns = append(columns, tieBreakColumnSource{name: method.String(), values: formatHalfPoints(values)})
			}
		}
	default:
		for _, method := range t.tieBreakSwiss {
			switch method {
			case TieBreakModifiedMedian:
				values, err := t.ModifiedMedian()
				if err != nil {
					return nil, err
				}
				columns = append(columns, tieBreakColumnSource{name: method.String(), values: formatHalfPoints(values)})
			case TieBreakSolkoff:
				columns = append(columns, tieBreakColumnSource{name: method.String(), values: formatHalfPoints(t.Solkoff())})
			}
		}
	}
	return columns, nil
}

// RenderTable writes the report as a formatted table to w, with
// column order `#, Player, Score` followed by tie-break methods in
// configured order (spec §6.3).
func (rep Report) RenderTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	header := []string{"#", "Player", "Score"}
	if len(rep.Rows) > 0 {
		for _, col := range rep.Rows[0].TieBreaks {
			header = append(header, col.Method)
		}
	}
	table.SetHeader(header)

	for i, row := range rep.Rows {
		cells := []string{fmt.Sprintf("%d", i+1), row.DisplayName, row.Score.String()}
		for _, col := range row.TieBreaks {
			cells = append(cells, col.Display)
		}
		table.Append(cells)
	}
	table.Render()
}
