// Package extract snapshots a solved schedmodel.Context + solver.Solution
// into a dense, presentation-ready table: one row per person, shift types
// joined per day. Cell prettification/styling and history/count rows are
// out of scope.
package extract

import (
	"strconv"
	"strings"

	"github.com/j3soon/nurse-scheduling-go/internal/identifier"
	"github.com/j3soon/nurse-scheduling-go/internal/schedmodel"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/solver"
)

// Table is a 2D grid: two header rows (day-of-month/short-date, weekday
// abbreviation), one row per person, then a "Score" and "Status" row.
// Column 0 carries row labels; columns 1..NDays carry the schedule.
type Table struct {
	Rows [][]string
}

// Build extracts the table from a finished solve. score and status come
// from the orchestrator's solver.Solution; ctx/idx/doc are the same inputs
// the solve was built from.
func Build(doc *scenario.Document, idx *identifier.Index, ctx *schedmodel.Context, sol solver.Solution) Table {
	nRows := 2 + idx.NPeople + 2
	nCols := 1 + idx.NDays
	rows := make([][]string, nRows)
	for r := range rows {
		rows[r] = make([]string, nCols)
	}

	sameYear := idx.Dates[0].Year() == idx.Dates[idx.NDays-1].Year()
	sameMonth := sameYear && idx.Dates[0].Month() == idx.Dates[idx.NDays-1].Month()
	for d, date := range idx.Dates {
		col := 1 + d
		switch {
		case !sameYear:
			rows[0][col] = date.Format("2006/1/2")
		case !sameMonth:
			rows[0][col] = date.Format("1/2")
		default:
			rows[0][col] = strconv.Itoa(date.Day())
		}
		rows[1][col] = date.Format("Mon")
	}

	for p, person := range doc.People.Items {
		row := 2 + p
		rows[row][0] = person.ID
		for d := 0; d < idx.NDays; d++ {
			var assigned []string
			for s, shiftType := range doc.ShiftTypes.Items {
				v := ctx.Shift[schedmodel.DSP{D: d, S: s, P: p}]
				if sol.Values[v] == 1 {
					assigned = append(assigned, shiftType.ID)
				}
			}
			rows[row][1+d] = strings.Join(assigned, ", ")
		}
	}

	scoreRow := 2 + idx.NPeople
	statusRow := scoreRow + 1
	rows[scoreRow][0] = "Score"
	rows[scoreRow][1] = strconv.FormatInt(sol.Score, 10)
	rows[statusRow][0] = "Status"
	rows[statusRow][1] = sol.Status.String()

	return Table{Rows: rows}
}
