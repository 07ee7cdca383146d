package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/freqgen/internal/model"
)

// RenderRuns writes the run-ledger listing, newest first.
func RenderRuns(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No runs recorded yet."))
		return err
	}

	headers := []string{"When", "Lang", "Units", "Count", "Syntax", "Valid", "Warn", "Missing", "Bytes"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		valid := "yes"
		if !run.Valid {
			valid = "no"
		}
		rows = append(rows, []string{
			run.RanAt.Local().Format("2006-01-02 15:04"),
			run.Lang,
			run.Granularity,
			strconv.Itoa(run.Count),
			run.Syntax,
			valid,
			strconv.Itoa(run.Warnings),
			strconv.Itoa(run.Missing),
			strconv.Itoa(run.OutputBytes),
		})
	}

	rightAlign := map[int]bool{3: true, 6: true, 7: true, 8: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
