// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"algorithm", "problem", "runs", "feasible_runs",
	"min", "mean", "median", "max", "std_dev",
	"best_run", "elapsed_ms",
}

// WriteCSV writes one summary row per record after a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Algorithm,
			r.Problem,
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.FeasibleRuns()),

			ftoa(r.Stats.Min),
			ftoa(r.Stats.Mean),
			ftoa(r.Stats.Median),
			ftoa(r.Stats.Max),
			ftoa(r.Stats.StdDev),

			strconv.Itoa(r.BestRun),
			ftoa(float64(r.Elapsed.Microseconds()) / 1000),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
