// Package exportcsv writes an extract.Table as CSV, the minimal consumer
// exporter.py's dataframe ultimately feeds (its own to_csv call, stripped
// of the prettify/styling path which is out of scope here).
package exportcsv

import (
	"encoding/csv"
	"io"

	"github.com/j3soon/nurse-scheduling-go/internal/extract"
)

// Write serializes t to w as CSV, one record per table row.
func Write(w io.Writer, t extract.Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
