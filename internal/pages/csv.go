package pages

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"quantdec/internal/analysis"
	"quantdec/internal/series"
)

var ErrNoSeries = errors.New("page has no series to export")

// WriteCSV writes the page's series, one row per index.
func (v *View) WriteCSV(w io.Writer) error {
	if !v.HasData() {
		return ErrNoSeries
	}
	return v.csv(w)
}

func writeStrategyCSV(out io.Writer, res *series.Result) error {
	return writeColumns(out,
		[]string{"index", "price", "sma_short", "sma_long"},
		res.Price, res.Short.Values, res.Long.Values)
}

func writePerformanceCSV(out io.Writer, rep *analysis.Report) error {
	return writeColumns(out,
		[]string{"index", "return", "cumulative_return"},
		rep.Returns, rep.Cumulative)
}

// writeColumns writes an index column followed by cols. All columns must have
// the same length. Undefined values are written as empty cells.
func writeColumns(out io.Writer, header []string, cols ...[]float64) error {
	if len(header) != len(cols)+1 {
		return fmt.Errorf("csv: %d headers for %d columns", len(header), len(cols))
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	for _, c := range cols {
		if len(c) != n {
			return errors.New("csv: columns differ in length")
		}
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i := 0; i < n; i++ {
		row[0] = strconv.Itoa(i)
		for j, c := range cols {
			row[j+1] = fmtCell(c[i])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func fmtCell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
