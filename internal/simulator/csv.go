package simulator

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteLedgerCSV writes one header row and one row per trade. The starting
// balance is emitted as trade 0 so the balance column matches the chart.
func WriteLedgerCSV(out io.Writer, res *Result) error {
	w := csv.NewWriter(out)

	header := []string{
		"trade",
		"draw",
		"pnl",
		"cum_pnl",
		"balance_before",
		"balance",
		"outcome",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	if res == nil {
		w.Flush()
		return w.Error()
	}

	start := []string{
		"0", "", "", fmtFloat(0), "", fmtFloat(res.InitialBalance), "",
	}
	if err := w.Write(start); err != nil {
		return err
	}

	for _, r := range res.Ledger {
		row := []string{
			strconv.Itoa(r.Trade),
			fmtFloat(r.Draw),
			fmtFloat(r.PnL),
			fmtFloat(r.CumPnL),
			fmtFloat(r.BalanceBefore),
			fmtFloat(r.Balance),
			string(r.Outcome),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
