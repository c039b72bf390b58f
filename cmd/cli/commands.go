package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"quantdec/internal/pages"
	"quantdec/internal/report"

	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the dashboard pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range a.router.Pages() {
				fmt.Fprintf(a.out, "%-24s %s\n", p.Slug, p.Label)
			}
			return nil
		},
	}
}

// controlFlags registers the numeric controls and overlays the ones the user
// set onto the configured defaults.
type controlFlags struct {
	shortWindow    int
	longWindow     int
	initialBalance float64
	tradeSize      float64
}

func (f *controlFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.shortWindow, "short-window", 0, "short moving-average window (5-50)")
	fs.IntVar(&f.longWindow, "long-window", 0, "long moving-average window (50-200)")
	fs.Float64Var(&f.initialBalance, "initial-balance", 0, "starting balance (1,000-1,000,000)")
	fs.Float64Var(&f.tradeSize, "trade-size", 0, "PnL scale per trade (100-10,000)")
}

func (f *controlFlags) params(cmd *cobra.Command, base pages.Params) pages.Params {
	fs := cmd.Flags()
	if fs.Changed("short-window") {
		base.ShortWindow = f.shortWindow
	}
	if fs.Changed("long-window") {
		base.LongWindow = f.longWindow
	}
	if fs.Changed("initial-balance") {
		base.InitialBalance = f.initialBalance
	}
	if fs.Changed("trade-size") {
		base.TradeSize = f.tradeSize
	}
	return base
}

func newRenderCmd(a *app) *cobra.Command {
	var flags controlFlags
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.router.Render(args[0], flags.params(cmd, a.router.DefaultParams()))
			if err != nil {
				return err
			}
			return report.New(a.color(), report.DefaultWidth).Render(a.out, v)
		},
	}
	flags.register(cmd)
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		flags controlFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "export <page>",
		Short: "Write a page's series as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.router.Render(args[0], flags.params(cmd, a.router.DefaultParams()))
			if err != nil {
				return err
			}
			if !v.HasData() {
				return fmt.Errorf("%s: %w", v.Page.Slug, pages.ErrNoSeries)
			}
			if out == "" || out == "-" {
				return v.WriteCSV(a.out)
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := v.WriteCSV(f); err != nil {
				return errors.Join(err, f.Close())
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default stdout)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Nothing to load for version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quantdec %s (%s) %s %s/%s\n",
				Version, GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
