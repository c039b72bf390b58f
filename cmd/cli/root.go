package main

import (
	"fmt"
	"io"
	"strings"

	"quantdec/internal/config"
	"quantdec/internal/pages"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
)

const envPrefix = "QUANTDEC"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v      *viper.Viper
	out    io.Writer
	cfg    *config.Config
	router *pages.Router
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}

	root := &cobra.Command{
		Use:          "quantdec",
		Short:        "Synthetic trading dashboard in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().String("config", "", "YAML config file")
	root.PersistentFlags().Bool("no-color", false, "disable color output")
	_ = a.v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("no-color", root.PersistentFlags().Lookup("no-color"))
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newPagesCmd(a),
		newRenderCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.router = pages.NewRouter(cfg)
	return nil
}

func (a *app) color() bool {
	return !a.v.GetBool("no-color")
}
