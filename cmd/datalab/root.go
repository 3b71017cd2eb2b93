package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Shenika-D/ShadowFox-Internship/internal/config"
	"github.com/Shenika-D/ShadowFox-Internship/internal/logger"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/chart"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	outDir   string

	cfg *config.Config
	log *logger.Logger
	out io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "datalab",
		Short:         "Air-quality exploration and car price regression",
		Long:          `datalab runs two batch analyses: an exploration of Delhi air-quality readings with an AQI classification and spreadsheet export, and a linear regression of car MSRP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: ERROR, WARN, INFO, DEBUG, TRACE (overrides config)")
	f.StringVar(&a.outDir, "out-dir", "", "directory for charts, export and report (overrides config)")

	root.AddCommand(newAirQualityCmd(a), newCarPriceCmd(a), newAllCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command, errOut io.Writer) error {
	c, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		c.LogLevel = a.logLevel
	}
	if f.Changed("out-dir") {
		c.OutDir = a.outDir
	}
	a.cfg = c
	a.log = logger.New(errOut, logger.ParseLevel(c.LogLevel))
	a.log.Debug("config loaded: out_dir=%s chart=%s/%d", c.OutDir, c.Chart.Format, c.Chart.DPI)
	return nil
}

// renderer acquires the chart backend for one command.
func (a *app) renderer() (*chart.Renderer, error) {
	return chart.NewRenderer(chart.Config{
		Dir:     a.cfg.OutDir,
		Format:  a.cfg.Chart.Format,
		DPI:     a.cfg.Chart.DPI,
		Workers: a.cfg.Chart.Workers,
	}, a.log)
}

// outPath places relative output paths under the output directory.
func (a *app) outPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.cfg.OutDir, p)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		stop()
		os.Exit(1)
	}
}
