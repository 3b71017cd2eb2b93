package main

import (
	"github.com/spf13/cobra"

	"github.com/Shenika-D/ShadowFox-Internship/pkg/carprice"
	"github.com/Shenika-D/ShadowFox-Internship/pkg/data"
)

func newCarPriceCmd(a *app) *cobra.Command {
	var (
		input  string
		seed   int64
		report bool
	)
	cmd := &cobra.Command{
		Use:   "carprice",
		Short: "Fit and evaluate the MSRP regression",
		Long:  `Deduplicates car_model_dataset.csv, fits median/mode imputation, scaling, one-hot encoding and least squares on the training split, and prints MSE and R² on the test split.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("input") {
				a.cfg.CarPrice.Input = input
			}
			if f.Changed("seed") {
				a.cfg.CarPrice.Seed = seed
			}
			if f.Changed("report") {
				a.cfg.CarPrice.Report = report
			}
			return a.runCarPrice(cmd)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "car dataset CSV (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "split seed (overrides config)")
	cmd.Flags().BoolVar(&report, "report", false, "write a YAML run report")
	return cmd
}

func (a *app) runCarPrice(cmd *cobra.Command) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	c := a.cfg.CarPrice
	var reportPath string
	if c.Report {
		reportPath = a.outPath(c.ReportPath)
	}
	_, err = carprice.Run(cmd.Context(), carprice.Options{
		Input:      c.Input,
		Schema:     data.NewSchema(c.Numeric, c.Categorical),
		Target:     c.Target,
		Drop:       c.Drop,
		TestSize:   c.TestSize,
		Seed:       &c.Seed,
		ReportPath: reportPath,
		Renderer:   r,
		Log:        a.log,
	}, a.out)
	return err
}
