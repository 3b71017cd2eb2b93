package main

import (
	"github.com/spf13/cobra"

	"github.com/Shenika-D/ShadowFox-Internship/pkg/airquality"
)

func newAirQualityCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "airquality",
		Short: "Explore the Delhi air-quality dataset",
		Long:  `Derives time features and AQI categories from delhiaqi.csv, exports the augmented table to xlsx and renders six charts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.AirQuality.Input = input
			}
			return a.runAirQuality(cmd)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "air-quality CSV (overrides config)")
	return cmd
}

func (a *app) runAirQuality(cmd *cobra.Command) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	_, err = airquality.Run(cmd.Context(), airquality.Options{
		Input:    a.cfg.AirQuality.Input,
		Export:   a.outPath(a.cfg.AirQuality.Export),
		Renderer: r,
		Log:      a.log,
	}, a.out)
	return err
}
