package main

import "github.com/spf13/cobra"

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run the air-quality and car price analyses in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runAirQuality(cmd); err != nil {
				return err
			}
			return a.runCarPrice(cmd)
		},
	}
}
