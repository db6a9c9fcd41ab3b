package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/linfit/regression"
)

// salesByMonth is the built-in dataset: month index → sales.
var salesByMonth = regression.Dataset{
	{X: 1, Y: 90},
	{X: 2, Y: 117.5},
	{X: 3, Y: 145},
}

// forecastMonth is the query point for the prediction line.
const forecastMonth = 6

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linfit",
		Short: "Fit a least-squares line to the built-in sales dataset",
		Long: `linfit fits an ordinary-least-squares line to a fixed monthly sales dataset,
forecasts sales for month 6 and reports the fit quality as MSE and R².`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), salesByMonth, forecastMonth)
		},
	}
}

// run fits ds, predicts at query and writes the report to w.
func run(w io.Writer, ds regression.Dataset, query float64) error {
	slope, err := regression.Slope(ds)
	if err != nil {
		return fmt.Errorf("slope: %w", err)
	}
	intercept, err := regression.Intercept(ds, slope)
	if err != nil {
		return fmt.Errorf("intercept: %w", err)
	}
	prediction := regression.Predict(intercept, slope, query)

	mse, err := regression.MSE(ds, slope, intercept)
	if err != nil {
		return fmt.Errorf("mse: %w", err)
	}
	r2, err := regression.RSquared(ds, slope, intercept)
	if err != nil {
		return fmt.Errorf("r2: %w", err)
	}

	fmt.Fprintf(w, "Slope: %.2f, Intercept: %.2f\n", slope, intercept)
	fmt.Fprintf(w, "Prediction for point %g: %.2f\n", query, prediction)
	fmt.Fprintf(w, "MSE: %.2f, R2: %.2f\n", mse, r2)

	return nil
}
