package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/species"
)

func newCurveCmd() *cobra.Command {
	var (
		minWeight float64
		maxWeight float64
		points    int
		height    int
	)
	cmd := &cobra.Command{
		Use:   "curve [species]",
		Short: "plot length over weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			d, err := e.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			series, err := lengthSeries(d, minWeight, maxWeight, points)
			if err != nil {
				return err
			}
			graph := asciigraph.Plot(series,
				asciigraph.Height(height),
				asciigraph.Caption(fmt.Sprintf("%s length (in) for %.2f-%.2f lb", d.Name, minWeight, maxWeight)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), graph)
			return nil
		},
	}
	cmd.Flags().Float64Var(&minWeight, "min", 0.1, "lightest weight (lb)")
	cmd.Flags().Float64Var(&maxWeight, "max", 3.0, "heaviest weight (lb)")
	cmd.Flags().IntVar(&points, "points", 60, "samples across the range")
	cmd.Flags().IntVar(&height, "height", 12, "graph height in rows")
	return cmd
}

// lengthSeries samples the species length law at evenly spaced weights.
func lengthSeries(d *species.Descriptor, lo, hi float64, points int) ([]float64, error) {
	if lo < 0 || hi <= lo {
		return nil, fmt.Errorf("weight range must satisfy 0 <= min < max, got %v..%v", lo, hi)
	}
	if points < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", points)
	}
	out := make([]float64, points)
	step := (hi - lo) / float64(points-1)
	for i := range out {
		out[i] = float64(d.LengthFor(lo + float64(i)*step))
	}
	return out, nil
}
