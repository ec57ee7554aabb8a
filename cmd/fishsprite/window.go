//go:build cgo

package main

import (
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/gui"
)

func newWindowCmd() *cobra.Command {
	var (
		weight float64
		size   string
		scale  float64
	)
	cmd := &cobra.Command{
		Use:   "window [species]",
		Short: "open a raylib preview window",
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
			cat, err := e.size(size)
			if err != nil {
				return err
			}
			p, err := gui.NewPreview(gui.PreviewConfig{
				Species: d,
				Size:    cat,
				Weight:  weight,
				Seed:    e.seed,
				Scale:   scale,
			})
			if err != nil {
				return err
			}
			return p.Run()
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in lb (default: sampled from size)")
	cmd.Flags().StringVar(&size, "size", "", "size category")
	cmd.Flags().Float64Var(&scale, "scale", 4, "body size multiplier")
	return cmd
}
