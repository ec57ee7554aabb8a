package main

import (
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/ui"
)

func newViewCmd() *cobra.Command {
	var (
		weight float64
		cols   int
		rows   int
	)
	cmd := &cobra.Command{
		Use:   "view [species]",
		Short: "inspect a fish in the terminal",
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
			return ui.NewViewer(ui.ViewerConfig{
				Species: d,
				Weight:  weight,
				Seed:    e.seed,
				Cols:    cols,
				Rows:    rows,
			}).Run()
		},
	}
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in lb (default: sampled medium)")
	cmd.Flags().IntVar(&cols, "cols", 64, "pane width in cells")
	cmd.Flags().IntVar(&rows, "rows", 18, "pane height in cells")
	return cmd
}
