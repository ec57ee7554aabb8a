package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/draw"
	"github.com/appengine-ltd/fishsprite/internal/export"
)

func newTraceCmd() *cobra.Command {
	var (
		pose    poseFlags
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "trace [species]",
		Short: "print the draw commands for a fish as json",
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
			f, err := pose.fish(e, d)
			if err != nil {
				return err
			}
			opts, err := pose.options(e)
			if err != nil {
				return err
			}
			rec, err := export.Trace(f, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !summary {
				return rec.WriteJSON(out)
			}
			for _, op := range []draw.Op{draw.OpFillEllipse, draw.OpFillRect, draw.OpFillPath, draw.OpFillTriangle, draw.OpSave, draw.OpRestore} {
				fmt.Fprintf(out, "%-14s %d\n", op, rec.Count(op))
			}
			return nil
		},
	}
	pose.register(cmd)
	cmd.Flags().BoolVar(&summary, "summary", false, "print op counts instead of the full trace")
	return cmd
}
