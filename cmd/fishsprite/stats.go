package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/fish"
)

func newStatsCmd() *cobra.Command {
	var (
		samples int
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "stats [species] [weight]",
		Short: "length, age and size for a weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			d, err := e.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("weight: %w", err)
			}
			f, err := fish.New(d, weight, d.Classify(weight), 0, 0)
			if err != nil {
				return err
			}
			if samples < 1 {
				samples = 1
			}

			src := e.rand()
			out := cmd.OutOrStdout()
			if asJSON {
				summaries := make([]fish.Summary, 0, samples)
				for i := 0; i < samples; i++ {
					summaries = append(summaries, f.Summary(src))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}

			fmt.Fprintln(out, f.Summary(src))
			if samples > 1 {
				ages := make([]int, 0, samples-1)
				for i := 1; i < samples; i++ {
					ages = append(ages, f.BiologicalAge(src))
				}
				fmt.Fprintf(out, "more age samples: %v\n", ages)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 1, "number of age samples")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print summaries as json")
	return cmd
}
