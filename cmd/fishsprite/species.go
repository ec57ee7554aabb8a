package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/species"
)

func newSpeciesCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "species",
		Short: "list registered species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if dump {
				data, err := species.MarshalFile(e.registry.All())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return listSpecies(cmd, e.registry)
		},
	}
	cmd.Flags().BoolVar(&dump, "yaml", false, "print the catalog as a species file")
	return cmd
}

func listSpecies(cmd *cobra.Command, r *species.Registry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tWEIGHT (lb)\tBODY\tSPRITE")
	for _, d := range r.All() {
		for _, cat := range species.SizeCategories() {
			sr, ok := d.Sizes[cat]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f-%.2f\t%.0f\t%s\n", d.ID, d.Name, cat, sr.MinWeight, sr.MaxWeight, sr.BodySize, sr.Sprite)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if r.Count() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no species registered")
	}
	return nil
}
