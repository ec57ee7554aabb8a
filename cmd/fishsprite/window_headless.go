//go:build !cgo

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window [species]",
		Short: "open a raylib preview window (needs a cgo build)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the preview window requires a cgo/raylib build")
		},
	}
}
