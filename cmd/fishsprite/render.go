package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/fishsprite/internal/export"
	"github.com/appengine-ltd/fishsprite/internal/fish"
	"github.com/appengine-ltd/fishsprite/internal/species"
	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

// poseFlags are shared by render and trace.
type poseFlags struct {
	size       string
	weight     float64
	bodySize   float64
	width      int
	height     int
	angleDeg   float64
	left       bool
	popup      bool
	background string
}

func (p *poseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.size, "size", "", "size category (small, medium, large, trophy)")
	cmd.Flags().Float64Var(&p.weight, "weight", 0, "weight in lb (default: sampled from the size range)")
	cmd.Flags().Float64Var(&p.bodySize, "body-size", 0, "body size in pixels (default: from size category)")
	cmd.Flags().IntVar(&p.width, "width", 0, "canvas width")
	cmd.Flags().IntVar(&p.height, "height", 0, "canvas height")
	cmd.Flags().Float64Var(&p.angleDeg, "angle", 0, "tilt in degrees")
	cmd.Flags().BoolVar(&p.left, "left", false, "face left")
	cmd.Flags().BoolVar(&p.popup, "popup", false, "draw as in the catch popup (no pose)")
	cmd.Flags().StringVar(&p.background, "background", "", "background colour, \"none\" for transparent")
}

func (p *poseFlags) fish(e *env, d *species.Descriptor) (*fish.Fish, error) {
	size, err := e.size(p.size)
	if err != nil {
		return nil, err
	}
	var f *fish.Fish
	if p.weight > 0 {
		f, err = fish.New(d, p.weight, size, 0, 0)
	} else {
		f, err = fish.Spawn(d, size, e.rand(), 0, 0)
	}
	if err != nil {
		return nil, err
	}
	f.FacingRight = !p.left
	f.Angle = p.angleDeg * math.Pi / 180
	return f, nil
}

func (p *poseFlags) options(e *env) (export.Options, error) {
	opts := export.Options{
		Width:    e.cfg.Width,
		Height:   e.cfg.Height,
		BodySize: e.cfg.BodySize,
		Popup:    p.popup,
	}
	if p.width > 0 {
		opts.Width = p.width
	}
	if p.height > 0 {
		opts.Height = p.height
	}
	if p.bodySize > 0 {
		opts.BodySize = p.bodySize
	}

	bg := e.cfg.Background
	if p.background != "" {
		bg = p.background
	}
	if bg != "" && bg != "none" {
		c, err := species.ParseColor(bg)
		if err != nil {
			return opts, fmt.Errorf("background: %w", err)
		}
		opts.Background = color.Color(c)
	}
	return opts, nil
}

func newRenderCmd() *cobra.Command {
	var (
		pose   poseFlags
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render [species]",
		Short: "render a fish to png or svg",
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

			def, err := export.ParseFormat(e.cfg.Format)
			if err != nil {
				return err
			}
			if format != "" {
				if def, err = export.ParseFormat(format); err != nil {
					return err
				}
				opts.Format = def
			} else {
				opts.Format = export.FormatForPath(out, def)
			}

			if err := writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return export.Fish(w, f, opts)
			}); err != nil {
				return err
			}

			logger.Log.WithFields(logrus.Fields{
				"species": d.ID,
				"weight":  f.Weight,
				"format":  opts.Format,
				"out":     out,
			}).Info("rendered fish")
			return nil
		},
	}
	pose.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&format, "format", "", "png or svg (default: from extension or config)")
	return cmd
}

func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
