package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"SolarSystem/internal/config"
	"SolarSystem/internal/procedural"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

type bakeOptions struct {
	out        string
	width      int
	height     int
	workers    int
	scale      float64
	complexity int
	seed       string
	color      string
	background string
	thumbnail  int
}

func newBakeCommand(root *rootOptions) *cobra.Command {
	opts := &bakeOptions{}
	cmd := &cobra.Command{
		Use:   "bake",
		Short: "Bake the dyson sphere pattern into an equirectangular texture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(root.configPath)
			if err != nil {
				return err
			}
			params, bake, err := opts.apply(cmd, settings)
			if err != nil {
				return err
			}

			img, err := procedural.Bake(cmd.Context(), params, bake)
			if err != nil {
				return err
			}
			if err := procedural.SaveTexture(opts.out, img); err != nil {
				return err
			}
			if opts.thumbnail > 0 {
				if err := procedural.SaveTexture(thumbnailPath(opts.out), procedural.Thumbnail(img, opts.thumbnail)); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", opts.out, bake.Width, bake.Height)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "output file, .png or .jpg")
	f.IntVar(&opts.width, "width", 0, "texture width")
	f.IntVar(&opts.height, "height", 0, "texture height")
	f.IntVar(&opts.workers, "workers", 0, "bake workers, 0 for one per CPU")
	f.Float64Var(&opts.scale, "scale", 0, "noise scale, frequency is exp(scale/2+0.5)")
	f.IntVar(&opts.complexity, "complexity", 0, "extra octaves above four")
	f.StringVar(&opts.seed, "seed", "", "noise offset as x,y,z")
	f.StringVar(&opts.color, "color", "", "pattern color, #rrggbb")
	f.StringVar(&opts.background, "background", "", "background color, #rrggbb")
	f.IntVar(&opts.thumbnail, "thumbnail", 0, "also write a preview this many pixels wide")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// apply overlays the flags that were set on the settings file values.
func (o *bakeOptions) apply(cmd *cobra.Command, s config.Settings) (procedural.Params, procedural.BakeOptions, error) {
	params := s.Dyson.Params()
	bake := s.Bake
	f := cmd.Flags()

	if f.Changed("width") {
		bake.Width = o.width
	}
	if f.Changed("height") {
		bake.Height = o.height
	}
	if f.Changed("workers") {
		bake.Workers = o.workers
	}
	if f.Changed("scale") {
		params.Scale = o.scale
	}
	if f.Changed("complexity") {
		params.Complexity = o.complexity
	}
	if f.Changed("seed") {
		seed, err := parseSeed(o.seed)
		if err != nil {
			return params, bake, err
		}
		params.Seed = seed
	}
	if f.Changed("color") {
		c, err := colorful.Hex(o.color)
		if err != nil {
			return params, bake, fmt.Errorf("color: %w", err)
		}
		params.Color = c
	}
	if f.Changed("background") {
		c, err := colorful.Hex(o.background)
		if err != nil {
			return params, bake, fmt.Errorf("background: %w", err)
		}
		params.Background = c
	}
	return params, bake, nil
}

func parseSeed(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("seed %q: want x,y,z", s)
	}
	var seed mgl64.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("seed %q: %w", s, err)
		}
		seed[i] = v
	}
	return seed, nil
}

// thumbnailPath turns dyson.png into dyson_thumb.png.
func thumbnailPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_thumb" + ext
}
