package main

import (
	"SolarSystem/internal/engine"

	"github.com/spf13/cobra"
)

type viewOptions struct {
	width     int
	height    int
	dysonOnly bool
	debug     bool
	noCulling bool
}

func newViewCommand(root *rootOptions) *cobra.Command {
	opts := &viewOptions{}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the solar system viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(root.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				settings.Window.Width = opts.width
			}
			if cmd.Flags().Changed("height") {
				settings.Window.Height = opts.height
			}

			viewer := engine.NewViewer(settings)
			viewer.ConfigPath = root.configPath
			viewer.DysonOnly = opts.dysonOnly
			viewer.SetDebugMode(opts.debug)
			viewer.SetFrustumCulling(!opts.noCulling)
			return viewer.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 1280, "window width")
	cmd.Flags().IntVar(&opts.height, "height", 720, "window height")
	cmd.Flags().BoolVar(&opts.dysonOnly, "dyson-only", false, "show only the spinning dyson sphere")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "draw every model as wireframe")
	cmd.Flags().BoolVar(&opts.noCulling, "no-culling", false, "disable frustum culling")
	return cmd
}
