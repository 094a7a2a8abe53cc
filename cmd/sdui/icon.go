package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/sdui/pkg/icon"
	"github.com/vango-dev/sdui/pkg/render"
)

func iconCmd(flags *globalFlags) *cobra.Command {
	var showSVG bool

	cmd := &cobra.Command{
		Use:   "icon NAME",
		Short: "Resolve an icon name",
		Long: `Canonicalize an icon name with the configured prefix and report
whether the icon module provides it.

Examples:
  sdui icon check
  sdui icon IconInfoCircle --svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			r := e.opts.Icons
			name := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), e.cfg.Icons.LoadTimeout)
			defer cancel()
			state, err := r.Wait(ctx, name)

			switch state {
			case icon.Ready:
				success("%s: %s", r.Canonical(name), state)
			default:
				warn("%s: %s, rendering the fallback %s", r.Canonical(name), state, e.cfg.Icons.Fallback)
				if err != nil {
					info("%v", err)
				}
			}
			if showSVG {
				html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(r.Resolve(name, nil))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), html)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSVG, "svg", false, "Print the rendered SVG")

	return cmd
}
