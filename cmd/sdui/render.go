package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/sdui/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		pretty bool
		page   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a descriptor file to HTML",
		Long: `Render a widget descriptor (JSON or YAML) to HTML.

Examples:
  sdui render form.yaml
  sdui render form.json --pretty
  sdui render form.yaml --page -o form.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			d, err := readDescriptor(args[0])
			if err != nil {
				return err
			}
			n := e.render(cmd.Context(), d)

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			if page {
				return r.RenderPage(out, render.PageData{Title: d.Tag, Body: n})
			}
			return r.RenderToWriter(out, n)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&page, "page", false, "Wrap the output in a standalone HTML document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
