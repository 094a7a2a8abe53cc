package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/sdui/pkg/bootstrap"
)

func tagsCmd(flags *globalFlags) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the registered widget tags",
		Long: `List every registered widget tag in registration order with its
family, decorator kind, reported event and value attribute.

Examples:
  sdui tags
  sdui tags --family groups`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()

			if family != "" && !knownFamily(family) {
				return fmt.Errorf("unknown family %q (known: %s)", family, familyNames())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tFAMILY\tKIND\tEVENT\tVALUE ATTR")
			for _, w := range bootstrap.Widgets(e.opts) {
				if family != "" && string(w.Family) != family {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", w.Tag, w.Family, w.Kind(), dash(w.Event()), dash(w.ValueAttr()))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", "", "Only list tags of this family")

	return cmd
}

func knownFamily(name string) bool {
	for _, f := range bootstrap.Families() {
		if string(f) == name {
			return true
		}
	}
	return false
}

func familyNames() string {
	names := make([]string, 0, len(bootstrap.Families()))
	for _, f := range bootstrap.Families() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
