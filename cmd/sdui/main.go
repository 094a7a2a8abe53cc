package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/sdui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "sdui",
		Short: "Render server-described widget trees",
		Long: `sdui turns widget descriptors into rendered component trees.

A descriptor is a JSON or YAML document naming an abstract widget tag,
its props and its children. sdui resolves every tag through the widget
registry and renders the result as HTML.

Configuration is read from sdui.yaml in the working directory or its
nearest parent holding one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", ".", "Directory to search for sdui.yaml")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")

	rootCmd.AddCommand(
		renderCmd(&flags),
		tagsCmd(&flags),
		iconCmd(&flags),
		serveCmd(&flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var be *errors.BridgeError
		if stderrors.As(err, &be) {
			fmt.Fprint(os.Stderr, be.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
