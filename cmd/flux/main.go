// Command flux renders, serves and snapshots the flux demo application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/flux/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┬ ┬─┐ ┬
  ├┤ │  │ │┌┴┬┘
  └  ┴─┘└─┘┴ └─
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flux",
		Short: "Unidirectional data flow for server-rendered Go UIs",
		Long: `Flux renders component trees from a single store.

Actions transform the store state, the store pushes the new state to every
subscribed component and components re-render. The CLI drives the bundled
counter application:

  • render the page (optionally after dispatching actions)
  • serve it live over HTTP and WebSocket
  • snapshot the page and state to a directory or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		snapshotCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the flux ASCII art banner.
func printBanner() {
	fmt.Print(banner)
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
