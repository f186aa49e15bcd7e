package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/brycejohnston/chunky-png/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "chunkypng",
	Short:         "Inspect, decode and re-encode PNG images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log decoder and encoder steps to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
