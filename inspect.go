package main

import (
	"fmt"
	"os"

	"github.com/brycejohnston/chunky-png/datastream"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the chunks of a PNG file and print its header",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := datastream.Read(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	hdr := ds.Header()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", hdr.Width, hdr.Height)
	fmt.Fprintf(out, "Color mode: %s, %d-bit\n", hdr.ColorMode, hdr.BitDepth)
	fmt.Fprintf(out, "Interlace:  %v\n", hdr.Interlace)
	fmt.Fprintf(out, "Image data: %d bytes in %d IDAT chunks\n", len(ds.ImageData()), len(ds.DataChunks()))
	fmt.Fprintln(out, "Chunks:")
	for _, c := range ds.Chunks() {
		kind := "ancillary"
		if c.Critical() {
			kind = "critical"
		}
		fmt.Fprintf(out, "  %s  %8d bytes  crc %08x  %s\n", c.Type, c.Length(), c.CRC, kind)
	}
	return nil
}
