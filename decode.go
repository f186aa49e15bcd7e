package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/pixelmatrix"
	"github.com/brycejohnston/chunky-png/utils"
	"github.com/spf13/cobra"
	"github.com/xfmoulet/qoi"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a PNG file to PPM or QOI",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "Output file")
	decodeCmd.Flags().String("format", "ppm", "Output format (ppm, qoi)")
	decodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	_, m, err := pixelmatrix.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	switch format {
	case "ppm":
		return writePPM(outputPath, m)
	case "qoi":
		return writeQOI(outputPath, m)
	}
	return fmt.Errorf("unknown format %q", format)
}

// writePPM writes the color channels of m; alpha is dropped.
func writePPM(path string, m *pixelmatrix.Matrix) error {
	f, err := utils.CreatePPM(path, m.Width(), m.Height())
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, c := range m.Pixels() {
		rgb := color.ToTruecolorBytes(c)
		w.Write(rgb[:])
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return f.Close()
}

func writeQOI(path string, m *pixelmatrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := qoi.Encode(w, m); err != nil {
		return fmt.Errorf("encoding qoi: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return f.Close()
}
