package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/brycejohnston/chunky-png/compression"
	"github.com/brycejohnston/chunky-png/datastream"
	"github.com/brycejohnston/chunky-png/pixelmatrix"
	"github.com/spf13/cobra"
	"github.com/xfmoulet/qoi"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Re-encode a PNG or QOI image as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "Output PNG file")
	encodeCmd.Flags().String("color-mode", "auto", "Color mode (auto, grayscale, truecolor, indexed, grayscale-alpha, truecolor-alpha)")
	encodeCmd.Flags().Int("bit-depth", 8, "Bit depth, ignored with --color-mode auto")
	encodeCmd.Flags().Bool("interlace", false, "Use Adam7 interlacing")
	encodeCmd.Flags().String("filter", "none", "Scanline filter (none, sub, up, average, paeth, adaptive)")
	encodeCmd.Flags().Int("level", compression.DefaultCompression, "zlib compression level (-2 to 9)")
	encodeCmd.Flags().Int("idat-size", datastream.DefaultIDATSize, "Largest IDAT chunk payload in bytes")
	encodeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	modeStr, _ := cmd.Flags().GetString("color-mode")
	depth, _ := cmd.Flags().GetInt("bit-depth")
	interlace, _ := cmd.Flags().GetBool("interlace")
	filterStr, _ := cmd.Flags().GetString("filter")
	level, _ := cmd.Flags().GetInt("level")
	idatSize, _ := cmd.Flags().GetInt("idat-size")

	opts := []pixelmatrix.EncodeOption{
		pixelmatrix.WithInterlace(interlace),
		pixelmatrix.WithCompressionLevel(level),
		pixelmatrix.WithMaxIDATSize(idatSize),
	}
	if modeStr != "auto" {
		mode, err := color.ParseColorMode(modeStr)
		if err != nil {
			return err
		}
		opts = append(opts, pixelmatrix.WithColorMode(mode, depth))
	}
	if filterStr == "adaptive" {
		opts = append(opts, pixelmatrix.WithAdaptiveFilter())
	} else {
		filter, err := pixelmatrix.ParseFilterMethod(filterStr)
		if err != nil {
			return err
		}
		opts = append(opts, pixelmatrix.WithFilter(filter))
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	m, ancillary, err := loadImage(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}
	opts = append(opts, pixelmatrix.WithAncillary(ancillary...))

	out, err := pixelmatrix.Encode(m, opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadImage decodes a PNG or QOI file. PNG ancillary chunks are returned so
// they can be carried over.
func loadImage(data []byte) (*pixelmatrix.Matrix, []*datastream.Chunk, error) {
	if bytes.HasPrefix(data, []byte("qoif")) {
		img, err := qoi.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, nil, err
		}
		return pixelmatrix.FromImage(img), nil, nil
	}

	ds, m, err := pixelmatrix.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return m, ds.Ancillary(), nil
}
