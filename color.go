package main

import (
	"fmt"

	"github.com/brycejohnston/chunky-png/color"
	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color [value]",
	Short: "Parse a color (hex, integer or name) and print its representations",
	Args:  cobra.ExactArgs(1),
	RunE:  runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	c, err := color.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	h, s, v := color.ToHSV(c)
	hl, sl, l := color.ToHSL(c)
	fmt.Fprintf(out, "Hex:     %s\n", color.ToHex(c))
	fmt.Fprintf(out, "Integer: %d\n", uint32(c))
	fmt.Fprintf(out, "RGBA:    %d, %d, %d, %d\n", c.R(), c.G(), c.B(), c.A())
	fmt.Fprintf(out, "HSV:     %.1f, %.3f, %.3f\n", h, s, v)
	fmt.Fprintf(out, "HSL:     %.1f, %.3f, %.3f\n", hl, sl, l)
	fmt.Fprintf(out, "Gray:    %d\n", color.GrayscaleTeint(c))
	return nil
}
