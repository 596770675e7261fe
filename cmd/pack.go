package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/packstore"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Compress a GRPH binary into a GPAK archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		level, err := cmd.Flags().GetString("level")
		if err != nil {
			return fmt.Errorf("failed to get level flag: %w", err)
		}

		encLevel, err := parseEncoderLevel(level)
		if err != nil {
			return err
		}

		in, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("opening %s: %w", input, err)
		}
		defer in.Close()

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer out.Close()

		if err := packstore.CopyPack(out, in, encLevel); err != nil {
			return fmt.Errorf("packing %s: %w", input, err)
		}
		log.Printf("Packed %s -> %s", input, output)
		return nil
	},
}

func parseEncoderLevel(s string) (zstd.EncoderLevel, error) {
	switch s {
	case "", "default":
		return zstd.SpeedDefault, nil
	case "fastest":
		return zstd.SpeedFastest, nil
	case "better":
		return zstd.SpeedBetterCompression, nil
	case "best":
		return zstd.SpeedBestCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level %q", s)
	}
}

func init() {
	RootCmd.AddCommand(packCmd)
	packCmd.Flags().StringP("input", "i", "", "Path to the GRPH binary to pack")
	packCmd.Flags().StringP("output", "o", "", "Path to write the GPAK archive")
	packCmd.Flags().String("level", "default", "Compression level (fastest, default, better, best)")
	packCmd.MarkFlagRequired("input")
	packCmd.MarkFlagRequired("output")
}
