package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/packstore"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack",
	Short: "Decompress a GPAK archive back to a GRPH binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
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

		if err := packstore.CopyUnpack(out, in); err != nil {
			return fmt.Errorf("unpacking %s: %w", input, err)
		}
		log.Printf("Unpacked %s -> %s", input, output)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(unpackCmd)
	unpackCmd.Flags().StringP("input", "i", "", "Path to the GPAK archive to unpack")
	unpackCmd.Flags().StringP("output", "o", "", "Path to write the decompressed GRPH binary")
	unpackCmd.MarkFlagRequired("input")
	unpackCmd.MarkFlagRequired("output")
}
