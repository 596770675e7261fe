package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/codec"
)

var deserializeCmd = &cobra.Command{
	Use:   "deserialize",
	Short: "Convert a GRPH binary to a TSV edge list",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}

		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", input)
		}

		data, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}

		out, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer out.Close()

		start := time.Now()
		if err := codec.Deserialize(data, out, codec.Options{Strict: strict}); err != nil {
			return fmt.Errorf("deserializing %s: %w", input, err)
		}
		log.Printf("Deserialized %s -> %s in %v", input, output, time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deserializeCmd)
	deserializeCmd.Flags().StringP("input", "i", "", "Path to the input GRPH binary")
	deserializeCmd.Flags().StringP("output", "o", "", "Path to write the TSV edge list")
	deserializeCmd.Flags().Bool("strict", false, "Reject trailing bytes and cross-check the header's edge count")
	deserializeCmd.MarkFlagRequired("input")
	deserializeCmd.MarkFlagRequired("output")
}
