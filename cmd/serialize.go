package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/codec"
)

var serializeCmd = &cobra.Command{
	Use:   "serialize",
	Short: "Convert a TSV edge list to a GRPH binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
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
		if err := codec.Serialize(data, out); err != nil {
			return fmt.Errorf("serializing %s: %w", input, err)
		}
		log.Printf("Serialized %s -> %s in %v", input, output, time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serializeCmd)
	serializeCmd.Flags().StringP("input", "i", "", "Path to the input TSV edge list")
	serializeCmd.Flags().StringP("output", "o", "", "Path to write the GRPH binary")
	serializeCmd.MarkFlagRequired("input")
	serializeCmd.MarkFlagRequired("output")
}
