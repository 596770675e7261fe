package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/fingerprint"
)

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Compute a content hash of a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		algoFlag, err := cmd.Flags().GetString("algorithm")
		if err != nil {
			return fmt.Errorf("failed to get algorithm flag: %w", err)
		}

		if _, err := os.Stat(input); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", input)
		}

		algorithm, err := fingerprint.ParseAlgorithm(algoFlag)
		if err != nil {
			return err
		}

		result, err := fingerprint.File(input, algorithm)
		if err != nil {
			return fmt.Errorf("fingerprinting %s: %w", input, err)
		}

		fmt.Printf("%s  %s  %s  %d bytes\n", result.Hash, result.Algorithm, input, result.Size)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fingerprintCmd)
	fingerprintCmd.Flags().StringP("input", "i", "", "Path to the file to fingerprint")
	fingerprintCmd.Flags().String("algorithm", "blake3", "Hash algorithm (blake3, md5, sha1, sha256)")
	fingerprintCmd.MarkFlagRequired("input")
}
