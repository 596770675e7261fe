package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/batchwalk"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every matching file under a directory tree",
	Long: `batch walks a directory tree and converts every .tsv file to a .bin
sibling (or, with --reverse, every .bin file back to .tsv), logging any
per-file failure without aborting the walk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			return fmt.Errorf("failed to get root flag: %w", err)
		}
		reverse, err := cmd.Flags().GetBool("reverse")
		if err != nil {
			return fmt.Errorf("failed to get reverse flag: %w", err)
		}
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}

		direction := batchwalk.ToBinary
		if reverse {
			direction = batchwalk.ToText
		}

		start := time.Now()
		results, err := batchwalk.Run(root, batchwalk.Options{Direction: direction, Strict: strict})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}

		var failed int
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		log.Printf("Converted %d files (%d failed) under %s in %v", len(results), failed, root, time.Since(start))
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed under %s", failed, len(results), root)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)
	batchCmd.Flags().String("root", ".", "Directory to walk")
	batchCmd.Flags().Bool("reverse", false, "Convert .bin files back to .tsv instead of .tsv to .bin")
	batchCmd.Flags().Bool("strict", false, "Forwarded to deserialize when --reverse is set")
}
