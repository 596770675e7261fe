package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TFMV/graphcodec/internal/codec"
	"github.com/TFMV/graphcodec/internal/graphindex"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build or query a vertex bloom index over a TSV edge list",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
		vertex, err := cmd.Flags().GetString("vertex")
		if err != nil {
			return fmt.Errorf("failed to get vertex flag: %w", err)
		}

		if vertex != "" {
			return queryIndex(input, vertex)
		}
		return buildIndex(input, output)
	},
}

func buildIndex(input, output string) error {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", input)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	vertices, err := codec.UniqueVertices(data)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", input, err)
	}

	bf := graphindex.BuildFromVertices(vertices)
	encoded, err := graphindex.Save(bf)
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(output, encoded, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	log.Printf("Built index over %d vertices -> %s", len(vertices), output)
	return nil
}

// queryIndex tests membership of id against the GIDX file at indexPath.
func queryIndex(indexPath, id string) error {
	data, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", indexPath, err)
	}
	bf, err := graphindex.Load(data)
	if err != nil {
		return fmt.Errorf("loading index %s: %w", indexPath, err)
	}
	v, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid vertex id %q: %w", id, err)
	}
	if bf.ContainsVertex(uint32(v)) {
		fmt.Printf("%s: possibly present\n", id)
	} else {
		fmt.Printf("%s: absent\n", id)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringP("input", "i", "", "Input TSV edge list (build mode) or GIDX index path (query mode)")
	indexCmd.Flags().StringP("output", "o", "", "Path to write the GIDX index (build mode)")
	indexCmd.Flags().String("vertex", "", "Vertex id to test; when set, -i is treated as a GIDX index path")
}
