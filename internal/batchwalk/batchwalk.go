// Package batchwalk applies the graph codec across every matching file
// under a directory tree. It walks with godirwalk, the directory-traversal
// dependency the teacher's go.mod carries but never exercises, here put to
// work converting a tree of edge lists (or binaries) in one pass.
package batchwalk

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"

	"github.com/TFMV/graphcodec/internal/codec"
)

// Direction selects which conversion a batch run applies to each matched
// file.
type Direction int

const (
	// ToBinary serializes .tsv files to .bin siblings.
	ToBinary Direction = iota
	// ToText deserializes .bin files to .tsv siblings.
	ToText
)

// Result records the outcome of converting one file.
type Result struct {
	Path    string
	Skipped bool
	Err     error
}

// Options controls a batch run.
type Options struct {
	Direction Direction
	// Strict is forwarded to codec.Deserialize when Direction is ToText.
	Strict bool
}

func sourceExt(dir Direction) string {
	if dir == ToBinary {
		return ".tsv"
	}
	return ".bin"
}

func targetExt(dir Direction) string {
	if dir == ToBinary {
		return ".bin"
	}
	return ".tsv"
}

// Run walks root, converting every file whose extension matches the
// configured direction, and returns one Result per match. A conversion
// failure on one file is recorded in its Result and does not stop the walk.
func Run(root string, opts Options) ([]Result, error) {
	var results []Result
	srcExt := sourceExt(opts.Direction)

	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: false,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(path), srcExt) {
				return nil
			}
			if de.IsSymlink() {
				log.Printf("batch: skipping symlink %s", path)
				results = append(results, Result{Path: path, Skipped: true})
				return nil
			}
			err := convertOne(path, opts)
			if err != nil {
				log.Printf("batch: %s: %v", path, err)
			}
			results = append(results, Result{Path: path, Err: err})
			return nil
		},
	})
	if err != nil {
		return results, fmt.Errorf("walking %s: %w", root, err)
	}
	return results, nil
}

func convertOne(path string, opts Options) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	outPath := strings.TrimSuffix(path, sourceExt(opts.Direction)) + targetExt(opts.Direction)
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	switch opts.Direction {
	case ToBinary:
		return codec.Serialize(input, out)
	case ToText:
		return codec.Deserialize(input, out, codec.Options{Strict: opts.Strict})
	default:
		return fmt.Errorf("unknown batch direction %d", opts.Direction)
	}
}
