// Package fingerprint computes content hashes of TSV edge lists or GRPH
// binaries for manifests and change detection across repeated runs. It is
// independent of the graph codec itself: nothing here parses graph
// structure, it only hashes bytes.
package fingerprint

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Algorithm identifies a supported hash algorithm.
type Algorithm int

const (
	// BLAKE3 is the default algorithm: fast and collision-resistant.
	BLAKE3 Algorithm = iota
	// MD5 is provided for interop with legacy manifests. Not collision
	// resistant; do not rely on it for integrity against a hostile input.
	MD5
	// SHA1 is provided for interop with legacy manifests. Not collision
	// resistant.
	SHA1
	// SHA256 is a slower, widely interoperable algorithm.
	SHA256
	// UndefinedAlgorithm marks an unset Algorithm value.
	UndefinedAlgorithm
)

// String returns the algorithm's canonical name.
func (a Algorithm) String() string {
	switch a {
	case BLAKE3:
		return "BLAKE3"
	case MD5:
		return "MD5"
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	default:
		return "Undefined"
	}
}

// ParseAlgorithm maps a CLI flag value to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "", "blake3":
		return BLAKE3, nil
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	default:
		return UndefinedAlgorithm, fmt.Errorf("unknown fingerprint algorithm %q", s)
	}
}

// Result is the outcome of fingerprinting one file or byte slice.
type Result struct {
	Hash      string
	Algorithm Algorithm
	Size      int64
}

func newHasher(algorithm Algorithm) (hash.Hash, error) {
	switch algorithm {
	case BLAKE3:
		return blake3.New(), nil
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported fingerprint algorithm: %s", algorithm)
	}
}

// File computes the fingerprint of the file at path.
func File(path string, algorithm Algorithm) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	result, err := Reader(f, algorithm)
	if err != nil {
		return Result{}, fmt.Errorf("fingerprinting %s: %w", path, err)
	}
	return result, nil
}

// Bytes computes the fingerprint of an in-memory buffer.
func Bytes(data []byte, algorithm Algorithm) (Result, error) {
	hasher, err := newHasher(algorithm)
	if err != nil {
		return Result{}, err
	}
	hasher.Write(data)
	return Result{
		Hash:      hex.EncodeToString(hasher.Sum(nil)),
		Algorithm: algorithm,
		Size:      int64(len(data)),
	}, nil
}

// Reader computes the fingerprint of a stream, for callers that already
// have an open io.Reader (a pipe, a network body) and don't want to buffer
// the whole input themselves first. The reader is consumed to EOF.
func Reader(r io.Reader, algorithm Algorithm) (Result, error) {
	hasher, err := newHasher(algorithm)
	if err != nil {
		return Result{}, err
	}
	size, err := io.Copy(hasher, r)
	if err != nil {
		return Result{}, fmt.Errorf("reading stream: %w", err)
	}
	return Result{
		Hash:      hex.EncodeToString(hasher.Sum(nil)),
		Algorithm: algorithm,
		Size:      size,
	}, nil
}
