package fingerprint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesDeterministic(t *testing.T) {
	t.Parallel()

	data := []byte("10\t20\t5\n")
	r1, err := Bytes(data, BLAKE3)
	require.NoError(t, err)
	r2, err := Bytes(data, BLAKE3)
	require.NoError(t, err)
	require.Equal(t, r1.Hash, r2.Hash)
	require.Equal(t, int64(len(data)), r1.Size)
}

func TestBytesAlgorithmsDiffer(t *testing.T) {
	t.Parallel()

	data := []byte("10\t20\t5\n")
	b3, err := Bytes(data, BLAKE3)
	require.NoError(t, err)
	sha, err := Bytes(data, SHA256)
	require.NoError(t, err)
	require.NotEqual(t, b3.Hash, sha.Hash)
}

func TestFileMatchesBytes(t *testing.T) {
	t.Parallel()

	data := []byte("1\t2\t3\n4\t5\t6\n")
	path := filepath.Join(t.TempDir(), "edges.tsv")
	require.NoError(t, os.WriteFile(path, data, 0644))

	fromFile, err := File(path, SHA256)
	require.NoError(t, err)
	fromBytes, err := Bytes(data, SHA256)
	require.NoError(t, err)
	require.Equal(t, fromBytes.Hash, fromFile.Hash)
	require.Equal(t, int64(len(data)), fromFile.Size)
}

func TestReaderMatchesBytes(t *testing.T) {
	t.Parallel()

	data := []byte("1\t2\t3\n4\t5\t6\n")
	fromReader, err := Reader(bytes.NewReader(data), SHA256)
	require.NoError(t, err)
	fromBytes, err := Bytes(data, SHA256)
	require.NoError(t, err)
	require.Equal(t, fromBytes.Hash, fromReader.Hash)
	require.Equal(t, int64(len(data)), fromReader.Size)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	cases := map[string]Algorithm{"": BLAKE3, "blake3": BLAKE3, "md5": MD5, "sha1": SHA1, "sha256": SHA256}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseAlgorithm("bogus")
	require.Error(t, err)
}
