package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueVerticesSortedAndDeduped(t *testing.T) {
	t.Parallel()

	got, err := UniqueVertices([]byte("5\t3\t9\n1\t2\t10\n2\t1\t20\n7\t7\t255\n"))
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3, 5, 7}, got)
}

func TestUniqueVerticesEmpty(t *testing.T) {
	t.Parallel()

	got, err := UniqueVertices(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
