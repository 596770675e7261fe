package varint

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	values := []uint64{0, 1, 127, 128, 16383, 16384, 1<<32 - 1, 1 << 63, 1<<64 - 1}
	for _, v := range values {
		enc := Encode(v)
		got, n, err := Decode(enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(enc), n)
		require.Equal(t, Len(v), len(enc))
	}
}

func TestEncodedLengthMatchesBitlen(t *testing.T) {
	t.Parallel()

	cases := map[uint64]int{
		0:           1,
		1:           1,
		127:         1,
		128:         2,
		16383:       2,
		16384:       3,
		1<<32 - 1:   5,
		1 << 63:     10,
		1<<64 - 1:   10,
	}
	for v, want := range cases {
		require.Equal(t, want, Len(v), "value %d", v)
	}
}

func TestDecodeUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, _, err := Decode([]byte{0x80, 0x80})
	require.Error(t, err)
	require.True(t, errors.Is(err, codecerr.ErrUnexpectedEOF))
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	// 10 continuation bytes followed by a terminator puts the shift past 63
	// bits before termination.
	buf := bytes.Repeat([]byte{0x80}, 10)
	buf = append(buf, 0x01)
	_, _, err := Decode(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, codecerr.ErrMalformedVarint))
}

func TestReadMatchesDecode(t *testing.T) {
	t.Parallel()

	for _, v := range []uint64{0, 300, 70000, 1<<64 - 1} {
		enc := Encode(v)
		got, err := Read(bufio.NewReader(bytes.NewReader(enc)))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestReadUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, err := Read(bufio.NewReader(bytes.NewReader([]byte{0x80})))
	require.Error(t, err)
	require.True(t, errors.Is(err, codecerr.ErrUnexpectedEOF))
}
