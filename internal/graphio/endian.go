package graphio

import (
	"fmt"
	"unsafe"

	"github.com/TFMV/graphcodec/internal/codecerr"
)

// CheckHostEndianness fails with codecerr.ErrHostEndianness on a big-endian
// host. The wire format declares little-endian only; this codec does not
// byte-swap on the fly, matching the reference implementation's refusal to
// run on the wrong host.
func CheckHostEndianness() error {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] != 1 {
		return fmt.Errorf("checking host endianness: %w", codecerr.ErrHostEndianness)
	}
	return nil
}
