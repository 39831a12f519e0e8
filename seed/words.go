package seed

import (
	"encoding/binary"
	"math/bits"
)

// bytesToWord reads b[0:4] as a big-endian word, b[0] being the most significant byte.
func bytesToWord(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func wordToBytes(w uint32, b []byte) {
	binary.BigEndian.PutUint32(b, w)
}

// rotl and rotr reduce n modulo 32, a zero rotation is the identity.
func rotl(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, n)
}

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}
