// Package kdf implements a counter mode key derivation function over any hash.
package kdf

import (
	"encoding/binary"
	"errors"
	"hash"
)

var ErrKeyTooLong = errors.New("kdf: key length too long")

// Kdf returns length bytes of Hash(z || ct) for ct = 1, 2, ... in big-endian.
func Kdf(md hash.Hash, z []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, errors.New("kdf: negative key length")
	}
	limit := uint64(length+md.Size()-1) / uint64(md.Size())
	if limit >= uint64(1<<32)-1 {
		return nil, ErrKeyTooLong
	}
	var countBytes [4]byte
	var ct uint32 = 1
	k := make([]byte, 0, int(limit)*md.Size())
	for i := 0; i < int(limit); i++ {
		binary.BigEndian.PutUint32(countBytes[:], ct)
		md.Reset()
		md.Write(z)
		md.Write(countBytes[:])
		k = md.Sum(k)
		ct++
	}
	return k[:length], nil
}
