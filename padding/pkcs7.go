// Package padding implements value padding: every pad byte holds the pad
// length, at least one byte and at most one block is appended.
package padding

import "bytes"

// Pad returns a copy of data extended to a multiple of blockSize. Block
// aligned input, the empty one included, gets a whole extra block.
func Pad(data []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic("padding: invalid block size")
	}
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+n)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad validates the trailing pad of data and returns data without it.
// The result shares memory with data. It panics on the block sizes Pad rejects.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		panic("padding: invalid block size")
	}
	length := len(data)
	if length == 0 {
		return nil, ErrEmptyInput
	}
	if length%blockSize != 0 {
		return nil, &SizeError{Size: length, BlockSize: blockSize}
	}
	n := int(data[length-1])
	if n == 0 || n > blockSize {
		return nil, &PaddingError{Length: n, Index: -1}
	}
	for i := length - n; i < length; i++ {
		if data[i] != byte(n) {
			return nil, &PaddingError{Length: n, Index: i}
		}
	}
	return data[:length-n], nil
}
