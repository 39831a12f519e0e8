package padding

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when padding is removed from an empty buffer.
var ErrEmptyInput = errors.New("padding: empty input")

// SizeError reports a buffer whose length is not a multiple of the block size.
type SizeError struct {
	Size      int
	BlockSize int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("padding: data size %d is not a multiple of block size %d", e.Size, e.BlockSize)
}

// PaddingError reports a malformed pad. Index is the offset of the first
// inconsistent pad byte, or -1 when the pad length itself is out of range.
type PaddingError struct {
	Length int
	Index  int
}

func (e *PaddingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("padding: invalid pad length %d", e.Length)
	}
	return fmt.Sprintf("padding: invalid pad byte at %d for pad length %d", e.Index, e.Length)
}
