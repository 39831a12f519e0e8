package padding_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aacfactory/afseed/padding"
)

func TestPad(t *testing.T) {
	cases := []struct {
		size int
		pad  int
	}{
		{0, 16}, {1, 15}, {15, 1}, {16, 16}, {17, 15}, {33, 15}, {1000, 8},
	}
	for _, c := range cases {
		data := bytes.Repeat([]byte{0xAA}, c.size)
		padded := padding.Pad(data, 16)
		if len(padded) != c.size+c.pad {
			t.Errorf("size %d: padded length %d, want %d", c.size, len(padded), c.size+c.pad)
			continue
		}
		if len(padded)%16 != 0 {
			t.Errorf("size %d: padded length %d not block aligned", c.size, len(padded))
		}
		if !bytes.Equal(padded[:c.size], data) {
			t.Errorf("size %d: data prefix changed", c.size)
		}
		for i, b := range padded[c.size:] {
			if int(b) != c.pad {
				t.Errorf("size %d: pad byte %d is %d, want %d", c.size, i, b, c.pad)
			}
		}
	}
}

func TestPadDoesNotTouchInput(t *testing.T) {
	backing := make([]byte, 4, 32)
	copy(backing, "abcd")
	_ = padding.Pad(backing, 16)
	if got := backing[:8]; !bytes.Equal(got, []byte{'a', 'b', 'c', 'd', 0, 0, 0, 0}) {
		t.Errorf("input backing array modified: %x", got)
	}
}

func TestUnpad(t *testing.T) {
	for _, size := range []int{0, 1, 5, 15, 16, 17, 31, 32, 100} {
		data := bytes.Repeat([]byte{0x42}, size)
		got, err := padding.Unpad(padding.Pad(data, 16), 16)
		if err != nil {
			t.Errorf("size %d: %v", size, err)
			continue
		}
		if !bytes.Equal(got, data) {
			t.Errorf("size %d: round trip mismatch", size)
		}
	}
}

func TestUnpadErrors(t *testing.T) {
	full := bytes.Repeat([]byte{16}, 16)
	inconsistent := bytes.Repeat([]byte{4}, 16)
	inconsistent[13] = 3

	if _, err := padding.Unpad(nil, 16); !errors.Is(err, padding.ErrEmptyInput) {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}

	var sizeErr *padding.SizeError
	if _, err := padding.Unpad(full[:15], 16); !errors.As(err, &sizeErr) {
		t.Errorf("short: got %v, want SizeError", err)
	} else if sizeErr.Size != 15 {
		t.Errorf("short: SizeError.Size = %d", sizeErr.Size)
	}

	var padErr *padding.PaddingError
	zero := make([]byte, 16)
	if _, err := padding.Unpad(zero, 16); !errors.As(err, &padErr) || padErr.Index != -1 {
		t.Errorf("zero pad: got %v, want PaddingError on length", err)
	}
	tooLong := bytes.Repeat([]byte{17}, 32)
	if _, err := padding.Unpad(tooLong, 16); !errors.As(err, &padErr) || padErr.Length != 17 {
		t.Errorf("pad 17: got %v, want PaddingError", err)
	}
	if _, err := padding.Unpad(inconsistent, 16); !errors.As(err, &padErr) || padErr.Index != 13 {
		t.Errorf("inconsistent: got %v, want PaddingError at 13", err)
	}
}

func TestInvalidBlockSize(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	for _, size := range []int{-1, 0, 256} {
		expectPanic("pad", func() { padding.Pad([]byte{1}, size) })
		expectPanic("unpad", func() { _, _ = padding.Unpad([]byte{1}, size) })
	}
}
