package seed

import (
	"errors"

	"github.com/aacfactory/afseed/cipher"
	"github.com/aacfactory/afseed/padding"
)

type Options struct {
	Workers int
}

type Option func(*Options) error

// WithWorkers encrypts or decrypts the blocks of one call on up to n goroutines.
// The output is identical to the sequential one.
func WithWorkers(n int) Option {
	return func(options *Options) error {
		if n < 1 {
			return errors.New("seed: workers must be positive")
		}
		options.Workers = n
		return nil
	}
}

func newOptions(options []Option) (opt *Options, err error) {
	opt = &Options{Workers: 1}
	for _, option := range options {
		if err = option(opt); err != nil {
			return
		}
	}
	return
}

// Encrypt pads data and encrypts every block independently. Empty data
// encrypts to an empty slice.
func Encrypt(data []byte, key []byte, options ...Option) (out []byte, err error) {
	opt, optErr := newOptions(options)
	if optErr != nil {
		err = optErr
		return
	}
	block, blockErr := NewCipher(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	if len(data) == 0 {
		out = []byte{}
		return
	}
	out = padding.Pad(data, BlockSize)
	cipher.NewParallelECBEncryptor(block, opt.Workers).CryptBlocks(out, out)
	return
}

// Decrypt decrypts every block of data and removes the pad. Data that is not
// block aligned fails with *padding.SizeError, a malformed pad with
// *padding.PaddingError.
func Decrypt(data []byte, key []byte, options ...Option) (out []byte, err error) {
	opt, optErr := newOptions(options)
	if optErr != nil {
		err = optErr
		return
	}
	block, blockErr := NewCipher(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	if len(data) == 0 {
		out = []byte{}
		return
	}
	if len(data)%BlockSize != 0 {
		err = &padding.SizeError{Size: len(data), BlockSize: BlockSize}
		return
	}
	plain := make([]byte, len(data))
	cipher.NewParallelECBDecryptor(block, opt.Workers).CryptBlocks(plain, data)
	out, err = padding.Unpad(plain, BlockSize)
	return
}
