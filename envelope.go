package afseed

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/aacfactory/afseed/seed"
	"golang.org/x/crypto/cryptobyte"
)

const (
	envelopeMagic   = "AFSEED"
	envelopeVersion = uint8(1)
	saltSize        = 16
)

var ErrInvalidEnvelope = errors.New("afseed: invalid sealed envelope")

type SealOptions struct {
	Rand       io.Reader
	Iterations int
	Workers    int
}

type SealOption func(*SealOptions) error

// WithRand sets the salt source, crypto/rand by default.
func WithRand(r io.Reader) SealOption {
	return func(options *SealOptions) error {
		if r == nil {
			return fmt.Errorf("rand reader is nil")
		}
		options.Rand = r
		return nil
	}
}

func WithIterations(n int) SealOption {
	return func(options *SealOptions) error {
		if n < 1 || n > MaxIterations {
			return fmt.Errorf("iterations must be in 1..%d", MaxIterations)
		}
		options.Iterations = n
		return nil
	}
}

func WithWorkers(n int) SealOption {
	return func(options *SealOptions) error {
		if n < 1 {
			return fmt.Errorf("workers must be positive")
		}
		options.Workers = n
		return nil
	}
}

func newSealOptions(options []SealOption) (opt *SealOptions, err error) {
	opt = &SealOptions{
		Rand:       rand.Reader,
		Iterations: DefaultIterations,
		Workers:    1,
	}
	for _, option := range options {
		if optErr := option(opt); optErr != nil {
			err = errors.Join(errors.New("afseed: invalid seal option"), optErr)
			return
		}
	}
	return
}

// Seal encrypts plaintext under a key derived from passphrase and frames it as
//
//	"AFSEED" | version u8 | iterations u32 | salt u8-prefixed | ciphertext u32-prefixed
func Seal(passphrase []byte, plaintext []byte, options ...SealOption) (sealed []byte, err error) {
	opt, optErr := newSealOptions(options)
	if optErr != nil {
		err = optErr
		return
	}
	salt := make([]byte, saltSize)
	if _, readErr := io.ReadFull(opt.Rand, salt); readErr != nil {
		err = errors.Join(errors.New("afseed: seal failed"), errors.New("read salt failed"), readErr)
		return
	}
	key := DeriveKey(passphrase, salt, opt.Iterations)
	ciphertext, encErr := seed.Encrypt(plaintext, key, seed.WithWorkers(opt.Workers))
	if encErr != nil {
		err = errors.Join(errors.New("afseed: seal failed"), encErr)
		return
	}
	b := cryptobyte.NewBuilder(make([]byte, 0, len(envelopeMagic)+1+4+1+saltSize+4+len(ciphertext)))
	b.AddBytes([]byte(envelopeMagic))
	b.AddUint8(envelopeVersion)
	b.AddUint32(uint32(opt.Iterations))
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(salt)
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(ciphertext)
	})
	sealed, err = b.Bytes()
	if err != nil {
		err = errors.Join(errors.New("afseed: seal failed"), err)
		return
	}
	return
}

// Open reverses Seal. A wrong passphrase usually surfaces as a padding error.
// Envelopes asking for more than MaxIterations are rejected before any key
// derivation.
func Open(passphrase []byte, sealed []byte, options ...SealOption) (plaintext []byte, err error) {
	opt, optErr := newSealOptions(options)
	if optErr != nil {
		err = optErr
		return
	}
	s := cryptobyte.String(sealed)
	var magic []byte
	var version uint8
	var iterations, size uint32
	var salt cryptobyte.String
	var ciphertext []byte
	if !s.ReadBytes(&magic, len(envelopeMagic)) || string(magic) != envelopeMagic ||
		!s.ReadUint8(&version) || version != envelopeVersion ||
		!s.ReadUint32(&iterations) || iterations == 0 || iterations > MaxIterations ||
		!s.ReadUint8LengthPrefixed(&salt) || len(salt) != saltSize ||
		!s.ReadUint32(&size) || uint64(size) != uint64(len(s)) ||
		!s.ReadBytes(&ciphertext, len(s)) {
		err = ErrInvalidEnvelope
		return
	}
	key := DeriveKey(passphrase, salt, int(iterations))
	plaintext, err = seed.Decrypt(ciphertext, key, seed.WithWorkers(opt.Workers))
	if err != nil {
		err = errors.Join(errors.New("afseed: open failed"), err)
		return
	}
	return
}
