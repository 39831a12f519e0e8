package afseed

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/aacfactory/afseed/kdf"
	"github.com/aacfactory/afseed/seed"
	"golang.org/x/crypto/pbkdf2"
)

const (
	DefaultIterations = 4096
	MaxIterations     = 1 << 20
)

// ParseKey accepts a raw key written as 32 hex digits. Any other text is
// condensed to a key with the counter mode KDF over SHA-256.
func ParseKey(s string) (key []byte, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		err = errors.New("afseed: parse key failed, key is required")
		return
	}
	if len(s) == 2*seed.KeySize {
		if raw, decodeErr := hex.DecodeString(s); decodeErr == nil {
			key = raw
			return
		}
	}
	key, err = kdf.Kdf(sha256.New(), []byte(s), seed.KeySize)
	if err != nil {
		err = errors.Join(errors.New("afseed: parse key failed"), err)
		return
	}
	return
}

// DeriveKey stretches a passphrase into a cipher key with PBKDF2-SHA256.
func DeriveKey(passphrase []byte, salt []byte, iterations int) []byte {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return pbkdf2.Key(passphrase, salt, iterations, seed.KeySize, sha256.New)
}
