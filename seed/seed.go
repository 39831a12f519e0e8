// Package seed implements a SEED shaped 128-bit Feistel block cipher.
//
// The substitutions and the key schedule are simplified stand-ins kept bit
// exact with earlier benchmark runs. The cipher is a benchmarking workload,
// it does not provide confidentiality.
package seed

import (
	"crypto/cipher"
	"strconv"

	"github.com/aacfactory/afseed/internal/alias"
)

const (
	BlockSize = 16
	KeySize   = 16
	Rounds    = 16
)

type KeySizeError int

func (k KeySizeError) Error() string {
	return "seed: invalid key size " + strconv.Itoa(int(k))
}

type seedCipher struct {
	rk [2 * Rounds]uint32
}

// NewCipher expands the key once and returns a cipher.Block reusing the schedule.
// The returned block is safe for concurrent use.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k != KeySize {
		return nil, KeySizeError(k)
	}
	c := &seedCipher{rk: expandKey(key)}
	return c, nil
}

func (c *seedCipher) BlockSize() int { return BlockSize }

func (c *seedCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("seed: input not full block")
	}
	if len(dst) < BlockSize {
		panic("seed: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("seed: invalid buffer overlap")
	}
	cryptBlock(&c.rk, dst, src, false)
}

func (c *seedCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("seed: input not full block")
	}
	if len(dst) < BlockSize {
		panic("seed: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("seed: invalid buffer overlap")
	}
	cryptBlock(&c.rk, dst, src, true)
}

// EncryptBlock encrypts one block, the key schedule is derived on every call.
func EncryptBlock(plaintext [BlockSize]byte, key [KeySize]byte) (ciphertext [BlockSize]byte) {
	rk := expandKey(key[:])
	cryptBlock(&rk, ciphertext[:], plaintext[:], false)
	return
}

// DecryptBlock inverts EncryptBlock.
func DecryptBlock(ciphertext [BlockSize]byte, key [KeySize]byte) (plaintext [BlockSize]byte) {
	rk := expandKey(key[:])
	cryptBlock(&rk, plaintext[:], ciphertext[:], true)
	return
}
