// Package cipher implements block modes over a crypto/cipher.Block where
// every block is processed on its own, without chaining or IV.
package cipher

import (
	goCipher "crypto/cipher"
	"sync"

	"github.com/aacfactory/afseed/internal/alias"
)

type ecb struct {
	b         goCipher.Block
	blockSize int
	workers   int
	decrypt   bool
}

func newECB(b goCipher.Block, workers int, decrypt bool) *ecb {
	if workers < 1 {
		workers = 1
	}
	return &ecb{
		b:         b,
		blockSize: b.BlockSize(),
		workers:   workers,
		decrypt:   decrypt,
	}
}

func (x *ecb) validate(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("cipher: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("cipher: output smaller than input")
	}
	if alias.InexactOverlap(dst[:len(src)], src) {
		panic("cipher: invalid buffer overlap")
	}
}

func (x *ecb) BlockSize() int { return x.blockSize }

func (x *ecb) CryptBlocks(dst, src []byte) {
	x.validate(dst, src)
	if len(src) == 0 {
		return
	}
	blocks := len(src) / x.blockSize
	if x.workers == 1 || blocks < 2 {
		x.crypt(dst, src)
		return
	}
	x.cryptParallel(dst, src, blocks)
}

func (x *ecb) crypt(dst, src []byte) {
	for len(src) > 0 {
		if x.decrypt {
			x.b.Decrypt(dst[:x.blockSize], src[:x.blockSize])
		} else {
			x.b.Encrypt(dst[:x.blockSize], src[:x.blockSize])
		}
		src = src[x.blockSize:]
		dst = dst[x.blockSize:]
	}
}

// cryptParallel splits src into contiguous runs of blocks, each run is written
// to its own range of dst so the output matches the sequential order.
func (x *ecb) cryptParallel(dst, src []byte, blocks int) {
	workers := x.workers
	if workers > blocks {
		workers = blocks
	}
	per := (blocks + workers - 1) / workers
	chunk := per * x.blockSize

	offsets := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for off := range offsets {
				end := off + chunk
				if end > len(src) {
					end = len(src)
				}
				x.crypt(dst[off:end], src[off:end])
			}
		}()
	}
	for off := 0; off < len(src); off += chunk {
		offsets <- off
	}
	close(offsets)
	wg.Wait()
}

// NewECBEncryptor returns a BlockMode encrypting each block of its input in order.
func NewECBEncryptor(b goCipher.Block) goCipher.BlockMode {
	return newECB(b, 1, false)
}

func NewECBDecryptor(b goCipher.Block) goCipher.BlockMode {
	return newECB(b, 1, true)
}

// NewParallelECBEncryptor spreads the blocks over at most workers goroutines.
// b must be safe for concurrent use.
func NewParallelECBEncryptor(b goCipher.Block, workers int) goCipher.BlockMode {
	return newECB(b, workers, false)
}

func NewParallelECBDecryptor(b goCipher.Block, workers int) goCipher.BlockMode {
	return newECB(b, workers, true)
}
