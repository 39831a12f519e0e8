// Package bench times the seed cipher over blocks built from a price dataset.
package bench

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/aacfactory/afseed/seed"
)

type Mode string

const (
	// ModeBlock calls seed.EncryptBlock, the key schedule is derived per block.
	ModeBlock Mode = "block"
	// ModeCipher expands the key once through seed.NewCipher.
	ModeCipher Mode = "cipher"
	// ModeStream encrypts all blocks in one padded seed.Encrypt call.
	ModeStream Mode = "stream"
)

func ParseMode(s string) (mode Mode, err error) {
	switch Mode(s) {
	case ModeBlock, ModeCipher, ModeStream:
		mode = Mode(s)
	case "":
		mode = ModeBlock
	default:
		err = fmt.Errorf("bench: unknown mode %q", s)
	}
	return
}

var DefaultSizes = []int{10000, 50000, 100000, 250000, 500000, 750000, 1000000}

const (
	defaultRuns   = 3
	verifyRecords = 100
)

type Options struct {
	Algorithm string
	Dataset   string
	Mode      Mode
	Runs      int
	Workers   int
	Key       [seed.KeySize]byte
	Log       Logger
}

type Option func(*Options) error

func WithDataset(name string) Option {
	return func(options *Options) error {
		if name == "" {
			return errors.New("dataset name is empty")
		}
		options.Dataset = name
		return nil
	}
}

func WithMode(mode Mode) Option {
	return func(options *Options) error {
		if _, err := ParseMode(string(mode)); err != nil {
			return err
		}
		options.Mode = mode
		return nil
	}
}

// WithRuns sets the trials per size, only the last (warm) trial is kept.
func WithRuns(n int) Option {
	return func(options *Options) error {
		if n < 1 {
			return errors.New("runs must be positive")
		}
		options.Runs = n
		return nil
	}
}

// WithWorkers parallelizes the blocks of ModeStream trials. Other modes run
// on one goroutine and log that the setting is ignored.
func WithWorkers(n int) Option {
	return func(options *Options) error {
		if n < 1 {
			return errors.New("workers must be positive")
		}
		options.Workers = n
		return nil
	}
}

func WithKey(key [seed.KeySize]byte) Option {
	return func(options *Options) error {
		options.Key = key
		return nil
	}
}

func WithLogger(log Logger) Option {
	return func(options *Options) error {
		if log == nil {
			return errors.New("logger is nil")
		}
		options.Log = log
		return nil
	}
}

func newOptions(options []Option) (opt *Options, err error) {
	opt = &Options{
		Algorithm: "SEED",
		Dataset:   "paysim_32bit",
		Mode:      ModeBlock,
		Runs:      defaultRuns,
		Workers:   1,
		Key:       BenchmarkKey(),
		Log:       defaultLogger(),
	}
	for _, option := range options {
		if optErr := option(opt); optErr != nil {
			err = errors.Join(errors.New("bench: invalid option"), optErr)
			return
		}
	}
	return
}

// Verify round trips a spread of records through the block API.
func Verify(prices []uint32, key [seed.KeySize]byte) error {
	if len(prices) == 0 {
		return errors.New("bench: no prices to verify")
	}
	for i := 0; i < verifyRecords; i++ {
		idx := i * 10000 % len(prices)
		plain := PriceToBlock(prices[idx])
		if seed.DecryptBlock(seed.EncryptBlock(plain, key), key) != plain {
			return fmt.Errorf("bench: record %d does not round trip", idx)
		}
	}
	return nil
}

// Run verifies the cipher then times every sample size. Sizes beyond the
// dataset are logged and skipped.
func Run(prices []uint32, sizes []int, options ...Option) (results []Result, err error) {
	opt, optErr := newOptions(options)
	if optErr != nil {
		err = optErr
		return
	}
	if err = Verify(prices, opt.Key); err != nil {
		return
	}
	if opt.Mode != ModeStream && opt.Workers > 1 {
		opt.Log.Printf("bench: %d workers ignored, %s mode runs on one goroutine", opt.Workers, opt.Mode)
		opt.Workers = 1
	}
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	results = make([]Result, 0, len(sizes))
	for i, size := range sizes {
		if size < 1 || size > len(prices) {
			opt.Log.Printf("bench: skip size %d, %d records available", size, len(prices))
			continue
		}
		opt.Log.Printf("bench: test %d/%d, %d blocks (%.2f MB)", i+1, len(sizes), size, float64(size*seed.BlockSize)/mb)
		var result Result
		for r := 0; r < opt.Runs; r++ {
			trial, trialErr := runTrial(prices[:size], opt)
			if trialErr != nil {
				err = trialErr
				return
			}
			result = trial
		}
		result.ID = len(results) + 1
		opt.Log.Printf("bench: encrypted in %.3f ms (%.0fK blocks/sec), memory %.1f MB",
			result.Timing.EncryptionTimeMs, result.Timing.EncryptionSpeedOpsSec/1000, result.Memory.UsageMB)
		results = append(results, result)
	}
	return
}

func runTrial(prices []uint32, opt *Options) (result Result, err error) {
	n := len(prices)
	result = Result{
		Algorithm:       opt.Algorithm,
		Dataset:         opt.Dataset,
		Mode:            opt.Mode,
		Workers:         opt.Workers,
		BlocksProcessed: n,
		DataSizeBytes:   n * seed.BlockSize,
	}
	plain := make([]byte, n*seed.BlockSize)
	for i, price := range prices {
		block := PriceToBlock(price)
		copy(plain[i*seed.BlockSize:], block[:])
	}

	var encrypt, decrypt func() ([]byte, error)
	var encrypted []byte
	switch opt.Mode {
	case ModeCipher:
		block, blockErr := seed.NewCipher(opt.Key[:])
		if blockErr != nil {
			err = blockErr
			return
		}
		encrypt = func() ([]byte, error) {
			out := make([]byte, len(plain))
			for off := 0; off < len(plain); off += seed.BlockSize {
				block.Encrypt(out[off:], plain[off:])
			}
			return out, nil
		}
		decrypt = func() ([]byte, error) {
			out := make([]byte, len(encrypted))
			for off := 0; off < len(encrypted); off += seed.BlockSize {
				block.Decrypt(out[off:], encrypted[off:])
			}
			return out, nil
		}
	case ModeStream:
		encrypt = func() ([]byte, error) {
			return seed.Encrypt(plain, opt.Key[:], seed.WithWorkers(opt.Workers))
		}
		decrypt = func() ([]byte, error) {
			return seed.Decrypt(encrypted, opt.Key[:], seed.WithWorkers(opt.Workers))
		}
	default:
		encrypt = func() ([]byte, error) {
			out := make([]byte, len(plain))
			var block [seed.BlockSize]byte
			for off := 0; off < len(plain); off += seed.BlockSize {
				copy(block[:], plain[off:])
				c := seed.EncryptBlock(block, opt.Key)
				copy(out[off:], c[:])
			}
			return out, nil
		}
		decrypt = func() ([]byte, error) {
			out := make([]byte, len(encrypted))
			var block [seed.BlockSize]byte
			for off := 0; off < len(encrypted); off += seed.BlockSize {
				copy(block[:], encrypted[off:])
				p := seed.DecryptBlock(block, opt.Key)
				copy(out[off:], p[:])
			}
			return out, nil
		}
	}

	memBefore := MemoryUsage()
	start := time.Now()
	encrypted, err = encrypt()
	result.Timing.EncryptionTimeMs = milliseconds(time.Since(start))
	if err != nil {
		err = errors.Join(errors.New("bench: encrypt failed"), err)
		return
	}
	memAfterEncrypt := MemoryUsage()

	start = time.Now()
	decrypted, decErr := decrypt()
	result.Timing.DecryptionTimeMs = milliseconds(time.Since(start))
	if decErr != nil {
		err = errors.Join(errors.New("bench: decrypt failed"), decErr)
		return
	}
	memAfterDecrypt := MemoryUsage()

	if !bytes.Equal(decrypted, plain) {
		err = fmt.Errorf("bench: %d blocks did not round trip", n)
		return
	}
	result.Memory.UsageBytes, result.Memory.Estimated = memoryDelta(n, memBefore, memAfterEncrypt, memAfterDecrypt)
	result.complete()
	return
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
