package bench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aacfactory/afseed/seed"
)

// LoadPrices reads one unsigned price per line after a header line.
// Lines that do not parse are skipped.
func LoadPrices(r io.Reader) (prices []uint32, err error) {
	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, ','); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		price, parseErr := strconv.ParseUint(line, 10, 32)
		if parseErr != nil {
			continue
		}
		prices = append(prices, uint32(price))
	}
	if scanErr := scanner.Err(); scanErr != nil {
		err = fmt.Errorf("bench: read prices: %w", scanErr)
		return
	}
	return
}

func LoadPricesFile(path string) (prices []uint32, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		err = fmt.Errorf("bench: open %s: %w", path, openErr)
		return
	}
	defer f.Close()
	prices, err = LoadPrices(f)
	return
}

// PriceToBlock stores the price big-endian in the first four bytes, byte i
// of the rest of the block holds i.
func PriceToBlock(price uint32) (block [seed.BlockSize]byte) {
	block[0] = byte(price >> 24)
	block[1] = byte(price >> 16)
	block[2] = byte(price >> 8)
	block[3] = byte(price)
	for i := 4; i < seed.BlockSize; i++ {
		block[i] = byte(i)
	}
	return
}

// BenchmarkKey is the fixed key of every trial, key[i] = (i*17 + 23) mod 256.
func BenchmarkKey() (key [seed.KeySize]byte) {
	for i := range key {
		key[i] = byte((i*17 + 23) % 256)
	}
	return
}
