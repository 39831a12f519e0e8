package afseed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func pathExist(v string) (ok bool) {
	_, err := os.Stat(v)
	if err == nil {
		ok = true
		return
	}
	ok = !os.IsNotExist(err)
	return
}

// SealFile seals the content of src into dst. An existing dst is kept unless overwrite is set.
func SealFile(passphrase []byte, src string, dst string, overwrite bool, options ...SealOption) (err error) {
	return transformFile(src, dst, overwrite, func(in []byte) ([]byte, error) {
		return Seal(passphrase, in, options...)
	})
}

// OpenFile opens the sealed src and writes the plaintext into dst.
func OpenFile(passphrase []byte, src string, dst string, overwrite bool, options ...SealOption) (err error) {
	return transformFile(src, dst, overwrite, func(in []byte) ([]byte, error) {
		return Open(passphrase, in, options...)
	})
}

func transformFile(src string, dst string, overwrite bool, fn func([]byte) ([]byte, error)) (err error) {
	if !overwrite && pathExist(dst) {
		err = fmt.Errorf("afseed: %s already exists", dst)
		return
	}
	in, readErr := os.ReadFile(src)
	if readErr != nil {
		err = fmt.Errorf("afseed: read %s: %w", src, readErr)
		return
	}
	out, fnErr := fn(in)
	if fnErr != nil {
		err = fnErr
		return
	}
	if dir := filepath.Dir(dst); !pathExist(dir) {
		if mdErr := os.MkdirAll(dir, 0755); mdErr != nil {
			err = errors.Join(fmt.Errorf("afseed: create %s failed", dir), mdErr)
			return
		}
	}
	if writeErr := os.WriteFile(dst, out, 0600); writeErr != nil {
		err = fmt.Errorf("afseed: write %s: %w", dst, writeErr)
		return
	}
	return
}
