package afseed_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aacfactory/afseed"
	"github.com/aacfactory/afseed/padding"
	"github.com/aacfactory/afseed/seed"
)

func TestParseKey(t *testing.T) {
	raw, err := afseed.ParseKey("1728394a5b6c7d8e9fb0c1d2e3f40516")
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(raw) != "1728394a5b6c7d8e9fb0c1d2e3f40516" {
		t.Errorf("hex key decoded to %x", raw)
	}
	derived, err := afseed.ParseKey("benchmark key material")
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(derived) != "66a0da6224c28b87cfe16a8fa2dcca5a" {
		t.Errorf("derived key %x", derived)
	}
	if _, err := afseed.ParseKey("  "); err == nil {
		t.Error("blank key accepted")
	}
}

func TestDeriveKey(t *testing.T) {
	salt := make([]byte, 16)
	for i := range salt {
		salt[i] = byte(i)
	}
	key := afseed.DeriveKey([]byte("correct horse"), salt, 4096)
	if hex.EncodeToString(key) != "8750ad7301ef1b2b80b2ce8deddc4b20" {
		t.Errorf("DeriveKey = %x", key)
	}
}

func TestSealOpen(t *testing.T) {
	pass := []byte("correct horse")
	for _, size := range []int{0, 1, 16, 33, 4096} {
		plain := bytes.Repeat([]byte{0xAA}, size)
		sealed, err := afseed.Seal(pass, plain, afseed.WithIterations(16), afseed.WithWorkers(2))
		if err != nil {
			t.Fatalf("size %d: seal: %v", size, err)
		}
		opened, err := afseed.Open(pass, sealed)
		if err != nil {
			t.Fatalf("size %d: open: %v", size, err)
		}
		if !bytes.Equal(opened, plain) {
			t.Errorf("size %d: opened content differs", size)
		}
	}
}

func TestSealDeterministicWithRand(t *testing.T) {
	plain := []byte("same salt, same envelope")
	a, err := afseed.Seal([]byte("p"), plain, afseed.WithRand(bytes.NewReader(make([]byte, 16))), afseed.WithIterations(8))
	if err != nil {
		t.Fatal(err)
	}
	b, err := afseed.Seal([]byte("p"), plain, afseed.WithRand(bytes.NewReader(make([]byte, 16))), afseed.WithIterations(8))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("envelopes differ for identical salt")
	}
	if _, err := afseed.Seal([]byte("p"), plain, afseed.WithRand(bytes.NewReader(nil))); err == nil {
		t.Error("empty salt source accepted")
	}
}

func TestOpenHandBuiltEnvelope(t *testing.T) {
	pass := []byte("p")
	plain := []byte("hand built envelope")
	salt := make([]byte, 16)
	ciphertext, err := seed.Encrypt(plain, afseed.DeriveKey(pass, salt, 8))
	if err != nil {
		t.Fatal(err)
	}
	envelope := []byte("AFSEED")
	envelope = append(envelope, 0x01)
	envelope = append(envelope, 0x00, 0x00, 0x00, 0x08)
	envelope = append(envelope, 0x10)
	envelope = append(envelope, salt...)
	envelope = append(envelope, 0x00, 0x00, 0x00, byte(len(ciphertext)))
	envelope = append(envelope, ciphertext...)

	opened, err := afseed.Open(pass, envelope)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(opened, plain) {
		t.Errorf("opened %q", opened)
	}
	sealed, err := afseed.Seal(pass, plain, afseed.WithRand(bytes.NewReader(salt)), afseed.WithIterations(8))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(sealed, envelope) {
		t.Errorf("Seal framing %x, want %x", sealed, envelope)
	}
}

func TestOpenInvalid(t *testing.T) {
	sealed, err := afseed.Seal([]byte("p"), []byte("payload"), afseed.WithIterations(8))
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string][]byte{
		"empty":           nil,
		"magic":           append([]byte("AFSEEX"), sealed[6:]...),
		"truncated":       sealed[:len(sealed)-1],
		"trailing":        append(append([]byte(nil), sealed...), 0),
		"version":         append(append([]byte("AFSEED"), 2), sealed[7:]...),
		"zero iterations": append(append([]byte("AFSEED\x01"), 0, 0, 0, 0), sealed[11:]...),
		"huge iterations": append(append([]byte("AFSEED\x01"), 0xff, 0xff, 0xff, 0xff), sealed[11:]...),
		"short salt":      append(append([]byte("AFSEED\x01"), 0, 0, 0, 8, 1, 0), 0, 0, 0, 0),
	}
	for name, in := range cases {
		if _, err := afseed.Open([]byte("p"), in); !errors.Is(err, afseed.ErrInvalidEnvelope) {
			t.Errorf("%s: got %v, want ErrInvalidEnvelope", name, err)
		}
	}
}

func TestOpenWrongPassphrase(t *testing.T) {
	sealed, err := afseed.Seal([]byte("right"), bytes.Repeat([]byte{1}, 40), afseed.WithIterations(8))
	if err != nil {
		t.Fatal(err)
	}
	opened, err := afseed.Open([]byte("wrong"), sealed)
	if err == nil {
		if bytes.Equal(opened, bytes.Repeat([]byte{1}, 40)) {
			t.Fatal("wrong passphrase opened the envelope")
		}
		return
	}
	var padErr *padding.PaddingError
	if !errors.As(err, &padErr) {
		t.Errorf("open with wrong passphrase: got %v, want PaddingError", err)
	}
}

func TestWithIterationsBounds(t *testing.T) {
	for _, n := range []int{0, afseed.MaxIterations + 1} {
		if _, err := afseed.Seal([]byte("p"), nil, afseed.WithIterations(n)); err == nil {
			t.Errorf("iterations %d accepted", n)
		}
	}
}

func TestSealFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "plain.txt")
	sealed := filepath.Join(dir, "out", "plain.afseed")
	back := filepath.Join(dir, "plain.back")
	if err := os.WriteFile(src, []byte("file content"), 0600); err != nil {
		t.Fatal(err)
	}
	pass := []byte("p")
	if err := afseed.SealFile(pass, src, sealed, false, afseed.WithIterations(8)); err != nil {
		t.Fatal(err)
	}
	if err := afseed.SealFile(pass, src, sealed, false); err == nil {
		t.Error("existing output overwritten")
	}
	if err := afseed.OpenFile(pass, sealed, back, false); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "file content" {
		t.Errorf("opened file = %q", got)
	}
}
