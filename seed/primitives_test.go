package seed

import "testing"

func TestWordCodec(t *testing.T) {
	b := []byte{0x01, 0x23, 0x45, 0x67}
	if w := bytesToWord(b); w != 0x01234567 {
		t.Fatalf("bytesToWord = %08x", w)
	}
	out := make([]byte, 4)
	wordToBytes(0x89abcdef, out)
	if out[0] != 0x89 || out[1] != 0xab || out[2] != 0xcd || out[3] != 0xef {
		t.Fatalf("wordToBytes = %x", out)
	}
}

func TestRotations(t *testing.T) {
	if v := rotl(0x80000001, 1); v != 0x00000003 {
		t.Errorf("rotl = %08x", v)
	}
	if v := rotr(0x80000001, 1); v != 0xc0000000 {
		t.Errorf("rotr = %08x", v)
	}
	for n := 1; n < 32; n++ {
		x := uint32(0x9e3779b9)
		if rotr(rotl(x, n), n) != x {
			t.Errorf("rotr(rotl(x, %d)) != x", n)
		}
		if want := x<<uint(n) | x>>uint(32-n); rotl(x, n) != want {
			t.Errorf("rotl(x, %d) = %08x, want %08x", n, rotl(x, n), want)
		}
	}
}

func TestSubstitutions(t *testing.T) {
	cases := []struct {
		name string
		fn   func(byte) uint32
		want uint32
	}{
		{"ss0", ss0, 0x09090909},
		{"ss1", ss1, 0xa6a6a66d},
		{"ss2", ss2, 0x65848484},
		{"ss3", ss3, 0xe2e2e2e2},
	}
	for _, c := range cases {
		if got := c.fn(0xab); got != c.want {
			t.Errorf("%s(0xab) = %08x, want %08x", c.name, got, c.want)
		}
	}
}

func TestMixAndRound(t *testing.T) {
	if v := g(0); v != 0xb0b0b045 {
		t.Errorf("g(0) = %08x", v)
	}
	if v := g(0x01234567); v != 0xdfc3c3e7 {
		t.Errorf("g(0x01234567) = %08x", v)
	}
	if v := f(0x01234567, 0x89abcdef, 0xfedcba98); v != 0x3c3e3ef5 {
		t.Errorf("f = %08x", v)
	}
}

func TestExpandKey(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte((i*17 + 23) % 256)
	}
	rk := expandKey(key)
	want := map[int]uint32{0: 0xc6314302, 1: 0x622b5fe4, 2: 0xb4c56ac7, 3: 0xe5c627c3, 31: 0x1a2b22b5}
	for i, w := range want {
		if rk[i] != w {
			t.Errorf("rk[%d] = %08x, want %08x", i, rk[i], w)
		}
	}
	if again := expandKey(key); again != rk {
		t.Error("expandKey is not deterministic")
	}
}

func TestRoundConstantsCopy(t *testing.T) {
	c := RoundConstants()
	c[0] = 0
	if RoundConstants()[0] != 0x9e3779b9 {
		t.Fatal("round constants were modified through a copy")
	}
}
