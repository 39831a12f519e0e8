package seed

// kc are the key schedule constants, shared by every key.
var kc = [Rounds]uint32{
	0x9e3779b9, 0x3c6ef373, 0x78dde6e6, 0xf1bbcdcc,
	0xe3779b99, 0xc6ef3733, 0x8dde6e67, 0x1bbcdccf,
	0x3779b99e, 0x6ef3733c, 0xdde6e678, 0xbbcdccf1,
	0x779b99e3, 0xef3733c6, 0xde6e678d, 0xbcdccf1b,
}

// RoundConstants returns a copy of the key schedule constants.
func RoundConstants() [Rounds]uint32 {
	return kc
}

// expandKey derives the 2*Rounds round keys of a 16 bytes key.
func expandKey(key []byte) (rk [2 * Rounds]uint32) {
	a := bytesToWord(key[0:4])
	b := bytesToWord(key[4:8])
	c := bytesToWord(key[8:12])
	d := bytesToWord(key[12:16])
	for i := 0; i < Rounds; i++ {
		t0 := a + c - kc[i]
		t1 := b - d + kc[i]
		s := int(kc[i] & 0x1F)
		rk[2*i] = rotl(t0, s)
		rk[2*i+1] = rotl(t1, s)
		if i%2 == 0 {
			a = rotr(a, 8)
			b = rotl(b, 8)
		} else {
			a, c = c, a
			b, d = d, b
		}
	}
	return
}
