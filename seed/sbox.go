package seed

// The four substitutions are arithmetic stand-ins for the SEED tables,
// every product wraps modulo 2^32.

func ss0(x byte) uint32 {
	return ((uint32(x) * 0x1B) & 0xFF) * 0x01010101
}

func ss1(x byte) uint32 {
	return ((uint32(x) ^ 0x5A) * 0x3D) * 0x01010101
}

func ss2(x byte) uint32 {
	return rotr(uint32(x)*0x2F*0x01010101, 8)
}

func ss3(x byte) uint32 {
	return rotl(((uint32(x)+0x37)&0xFF)*0x01010101, 16)
}

// g substitutes the bytes of x, most significant first, and folds them with xor.
func g(x uint32) uint32 {
	return ss0(byte(x>>24)) ^ ss1(byte(x>>16)) ^ ss2(byte(x>>8)) ^ ss3(byte(x))
}
