package seed

// cryptBlock runs the Feistel rounds over src into dst. Decryption walks the
// same rounds backwards, the round key order is never reversed.
func cryptBlock(rk *[2 * Rounds]uint32, dst, src []byte, decrypt bool) {
	l0 := bytesToWord(src[0:4])
	l1 := bytesToWord(src[4:8])
	r0 := bytesToWord(src[8:12])
	r1 := bytesToWord(src[12:16])

	for i := 0; i < Rounds; i++ {
		round := i
		if decrypt {
			round = Rounds - 1 - i
		}
		f0 := f(r0, rk[2*round], rk[2*round+1])
		f1 := f(r1, rk[2*round+1], rk[2*round])
		l0, l1, r0, r1 = r0, r1, l0^f0, l1^f1
	}

	// the last swap is kept
	wordToBytes(r0, dst[0:4])
	wordToBytes(r1, dst[4:8])
	wordToBytes(l0, dst[8:12])
	wordToBytes(l1, dst[12:16])
}
