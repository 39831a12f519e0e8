package seed

// f is the round function applied to each half word of the right side.
func f(x, k0, k1 uint32) uint32 {
	g1 := g(x ^ k0)
	g2 := g(rotl(x^k1, 8))
	return rotl(g1+g2, 1)
}
