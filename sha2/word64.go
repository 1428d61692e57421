package sha2

// rotr64 rotates x right by n bits within a 64-bit word, 0 < n < 64.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

func ch64(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func maj64(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// bigSigma0_64 and bigSigma1_64 use the Σ0/Σ1 rotation triple shared by
// SHA-384 and SHA-512: (28,34,39) and (14,18,41).
func bigSigma0_64(x uint64) uint64 {
	return rotr64(x, 28) ^ rotr64(x, 34) ^ rotr64(x, 39)
}

func bigSigma1_64(x uint64) uint64 {
	return rotr64(x, 14) ^ rotr64(x, 18) ^ rotr64(x, 41)
}

func smallSigma0_64(x uint64) uint64 {
	return rotr64(x, 1) ^ rotr64(x, 8) ^ (x >> 7)
}

func smallSigma1_64(x uint64) uint64 {
	return rotr64(x, 19) ^ rotr64(x, 61) ^ (x >> 6)
}
