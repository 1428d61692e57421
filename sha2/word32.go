package sha2

// rotr32 rotates x right by n bits within a 32-bit word, 0 < n < 32.
func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

func ch32(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func maj32(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// bigSigma0_32 and bigSigma1_32 use the Σ0/Σ1 rotation triple shared by
// SHA-224 and SHA-256: (2,13,22) and (6,11,25).
func bigSigma0_32(x uint32) uint32 {
	return rotr32(x, 2) ^ rotr32(x, 13) ^ rotr32(x, 22)
}

func bigSigma1_32(x uint32) uint32 {
	return rotr32(x, 6) ^ rotr32(x, 11) ^ rotr32(x, 25)
}

// smallSigma0_32 and smallSigma1_32 drive the message schedule expansion;
// the last entry of each rotation triple is a logical shift, not a rotate.
func smallSigma0_32(x uint32) uint32 {
	return rotr32(x, 7) ^ rotr32(x, 18) ^ (x >> 3)
}

func smallSigma1_32(x uint32) uint32 {
	return rotr32(x, 17) ^ rotr32(x, 19) ^ (x >> 10)
}
