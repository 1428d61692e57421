package sha2

import "encoding/binary"

// parseBlock64 reads the 16 big-endian words of a 128-byte block into w[0:16].
func parseBlock64(w *[80]uint64, block []byte) {
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(block[i*8:])
	}
}

// expandBlock64 derives W[16:rounds] from the 16 block words already in w.
func expandBlock64(w *[80]uint64, rounds int) {
	for i := 16; i < rounds; i++ {
		w[i] = smallSigma1_64(w[i-2]) + w[i-7] + smallSigma0_64(w[i-15]) + w[i-16]
	}
}

// compressBlock64 runs the round loop over the expanded schedule w and folds
// the result into state.
func compressBlock64(state *[8]uint64, w *[80]uint64, p *params64) {
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for t := 0; t < p.rounds; t++ {
		t1 := h + bigSigma1_64(e) + ch64(e, f, g) + p.k[t] + w[t]
		t2 := bigSigma0_64(a) + maj64(a, b, c)
		h, g, f = g, f, e
		e = d + t1
		d, c, b = c, b, a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
