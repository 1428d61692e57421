package sha2

import (
	"encoding/binary"
	"encoding/hex"
)

// blockBytes64 is the block size, in bytes, shared by SHA-384 and SHA-512.
const blockBytes64 = 128

// digest64 is the streaming state machine for the 64-bit-word engine.
type digest64 struct {
	p      *params64
	h      [8]uint64
	x      [blockBytes64]byte
	nx     int
	bitLen uint64
}

func newDigest64(p *params64) *digest64 {
	d := &digest64{p: p}
	d.Reset()
	return d
}

func (d *digest64) Reset() {
	d.h = d.p.h0
	d.nx = 0
	d.bitLen = 0
}

func (d *digest64) Size() int { return d.p.digestWords * 8 }

func (d *digest64) BlockSize() int { return blockBytes64 }

func (d *digest64) MessageLength() uint64 { return d.bitLen }

func (d *digest64) Write(p []byte) (n int, err error) {
	n = len(p)
	if n == 0 {
		return 0, nil
	}

	added := uint64(n) * 8
	if d.bitLen+added < d.bitLen {
		return 0, &LengthOverflowError{Consumed: d.bitLen, Additional: added}
	}
	d.bitLen += added

	if d.nx > 0 {
		copied := copy(d.x[d.nx:], p)
		d.nx += copied
		if d.nx == blockBytes64 {
			d.compress(d.x[:])
			d.nx = 0
		}
		p = p[copied:]
	}
	for len(p) >= blockBytes64 {
		d.compress(p[:blockBytes64])
		p = p[blockBytes64:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest64) compress(block []byte) {
	var w [80]uint64
	parseBlock64(&w, block)
	expandBlock64(&w, d.p.rounds)
	compressBlock64(&d.h, &w, d.p)
}

func (d *digest64) Sum(in []byte) []byte {
	snapshot := *d
	snapshot.finalize()

	size := d.p.digestWords * 8
	out := make([]byte, size)
	for i := 0; i < d.p.digestWords; i++ {
		binary.BigEndian.PutUint64(out[i*8:], snapshot.h[i])
	}
	return append(in, out...)
}

func (d *digest64) Digest() []byte {
	return d.Sum(nil)
}

func (d *digest64) HexDigest() string {
	return hex.EncodeToString(d.Digest())
}

// finalize mirrors digest32.finalize but with a 16-byte length field,
// since the length field is always 2 * word_bytes (§4.5).
//
// Note: bitLen is tracked in a 64-bit counter (see LengthOverflowError),
// so the high 8 bytes of the length field are always zero in practice.
func (d *digest64) finalize() {
	tail := make([]byte, 0, 2*blockBytes64)
	tail = append(tail, d.x[:d.nx]...)
	tail = append(tail, 0x80)
	for len(tail)%blockBytes64 != blockBytes64-16 {
		tail = append(tail, 0)
	}
	var lengthField [16]byte
	binary.BigEndian.PutUint64(lengthField[8:], d.bitLen)
	tail = append(tail, lengthField[:]...)

	for len(tail) > 0 {
		d.compress(tail[:blockBytes64])
		tail = tail[blockBytes64:]
	}
}
