package sha2

import (
	"encoding/binary"
	"encoding/hex"
)

// blockBytes32 is the block size, in bytes, shared by SHA-224 and SHA-256.
const blockBytes32 = 64

// digest32 is the streaming state machine for the 32-bit-word engine.
type digest32 struct {
	p      *params32
	h      [8]uint32
	x      [blockBytes32]byte
	nx     int
	bitLen uint64
}

func newDigest32(p *params32) *digest32 {
	d := &digest32{p: p}
	d.Reset()
	return d
}

func (d *digest32) Reset() {
	d.h = d.p.h0
	d.nx = 0
	d.bitLen = 0
}

func (d *digest32) Size() int { return d.p.digestWords * 4 }

func (d *digest32) BlockSize() int { return blockBytes32 }

func (d *digest32) MessageLength() uint64 { return d.bitLen }

// Write buffers and compresses p in blockBytes32-sized blocks, per the
// streaming state machine of §4.4: concatenate with any buffered
// remainder, compress every full block immediately, and keep the tail.
func (d *digest32) Write(p []byte) (n int, err error) {
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
		if d.nx == blockBytes32 {
			d.compress(d.x[:])
			d.nx = 0
		}
		p = p[copied:]
	}
	for len(p) >= blockBytes32 {
		d.compress(p[:blockBytes32])
		p = p[blockBytes32:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *digest32) compress(block []byte) {
	var w [64]uint32
	parseBlock32(&w, block)
	expandBlock32(&w, d.p.rounds)
	compressBlock32(&d.h, &w, d.p)
}

// Sum pads a snapshot of the buffered tail and compresses it against a copy
// of the running state, leaving the receiver untouched (§4.5).
func (d *digest32) Sum(in []byte) []byte {
	snapshot := *d
	snapshot.finalize()

	size := d.p.digestWords * 4
	out := make([]byte, size)
	for i := 0; i < d.p.digestWords; i++ {
		binary.BigEndian.PutUint32(out[i*4:], snapshot.h[i])
	}
	return append(in, out...)
}

func (d *digest32) Digest() []byte {
	return d.Sum(nil)
}

func (d *digest32) HexDigest() string {
	return hex.EncodeToString(d.Digest())
}

// finalize appends the 0x80 byte, zero padding, and the big-endian bit
// length, then compresses the resulting 1 or 2 blocks.
func (d *digest32) finalize() {
	tail := make([]byte, 0, 2*blockBytes32)
	tail = append(tail, d.x[:d.nx]...)
	tail = append(tail, 0x80)
	for len(tail)%blockBytes32 != blockBytes32-8 {
		tail = append(tail, 0)
	}
	var lengthField [8]byte
	binary.BigEndian.PutUint64(lengthField[:], d.bitLen)
	tail = append(tail, lengthField[:]...)

	for len(tail) > 0 {
		d.compress(tail[:blockBytes32])
		tail = tail[blockBytes32:]
	}
}
