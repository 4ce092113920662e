package bits

import (
	"fmt"

	"github.com/ausocean/h264codec/internal/errs"
)

// LSBReader reads bits from a borrowed byte slice, least-significant-bit
// first within each byte. Provided as the orthogonal bit-order counterpart
// to MSBReader; the core entropy layer never mixes the two on one buffer.
type LSBReader struct{ base }

// NewLSBReader returns a reader over buf, addressable to bitSize bits.
func NewLSBReader(buf []byte, bitSize int) *LSBReader {
	return &LSBReader{newBase(buf, bitSize)}
}

func (r *LSBReader) peekAt(bytePos, bitPos, n int) (uint32, error) {
	if bytePos*8+bitPos+n > r.bitSize {
		return 0, fmt.Errorf("bits: read %d bits at %d: %w", n, bytePos*8+bitPos, errs.ErrStreamAccessDenied)
	}
	var v uint32
	var shift uint
	for n > 0 {
		avail := 8 - bitPos
		take := avail
		if take > n {
			take = n
		}
		b := r.buf[bytePos]
		mask := byte((1 << uint(take)) - 1)
		v |= uint32((b>>uint(bitPos))&mask) << shift
		shift += uint(take)
		n -= take
		bitPos += take
		if bitPos == 8 {
			bitPos = 0
			bytePos++
		}
	}
	return v, nil
}

// ReadBit advances the cursor by one bit and returns its value.
func (r *LSBReader) ReadBit() (uint32, error) { return r.ReadBits(1) }

// ReadBits reads n bits (n in [1,32]), advancing the cursor.
func (r *LSBReader) ReadBits(n int) (uint32, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	v, err := r.peekAt(r.bytePos, r.bitPos, n)
	if err != nil {
		return 0, err
	}
	r.advance(n)
	return v, nil
}

// Peek returns the n bits at absolute bit offset loc without moving the
// cursor.
func (r *LSBReader) Peek(loc, n int) (uint32, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	return r.peekAt(loc/8, loc%8, n)
}

// Poke is not supported on a reader.
func (r *LSBReader) Poke(loc, n int, v uint32) error {
	return fmt.Errorf("bits: Poke on LSBReader: %w", errs.ErrStreamAccessDenied)
}

// WriteBit is not supported on a reader.
func (r *LSBReader) WriteBit(v uint32) error { return r.WriteBits(1, v) }

// WriteBits is not supported on a reader.
func (r *LSBReader) WriteBits(n int, v uint32) error {
	return fmt.Errorf("bits: WriteBits on LSBReader: %w", errs.ErrStreamAccessDenied)
}

// LSBWriter writes bits into a borrowed byte slice, least-significant-bit
// first within each byte.
type LSBWriter struct{ base }

// NewLSBWriter returns a writer over buf, addressable to bitSize bits.
func NewLSBWriter(buf []byte, bitSize int) *LSBWriter {
	return &LSBWriter{newBase(buf, bitSize)}
}

func (w *LSBWriter) pokeAt(bytePos, bitPos, n int, v uint32) error {
	if bytePos*8+bitPos+n > w.bitSize {
		return fmt.Errorf("bits: write %d bits at %d: %w", n, bytePos*8+bitPos, errs.ErrStreamAccessDenied)
	}
	var consumed uint
	for n > 0 {
		avail := 8 - bitPos
		take := avail
		if take > n {
			take = n
		}
		bitsVal := byte((v >> consumed) & ((1 << uint(take)) - 1))
		mask := byte(((1 << uint(take)) - 1) << uint(bitPos))
		w.buf[bytePos] = (w.buf[bytePos] &^ mask) | (bitsVal << uint(bitPos))
		consumed += uint(take)
		n -= take
		bitPos += take
		if bitPos == 8 {
			bitPos = 0
			bytePos++
		}
	}
	return nil
}

// WriteBit writes a single bit and advances the cursor.
func (w *LSBWriter) WriteBit(v uint32) error { return w.WriteBits(1, v) }

// WriteBits writes the low n bits of v (n in [1,32]), advancing the cursor.
func (w *LSBWriter) WriteBits(n int, v uint32) error {
	if err := checkN(n); err != nil {
		return err
	}
	if err := w.pokeAt(w.bytePos, w.bitPos, n, v); err != nil {
		return err
	}
	w.advance(n)
	return nil
}

// Poke writes the low n bits of v at absolute bit offset loc without moving
// the cursor.
func (w *LSBWriter) Poke(loc, n int, v uint32) error {
	if err := checkN(n); err != nil {
		return err
	}
	return w.pokeAt(loc/8, loc%8, n, v)
}

// Peek returns the n bits at absolute bit offset loc without moving the
// cursor.
func (w *LSBWriter) Peek(loc, n int) (uint32, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	r := LSBReader{w.base}
	return r.peekAt(loc/8, loc%8, n)
}

// ReadBit is not supported on a writer.
func (w *LSBWriter) ReadBit() (uint32, error) { return w.ReadBits(1) }

// ReadBits is not supported on a writer.
func (w *LSBWriter) ReadBits(n int) (uint32, error) {
	return 0, fmt.Errorf("bits: ReadBits on LSBWriter: %w", errs.ErrStreamAccessDenied)
}

var (
	_ Stream = (*MSBReader)(nil)
	_ Stream = (*MSBWriter)(nil)
	_ Stream = (*LSBReader)(nil)
	_ Stream = (*LSBWriter)(nil)
)
