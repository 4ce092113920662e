package bits

import (
	"fmt"

	"github.com/ausocean/h264codec/internal/errs"
)

// MSBReader reads bits from a borrowed byte slice, most-significant-bit
// first within each byte — the bit order used throughout the H.264 Annex-B
// RBSP syntax (exp-Golomb codes, CAVLC tokens, NAL headers).
type MSBReader struct{ base }

// NewMSBReader returns a reader over buf, addressable to bitSize bits.
// bitSize must be <= 8*len(buf).
func NewMSBReader(buf []byte, bitSize int) *MSBReader {
	return &MSBReader{newBase(buf, bitSize)}
}

func (r *MSBReader) peekAt(bytePos, bitPos, n int) (uint32, error) {
	if bytePos*8+bitPos+n > r.bitSize {
		return 0, fmt.Errorf("bits: read %d bits at %d: %w", n, bytePos*8+bitPos, errs.ErrStreamAccessDenied)
	}
	var v uint32
	for n > 0 {
		avail := 8 - bitPos
		take := avail
		if take > n {
			take = n
		}
		b := r.buf[bytePos]
		shift := avail - take
		mask := byte((1 << uint(take)) - 1)
		v = (v << uint(take)) | uint32((b>>uint(shift))&mask)
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
func (r *MSBReader) ReadBit() (uint32, error) { return r.ReadBits(1) }

// ReadBits reads n bits (n in [1,32]), advancing the cursor.
func (r *MSBReader) ReadBits(n int) (uint32, error) {
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
func (r *MSBReader) Peek(loc, n int) (uint32, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	return r.peekAt(loc/8, loc%8, n)
}

// Poke is not supported on a reader.
func (r *MSBReader) Poke(loc, n int, v uint32) error {
	return fmt.Errorf("bits: Poke on MSBReader: %w", errs.ErrStreamAccessDenied)
}

// WriteBit is not supported on a reader.
func (r *MSBReader) WriteBit(v uint32) error { return r.WriteBits(1, v) }

// WriteBits is not supported on a reader.
func (r *MSBReader) WriteBits(n int, v uint32) error {
	return fmt.Errorf("bits: WriteBits on MSBReader: %w", errs.ErrStreamAccessDenied)
}

// MSBWriter writes bits into a borrowed byte slice, most-significant-bit
// first within each byte. The caller owns buf; WriteBits clears each bit it
// writes before setting it and leaves the other bits of the buffer as they
// were.
type MSBWriter struct{ base }

// NewMSBWriter returns a writer over buf, addressable to bitSize bits.
func NewMSBWriter(buf []byte, bitSize int) *MSBWriter {
	return &MSBWriter{newBase(buf, bitSize)}
}

func (w *MSBWriter) pokeAt(bytePos, bitPos, n int, v uint32) error {
	if bytePos*8+bitPos+n > w.bitSize {
		return fmt.Errorf("bits: write %d bits at %d: %w", n, bytePos*8+bitPos, errs.ErrStreamAccessDenied)
	}
	for n > 0 {
		avail := 8 - bitPos
		take := avail
		if take > n {
			take = n
		}
		shift := avail - take
		srcShift := n - take
		bitsVal := byte((v >> uint(srcShift)) & ((1 << uint(take)) - 1))
		mask := byte((1<<uint(take) - 1) << uint(shift))
		w.buf[bytePos] = (w.buf[bytePos] &^ mask) | (bitsVal << uint(shift))
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
func (w *MSBWriter) WriteBit(v uint32) error { return w.WriteBits(1, v) }

// WriteBits writes the low n bits of v (n in [1,32]), advancing the cursor.
// Callers must check BitsRemaining() >= n first: a write past the bit size
// fails with ErrStreamAccessDenied, and an n outside [1,32] fails with
// ErrOutOfBounds.
func (w *MSBWriter) WriteBits(n int, v uint32) error {
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
func (w *MSBWriter) Poke(loc, n int, v uint32) error {
	if err := checkN(n); err != nil {
		return err
	}
	return w.pokeAt(loc/8, loc%8, n, v)
}

// Peek returns the n bits at absolute bit offset loc without moving the
// cursor.
func (w *MSBWriter) Peek(loc, n int) (uint32, error) {
	if err := checkN(n); err != nil {
		return 0, err
	}
	r := MSBReader{w.base}
	return r.peekAt(loc/8, loc%8, n)
}

// ReadBit is not supported on a writer.
func (w *MSBWriter) ReadBit() (uint32, error) { return w.ReadBits(1) }

// ReadBits is not supported on a writer.
func (w *MSBWriter) ReadBits(n int) (uint32, error) {
	return 0, fmt.Errorf("bits: ReadBits on MSBWriter: %w", errs.ErrStreamAccessDenied)
}
