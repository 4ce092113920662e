package bits

import (
	"errors"
	"testing"

	apperrs "github.com/ausocean/h264codec/internal/errs"
)

func TestMSBWriteReadRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	w := NewMSBWriter(buf, len(buf)*8)
	if err := w.WriteBits(6, 0b000001); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(10, 0x3aa); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}

	r := NewMSBReader(buf, len(buf)*8)
	v, err := r.ReadBits(6)
	if err != nil || v != 0b000001 {
		t.Fatalf("ReadBits(6) = %d, %v, want 1, nil", v, err)
	}
	v, err = r.ReadBits(10)
	if err != nil || v != 0x3aa {
		t.Fatalf("ReadBits(10) = %x, %v, want 3aa, nil", v, err)
	}
}

func TestExpGolombSingleSymbol(t *testing.T) {
	// End-to-end scenario 1 from the spec: write symbol 5 (codeword 000001,
	// 6 bits) to an empty 8-bit stream; reading the 6 raw bits back gives the
	// codeword value 1, with the cursor at bit 6.
	buf := make([]byte, 1)
	w := NewMSBWriter(buf, 8)
	if err := w.WriteBits(6, 0b000001); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if w.Pos() != 6 {
		t.Fatalf("Pos() = %d, want 6", w.Pos())
	}

	r := NewMSBReader(buf, 8)
	v, err := r.ReadBits(6)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if v != 0b000001 {
		t.Fatalf("v = %d, want 1", v)
	}
	if r.Pos() != 6 {
		t.Fatalf("Pos() = %d, want 6", r.Pos())
	}
}

func TestPeekPokeDoNotMoveCursor(t *testing.T) {
	buf := make([]byte, 2)
	w := NewMSBWriter(buf, 16)
	if err := w.Poke(4, 8, 0xab); err != nil {
		t.Fatalf("Poke: %v", err)
	}
	if w.Pos() != 0 {
		t.Fatalf("Pos() = %d, want 0 (Poke must not move cursor)", w.Pos())
	}
	v, err := w.Peek(4, 8)
	if err != nil || v != 0xab {
		t.Fatalf("Peek = %x, %v, want ab, nil", v, err)
	}
	if w.Pos() != 0 {
		t.Fatalf("Pos() = %d, want 0 (Peek must not move cursor)", w.Pos())
	}
}

func TestSeekFailsPastBitSize(t *testing.T) {
	buf := make([]byte, 1)
	r := NewMSBReader(buf, 8)
	if err := r.Seek(8); !errors.Is(err, apperrs.ErrStreamAccessDenied) {
		t.Fatalf("Seek(8) err = %v, want ErrStreamAccessDenied", err)
	}
	if r.Pos() != 0 {
		t.Fatalf("Pos() = %d, want 0 after failed seek", r.Pos())
	}
	if err := r.Seek(7); err != nil {
		t.Fatalf("Seek(7): %v", err)
	}
	if r.Pos() != 7 {
		t.Fatalf("Pos() = %d, want 7", r.Pos())
	}
}

func TestBitsRemaining(t *testing.T) {
	buf := make([]byte, 2)
	r := NewMSBReader(buf, 16)
	if r.BitsRemaining() != 16 {
		t.Fatalf("BitsRemaining() = %d, want 16", r.BitsRemaining())
	}
	if _, err := r.ReadBits(5); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if r.BitsRemaining() != 11 {
		t.Fatalf("BitsRemaining() = %d, want 11", r.BitsRemaining())
	}
}

func TestWriteBitsCapacityExceeded(t *testing.T) {
	buf := make([]byte, 1)
	w := NewMSBWriter(buf, 8)
	if _, err := w.ReadBits(1); !errors.Is(err, apperrs.ErrStreamAccessDenied) {
		t.Fatalf("ReadBits on writer err = %v, want ErrStreamAccessDenied", err)
	}
	if err := w.WriteBits(8, 0xff); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(1, 1); !errors.Is(err, apperrs.ErrStreamAccessDenied) {
		t.Fatalf("WriteBits overflow err = %v, want ErrStreamAccessDenied", err)
	}
}

// property test: for a fixed set of bit-loc/n pairs, write(p, n, v);
// read(p, n) == v & ((1<<n)-1), for both bit orders.
func TestWriteReadPropertyMSBAndLSB(t *testing.T) {
	const size = 64
	cases := []struct {
		loc, n int
		v      uint32
	}{
		{0, 1, 1},
		{0, 32, 0xdeadbeef},
		{7, 9, 0x1ff},
		{15, 17, 0x1ffff},
		{31, 1, 1},
		{40, 24, 0xabcdef},
	}
	for _, c := range cases {
		want := c.v & ((1 << uint(c.n)) - 1)
		if c.n == 32 {
			want = c.v
		}

		bufM := make([]byte, size/8)
		wm := NewMSBWriter(bufM, size)
		if err := wm.Poke(c.loc, c.n, c.v); err != nil {
			t.Fatalf("MSB Poke(%d,%d): %v", c.loc, c.n, err)
		}
		got, err := wm.Peek(c.loc, c.n)
		if err != nil {
			t.Fatalf("MSB Peek(%d,%d): %v", c.loc, c.n, err)
		}
		if got != want {
			t.Fatalf("MSB loc=%d n=%d got=%x want=%x", c.loc, c.n, got, want)
		}

		bufL := make([]byte, size/8)
		wl := NewLSBWriter(bufL, size)
		if err := wl.Poke(c.loc, c.n, c.v); err != nil {
			t.Fatalf("LSB Poke(%d,%d): %v", c.loc, c.n, err)
		}
		got, err = wl.Peek(c.loc, c.n)
		if err != nil {
			t.Fatalf("LSB Peek(%d,%d): %v", c.loc, c.n, err)
		}
		if got != want {
			t.Fatalf("LSB loc=%d n=%d got=%x want=%x", c.loc, c.n, got, want)
		}
	}
}
