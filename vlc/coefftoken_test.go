package vlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
)

// TestCoeffTokenNC2to3LiteralCodeword decodes literal H.264 NC2to3 codewords
// for totalCoeff in {14,15,16} against the table directly, rather than
// through EncodeCoeffToken, so a transcription error in the table itself
// (rather than a self-consistency bug between Encode and Decode) is caught.
func TestCoeffTokenNC2to3LiteralCodeword(t *testing.T) {
	cases := []struct {
		name                     string
		bitsVal                 uint32
		length                   int
		totalCoeff, trailingOnes int
	}{
		{"tCs14 tOs2", 0b0000000000110, 13, 14, 2},
		{"tCs15 tOs1", 0b00000000001000, 14, 15, 1},
		{"tCs15 tOs2", 0b00000000001010, 14, 15, 2},
		{"tCs15 tOs3", 0b0000000000001, 13, 15, 3},
		{"tCs16 tOs0", 0b00000000000111, 14, 16, 0},
		{"tCs16 tOs3", 0b00000000000100, 14, 16, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := make([]byte, 4)
			w := bits.NewMSBWriter(buf, len(buf)*8)
			if err := w.WriteBits(c.length, c.bitsVal); err != nil {
				t.Fatalf("WriteBits: %v", err)
			}
			r := bits.NewMSBReader(buf, w.Pos())
			gotCoeff, gotOnes, err := DecodeCoeffToken(r, NC2to3)
			if err != nil {
				t.Fatalf("DecodeCoeffToken: %v", err)
			}
			if gotCoeff != c.totalCoeff || gotOnes != c.trailingOnes {
				t.Fatalf("got (%d,%d), want (%d,%d)", gotCoeff, gotOnes, c.totalCoeff, c.trailingOnes)
			}
		})
	}
}

func TestCoeffTokenRoundTrip(t *testing.T) {
	cases := []struct {
		nc                       NC
		totalCoeff, trailingOnes int
	}{
		{NC0to1, 0, 0},
		{NC0to1, 1, 1},
		{NC0to1, 16, 3},
		{NC2to3, 5, 2},
		{NC4to7, 9, 0},
		{NCneg1, 2, 1},
		{NCneg2, 3, 3},
		{NC8up, 0, 0},
		{NC8up, 12, 2},
	}
	for _, c := range cases {
		buf := make([]byte, 8)
		w := bits.NewMSBWriter(buf, len(buf)*8)
		if _, err := EncodeCoeffToken(w, c.nc, c.totalCoeff, c.trailingOnes); err != nil {
			t.Fatalf("EncodeCoeffToken(%v,%d,%d): %v", c.nc, c.totalCoeff, c.trailingOnes, err)
		}
		r := bits.NewMSBReader(buf, w.Pos())
		gotCoeff, gotOnes, err := DecodeCoeffToken(r, c.nc)
		if err != nil {
			t.Fatalf("DecodeCoeffToken(%v): %v", c.nc, err)
		}
		if gotCoeff != c.totalCoeff || gotOnes != c.trailingOnes {
			t.Fatalf("nc=%v: got (%d,%d), want (%d,%d)", c.nc, gotCoeff, gotOnes, c.totalCoeff, c.trailingOnes)
		}
	}
}
