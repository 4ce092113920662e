package vlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
)

func TestTotalZerosRoundTrip(t *testing.T) {
	cases := []struct {
		totalCoeff, totalZeros int
	}{
		{1, 0}, {1, 15}, {5, 9}, {9, 3}, {15, 1},
	}
	for _, c := range cases {
		buf := make([]byte, 4)
		w := bits.NewMSBWriter(buf, len(buf)*8)
		if _, err := EncodeTotalZeros(w, c.totalCoeff, c.totalZeros); err != nil {
			t.Fatalf("EncodeTotalZeros(%d,%d): %v", c.totalCoeff, c.totalZeros, err)
		}
		r := bits.NewMSBReader(buf, w.Pos())
		got, err := DecodeTotalZeros(r, c.totalCoeff)
		if err != nil {
			t.Fatalf("DecodeTotalZeros(%d): %v", c.totalCoeff, err)
		}
		if got != c.totalZeros {
			t.Fatalf("totalCoeff=%d: got %d, want %d", c.totalCoeff, got, c.totalZeros)
		}
	}
}

func TestTotalZerosChromaDCRoundTrip(t *testing.T) {
	cases := []struct {
		totalCoeff, totalZeros int
	}{
		{1, 0}, {1, 3}, {2, 2}, {3, 1},
	}
	for _, c := range cases {
		buf := make([]byte, 2)
		w := bits.NewMSBWriter(buf, len(buf)*8)
		if _, err := EncodeTotalZerosChromaDC(w, c.totalCoeff, c.totalZeros); err != nil {
			t.Fatalf("EncodeTotalZerosChromaDC(%d,%d): %v", c.totalCoeff, c.totalZeros, err)
		}
		r := bits.NewMSBReader(buf, w.Pos())
		got, err := DecodeTotalZerosChromaDC(r, c.totalCoeff)
		if err != nil {
			t.Fatalf("DecodeTotalZerosChromaDC(%d): %v", c.totalCoeff, err)
		}
		if got != c.totalZeros {
			t.Fatalf("totalCoeff=%d: got %d, want %d", c.totalCoeff, got, c.totalZeros)
		}
	}
}
