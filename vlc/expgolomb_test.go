package vlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
)

func TestExpGolombPrefixRoundTrip(t *testing.T) {
	for _, symbol := range []int{0, 1, 2, 5, 14, 20} {
		buf := make([]byte, 8)
		w := bits.NewMSBWriter(buf, len(buf)*8)
		n, err := EncodeExpGolombPrefix(w, symbol)
		if err != nil {
			t.Fatalf("EncodeExpGolombPrefix(%d): %v", symbol, err)
		}
		if n != symbol+1 {
			t.Fatalf("symbol=%d: wrote %d bits, want %d", symbol, n, symbol+1)
		}
		r := bits.NewMSBReader(buf, w.Pos())
		got, nBits, err := DecodeExpGolombPrefix(r)
		if err != nil {
			t.Fatalf("DecodeExpGolombPrefix: %v", err)
		}
		if got != symbol || nBits != symbol+1 {
			t.Fatalf("symbol=%d: got (%d,%d)", symbol, got, nBits)
		}
	}
}

func TestEncodeExpGolombPrefixRejectsNegative(t *testing.T) {
	buf := make([]byte, 4)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	if _, err := EncodeExpGolombPrefix(w, -1); err == nil {
		t.Fatal("expected error for negative symbol")
	}
}
