package vlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
)

func TestRunBeforeRoundTrip(t *testing.T) {
	cases := []struct {
		zerosLeft, run int
	}{
		{1, 0}, {1, 1}, {3, 2}, {6, 6}, {7, 14}, {10, 10},
	}
	for _, c := range cases {
		buf := make([]byte, 4)
		w := bits.NewMSBWriter(buf, len(buf)*8)
		if _, err := EncodeRunBefore(w, c.zerosLeft, c.run); err != nil {
			t.Fatalf("EncodeRunBefore(%d,%d): %v", c.zerosLeft, c.run, err)
		}
		r := bits.NewMSBReader(buf, w.Pos())
		got, err := DecodeRunBefore(r, c.zerosLeft)
		if err != nil {
			t.Fatalf("DecodeRunBefore(%d): %v", c.zerosLeft, err)
		}
		if got != c.run {
			t.Fatalf("zerosLeft=%d: got %d, want %d", c.zerosLeft, got, c.run)
		}
	}
}
