package vlc

import (
	"testing"

	"github.com/ausocean/h264codec/bits"
)

// TestDecodeLevel exercises the prefix/suffix combination rule directly,
// writing a raw prefix+suffix bit pattern and checking the decoded level and
// next suffixLength against the formula by hand.
func TestDecodeLevel(t *testing.T) {
	cases := []struct {
		name                      string
		prefix, suffixLength      int
		suffix                    int
		isFirst, onesSignAvail    bool
		wantLevel, wantNextSuffix int
	}{
		{
			name: "mid-range positive, no trailing-ones adjustment",
			prefix: 3, suffixLength: 2, suffix: 0b10,
			isFirst: false, onesSignAvail: false,
			wantLevel: 8, wantNextSuffix: 3,
		},
		{
			name: "first-after-trailing-ones adjustment",
			prefix: 0, suffixLength: 0, suffix: 0,
			isFirst: true, onesSignAvail: true,
			wantLevel: 2, wantNextSuffix: 1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := make([]byte, 8)
			w := bits.NewMSBWriter(buf, len(buf)*8)
			if _, err := EncodeExpGolombPrefix(w, c.prefix); err != nil {
				t.Fatalf("EncodeExpGolombPrefix: %v", err)
			}
			levelSuffixSize := c.suffixLength
			switch {
			case c.prefix == 14 && c.suffixLength == 0:
				levelSuffixSize = 4
			case c.prefix >= 15:
				levelSuffixSize = c.prefix - 3
			}
			if levelSuffixSize > 0 {
				if err := w.WriteBits(levelSuffixSize, uint32(c.suffix)); err != nil {
					t.Fatalf("WriteBits suffix: %v", err)
				}
			}

			r := bits.NewMSBReader(buf, w.Pos())
			level, next, err := DecodeLevel(r, c.suffixLength, c.isFirst, c.onesSignAvail)
			if err != nil {
				t.Fatalf("DecodeLevel: %v", err)
			}
			if level != c.wantLevel || next != c.wantNextSuffix {
				t.Fatalf("got (level=%d, next=%d), want (level=%d, next=%d)", level, next, c.wantLevel, c.wantNextSuffix)
			}
		})
	}
}
