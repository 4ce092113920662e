/*
DESCRIPTION
  main.go is a small CLI that exercises the codec core end to end: it builds
  a single-macroblock picture, fills its luma AC coefficients with a test
  pattern, encodes it to a bit buffer, decodes it back, and reports whether
  each block's decoded coefficient count matches the encoded one (the
  coefficient values themselves are not compared).

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command h264probe round-trips a synthetic macroblock through the codec
// core and reports the result, for smoke-testing the entropy and transform
// layers without a real bitstream.
package main

import (
	"flag"
	"fmt"
	"os"

	h264codec "github.com/ausocean/h264codec"
	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/config"
	"github.com/ausocean/h264codec/internal/logging"
	"github.com/ausocean/h264codec/macroblock"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (default_qp, log_path, log_verbosity)")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "h264probe: load config: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		cfg = w.Current()
	} else {
		cfg = config.Config{DefaultQP: 26, LogPath: "h264probe.log", LogVerbosity: 0}
	}

	log := logging.New(cfg.LogVerbosity, cfg.LogPath, false, nil)
	log.Info("h264probe starting", "qp", cfg.DefaultQP)

	pic := h264codec.NewPicture(1, 1, macroblock.SliceI, cfg.DefaultQP)
	mb := pic.Grid.MBs[0]
	mb.IntraFlag = true
	mb.MbPartPredMode = macroblock.Intra4x4

	lumaBlocks := []int{
		macroblock.IdxLuma00, macroblock.IdxLuma11, macroblock.IdxLuma22, macroblock.IdxLuma33,
	}
	for i, idx := range lumaBlocks {
		mb.Blocks[idx].Coeffs[0][0] = int32(i + 1)
	}

	buf := make([]byte, 256)
	w := bits.NewMSBWriter(buf, len(buf)*8)
	if err := pic.EncodeMacroblock(w, 0); err != nil {
		log.Fatal("encode failed", "error", err.Error())
	}
	bitsWritten := w.Pos()
	log.Info("encoded macroblock", "bits", bitsWritten)

	want := [4]int{}
	for i, idx := range lumaBlocks {
		want[i] = mb.Blocks[idx].NumCoeffs
	}

	r := bits.NewMSBReader(buf, bitsWritten)
	if err := pic.DecodeMacroblock(r, 0); err != nil {
		log.Fatal("decode failed", "error", err.Error())
	}

	ok := true
	for i, idx := range lumaBlocks {
		if mb.Blocks[idx].NumCoeffs != want[i] {
			ok = false
		}
	}
	if ok {
		fmt.Println("round trip OK")
	} else {
		fmt.Println("round trip MISMATCH")
		os.Exit(1)
	}
}
