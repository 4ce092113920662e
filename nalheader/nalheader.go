/*
DESCRIPTION
  nalheader.go implements a thin NAL header reader: given a stream
  positioned at the start of a NAL unit, it extracts the forbidden-zero bit,
  nal_ref_idc and nal_unit_type, and demultiplexes nal_unit_type into one of
  {Intra, Inter, SequenceParams, PictureParams} for the entropy layer.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package nalheader reads the one-byte H.264 NAL header and exposes its
// fields through a string-keyed Get, following the Extract/Get shape of
// H264v2CodecHeader from the codec this package is grounded on. It is not on
// the entropy layer's hot path; it exists only to give the rest of the core
// a trusted picture-type input.
package nalheader

import (
	"fmt"

	"github.com/ausocean/h264codec/bits"
	"github.com/ausocean/h264codec/internal/errs"
)

// Picture coding type constants, mirroring H264v2CodecHeader's.
const (
	Intra          = 0
	Inter          = 1
	SequenceParams = 2
	PictureParams  = 3
)

// nal_unit_type values relevant to Baseline-profile demultiplexing.
const (
	nalUnitTypeSliceNonIDR = 1
	nalUnitTypeSliceIDR    = 5
	nalUnitTypeSPS         = 7
	nalUnitTypePPS         = 8
)

// Header holds the fields extracted from one NAL header byte.
type Header struct {
	ForbiddenZero      int
	RefIDC             int
	UnitType           int
	PictureCodingType  int
}

// Extract reads one NAL header byte from s and classifies it.
func Extract(s bits.Stream) (*Header, error) {
	v, err := s.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("nalheader: read header byte: %w", errs.ErrStreamAccessDenied)
	}
	h := &Header{
		ForbiddenZero: int(v>>7) & 0x1,
		RefIDC:        int(v>>5) & 0x3,
		UnitType:      int(v) & 0x1f,
	}
	switch h.UnitType {
	case nalUnitTypeSPS:
		h.PictureCodingType = SequenceParams
	case nalUnitTypePPS:
		h.PictureCodingType = PictureParams
	case nalUnitTypeSliceIDR:
		h.PictureCodingType = Intra
	case nalUnitTypeSliceNonIDR:
		h.PictureCodingType = Inter
	default:
		return nil, fmt.Errorf("nalheader: unsupported nal_unit_type %d: %w", h.UnitType, errs.ErrVlcSymbolNotRecognised)
	}
	return h, nil
}

// Get fetches a named field, following the Extract/Get idiom of the header
// reader this package replaces: a single string-keyed accessor rather than a
// method per field, so callers written against "picture_coding_type" or
// "nal_unit_type" keep working if more fields are added later.
func (h *Header) Get(name string) (int, bool) {
	switch name {
	case "picture_coding_type":
		return h.PictureCodingType, true
	case "nal_unit_type":
		return h.UnitType, true
	case "nal_ref_idc":
		return h.RefIDC, true
	case "forbidden_zero_bit":
		return h.ForbiddenZero, true
	default:
		return 0, false
	}
}
