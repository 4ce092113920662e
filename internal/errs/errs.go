/*
DESCRIPTION
  errs.go defines the closed set of error kinds that can propagate out of the
  entropy, transform and macroblock layers.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package errs defines the small, closed set of error kinds that the codec
// core can return. Every failure from the bit stream, VLC tables, CAVLC
// engine or macroblock layer resolves to exactly one of these three
// sentinels, wrapped with call-site context via fmt.Errorf's %w so callers
// can still use errors.Is to recover the kind.
package errs

import "errors"

var (
	// ErrStreamAccessDenied indicates that the bit stream cursor cannot
	// satisfy the requested read/write length without exceeding bitSize.
	ErrStreamAccessDenied = errors.New("errs: stream access denied")

	// ErrVlcSymbolNotRecognised indicates that a decoder received a bit
	// pattern matching no entry in the active VLC table, or an encoder was
	// asked to emit a symbol outside the table's domain.
	ErrVlcSymbolNotRecognised = errors.New("errs: vlc symbol not recognised")

	// ErrOutOfBounds indicates a block/macroblock index, QP or coefficient
	// count outside its declared range. Debug assertions only; release
	// builds may treat this as undefined behaviour upstream of the call.
	ErrOutOfBounds = errors.New("errs: value out of bounds")
)
