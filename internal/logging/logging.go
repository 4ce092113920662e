/*
DESCRIPTION
  logging.go wires up the codec's logger: a lumberjack-backed rotating file
  writer behind ausocean/utils/logging, the same pairing cmd/rv uses.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging configures the structured logger used by cmd/h264probe
// (the codec packages themselves do not log), following the rv command's lumberjack+
// ausocean/utils/logging pairing rather than writing straight to stderr.
package logging

import (
	"io"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize    = 500 // MB
	maxBackups = 10
	maxAge     = 28 // days
)

// New returns a logger that writes to path (rotated by lumberjack) and, if
// extra is non-nil, also to extra — mirroring cmd/rv's io.MultiWriter(file,
// net) pattern.
func New(verbosity int8, path string, suppress bool, extra io.Writer) logging.Logger {
	fileLog := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}
	var w io.Writer = fileLog
	if extra != nil {
		w = io.MultiWriter(fileLog, extra)
	}
	return logging.New(verbosity, w, suppress)
}
