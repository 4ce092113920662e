/*
DESCRIPTION
  config.go loads the codec's run-time tunables (default QP, log path, log
  verbosity) from a file and watches it for edits, so a long-running probe
  process picks up changes without a restart.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config loads and hot-reloads the small set of knobs the codec
// exposes outside of the bit stream itself: default quantisation parameter,
// log path and verbosity. fsnotify watches the file so a running
// cmd/h264probe process need not be restarted to pick up a changed QP.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Config holds the codec's run-time tunables.
type Config struct {
	DefaultQP    int    `json:"default_qp"`
	LogPath      string `json:"log_path"`
	LogVerbosity int8   `json:"log_verbosity"`
}

// defaults mirrors the conservative values the rest of the core assumes
// when no config file is present.
var defaults = Config{DefaultQP: 26, LogPath: "h264codec.log", LogVerbosity: 0}

// Watcher loads a Config from path and re-reads it on every write event;
// Current returns the last successfully parsed version. Callers must call
// Close when done.
type Watcher struct {
	mu      sync.RWMutex
	cur     Config
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher loads path once, starts watching it for changes, and returns a
// Watcher whose Current always reflects the last successfully parsed
// version of the file. If path does not exist, Current returns defaults and
// no watch is started.
func NewWatcher(path string) (*Watcher, error) {
	w := &Watcher{cur: defaults}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return w, nil
	}
	if err := w.load(path); err != nil {
		return nil, errors.Wrap(err, "config: initial load")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: create fsnotify watcher")
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, errors.Wrap(err, "config: watch path")
	}
	w.watcher = fw
	w.done = make(chan struct{})

	go w.run(path)
	return w, nil
}

func (w *Watcher) run(path string) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.load(path)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	w.mu.Lock()
	w.cur = c
	w.mu.Unlock()
	return nil
}

// Current returns the most recently loaded Config.
func (w *Watcher) Current() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cur
}

// Close stops the underlying file watch.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	close(w.done)
	return w.watcher.Close()
}
