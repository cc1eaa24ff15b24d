package store

import (
	"sync"
	"time"

	"github.com/tejaswik02/campusplace/internal/logger"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// DebouncedWriter coalesces draft writes on a trailing edge: every Trigger
// resets the timer, and only the last snapshot inside a quiet window is
// persisted. An edit session cancels it on abort and flushes it on clean
// exit.
type DebouncedWriter struct {
	mu      sync.Mutex
	delay   time.Duration
	save    func(*models.DraftSnapshot) error
	timer   *time.Timer
	pending *models.DraftSnapshot
}

// NewDebouncedWriter wires a writer to the store's draft key.
func NewDebouncedWriter(s *Store, delay time.Duration) *DebouncedWriter {
	return &DebouncedWriter{delay: delay, save: s.SaveDraft}
}

// Trigger schedules snap for persistence after the quiet window, replacing
// any snapshot already waiting.
func (w *DebouncedWriter) Trigger(snap *models.DraftSnapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = snap
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *DebouncedWriter) fire() {
	w.mu.Lock()
	snap := w.pending
	w.pending = nil
	w.timer = nil
	w.mu.Unlock()

	if snap == nil {
		return
	}
	if err := w.save(snap); err != nil {
		logger.Log.Warn("draft autosave failed", "error", err)
	}
}

// Flush writes any pending snapshot immediately.
func (w *DebouncedWriter) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	w.fire()
}

// Cancel drops any pending snapshot without writing it.
func (w *DebouncedWriter) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = nil
}
