package services

import (
	"sync"
	"time"

	"eventboard/internal/domain"
)

// IdentityDebouncer coalesces identity edits and commits only the last one
// after the input has been quiet for the configured delay.
type IdentityDebouncer struct {
	store domain.IdentityStore
	delay time.Duration

	mu      sync.Mutex
	draft   string
	pending bool
	seq     uint64
	timer   *time.Timer
}

// NewIdentityDebouncer returns a debouncer committing into store.
func NewIdentityDebouncer(store domain.IdentityStore, delay time.Duration) *IdentityDebouncer {
	return &IdentityDebouncer{store: store, delay: delay}
}

// Edit records token as the latest draft and restarts the quiet period.
func (d *IdentityDebouncer) Edit(token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = token
	d.pending = true
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.commit(seq) })
}

// Pending returns the uncommitted draft, if any.
func (d *IdentityDebouncer) Pending() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft, d.pending
}

// Flush commits the pending draft immediately.
func (d *IdentityDebouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	seq := d.seq
	d.mu.Unlock()
	d.commit(seq)
}

// Stop discards the pending draft.
func (d *IdentityDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}

// commit applies the draft of edit seq; a timer from an older edit is a no-op.
func (d *IdentityDebouncer) commit(seq uint64) {
	d.mu.Lock()
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	token := d.draft
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if token == d.store.Get() {
		return
	}
	d.store.Set(token)
}
