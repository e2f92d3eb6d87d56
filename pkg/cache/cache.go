// Package cache holds the last computed effective configuration in memory so
// the per-turn protocol compilation does not touch disk unless something
// changed.
package cache

import "github.com/zen-systems/tiergate/pkg/resolve"

// Handle is an explicit cache value owned by the top-level process and passed
// to every component that needs it. It is not safe for concurrent use; the
// host invokes turns and commands sequentially.
type Handle struct {
	load  func() (*resolve.Effective, error)
	cfg   *resolve.Effective
	dirty bool
}

// New creates a handle around a loader that reads, validates and
// state-overlays the document from disk.
func New(load func() (*resolve.Effective, error)) *Handle {
	return &Handle{load: load, dirty: true}
}

// Get returns the cached effective configuration, reloading from disk first
// when the cache is dirty. When a reload fails, the previous configuration is
// returned alongside the error and the cache stays dirty so the next Get
// retries; with nothing cached yet the error alone is returned.
func (h *Handle) Get() (*resolve.Effective, error) {
	if !h.dirty && h.cfg != nil {
		return h.cfg, nil
	}
	cfg, err := h.load()
	if err != nil {
		return h.cfg, err
	}
	h.cfg = cfg
	h.dirty = false
	return h.cfg, nil
}

// Invalidate marks the cache dirty. The next Get recomputes in full: document
// re-read, re-validated, state reapplied.
func (h *Handle) Invalidate() {
	h.dirty = true
}
