// Package sloghooks emits polycache hook events to a slog.Logger, with
// optional sampling and key redaction for high-traffic caches.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/polycache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log every event.
	SelfHealEvery     uint64
	EntrySkippedEvery uint64
	// Optional key redactor. Defaults to a SHA-256 prefix so raw keys
	// never reach the log sink.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr atomic.Uint64
	skippedCtr  atomic.Uint64
}

var _ polycache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(key, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("polycache.self_heal",
		"key", h.redact(key),
		"reason", reason)
}

func (h *Hooks) EntrySkipped(key, reason string) {
	if h.l == nil || !sample(h.opts.EntrySkippedEvery, &h.skippedCtr) {
		return
	}
	h.l.Warn("polycache.entry_skipped",
		"key", h.redact(key),
		"reason", reason)
}
