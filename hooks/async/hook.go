// Package asynchook decouples hook delivery from the cache hot path: events
// are handed to a bounded queue and replayed to the wrapped Hooks by worker
// goroutines. When the queue is full, events are dropped rather than
// blocking a cache operation.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	h := asynchook.New(raw, 1, 1000) // 1 worker; queue of 1000 events
//	defer h.Close()
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/polycache"
)

type Hooks struct {
	inner polycache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ polycache.Hooks = (*Hooks)(nil)

func New(inner polycache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Safe to call more than
// once; events enqueued after Close would panic, so stop the cache first.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)     { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) EntrySkipped(k, r string) { h.try(func() { h.inner.EntrySkipped(k, r) }) }
