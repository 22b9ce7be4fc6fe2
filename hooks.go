package polycache

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the cache calls them on hot paths. Wrap
// with hooks/async if the sink might stall.
type Hooks interface {
	// SelfHeal fires when Get drops an entry whose payload no longer
	// decodes. reason ∈ {"decode"}.
	SelfHeal(key, reason string)

	// EntrySkipped fires when GetAll leaves an undecodable entry out of
	// the snapshot. reason ∈ {"decode"}.
	EntrySkipped(key, reason string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)     {}
func (NopHooks) EntrySkipped(string, string) {}
