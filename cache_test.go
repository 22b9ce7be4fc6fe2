package polycache

import (
	"context"
	"errors"
	"sync"
	"testing"

	c "github.com/unkn0wn-root/polycache/codec"
	"github.com/unkn0wn-root/polycache/store"
	"github.com/unkn0wn-root/polycache/store/memory"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type recordHooks struct {
	mu       sync.Mutex
	selfHeal []string
	skipped  []string
}

var _ Hooks = (*recordHooks)(nil)

func (h *recordHooks) SelfHeal(key, _ string) {
	h.mu.Lock()
	h.selfHeal = append(h.selfHeal, key)
	h.mu.Unlock()
}

func (h *recordHooks) EntrySkipped(key, _ string) {
	h.mu.Lock()
	h.skipped = append(h.skipped, key)
	h.mu.Unlock()
}

func newTestCache(t *testing.T, mod func(*Options[user])) (Cache[user], *memory.Store) {
	t.Helper()
	ms := memory.New()
	opts := Options[user]{
		Store: ms,
		Codec: c.JSON[user]{},
	}
	if mod != nil {
		mod(&opts)
	}
	pc, err := New[user](opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return pc, ms
}

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New[user](Options[user]{Codec: c.JSON[user]{}}); err == nil {
		t.Fatal("New without store should fail")
	}
	if _, err := New[user](Options[user]{Store: memory.New()}); err == nil {
		t.Fatal("New without codec should fail")
	}
}

func TestTypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	pc, _ := newTestCache(t, nil)
	defer pc.Close(ctx)

	v := user{ID: "1", Name: "Ada"}

	if _, err := pc.Get(ctx, "u:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get miss: want ErrNotFound, got %v", err)
	}
	if err := pc.Set(ctx, "u:1", v); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := pc.Get(ctx, "u:1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != v {
		t.Fatalf("Get: got %+v want %+v", got, v)
	}

	if err := pc.Delete(ctx, "u:1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := pc.Delete(ctx, "u:1"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
	if _, err := pc.Get(ctx, "u:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}
}

func TestGetSelfHealsUndecodableEntry(t *testing.T) {
	ctx := context.Background()
	hooks := &recordHooks{}
	pc, ms := newTestCache(t, func(o *Options[user]) { o.Hooks = hooks })
	defer pc.Close(ctx)

	// Foreign writer corrupts the entry behind the cache's back.
	if err := ms.Set(ctx, "u:1", []byte("{not json")); err != nil {
		t.Fatalf("raw Set: %v", err)
	}

	if _, err := pc.Get(ctx, "u:1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get corrupt entry: want ErrNotFound, got %v", err)
	}
	// Entry was dropped, not left to fail every read.
	if _, err := ms.Get(ctx, "u:1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("corrupt entry still present: %v", err)
	}
	if len(hooks.selfHeal) != 1 || hooks.selfHeal[0] != "u:1" {
		t.Fatalf("self-heal hook: got %v", hooks.selfHeal)
	}
}

func TestGetAllSkipsUndecodableEntries(t *testing.T) {
	ctx := context.Background()
	hooks := &recordHooks{}
	pc, ms := newTestCache(t, func(o *Options[user]) { o.Hooks = hooks })
	defer pc.Close(ctx)

	if err := pc.Set(ctx, "u:1", user{ID: "1", Name: "Ada"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := pc.Set(ctx, "u:2", user{ID: "2", Name: "Bob"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := ms.Set(ctx, "u:3", []byte("garbage")); err != nil {
		t.Fatalf("raw Set: %v", err)
	}

	got, err := pc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetAll: got %d entries, want 2", len(got))
	}
	if got["u:1"].Name != "Ada" || got["u:2"].Name != "Bob" {
		t.Fatalf("GetAll: got %+v", got)
	}
	if len(hooks.skipped) != 1 || hooks.skipped[0] != "u:3" {
		t.Fatalf("entry-skipped hook: got %v", hooks.skipped)
	}
}

func TestStringCacheMatchesStoreSemantics(t *testing.T) {
	ctx := context.Background()
	pc, err := New[string](Options[string]{
		Store: memory.New(),
		Codec: c.String{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer pc.Close(ctx)

	want := map[string]string{"a": "1", "b": "2", "c": "3"}
	for k, v := range want {
		if err := pc.Set(ctx, k, v); err != nil {
			t.Fatalf("Set %q: %v", k, err)
		}
	}
	got, err := pc.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("GetAll: got %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("GetAll[%q]: got %q want %q", k, got[k], v)
		}
	}
}

func TestSetReportsEncodeFailure(t *testing.T) {
	ctx := context.Background()
	pc, err := New[chan int](Options[chan int]{
		Store: memory.New(),
		Codec: c.JSON[chan int]{}, // channels are not JSON-serializable
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer pc.Close(ctx)

	if err := pc.Set(ctx, "k", make(chan int)); err == nil {
		t.Fatal("Set with unserializable value should fail")
	}
}
