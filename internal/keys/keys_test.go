package keys

import "testing"

func TestJoinStripRoundTrip(t *testing.T) {
	cases := []struct {
		ns, key, storage string
	}{
		{"", "user:1", "user:1"},
		{"app", "user:1", "app:user:1"},
		{"app:prod", "k", "app:prod:k"},
	}
	for _, c := range cases {
		if got := Join(c.ns, c.key); got != c.storage {
			t.Fatalf("Join(%q,%q)=%q want %q", c.ns, c.key, got, c.storage)
		}
		if got := Strip(c.ns, c.storage); got != c.key {
			t.Fatalf("Strip(%q,%q)=%q want %q", c.ns, c.storage, got, c.key)
		}
	}
}

func TestPattern(t *testing.T) {
	if got := Pattern(""); got != "*" {
		t.Fatalf("Pattern(\"\")=%q", got)
	}
	if got := Pattern("app"); got != "app:*" {
		t.Fatalf("Pattern(\"app\")=%q", got)
	}
}
