package middleware

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestParseRequestAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("epoch seconds", func(t *testing.T) {
		got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("epoch milliseconds", func(t *testing.T) {
		got, err := parseRequestAt(strconv.FormatInt(now.UnixMilli(), 10))
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("rfc3339 with zone", func(t *testing.T) {
		got, err := parseRequestAt(now.Format(time.RFC3339))
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("rfc3339 with offset", func(t *testing.T) {
		in := now.In(time.FixedZone("WIB", 7*3600)).Format(time.RFC3339)
		got, err := parseRequestAt(in)
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if !got.Equal(now) {
			t.Fatalf("got %v, want %v", got, now)
		}
	})

	t.Run("naive timestamp rejected", func(t *testing.T) {
		if _, err := parseRequestAt("2026-08-29T10:00:00"); err == nil {
			t.Fatal("naive timestamp must be rejected")
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if _, err := parseRequestAt("  "); err == nil {
			t.Fatal("empty value must be rejected")
		}
	})
}

func TestValidReqID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{" 6BA7B810-9DAD-11D1-80B4-00C04FD430C8 ", true}, // trimmed + lowered
		{"short", false},
		{"", false},
	}
	for _, c := range cases {
		if got := validReqID(c.in); got != c.want {
			t.Errorf("validReqID(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/escrows/:escrow_id/fund", "cccccccccccccccccccccccccccccccc", "dddddddddddddddddddddddddddddddd")
	if !strings.HasPrefix(key, "idemp:escrow:post:") {
		t.Fatalf("key prefix wrong: %q", key)
	}
	for _, part := range []string{"/escrows/:escrow_id/fund", "cccccccccccccccccccccccccccccccc", "dddddddddddddddddddddddddddddddd"} {
		if !strings.Contains(key, part) {
			t.Fatalf("key %q missing %q", key, part)
		}
	}
}

func TestBodyHash_StableAndDistinct(t *testing.T) {
	a1 := bodyHash([]byte(`{"x":1}`))
	a2 := bodyHash([]byte(`{"x":1}`))
	b := bodyHash([]byte(`{"x":2}`))
	if a1 != a2 {
		t.Fatal("same body must hash identically")
	}
	if a1 == b {
		t.Fatal("different bodies must hash differently")
	}
	if len(a1) != 64 {
		t.Fatalf("hash length = %d, want 64", len(a1))
	}
}
