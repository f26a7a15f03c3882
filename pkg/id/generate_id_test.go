package id

import (
	"encoding/hex"
	"testing"
)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	if !Valid32(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestValid32(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"0123456789abcdef0123456789abcdef", true},
		{"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", false}, // uppercase
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},  // 31 chars
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 33 chars
		{"gggggggggggggggggggggggggggggggg", false}, // not hex
		{"", false},
	}
	for _, c := range cases {
		if got := Valid32(c.in); got != c.want {
			t.Errorf("Valid32(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
