package stringutils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate_ShortInputUnchanged(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "exactly-ten"} {
		if got := Truncate(s, 20); got != s {
			t.Errorf("Truncate(%q, 20) = %q, want unchanged", s, got)
		}
	}
}

func TestTruncate_ExactLimitUnchanged(t *testing.T) {
	s := strings.Repeat("x", 10)
	if got := Truncate(s, 10); got != s {
		t.Errorf("Truncate at exact limit changed the string: %q", got)
	}
}

func TestTruncate_LongInputCapped(t *testing.T) {
	s := strings.Repeat("x", 100)
	got := Truncate(s, 10)
	if len(got) != 10 {
		t.Fatalf("expected length 10, got %d (%q)", len(got), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if !strings.HasPrefix(got, "xxxxxxx") {
		t.Errorf("expected original prefix, got %q", got)
	}
}

func TestTruncate_TinyLimit(t *testing.T) {
	for max := 0; max <= 3; max++ {
		got := Truncate("hello world", max)
		if len(got) != max {
			t.Errorf("Truncate(_, %d) length = %d", max, len(got))
		}
		if want := "..."[:max]; got != want {
			t.Errorf("Truncate(_, %d) = %q, want %q", max, got, want)
		}
	}
}

func TestTruncate_KeepsUTF8Valid(t *testing.T) {
	s := strings.Repeat("日本語のテキスト", 4)
	for max := 4; max <= len(s); max++ {
		got := Truncate(s, max)
		if len(got) > max {
			t.Fatalf("Truncate(_, %d) length = %d", max, len(got))
		}
		if !utf8.ValidString(got) {
			t.Fatalf("Truncate(_, %d) = %q is not valid UTF-8", max, got)
		}
	}
}

func TestTruncate_NeverExceedsLimit(t *testing.T) {
	for n := 5; n <= 50; n += 5 {
		for l := 0; l <= 60; l += 7 {
			got := Truncate(strings.Repeat("a", l), n)
			if len(got) > n {
				t.Fatalf("Truncate(len=%d, max=%d) produced length %d", l, n, len(got))
			}
		}
	}
}
