package id

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
	"time"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
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

func TestNewContractNumber_Format(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	got := NewContractNumber(now)

	if !strings.HasPrefix(got, "LN-202608-") {
		t.Fatalf("prefix mismatch: %q", got)
	}
	suffix := strings.TrimPrefix(got, "LN-202608-")
	if len(suffix) != 12 {
		t.Fatalf("suffix length = %d, want 12 (got=%q)", len(suffix), got)
	}
	if _, err := hex.DecodeString(suffix); err != nil {
		t.Fatalf("suffix not hex: %q", suffix)
	}
}

func TestNewContractNumber_Uniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		cn := NewContractNumber(now)
		if _, ok := seen[cn]; ok {
			t.Fatalf("duplicate contract number: %q", cn)
		}
		seen[cn] = struct{}{}
	}
}
