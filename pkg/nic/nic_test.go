package nic

import "testing"

func TestParse_LegacyFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want Gender
	}{
		{"851234567V", Male},   // day segment 123
		{"857501234v", Female}, // day segment 750
		{"855013456X", Female}, // day segment 501, just over threshold
		{"855003456x", Male},   // day segment 500, at threshold
	}
	for _, tc := range cases {
		got := Parse(tc.raw)
		if !got.Valid {
			t.Fatalf("Parse(%q) invalid, want valid", tc.raw)
		}
		if got.Gender != tc.want {
			t.Fatalf("Parse(%q) gender = %s, want %s", tc.raw, got.Gender, tc.want)
		}
	}
}

func TestParse_ModernFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want Gender
	}{
		{"199850123456", Female}, // day segment 501
		{"199812345678", Male},   // day segment 123
		{"200050012345", Male},   // day segment 500, at threshold
	}
	for _, tc := range cases {
		got := Parse(tc.raw)
		if !got.Valid {
			t.Fatalf("Parse(%q) invalid, want valid", tc.raw)
		}
		if got.Gender != tc.want {
			t.Fatalf("Parse(%q) gender = %s, want %s", tc.raw, got.Gender, tc.want)
		}
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	got := Parse("  851234567V \n")
	if !got.Valid || got.Gender != Male {
		t.Fatalf("whitespace-padded NIC not accepted: %+v", got)
	}
}

func TestParse_InvalidFormats(t *testing.T) {
	for _, raw := range []string{
		"",
		"85123456V",     // 8 digits + letter
		"8512345678V",   // 10 digits + letter
		"851234567",     // 9 digits, no letter
		"851234567Z",    // wrong suffix letter
		"19985012345",   // 11 digits
		"1998501234567", // 13 digits
		"19985012345a",  // digit replaced by letter
		"abcdefghiV",    // letters in the digit run
	} {
		got := Parse(raw)
		if got.Valid {
			t.Fatalf("Parse(%q) valid, want invalid", raw)
		}
		if got.Gender != "" {
			t.Fatalf("Parse(%q) gender = %q, want empty", raw, got.Gender)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	a := Parse("199850123456")
	b := Parse("199850123456")
	if a != b {
		t.Fatalf("Parse not deterministic: %+v vs %+v", a, b)
	}
}

func TestValid(t *testing.T) {
	if !Valid("851234567V") {
		t.Fatal("legacy NIC reported invalid")
	}
	if Valid("nope") {
		t.Fatal("garbage reported valid")
	}
}
