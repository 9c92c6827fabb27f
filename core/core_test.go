package core

import "testing"

func TestAtomValidation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"plain", "CAPABILITY", true},
		{"digits", "12345", true},
		{"empty", "", false},
		{"space", "a b", false},
		{"paren", "a(b", false},
		{"quote", `a"b`, false},
		{"backslash", `a\b`, false},
		{"percent", "a%b", false},
		{"star", "a*b", false},
		{"bracket", "a]b", false},
		{"brace", "a{b", false},
		{"high bit", "a\x80b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAtom(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("NewAtom(%q) err=%v, want ok=%v", tt.in, err, tt.ok)
			}
			// Validate must agree with the constructor.
			verr := ValidateAtom(tt.in)
			if (verr == nil) != tt.ok {
				t.Fatalf("ValidateAtom(%q) err=%v, want ok=%v", tt.in, verr, tt.ok)
			}
		})
	}
}

func TestAtomExtAllowsCloseBracket(t *testing.T) {
	if _, err := NewAtomExt("BADCHARSET]"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewAtom("BADCHARSET]"); err == nil {
		t.Fatalf("plain Atom must reject ']'")
	}
}

func TestTagRejectsPlus(t *testing.T) {
	if _, err := NewTag("A001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewTag("A+"); err == nil {
		t.Fatalf("tag must reject '+'")
	}
	if _, err := NewTag(""); err == nil {
		t.Fatalf("tag must reject empty input")
	}
}

func TestTextRejectsCloseBracket(t *testing.T) {
	if _, err := NewText("hello world"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewText("a]b"); err == nil {
		t.Fatalf("text must reject ']'")
	}
	if _, err := NewText(""); err == nil {
		t.Fatalf("text must reject empty input")
	}
}

func TestCharsetPrefersAtom(t *testing.T) {
	cs, err := NewCharset("UTF-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cs.IsQuoted() {
		t.Fatalf("plain charset name should not require quoting")
	}
	if cs.String() != "UTF-8" {
		t.Fatalf("got %q", cs.String())
	}

	cs2, err := NewCharset("weird charset")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cs2.IsQuoted() {
		t.Fatalf("charset containing a space must fall back to Quoted")
	}
}

func TestQuotedChar(t *testing.T) {
	for _, b := range []byte{'a', '/', '"', '\\'} {
		q, err := NewQuotedChar(b)
		if err != nil {
			t.Fatalf("NewQuotedChar(%q) error: %v", b, err)
		}
		if q.Byte() != b {
			t.Errorf("Byte() = %q, want %q", q.Byte(), b)
		}
	}
	for _, b := range []byte{'\r', '\n', 0, 0x80} {
		if _, err := NewQuotedChar(b); err == nil {
			t.Errorf("NewQuotedChar(%q) must fail", b)
		}
	}
}
