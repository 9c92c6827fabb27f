package core

import (
	"bytes"
	"testing"
)

func TestLiteralRejectsNUL(t *testing.T) {
	if _, err := NewLiteral([]byte("hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewLiteral([]byte("hel\x00lo")); err == nil {
		t.Fatalf("literal must reject NUL byte")
	}
}

func TestLiteralAllowsCRLF(t *testing.T) {
	l, err := NewLiteral([]byte("line1\r\nline2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(l.Bytes(), []byte("line1\r\nline2")) {
		t.Fatalf("payload mismatch")
	}
	if l.Mode() != LiteralSync {
		t.Fatalf("default mode must be sync")
	}
}

func TestIStringPrefersQuoted(t *testing.T) {
	s, err := NewIString("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.IsLiteral() {
		t.Fatalf("plain text should be carried as Quoted, not Literal")
	}

	s2, err := NewIString("line1\r\nline2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s2.IsLiteral() {
		t.Fatalf("text containing CRLF must be carried as Literal")
	}
}

func TestAStringPrefersAtom(t *testing.T) {
	a, err := NewAString("INBOX")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a.Atom(); !ok {
		t.Fatalf("plain identifier should be carried as AtomExt")
	}

	a2, err := NewAString("has space")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := a2.IString(); !ok {
		t.Fatalf("string with a space must fall back to IString")
	}
}

func TestNStringNil(t *testing.T) {
	n := NewNStringNil()
	if !n.IsNil() {
		t.Fatalf("expected NIL")
	}
	s, _ := NewIString("x")
	n2 := NewNString(s)
	if n2.IsNil() {
		t.Fatalf("expected non-NIL")
	}
}

func TestSecretRedaction(t *testing.T) {
	s := NewSecret("hunter2")
	if s.String() != "REDACTED" {
		t.Fatalf("Secret.String() leaked: %q", s.String())
	}
	if s.Expose() != "hunter2" {
		t.Fatalf("Expose() must return the original value")
	}
	if !s.Equal(NewSecret("hunter2")) {
		t.Fatalf("equal secrets must compare equal")
	}
	if s.Equal(NewSecret("hunter3")) {
		t.Fatalf("unequal secrets must not compare equal")
	}
}

func TestNonEmptyVecRejectsEmpty(t *testing.T) {
	if _, err := NewNonEmptyVec([]int{}); err == nil {
		t.Fatalf("expected error for empty slice")
	}
	v, err := NewNonEmptyVec([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Len() != 3 || v.First() != 1 {
		t.Fatalf("unexpected contents: %+v", v.Slice())
	}
}
