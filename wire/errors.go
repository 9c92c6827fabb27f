package wire

import (
	"fmt"

	"github.com/meszmate/imap-wire/core"
)

// Incomplete is returned (wrapped) when buf is a proper prefix of some
// valid message: the caller should read more bytes and retry with the
// accumulated buffer.
var Incomplete = fmt.Errorf("imap/wire: incomplete")

// LiteralFound is returned (by value, implementing error) when the
// parser has consumed an opening literal header "{N}" or "{N+}"
// followed by CRLF but Length bytes are not yet available. This is
// distinct from Incomplete: a peer acting as a server must send a
// continuation request before more bytes will arrive when Mode is
// core.LiteralSync.
type LiteralFound struct {
	Length uint32
	Mode   core.LiteralMode
}

func (e LiteralFound) Error() string {
	return fmt.Sprintf("imap/wire: literal found: %d bytes, mode %s", e.Length, e.Mode)
}

// SyntaxError is returned when buf can never be extended into a valid
// message and the caller must abort or resynchronize the connection.
type SyntaxError struct {
	Reason string
	Pos    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("imap/wire: syntax error at byte %d: %s", e.Pos, e.Reason)
}

// errLiteralContainsNull is returned when a literal's declared bytes
// contain a NUL, which IMAP forbids even inside literal payloads.
func errLiteralContainsNull(pos int) error {
	return &SyntaxError{Reason: "literal contains NUL byte", Pos: pos}
}

// errRecursionLimitExceeded is returned when SearchKey nesting exceeds
// the bound enforced by parseSearchKey.
func errRecursionLimitExceeded(pos int) error {
	return &SyntaxError{Reason: "recursion limit exceeded", Pos: pos}
}

// errBadNumber is returned when a number/nz-number rule's digit run
// fails to parse or is zero where zero is forbidden.
func errBadNumber(pos int) error {
	return &SyntaxError{Reason: "bad number", Pos: pos}
}

// errBadBase64 is returned when a base64 rule's digit run fails to
// decode.
func errBadBase64(pos int) error {
	return &SyntaxError{Reason: "bad base64", Pos: pos}
}

// errBadDateTime is returned when a date or date-time is structurally
// well-formed but names an impossible calendar date (e.g. Feb 30), or
// otherwise fails to parse as a date.
func errBadDateTime(pos int) error {
	return &SyntaxError{Reason: "bad date-time", Pos: pos}
}

func errExpected(what string, pos int) error {
	return &SyntaxError{Reason: "expected " + what, Pos: pos}
}
