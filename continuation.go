package imap

import "github.com/meszmate/imap-wire/core"

// Continue is a server continuation request ("+ ..."): either plain
// text with an optional response code, or a base64 SASL challenge.
type Continue struct {
	basic  *continueBasic
	base64 []byte
}

type continueBasic struct {
	Code *Code
	Text core.Text
}

// NewContinueBasic builds a text continuation request; code may be nil.
func NewContinueBasic(code *Code, text core.Text) Continue {
	return Continue{basic: &continueBasic{Code: code, Text: text}}
}

// NewContinueBase64 builds a base64 SASL-challenge continuation
// request. b is the raw (already-decoded) challenge payload; the
// encoder performs base64 encoding.
func NewContinueBase64(b []byte) Continue {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Continue{base64: cp}
}

// IsBase64 reports whether this is a Base64 continuation rather than
// Basic text.
func (c Continue) IsBase64() bool { return c.basic == nil }

// Basic returns the code/text pair and true, if this is a Basic
// continuation.
func (c Continue) Basic() (code *Code, text core.Text, ok bool) {
	if c.basic == nil {
		return nil, core.Text{}, false
	}
	return c.basic.Code, c.basic.Text, true
}

// Base64 returns the raw challenge bytes and true, if this is a
// Base64 continuation.
func (c Continue) Base64() ([]byte, bool) {
	if c.basic != nil {
		return nil, false
	}
	return c.base64, true
}
