package imap

import (
	"strconv"
	"strings"

	"github.com/meszmate/imap-wire/core"
)

// CodeKind discriminates the closed set of response codes a status
// response's optional "[...]" section may carry.
type CodeKind int

const (
	CodeAlert CodeKind = iota
	CodeBadCharset
	CodeCapability
	CodeParse
	CodePermanentFlags
	CodeReadOnly
	CodeReadWrite
	CodeTryCreate
	CodeUIDNext
	CodeUIDValidity
	CodeUnseen
	CodeReferral
	CodeCompressionActive
	CodeOverQuota
	CodeTooBig
	CodeOther
)

var codeNames = map[CodeKind]string{
	CodeAlert:             "ALERT",
	CodeBadCharset:        "BADCHARSET",
	CodeCapability:        "CAPABILITY",
	CodeParse:             "PARSE",
	CodePermanentFlags:    "PERMANENTFLAGS",
	CodeReadOnly:          "READ-ONLY",
	CodeReadWrite:         "READ-WRITE",
	CodeTryCreate:         "TRYCREATE",
	CodeUIDNext:           "UIDNEXT",
	CodeUIDValidity:       "UIDVALIDITY",
	CodeUnseen:            "UNSEEN",
	CodeReferral:          "REFERRAL",
	CodeCompressionActive: "COMPRESSIONACTIVE",
	CodeOverQuota:         "OVERQUOTA",
	CodeTooBig:            "TOOBIG",
}

// Code is a response code as carried inside a status response's
// bracketed section, e.g. "[UIDNEXT 4392]".
type Code struct {
	kind CodeKind

	charsets    []core.Charset
	caps        []Cap
	permFlags   []FlagPerm
	num         uint32
	referralURL string
	otherAtom   core.AtomExt
	otherText   core.NString
}

// NewCodeAlert builds the ALERT code, whose text must be displayed to
// the user verbatim.
func NewCodeAlert() Code { return Code{kind: CodeAlert} }

// NewCodeBadCharset builds BADCHARSET, optionally listing the
// charsets the server does support.
func NewCodeBadCharset(supported []core.Charset) Code {
	return Code{kind: CodeBadCharset, charsets: supported}
}

// NewCodeCapability builds CAPABILITY, the capability list a server
// may send alongside a greeting or LOGIN/AUTHENTICATE OK.
func NewCodeCapability(caps []Cap) Code { return Code{kind: CodeCapability, caps: caps} }

// NewCodeParse builds PARSE, signalling a non-fatal error parsing
// message header fields during FETCH or APPEND.
func NewCodeParse() Code { return Code{kind: CodeParse} }

// NewCodePermanentFlags builds PERMANENTFLAGS, the set of flags
// (including, optionally, the FlagPermWildcard) the client may set
// permanently.
func NewCodePermanentFlags(flags []FlagPerm) Code {
	return Code{kind: CodePermanentFlags, permFlags: flags}
}

// NewCodeReadOnly builds READ-ONLY.
func NewCodeReadOnly() Code { return Code{kind: CodeReadOnly} }

// NewCodeReadWrite builds READ-WRITE.
func NewCodeReadWrite() Code { return Code{kind: CodeReadWrite} }

// NewCodeTryCreate builds TRYCREATE.
func NewCodeTryCreate() Code { return Code{kind: CodeTryCreate} }

// NewCodeUIDNext builds UIDNEXT n.
func NewCodeUIDNext(n uint32) Code { return Code{kind: CodeUIDNext, num: n} }

// NewCodeUIDValidity builds UIDVALIDITY n.
func NewCodeUIDValidity(n uint32) Code { return Code{kind: CodeUIDValidity, num: n} }

// NewCodeUnseen builds UNSEEN n, the sequence number of the first
// unseen message.
func NewCodeUnseen(n uint32) Code { return Code{kind: CodeUnseen, num: n} }

// NewCodeReferral builds REFERRAL, carrying an IMAP URL (RFC 2192);
// URL parsing itself is out of scope, so the raw string is kept as-is.
func NewCodeReferral(url string) Code { return Code{kind: CodeReferral, referralURL: url} }

// NewCodeCompressionActive builds COMPRESSIONACTIVE.
func NewCodeCompressionActive() Code { return Code{kind: CodeCompressionActive} }

// NewCodeOverQuota builds OVERQUOTA.
func NewCodeOverQuota() Code { return Code{kind: CodeOverQuota} }

// NewCodeTooBig builds TOOBIG.
func NewCodeTooBig() Code { return Code{kind: CodeTooBig} }

// NewCodeOther builds an extension response code not among the known
// variants: an atom and optional trailing text.
func NewCodeOther(atom core.AtomExt, text core.NString) Code {
	return Code{kind: CodeOther, otherAtom: atom, otherText: text}
}

// Kind reports which variant this Code is.
func (c Code) Kind() CodeKind { return c.kind }

// Charsets returns BADCHARSET's supported-charset list.
func (c Code) Charsets() []core.Charset { return c.charsets }

// Capabilities returns CAPABILITY's list.
func (c Code) Capabilities() []Cap { return c.caps }

// PermanentFlags returns PERMANENTFLAGS's list.
func (c Code) PermanentFlags() []FlagPerm { return c.permFlags }

// Number returns the numeric argument of UIDNEXT, UIDVALIDITY or
// UNSEEN.
func (c Code) Number() uint32 { return c.num }

// ReferralURL returns REFERRAL's IMAP URL.
func (c Code) ReferralURL() string { return c.referralURL }

// Other returns the atom and text of an Other code.
func (c Code) Other() (core.AtomExt, core.NString) { return c.otherAtom, c.otherText }

func (c Code) String() string {
	var b strings.Builder
	switch c.kind {
	case CodeBadCharset:
		b.WriteString(codeNames[c.kind])
		if len(c.charsets) > 0 {
			b.WriteString(" (")
			for i, cs := range c.charsets {
				if i > 0 {
					b.WriteByte(' ')
				}
				if cs.IsQuoted() {
					b.WriteByte('"')
					for j := 0; j < len(cs.String()); j++ {
						if core.IsQuotedSpecial(cs.String()[j]) {
							b.WriteByte('\\')
						}
						b.WriteByte(cs.String()[j])
					}
					b.WriteByte('"')
				} else {
					b.WriteString(cs.String())
				}
			}
			b.WriteByte(')')
		}
	case CodeCapability:
		b.WriteString(codeNames[c.kind])
		for _, cap := range c.caps {
			b.WriteByte(' ')
			b.WriteString(string(cap))
		}
	case CodePermanentFlags:
		b.WriteString(codeNames[c.kind])
		b.WriteString(" (")
		for i, f := range c.permFlags {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.String())
		}
		b.WriteByte(')')
	case CodeUIDNext, CodeUIDValidity, CodeUnseen:
		b.WriteString(codeNames[c.kind])
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(uint64(c.num), 10))
	case CodeReferral:
		b.WriteString(codeNames[c.kind])
		b.WriteByte(' ')
		b.WriteString(c.referralURL)
	case CodeOther:
		b.WriteString(c.otherAtom.String())
		if v, ok := c.otherText.Value(); ok {
			b.WriteByte(' ')
			b.Write(v.Bytes())
		}
	default:
		b.WriteString(codeNames[c.kind])
	}
	return b.String()
}
