package imap

import (
	"sort"
	"strings"
)

// Cap is a capability name as it appears in a CAPABILITY response or
// response code. The constants below cover the base protocol and the
// extensions this codec's grammar knows about; anything else a server
// advertises still decodes fine as a plain Cap value.
type Cap string

// Base protocol capabilities (RFC 3501).
const (
	CapIMAP4rev1     Cap = "IMAP4rev1"
	CapStartTLS      Cap = "STARTTLS"
	CapLoginDisabled Cap = "LOGINDISABLED"
)

// Authentication mechanisms with wire-level flow rules the encoder
// understands (see the AUTHENTICATE action rules in package wire).
const (
	CapAuthPlain Cap = "AUTH=PLAIN"
	CapAuthLogin Cap = "AUTH=LOGIN"
)

// Extensions whose syntax this codec implements.
const (
	// RFC 2177
	CapIdle Cap = "IDLE"
	// RFC 5161
	CapEnable Cap = "ENABLE"
	// RFC 4978
	CapCompressDeflate Cap = "COMPRESS=DEFLATE"
	// RFC 7888
	CapLiteralPlus  Cap = "LITERAL+"
	CapLiteralMinus Cap = "LITERAL-"
	// RFC 4959
	CapSASLIR Cap = "SASL-IR"
	// RFC 3691
	CapUnselect Cap = "UNSELECT"
	// RFC 6851
	CapMove Cap = "MOVE"
	// RFC 9208
	CapQuota              Cap = "QUOTA"
	CapQuotaResStorage    Cap = "QUOTA=RES-STORAGE"
	CapQuotaResMessage    Cap = "QUOTA=RES-MESSAGE"
	CapQuotaResMailbox    Cap = "QUOTA=RES-MAILBOX"
	CapQuotaResAnnotation Cap = "QUOTA=RES-ANNOTATION-STORAGE"
	// RFC 2221 / RFC 2193
	CapLoginReferrals   Cap = "LOGIN-REFERRALS"
	CapMailboxReferrals Cap = "MAILBOX-REFERRALS"
)

// CapSet is a set of capabilities, as collected from a CAPABILITY
// response or response code. The zero value is unusable; construct
// with NewCapSet. A CapSet is a plain map and is not safe for
// concurrent mutation; the session layer owns any locking it needs.
type CapSet map[Cap]struct{}

// NewCapSet builds a set holding the given capabilities.
func NewCapSet(caps ...Cap) CapSet {
	s := make(CapSet, len(caps))
	s.Add(caps...)
	return s
}

// Has reports whether c is in the set.
func (s CapSet) Has(c Cap) bool {
	_, ok := s[c]
	return ok
}

// Add inserts capabilities into the set.
func (s CapSet) Add(caps ...Cap) {
	for _, c := range caps {
		s[c] = struct{}{}
	}
}

// Remove deletes capabilities from the set.
func (s CapSet) Remove(caps ...Cap) {
	for _, c := range caps {
		delete(s, c)
	}
}

// Len returns the number of capabilities in the set.
func (s CapSet) Len() int { return len(s) }

// All returns the capabilities in sorted order.
func (s CapSet) All() []Cap {
	caps := make([]Cap, 0, len(s))
	for c := range s {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// Clone returns an independent copy of the set.
func (s CapSet) Clone() CapSet {
	clone := make(CapSet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// String returns the capabilities sorted and space-separated, the way
// a CAPABILITY response would list them.
func (s CapSet) String() string {
	caps := s.All()
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// HasAuth reports whether the set advertises the AUTH= capability for
// the given SASL mechanism name.
func (s CapSet) HasAuth(mechanism string) bool {
	return s.Has(Cap("AUTH=" + strings.ToUpper(mechanism)))
}
