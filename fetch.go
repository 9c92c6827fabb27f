package imap

import (
	"time"

	"github.com/meszmate/imap-wire/core"
)

// SectionSpecifier names the part of a message a BODY[...] fetch
// addresses, beyond a bare MIME part number path.
type SectionSpecifier int

const (
	// SectionNone selects the entire part (or message).
	SectionNone SectionSpecifier = iota
	SectionHeader
	SectionHeaderFields
	SectionHeaderFieldsNot
	SectionText
	SectionMIME
)

func (s SectionSpecifier) String() string {
	switch s {
	case SectionHeader:
		return "HEADER"
	case SectionHeaderFields:
		return "HEADER.FIELDS"
	case SectionHeaderFieldsNot:
		return "HEADER.FIELDS.NOT"
	case SectionText:
		return "TEXT"
	case SectionMIME:
		return "MIME"
	default:
		return ""
	}
}

// BodySection names a message section inside BODY[...]: a MIME part
// number path (possibly empty), a specifier, and — for the
// HEADER.FIELDS forms — the header-field names to include or exclude.
type BodySection struct {
	Part      []uint32
	Specifier SectionSpecifier
	Fields    []core.AString
}

// SectionPartial is the "<offset.count>" suffix on a body section
// fetch attribute, requesting a byte range instead of the whole
// section.
type SectionPartial struct {
	Offset uint32
	Count  uint32
}

// FetchMacro is one of the three RFC 3501 shorthand attribute sets.
// It is kept distinct from the expanded attribute list so a decoded
// command re-encodes in its original wire form.
type FetchMacro int

const (
	// FetchMacroNone means the command carried an explicit
	// attribute list.
	FetchMacroNone FetchMacro = iota
	FetchMacroAll
	FetchMacroFast
	FetchMacroFull
)

func (m FetchMacro) String() string {
	switch m {
	case FetchMacroAll:
		return "ALL"
	case FetchMacroFast:
		return "FAST"
	case FetchMacroFull:
		return "FULL"
	default:
		return ""
	}
}

// FetchAttr is one requested FETCH attribute ("fetch-att" in the
// grammar): a closed sum over the attribute kinds a client may ask
// for.
type FetchAttr interface {
	fetchAttr()
}

type (
	FetchAttrEnvelope     struct{}
	FetchAttrFlags        struct{}
	FetchAttrInternalDate struct{}
	FetchAttrRFC822       struct{}
	FetchAttrRFC822Header struct{}
	FetchAttrRFC822Size   struct{}
	FetchAttrRFC822Text   struct{}
	// FetchAttrBody is the bare BODY attribute (non-extensible body
	// structure, no section brackets).
	FetchAttrBody          struct{}
	FetchAttrBodyStructure struct{}
	FetchAttrUID           struct{}

	// FetchAttrBodySection is BODY[section]<partial> or
	// BODY.PEEK[section]<partial>; Peek suppresses the implicit \Seen
	// flag set.
	FetchAttrBodySection struct {
		Section BodySection
		Partial *SectionPartial
		Peek    bool
	}
)

func (FetchAttrEnvelope) fetchAttr()      {}
func (FetchAttrFlags) fetchAttr()         {}
func (FetchAttrInternalDate) fetchAttr()  {}
func (FetchAttrRFC822) fetchAttr()        {}
func (FetchAttrRFC822Header) fetchAttr()  {}
func (FetchAttrRFC822Size) fetchAttr()    {}
func (FetchAttrRFC822Text) fetchAttr()    {}
func (FetchAttrBody) fetchAttr()          {}
func (FetchAttrBodyStructure) fetchAttr() {}
func (FetchAttrUID) fetchAttr()           {}
func (FetchAttrBodySection) fetchAttr()   {}

// FetchItem is one returned FETCH data item ("msg-att" in the
// grammar). Wire order is preserved: a FETCH response's items
// round-trip in the order the server sent them.
type FetchItem interface {
	fetchItem()
}

type (
	FetchItemEnvelope     struct{ Envelope Envelope }
	FetchItemFlags        struct{ Flags []FlagFetch }
	FetchItemInternalDate struct{ Date time.Time }

	FetchItemRFC822       struct{ Data core.NString }
	FetchItemRFC822Header struct{ Data core.NString }
	FetchItemRFC822Text   struct{ Data core.NString }
	FetchItemRFC822Size   struct{ Size uint32 }

	// FetchItemBody is the BODY form of the structure (no extension
	// data); FetchItemBodyStructure is the extensible BODYSTRUCTURE
	// form.
	FetchItemBody          struct{ Structure BodyStructure }
	FetchItemBodyStructure struct{ Structure BodyStructure }

	// FetchItemBodySection is BODY[section]<origin> data. Origin is
	// the offset echoed back when the request carried a partial.
	FetchItemBodySection struct {
		Section BodySection
		Origin  *uint32
		Data    core.NString
	}

	FetchItemUID struct{ UID UID }
)

func (FetchItemEnvelope) fetchItem()      {}
func (FetchItemFlags) fetchItem()         {}
func (FetchItemInternalDate) fetchItem()  {}
func (FetchItemRFC822) fetchItem()        {}
func (FetchItemRFC822Header) fetchItem()  {}
func (FetchItemRFC822Text) fetchItem()    {}
func (FetchItemRFC822Size) fetchItem()    {}
func (FetchItemBody) fetchItem()          {}
func (FetchItemBodyStructure) fetchItem() {}
func (FetchItemBodySection) fetchItem()   {}
func (FetchItemUID) fetchItem()           {}

// FetchMessageData is the untagged FETCH response for a single
// message: its sequence number and the returned items, in wire order.
// Items is never empty in a validly constructed value.
type FetchMessageData struct {
	SeqNum uint32
	Items  []FetchItem
}
