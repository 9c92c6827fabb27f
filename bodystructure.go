package imap

import "github.com/meszmate/imap-wire/core"

// BodyParam is one key/value pair of a MIME body's parameter list
// (e.g. CHARSET "UTF-8"), kept in wire order.
type BodyParam struct {
	Key   core.IString
	Value core.IString
}

// BodyExtension is one element of the extension data trailing a body
// structure: an nstring, a number, or a parenthesised list of further
// extension elements. Exactly one of String/Number/List is
// meaningful, selected by IsList/IsNumber.
type BodyExtension struct {
	str    core.NString
	num    uint32
	isNum  bool
	list   []BodyExtension
	isList bool
}

// NewBodyExtensionString wraps an nstring extension element.
func NewBodyExtensionString(s core.NString) BodyExtension {
	return BodyExtension{str: s}
}

// NewBodyExtensionNumber wraps a numeric extension element.
func NewBodyExtensionNumber(n uint32) BodyExtension {
	return BodyExtension{num: n, isNum: true}
}

// NewBodyExtensionList wraps a parenthesised extension list.
func NewBodyExtensionList(items []BodyExtension) BodyExtension {
	return BodyExtension{list: items, isList: true}
}

func (e BodyExtension) IsList() bool   { return e.isList }
func (e BodyExtension) IsNumber() bool { return !e.isList && e.isNum }

func (e BodyExtension) String() (core.NString, bool) {
	if e.isList || e.isNum {
		return core.NString{}, false
	}
	return e.str, true
}

func (e BodyExtension) Number() (uint32, bool) {
	if !e.isNum {
		return 0, false
	}
	return e.num, true
}

func (e BodyExtension) List() ([]BodyExtension, bool) {
	if !e.isList {
		return nil, false
	}
	return e.list, true
}

// BodySpecific is the MIME-type-specific tail of a Body: either the
// generic basic-fields-only form, a message/rfc822 part carrying its
// own envelope and nested structure, or a text/* part carrying a line
// count.
type BodySpecific struct {
	basic   *bodySpecificBasic
	message *bodySpecificMessage
	text    *bodySpecificText
}

type bodySpecificBasic struct {
	Type, Subtype core.IString
}

type bodySpecificMessage struct {
	Envelope  Envelope
	Structure *BodyStructure
	Lines     uint32
}

type bodySpecificText struct {
	Subtype core.IString
	Lines   uint32
}

// NewBodySpecificBasic builds the Basic{type,subtype} variant.
func NewBodySpecificBasic(typ, subtype core.IString) BodySpecific {
	return BodySpecific{basic: &bodySpecificBasic{Type: typ, Subtype: subtype}}
}

// NewBodySpecificMessage builds the Message{envelope,inner_structure,lines}
// variant, used for a body of MIME type message/rfc822.
func NewBodySpecificMessage(env Envelope, structure *BodyStructure, lines uint32) BodySpecific {
	return BodySpecific{message: &bodySpecificMessage{Envelope: env, Structure: structure, Lines: lines}}
}

// NewBodySpecificText builds the Text{subtype,lines} variant.
func NewBodySpecificText(subtype core.IString, lines uint32) BodySpecific {
	return BodySpecific{text: &bodySpecificText{Subtype: subtype, Lines: lines}}
}

func (s BodySpecific) Basic() (typ, subtype core.IString, ok bool) {
	if s.basic == nil {
		return core.IString{}, core.IString{}, false
	}
	return s.basic.Type, s.basic.Subtype, true
}

func (s BodySpecific) Message() (env Envelope, structure *BodyStructure, lines uint32, ok bool) {
	if s.message == nil {
		return Envelope{}, nil, 0, false
	}
	return s.message.Envelope, s.message.Structure, s.message.Lines, true
}

func (s BodySpecific) Text() (subtype core.IString, lines uint32, ok bool) {
	if s.text == nil {
		return core.IString{}, 0, false
	}
	return s.text.Subtype, s.text.Lines, true
}

// Body aggregates the basic fields shared by every MIME part (RFC 3501
// section 7.4.2's "body-fields") with the type-specific tail.
type Body struct {
	Params      []BodyParam
	ID          core.NString
	Description core.NString
	Encoding    core.IString
	Size        uint32
	Specific    BodySpecific
}

// BodyStructure is either a Single leaf part or a Multi multipart
// container; containers nest by owned boxing of their child
// BodyStructures, never by back-reference, so the type has no cycles.
type BodyStructure struct {
	single *bodyStructureSingle
	multi  *bodyStructureMulti
}

type bodyStructureSingle struct {
	Body      Body
	Extension []BodyExtension
}

type bodyStructureMulti struct {
	Bodies    core.NonEmptyVec[BodyStructure]
	Subtype   core.IString
	Extension []BodyExtension
}

// NewBodyStructureSingle builds a leaf part.
func NewBodyStructureSingle(body Body, extension []BodyExtension) BodyStructure {
	return BodyStructure{single: &bodyStructureSingle{Body: body, Extension: extension}}
}

// NewBodyStructureMulti builds a multipart container; parts must be
// non-empty.
func NewBodyStructureMulti(parts []BodyStructure, subtype core.IString, extension []BodyExtension) (BodyStructure, error) {
	v, err := core.NewNonEmptyVec(parts)
	if err != nil {
		return BodyStructure{}, err
	}
	return BodyStructure{multi: &bodyStructureMulti{Bodies: v, Subtype: subtype, Extension: extension}}, nil
}

// IsMulti reports whether this is a Multi container rather than a
// Single leaf.
func (b BodyStructure) IsMulti() bool { return b.multi != nil }

// Single returns the leaf body and its extension data, if this is a
// Single variant.
func (b BodyStructure) Single() (body Body, extension []BodyExtension, ok bool) {
	if b.single == nil {
		return Body{}, nil, false
	}
	return b.single.Body, b.single.Extension, true
}

// Multi returns the child parts, subtype and extension data, if this
// is a Multi variant.
func (b BodyStructure) Multi() (parts []BodyStructure, subtype core.IString, extension []BodyExtension, ok bool) {
	if b.multi == nil {
		return nil, core.IString{}, nil, false
	}
	return b.multi.Bodies.Slice(), b.multi.Subtype, b.multi.Extension, true
}
