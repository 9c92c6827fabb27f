package imap

import (
	"strconv"
	"strings"

	"github.com/meszmate/imap-wire/core"
)

// UID is an IMAP unique identifier.
type UID uint32

// SeqNum is an IMAP message sequence number.
type SeqNum uint32

// SeqNo is a single endpoint of a Sequence: either a positive integer
// or the "*" wildcard meaning "the largest number in use", whose
// concrete value is only known to the caller holding mailbox state.
type SeqNo struct {
	value  uint32
	isStar bool
}

// Largest is the "*" wildcard SeqNo.
var Largest = SeqNo{isStar: true}

// NewSeqNo validates that n is non-zero and wraps it; the grammar
// has no sequence number zero.
func NewSeqNo(n uint32) (SeqNo, error) {
	if n == 0 {
		return SeqNo{}, errSeqNoZero
	}
	return SeqNo{value: n}, nil
}

var errSeqNoZero = &core.ValidationError{Kind: core.ErrByteNotAllowed, Rule: "seq-number", Found: '0'}

// IsLargest reports whether this is the "*" wildcard.
func (n SeqNo) IsLargest() bool { return n.isStar }

// Value returns the concrete number and true, or 0 and false for "*".
func (n SeqNo) Value() (uint32, bool) {
	if n.isStar {
		return 0, false
	}
	return n.value, true
}

// Expand resolves "*" to largest, returning the concrete value either way.
func (n SeqNo) Expand(largest uint32) uint32 {
	if n.isStar {
		return largest
	}
	return n.value
}

func (n SeqNo) String() string {
	if n.isStar {
		return "*"
	}
	return strconv.FormatUint(uint64(n.value), 10)
}

// Sequence is one element of a SequenceSet: a single number or an
// inclusive range between two SeqNo endpoints.
type Sequence struct {
	start SeqNo
	end   *SeqNo // nil for a Single
}

// NewSingleSequence builds a one-element Sequence.
func NewSingleSequence(n SeqNo) Sequence { return Sequence{start: n} }

// NewRangeSequence builds a Sequence spanning [from, to] inclusive.
// The endpoints need not be ordered; a decoder preserves wire order,
// and Contains normalizes internally.
func NewRangeSequence(from, to SeqNo) Sequence {
	return Sequence{start: from, end: &to}
}

// IsRange reports whether this is a Range rather than a Single.
func (s Sequence) IsRange() bool { return s.end != nil }

// Single returns the contained SeqNo and true, if this is a Single.
func (s Sequence) Single() (SeqNo, bool) {
	if s.end != nil {
		return SeqNo{}, false
	}
	return s.start, true
}

// Range returns the two endpoints and true, if this is a Range.
func (s Sequence) Range() (from, to SeqNo, ok bool) {
	if s.end == nil {
		return SeqNo{}, SeqNo{}, false
	}
	return s.start, *s.end, true
}

// Contains reports whether num (with "*" resolved to largest) falls
// within this sequence element.
func (s Sequence) Contains(num, largest uint32) bool {
	if s.end == nil {
		return s.start.Expand(largest) == num
	}
	a, b := s.start.Expand(largest), s.end.Expand(largest)
	if a > b {
		a, b = b, a
	}
	return num >= a && num <= b
}

func (s Sequence) String() string {
	if s.end == nil {
		return s.start.String()
	}
	return s.start.String() + ":" + s.end.String()
}

// SequenceSet is a non-empty, comma-separated list of Sequence
// elements, e.g. "1,3:5,*".
type SequenceSet struct {
	items core.NonEmptyVec[Sequence]
}

// NewSequenceSet validates that seqs is non-empty and wraps it.
func NewSequenceSet(seqs []Sequence) (SequenceSet, error) {
	v, err := core.NewNonEmptyVec(seqs)
	if err != nil {
		return SequenceSet{}, err
	}
	return SequenceSet{items: v}, nil
}

// Sequences returns the set's elements.
func (s SequenceSet) Sequences() []Sequence { return s.items.Slice() }

// Contains reports whether num is a member of the set, resolving "*"
// to largest.
func (s SequenceSet) Contains(num, largest uint32) bool {
	for _, seq := range s.items.Slice() {
		if seq.Contains(num, largest) {
			return true
		}
	}
	return false
}

// Dynamic reports whether the set mentions "*" anywhere, meaning its
// membership depends on mailbox state at evaluation time.
func (s SequenceSet) Dynamic() bool {
	for _, seq := range s.items.Slice() {
		if seq.end == nil {
			if seq.start.IsLargest() {
				return true
			}
			continue
		}
		if seq.start.IsLargest() || seq.end.IsLargest() {
			return true
		}
	}
	return false
}

func (s SequenceSet) String() string {
	parts := make([]string, s.items.Len())
	for i, seq := range s.items.Slice() {
		parts[i] = seq.String()
	}
	return strings.Join(parts, ",")
}

// ParseSequenceSet parses a sequence-set string like "1,2:5,10:*".
// It is a convenience wrapper; the wire package's incremental parser
// is what production decoders should use against a live connection.
func ParseSequenceSet(s string) (SequenceSet, error) {
	if s == "" {
		return SequenceSet{}, core.ErrEmptyVec
	}
	var seqs []Sequence
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			return SequenceSet{}, errEmptySeqRange
		}
		colon := strings.IndexByte(part, ':')
		if colon < 0 {
			n, err := parseSeqNo(part)
			if err != nil {
				return SequenceSet{}, err
			}
			seqs = append(seqs, NewSingleSequence(n))
			continue
		}
		from, err := parseSeqNo(part[:colon])
		if err != nil {
			return SequenceSet{}, err
		}
		to, err := parseSeqNo(part[colon+1:])
		if err != nil {
			return SequenceSet{}, err
		}
		seqs = append(seqs, NewRangeSequence(from, to))
	}
	return NewSequenceSet(seqs)
}

var errEmptySeqRange = &core.ValidationError{Kind: core.ErrEmpty, Rule: "sequence-set element"}

func parseSeqNo(s string) (SeqNo, error) {
	if s == "*" {
		return Largest, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return SeqNo{}, err
	}
	return NewSeqNo(uint32(n))
}
