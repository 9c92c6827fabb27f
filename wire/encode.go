package wire

import (
	"fmt"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

func encQuoted(b *encBuilder, q core.Quoted) {
	b.writeByte('"')
	for i := 0; i < len(q.String()); i++ {
		c := q.String()[i]
		if c == '"' || c == '\\' {
			b.writeByte('\\')
		}
		b.writeByte(c)
	}
	b.writeByte('"')
}

// encLiteral writes a literal header and, for a non-synchronizing
// literal, the payload immediately after. A synchronizing literal
// instead inserts an AwaitContinuation action, and the caller resumes
// the encoding after the continuation arrives.
func encLiteral(b *encBuilder, l core.Literal) {
	fmt.Fprintf(b, "{%d", l.Len())
	if l.Mode() == core.LiteralNonSync {
		b.writeString("+")
	}
	b.writeString("}\r\n")
	if l.Mode() == core.LiteralNonSync {
		b.writeBytes(l.Bytes())
		return
	}
	b.awaitContinuation()
	b.writeBytes(l.Bytes())
}

func encIString(b *encBuilder, s core.IString) {
	if l, ok := s.Literal(); ok {
		encLiteral(b, l)
		return
	}
	q, _ := s.Quoted()
	encQuoted(b, q)
}

func encNString(b *encBuilder, s core.NString) {
	v, ok := s.Value()
	if !ok {
		b.writeString("NIL")
		return
	}
	encIString(b, v)
}

func encAString(b *encBuilder, a core.AString) {
	if at, ok := a.Atom(); ok {
		b.writeString(at.String())
		return
	}
	s, _ := a.IString()
	encIString(b, s)
}

func encMailbox(b *encBuilder, m imap.Mailbox) {
	if m.IsInbox() {
		b.writeString("INBOX")
		return
	}
	a, _ := m.AString()
	encAString(b, a)
}

func encFlag(b *encBuilder, f imap.Flag) {
	b.writeString(f.String())
}

func encFlagPerm(b *encBuilder, f imap.FlagPerm) {
	b.writeString(f.String())
}

func encSeqNo(b *encBuilder, n imap.SeqNo) {
	b.writeString(n.String())
}

func encSequence(b *encBuilder, s imap.Sequence) {
	b.writeString(s.String())
}

func encSequenceSet(b *encBuilder, s imap.SequenceSet) {
	b.writeString(s.String())
}

func encCharset(b *encBuilder, cs core.Charset) {
	if cs.IsQuoted() {
		encQuoted(b, core.UnvalidatedQuoted(cs.String()))
		return
	}
	b.writeString(cs.String())
}

// Write lets encBuilder satisfy io.Writer, so fmt.Fprintf can target it
// directly.
func (b *encBuilder) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}
