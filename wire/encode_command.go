package wire

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

// encodeCommand serializes a full command line into an action stream,
// inserting a synchronization point before each sync-literal payload.
func encodeCommand(cmd imap.Command) *Encoder {
	b := &encBuilder{}
	b.writeString(cmd.Tag.String())
	b.writeByte(' ')
	encCommandBody(b, cmd.Body)
	return b.build()
}

func encCommandBody(b *encBuilder, body imap.CommandBody) {
	switch cmd := body.(type) {
	case imap.CommandCapability:
		b.writeString("CAPABILITY\r\n")
	case imap.CommandNoop:
		b.writeString("NOOP\r\n")
	case imap.CommandLogout:
		b.writeString("LOGOUT\r\n")
	case imap.CommandStartTLS:
		b.writeString("STARTTLS\r\n")
	case imap.CommandCheck:
		b.writeString("CHECK\r\n")
	case imap.CommandClose:
		b.writeString("CLOSE\r\n")
	case imap.CommandUnselect:
		b.writeString("UNSELECT\r\n")
	case imap.CommandExpunge:
		b.writeString("EXPUNGE\r\n")
	case imap.CommandIdle:
		b.writeString("IDLE\r\n")

	case imap.CommandLogin:
		b.writeString("LOGIN ")
		encAString(b, cmd.Username)
		b.writeByte(' ')
		encAStringContent(b, cmd.Password.Expose())
		b.writeString("\r\n")

	case imap.CommandAuthenticate:
		encAuthenticate(b, cmd)

	case imap.CommandSelect:
		b.writeString("SELECT ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandExamine:
		b.writeString("EXAMINE ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandCreate:
		b.writeString("CREATE ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandDelete:
		b.writeString("DELETE ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandSubscribe:
		b.writeString("SUBSCRIBE ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandUnsubscribe:
		b.writeString("UNSUBSCRIBE ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")

	case imap.CommandRename:
		b.writeString("RENAME ")
		encMailbox(b, cmd.From)
		b.writeByte(' ')
		encMailbox(b, cmd.To)
		b.writeString("\r\n")

	case imap.CommandList:
		b.writeString("LIST ")
		encMailbox(b, cmd.Reference)
		b.writeByte(' ')
		encListMailboxPattern(b, cmd.Pattern)
		b.writeString("\r\n")
	case imap.CommandLsub:
		b.writeString("LSUB ")
		encMailbox(b, cmd.Reference)
		b.writeByte(' ')
		encListMailboxPattern(b, cmd.Pattern)
		b.writeString("\r\n")

	case imap.CommandStatus:
		b.writeString("STATUS ")
		encMailbox(b, cmd.Mailbox)
		b.writeString(" (")
		for i, a := range cmd.Attrs {
			if i > 0 {
				b.writeByte(' ')
			}
			b.writeString(a.String())
		}
		b.writeString(")\r\n")

	case imap.CommandAppend:
		b.writeString("APPEND ")
		encMailbox(b, cmd.Mailbox)
		if cmd.Flags != nil {
			b.writeString(" (")
			for i, f := range cmd.Flags {
				if i > 0 {
					b.writeByte(' ')
				}
				encFlag(b, f)
			}
			b.writeByte(')')
		}
		if cmd.InternalDate != nil {
			b.writeByte(' ')
			encDateTime(b, *cmd.InternalDate)
		}
		b.writeByte(' ')
		encLiteral(b, cmd.Message)
		b.writeString("\r\n")

	case imap.CommandSearch:
		if cmd.UID {
			b.writeString("UID ")
		}
		b.writeString("SEARCH")
		if opts := cmd.Options; opts != (imap.SearchOptions{}) {
			b.writeString(" RETURN (")
			encSearchReturnOpts(b, opts)
			b.writeByte(')')
		}
		if cmd.Charset != nil {
			b.writeString(" CHARSET ")
			encCharset(b, *cmd.Charset)
		}
		b.writeByte(' ')
		encSearchCriteria(b, cmd.Criteria)
		b.writeString("\r\n")

	case imap.CommandFetch:
		if cmd.UID {
			b.writeString("UID ")
		}
		b.writeString("FETCH ")
		encSequenceSet(b, cmd.Set)
		b.writeByte(' ')
		if cmd.Macro != imap.FetchMacroNone {
			b.writeString(cmd.Macro.String())
		} else if len(cmd.Attrs) == 1 {
			encFetchAttr(b, cmd.Attrs[0])
		} else {
			b.writeByte('(')
			for i, a := range cmd.Attrs {
				if i > 0 {
					b.writeByte(' ')
				}
				encFetchAttr(b, a)
			}
			b.writeByte(')')
		}
		b.writeString("\r\n")

	case imap.CommandStore:
		if cmd.UID {
			b.writeString("UID ")
		}
		b.writeString("STORE ")
		encSequenceSet(b, cmd.Set)
		b.writeByte(' ')
		b.writeString(cmd.Kind.String())
		if cmd.Response == imap.StoreSilent {
			b.writeString(".SILENT")
		}
		b.writeString(" (")
		for i, f := range cmd.Flags {
			if i > 0 {
				b.writeByte(' ')
			}
			encFlag(b, f)
		}
		b.writeString(")\r\n")

	case imap.CommandCopy:
		if cmd.UID {
			b.writeString("UID ")
		}
		b.writeString("COPY ")
		encSequenceSet(b, cmd.Set)
		b.writeByte(' ')
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandMove:
		if cmd.UID {
			b.writeString("UID ")
		}
		b.writeString("MOVE ")
		encSequenceSet(b, cmd.Set)
		b.writeByte(' ')
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")

	case imap.CommandEnable:
		b.writeString("ENABLE")
		for _, capability := range cmd.Capabilities {
			b.writeByte(' ')
			b.writeString(string(capability))
		}
		b.writeString("\r\n")

	case imap.CommandCompress:
		b.writeString("COMPRESS ")
		b.writeString(cmd.Algorithm)
		b.writeString("\r\n")

	case imap.CommandGetQuota:
		b.writeString("GETQUOTA ")
		encAStringContent(b, cmd.Root)
		b.writeString("\r\n")
	case imap.CommandGetQuotaRoot:
		b.writeString("GETQUOTAROOT ")
		encMailbox(b, cmd.Mailbox)
		b.writeString("\r\n")
	case imap.CommandSetQuota:
		b.writeString("SETQUOTA ")
		encAStringContent(b, cmd.Root)
		b.writeString(" (")
		for i, r := range cmd.Resources {
			if i > 0 {
				b.writeByte(' ')
			}
			b.writeString(string(r.Name))
			b.writeByte(' ')
			b.writeString(strconv.FormatInt(r.Limit, 10))
		}
		b.writeString(")\r\n")
	}
}

// encAuthenticate writes the AUTHENTICATE line and the flow actions
// its mechanism implies. Without an initial response the client must
// always wait for the server's first challenge. With one, the flow
// depends on the mechanism: PLAIN is complete after the initial
// response, LOGIN still prompts for the password, and anything else
// is not knowable from syntax alone.
func encAuthenticate(b *encBuilder, cmd imap.CommandAuthenticate) {
	b.writeString("AUTHENTICATE ")
	b.writeString(cmd.Mechanism.String())
	if cmd.InitialResponse == nil {
		b.writeString("\r\n")
		b.awaitContinuation()
		return
	}
	ir := cmd.InitialResponse.Expose()
	b.writeByte(' ')
	if len(ir) == 0 {
		b.writeByte('=')
	} else {
		b.writeString(base64.StdEncoding.EncodeToString(ir))
	}
	b.writeString("\r\n")
	switch strings.ToUpper(cmd.Mechanism.String()) {
	case "PLAIN":
		// Complete; the server answers with a tagged status.
	case "LOGIN":
		b.awaitContinuation()
	default:
		b.unknown()
	}
}

// encAStringContent writes arbitrary string content in its most
// compact astring form: atom when possible, quoted otherwise, literal
// when the content demands it.
func encAStringContent(b *encBuilder, s string) {
	if a, err := core.NewAString(s); err == nil {
		encAString(b, a)
		return
	}
	// Content a validated AString cannot carry (NUL) has no legal
	// wire form; emit an empty quoted string rather than corrupt the
	// stream. Validated values never take this path.
	b.writeString(`""`)
}

// encListMailboxPattern writes a LIST/LSUB pattern: raw when every
// byte is a list-char, quoted otherwise (including the empty
// pattern).
func encListMailboxPattern(b *encBuilder, p imap.ListMailboxPattern) {
	s := p.String()
	if s != "" {
		raw := true
		for i := 0; i < len(s); i++ {
			if s[i] != '%' && s[i] != '*' && !core.IsAtomExtChar(s[i]) {
				raw = false
				break
			}
		}
		if raw {
			b.writeString(s)
			return
		}
	}
	q := core.UnvalidatedQuoted(s)
	encQuoted(b, q)
}

func encSearchReturnOpts(b *encBuilder, opts imap.SearchOptions) {
	first := true
	put := func(name string) {
		if !first {
			b.writeByte(' ')
		}
		b.writeString(name)
		first = false
	}
	if opts.ReturnMin {
		put("MIN")
	}
	if opts.ReturnMax {
		put("MAX")
	}
	if opts.ReturnAll {
		put("ALL")
	}
	if opts.ReturnCount {
		put("COUNT")
	}
	if opts.ReturnSave {
		put("SAVE")
	}
}

// encSearchCriteria writes the top-level criteria. A top-level And is
// written as bare space-separated keys — the implicit-AND form —
// matching how the parser folds multiple keys.
func encSearchCriteria(b *encBuilder, key imap.SearchKey) {
	if and, ok := key.(imap.SearchKeyAnd); ok {
		for i, k := range and.Keys {
			if i > 0 {
				b.writeByte(' ')
			}
			encSearchKey(b, k)
		}
		return
	}
	encSearchKey(b, key)
}

func encSearchKey(b *encBuilder, key imap.SearchKey) {
	switch k := key.(type) {
	case imap.SearchKeyAll:
		b.writeString("ALL")
	case imap.SearchKeyAnswered:
		b.writeString("ANSWERED")
	case imap.SearchKeyDeleted:
		b.writeString("DELETED")
	case imap.SearchKeyDraft:
		b.writeString("DRAFT")
	case imap.SearchKeyFlagged:
		b.writeString("FLAGGED")
	case imap.SearchKeyNew:
		b.writeString("NEW")
	case imap.SearchKeyOld:
		b.writeString("OLD")
	case imap.SearchKeyRecent:
		b.writeString("RECENT")
	case imap.SearchKeySeen:
		b.writeString("SEEN")
	case imap.SearchKeyUnanswered:
		b.writeString("UNANSWERED")
	case imap.SearchKeyUndeleted:
		b.writeString("UNDELETED")
	case imap.SearchKeyUndraft:
		b.writeString("UNDRAFT")
	case imap.SearchKeyUnflagged:
		b.writeString("UNFLAGGED")
	case imap.SearchKeyUnseen:
		b.writeString("UNSEEN")

	case imap.SearchKeyBcc:
		b.writeString("BCC ")
		encAStringContent(b, k.Value)
	case imap.SearchKeyBody:
		b.writeString("BODY ")
		encAStringContent(b, k.Value)
	case imap.SearchKeyCc:
		b.writeString("CC ")
		encAStringContent(b, k.Value)
	case imap.SearchKeyFrom:
		b.writeString("FROM ")
		encAStringContent(b, k.Value)
	case imap.SearchKeySubject:
		b.writeString("SUBJECT ")
		encAStringContent(b, k.Value)
	case imap.SearchKeyText:
		b.writeString("TEXT ")
		encAStringContent(b, k.Value)
	case imap.SearchKeyTo:
		b.writeString("TO ")
		encAStringContent(b, k.Value)

	case imap.SearchKeyKeyword:
		b.writeString("KEYWORD ")
		b.writeString(k.Flag)
	case imap.SearchKeyUnkeyword:
		b.writeString("UNKEYWORD ")
		b.writeString(k.Flag)

	case imap.SearchKeyHeader:
		b.writeString("HEADER ")
		encAStringContent(b, k.Field)
		b.writeByte(' ')
		encAStringContent(b, k.Value)

	case imap.SearchKeyBefore:
		b.writeString("BEFORE ")
		encDate(b, k.Date)
	case imap.SearchKeyOn:
		b.writeString("ON ")
		encDate(b, k.Date)
	case imap.SearchKeySince:
		b.writeString("SINCE ")
		encDate(b, k.Date)
	case imap.SearchKeySentBefore:
		b.writeString("SENTBEFORE ")
		encDate(b, k.Date)
	case imap.SearchKeySentOn:
		b.writeString("SENTON ")
		encDate(b, k.Date)
	case imap.SearchKeySentSince:
		b.writeString("SENTSINCE ")
		encDate(b, k.Date)

	case imap.SearchKeyLarger:
		b.writeString("LARGER ")
		b.writeString(strconv.FormatUint(uint64(k.Size), 10))
	case imap.SearchKeySmaller:
		b.writeString("SMALLER ")
		b.writeString(strconv.FormatUint(uint64(k.Size), 10))

	case imap.SearchKeySequenceSet:
		encSequenceSet(b, k.Set)
	case imap.SearchKeyUID:
		b.writeString("UID ")
		encSequenceSet(b, k.Set)

	case imap.SearchKeyNot:
		b.writeString("NOT ")
		encSearchKey(b, k.Key)
	case imap.SearchKeyOr:
		b.writeString("OR ")
		encSearchKey(b, k.Left)
		b.writeByte(' ')
		encSearchKey(b, k.Right)
	case imap.SearchKeyAnd:
		b.writeByte('(')
		for i, inner := range k.Keys {
			if i > 0 {
				b.writeByte(' ')
			}
			encSearchKey(b, inner)
		}
		b.writeByte(')')
	}
}

func encFetchAttr(b *encBuilder, attr imap.FetchAttr) {
	switch a := attr.(type) {
	case imap.FetchAttrEnvelope:
		b.writeString("ENVELOPE")
	case imap.FetchAttrFlags:
		b.writeString("FLAGS")
	case imap.FetchAttrInternalDate:
		b.writeString("INTERNALDATE")
	case imap.FetchAttrRFC822:
		b.writeString("RFC822")
	case imap.FetchAttrRFC822Header:
		b.writeString("RFC822.HEADER")
	case imap.FetchAttrRFC822Size:
		b.writeString("RFC822.SIZE")
	case imap.FetchAttrRFC822Text:
		b.writeString("RFC822.TEXT")
	case imap.FetchAttrBody:
		b.writeString("BODY")
	case imap.FetchAttrBodyStructure:
		b.writeString("BODYSTRUCTURE")
	case imap.FetchAttrUID:
		b.writeString("UID")
	case imap.FetchAttrBodySection:
		if a.Peek {
			b.writeString("BODY.PEEK")
		} else {
			b.writeString("BODY")
		}
		encSection(b, a.Section)
		if a.Partial != nil {
			b.writeByte('<')
			b.writeString(strconv.FormatUint(uint64(a.Partial.Offset), 10))
			b.writeByte('.')
			b.writeString(strconv.FormatUint(uint64(a.Partial.Count), 10))
			b.writeByte('>')
		}
	}
}

// encSection writes "[part.specifier (fields)]".
func encSection(b *encBuilder, s imap.BodySection) {
	b.writeByte('[')
	for i, n := range s.Part {
		if i > 0 {
			b.writeByte('.')
		}
		b.writeString(strconv.FormatUint(uint64(n), 10))
	}
	if s.Specifier != imap.SectionNone {
		if len(s.Part) > 0 {
			b.writeByte('.')
		}
		b.writeString(s.Specifier.String())
		if s.Specifier == imap.SectionHeaderFields || s.Specifier == imap.SectionHeaderFieldsNot {
			b.writeString(" (")
			for i, f := range s.Fields {
				if i > 0 {
					b.writeByte(' ')
				}
				encAString(b, f)
			}
			b.writeByte(')')
		}
	}
	b.writeByte(']')
}

// encDate writes an unquoted search date, day unpadded.
func encDate(b *encBuilder, t time.Time) {
	b.writeString(t.Format("2-Jan-2006"))
}

// encDateTime writes a quoted date-time with a zero-padded day.
func encDateTime(b *encBuilder, t time.Time) {
	b.writeByte('"')
	b.writeString(t.Format("02-Jan-2006 15:04:05 -0700"))
	b.writeByte('"')
}
