package wire

import (
	"strings"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

// parseGreeting parses the untagged greeting line: "* " followed by
// OK, PREAUTH or BYE, resp-text and CRLF. Any other status word —
// including NO and BAD, which are valid responses but not greetings —
// fails.
func parseGreeting(c *cursor) (imap.Greeting, error) {
	var g imap.Greeting
	if err := c.expectByte('*'); err != nil {
		return g, err
	}
	if err := c.expectSP(); err != nil {
		return g, err
	}
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "greeting status")
	if err != nil {
		return g, err
	}
	switch strings.ToUpper(word) {
	case "OK":
		g.Kind = imap.GreetingOK
	case "PREAUTH":
		g.Kind = imap.GreetingPreAuth
	case "BYE":
		g.Kind = imap.GreetingBye
	default:
		return g, errExpected("OK, PREAUTH or BYE", start)
	}
	if err := c.expectSP(); err != nil {
		return g, err
	}
	code, text, err := parseRespText(c)
	if err != nil {
		return g, err
	}
	g.Code = code
	g.Text = text
	if err := c.expectCRLF(); err != nil {
		return g, err
	}
	return g, nil
}

// parseResponse parses one complete server response line (or, for a
// FETCH with literals, one logical response spanning them): a
// continuation request, an untagged response, or a tagged status.
func parseResponse(c *cursor) (imap.Response, error) {
	b, ok := c.peekByte()
	if !ok {
		return nil, Incomplete
	}
	switch b {
	case '+':
		cont, err := parseContinue(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseContinue{Continue: cont}, nil
	case '*':
		c.advance(1)
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		return parseUntagged(c)
	default:
		tag, err := parseTag(c)
		if err != nil {
			return nil, err
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		status, err := parseStatusResponse(c, &tag)
		if err != nil {
			return nil, err
		}
		return status, nil
	}
}

// parseStatusResponse parses (OK/NO/BAD/BYE) SP resp-text CRLF; tag is
// nil for the untagged form.
func parseStatusResponse(c *cursor, tag *core.Tag) (imap.ResponseStatus, error) {
	var rs imap.ResponseStatus
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "status word")
	if err != nil {
		return rs, err
	}
	switch strings.ToUpper(word) {
	case "OK":
		rs.Kind = imap.StatusOK
	case "NO":
		rs.Kind = imap.StatusNo
	case "BAD":
		rs.Kind = imap.StatusBad
	case "BYE":
		rs.Kind = imap.StatusBye
	default:
		return rs, errExpected("OK, NO, BAD or BYE", start)
	}
	rs.Tag = tag
	if err := c.expectSP(); err != nil {
		return rs, err
	}
	code, text, err := parseRespText(c)
	if err != nil {
		return rs, err
	}
	rs.Code = code
	rs.Text = text
	if err := c.expectCRLF(); err != nil {
		return rs, err
	}
	return rs, nil
}

// parseUntagged dispatches the part after "* ": numeric data
// (EXISTS/RECENT/EXPUNGE/FETCH), keyword data, or an untagged status.
func parseUntagged(c *cursor) (imap.Response, error) {
	b, ok := c.peekByte()
	if !ok {
		return nil, Incomplete
	}
	if isDigit(b) {
		return parseNumericData(c)
	}
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "response name")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "OK", "NO", "BAD", "BYE":
		c.pos = start
		return parseStatusResponse(c, nil)
	case "CAPABILITY":
		caps, err := parseCapsLine(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataCapability{Caps: caps}}, nil
	case "ENABLED":
		if !c.ext.Enable {
			return nil, errExpected("response name", start)
		}
		caps, err := parseCapsLine(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataEnabled{Caps: caps}}, nil
	case "LIST":
		ld, err := parseListData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataList{List: ld}}, nil
	case "LSUB":
		ld, err := parseListData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataLsub{List: ld}}, nil
	case "STATUS":
		sd, err := parseStatusData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataStatus{Status: sd}}, nil
	case "SEARCH":
		sd, err := parseSearchData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataSearch{Search: sd}}, nil
	case "ESEARCH":
		sd, err := parseESearchData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataESearch{Search: sd}}, nil
	case "FLAGS":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		flags, err := parseFlagList(c)
		if err != nil {
			return nil, err
		}
		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataFlags{Flags: flags}}, nil
	case "QUOTA":
		if !c.ext.Quota {
			return nil, errExpected("response name", start)
		}
		qd, err := parseQuotaData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataQuota{Quota: qd}}, nil
	case "QUOTAROOT":
		if !c.ext.Quota {
			return nil, errExpected("response name", start)
		}
		qr, err := parseQuotaRootData(c)
		if err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataQuotaRoot{QuotaRoot: qr}}, nil
	}
	return nil, errExpected("response name", start)
}

// parseNumericData parses "number SP (EXISTS/RECENT/EXPUNGE/FETCH...)".
func parseNumericData(c *cursor) (imap.Response, error) {
	n, err := parseNumber(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "response name")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "EXISTS":
		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataExists{Count: n}}, nil
	case "RECENT":
		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataRecent{Count: n}}, nil
	case "EXPUNGE":
		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataExpunge{SeqNum: n}}, nil
	case "FETCH":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		items, err := parseMsgAtt(c)
		if err != nil {
			return nil, err
		}
		if err := c.expectCRLF(); err != nil {
			return nil, err
		}
		return imap.ResponseData{Data: imap.DataFetch{
			Message: imap.FetchMessageData{SeqNum: n, Items: items},
		}}, nil
	}
	return nil, errExpected("EXISTS, RECENT, EXPUNGE or FETCH", start)
}

// parseCapsLine parses 1*(SP capability) CRLF.
func parseCapsLine(c *cursor) ([]imap.Cap, error) {
	var caps []imap.Cap
	for {
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
		capability, err := parseCap(c)
		if err != nil {
			return nil, err
		}
		caps = append(caps, capability)
	}
	if len(caps) == 0 {
		return nil, errExpected("capability", c.pos)
	}
	if err := c.expectCRLF(); err != nil {
		return nil, err
	}
	return caps, nil
}

// parseListData parses SP "(" attrs ")" SP delimiter SP mailbox CRLF.
func parseListData(c *cursor) (imap.ListData, error) {
	var ld imap.ListData
	if err := c.expectSP(); err != nil {
		return ld, err
	}
	if err := c.expectByte('('); err != nil {
		return ld, err
	}
	for {
		b, ok := c.peekByte()
		if !ok {
			return ld, Incomplete
		}
		if b == ')' {
			c.advance(1)
			break
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if err := c.expectByte('\\'); err != nil {
			return ld, err
		}
		a, err := parseAtom(c)
		if err != nil {
			return ld, err
		}
		ld.Attrs = append(ld.Attrs, imap.MailboxAttr("\\"+a.String()))
	}
	if err := c.expectSP(); err != nil {
		return ld, err
	}
	delim, err := parseListDelimiter(c)
	if err != nil {
		return ld, err
	}
	ld.Delim = delim
	if err := c.expectSP(); err != nil {
		return ld, err
	}
	m, err := parseMailbox(c)
	if err != nil {
		return ld, err
	}
	ld.Mailbox = m
	if err := c.expectCRLF(); err != nil {
		return ld, err
	}
	return ld, nil
}

// parseListDelimiter parses a quoted single character or NIL (no
// hierarchy, reported as 0).
func parseListDelimiter(c *cursor) (byte, error) {
	b, ok := c.peekByte()
	if !ok {
		return 0, Incomplete
	}
	if b == 'N' || b == 'n' {
		if err := c.expectKeyword("NIL"); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err := c.expectByte('"'); err != nil {
		return 0, err
	}
	ch, ok := c.peekByte()
	if !ok {
		return 0, Incomplete
	}
	if ch == '\\' {
		esc, ok := c.peekAt(1)
		if !ok {
			return 0, Incomplete
		}
		if esc != '"' && esc != '\\' {
			return 0, errExpected("quoted-special", c.pos+1)
		}
		ch = esc
		c.advance(2)
	} else {
		if !core.IsQuotedChar(ch) {
			return 0, errExpected("quoted-char", c.pos)
		}
		c.advance(1)
	}
	if err := c.expectByte('"'); err != nil {
		return 0, err
	}
	return ch, nil
}

// parseStatusData parses SP mailbox SP "(" [att SP number ...] ")" CRLF.
func parseStatusData(c *cursor) (imap.StatusData, error) {
	var sd imap.StatusData
	if err := c.expectSP(); err != nil {
		return sd, err
	}
	m, err := parseMailbox(c)
	if err != nil {
		return sd, err
	}
	sd.Mailbox = m
	if err := c.expectSP(); err != nil {
		return sd, err
	}
	if err := c.expectByte('('); err != nil {
		return sd, err
	}
	for {
		b, ok := c.peekByte()
		if !ok {
			return sd, Incomplete
		}
		if b == ')' {
			c.advance(1)
			break
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		attr, err := parseStatusAttr(c)
		if err != nil {
			return sd, err
		}
		if err := c.expectSP(); err != nil {
			return sd, err
		}
		n, err := parseNumber(c)
		if err != nil {
			return sd, err
		}
		v := n
		switch attr {
		case imap.StatusAttrMessages:
			sd.NumMessages = &v
		case imap.StatusAttrRecent:
			sd.NumRecent = &v
		case imap.StatusAttrUIDNext:
			sd.UIDNext = &v
		case imap.StatusAttrUIDValidity:
			sd.UIDValidity = &v
		case imap.StatusAttrUnseen:
			sd.NumUnseen = &v
		}
	}
	if err := c.expectCRLF(); err != nil {
		return sd, err
	}
	return sd, nil
}

// parseSearchData parses *(SP nz-number) CRLF, the classic SEARCH
// result. The numbers are message sequence numbers or, after a UID
// SEARCH, UIDs; the codec cannot tell the two apart and reports them
// as sequence numbers, leaving the interpretation to the caller that
// issued the command.
func parseSearchData(c *cursor) (imap.SearchData, error) {
	var sd imap.SearchData
	for {
		b, ok := c.peekByte()
		if !ok {
			return sd, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
		n, err := parseNZNumber(c)
		if err != nil {
			return sd, err
		}
		sd.AllSeqNums = append(sd.AllSeqNums, n)
	}
	if err := c.expectCRLF(); err != nil {
		return sd, err
	}
	return sd, nil
}

// parseESearchData parses the extended search result (RFC 4731):
// ["(TAG" SP tag-string ")"] ["UID"] *(search-return-data) CRLF,
// where search-return-data is MIN/MAX/COUNT with a number, ALL with a
// sequence set, or MODSEQ with a 63-bit value.
func parseESearchData(c *cursor) (imap.SearchData, error) {
	var sd imap.SearchData
	if b, ok := c.peekByte(); ok && b == ' ' {
		if nb, ok := c.peekAt(1); ok && nb == '(' {
			c.advance(2)
			if err := c.expectKeyword("TAG"); err != nil {
				return sd, err
			}
			if err := c.expectSP(); err != nil {
				return sd, err
			}
			tag, err := parseQuoted(c)
			if err != nil {
				return sd, err
			}
			sd.Tag = tag.String()
			if err := c.expectByte(')'); err != nil {
				return sd, err
			}
		} else if !ok {
			return sd, Incomplete
		}
	} else if !ok {
		return sd, Incomplete
	}
	for {
		b, ok := c.peekByte()
		if !ok {
			return sd, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
		start := c.pos
		word, err := c.takeWhile1(core.IsAtomChar, "search return data")
		if err != nil {
			return sd, err
		}
		switch strings.ToUpper(word) {
		case "UID":
			sd.UID = true
			continue
		case "MIN", "MAX", "COUNT":
			if err := c.expectSP(); err != nil {
				return sd, err
			}
			n, err := parseNumber(c)
			if err != nil {
				return sd, err
			}
			v := n
			switch strings.ToUpper(word) {
			case "MIN":
				sd.Min = &v
			case "MAX":
				sd.Max = &v
			default:
				sd.Count = &v
			}
		case "ALL":
			if err := c.expectSP(); err != nil {
				return sd, err
			}
			set, err := parseSequenceSet(c)
			if err != nil {
				return sd, err
			}
			sd.All = &set
		case "MODSEQ":
			if err := c.expectSP(); err != nil {
				return sd, err
			}
			n, err := parseNumber64(c)
			if err != nil {
				return sd, err
			}
			sd.ModSeq = uint64(n)
		default:
			return sd, errExpected("search return data", start)
		}
	}
	if err := c.expectCRLF(); err != nil {
		return sd, err
	}
	return sd, nil
}

// parseQuotaData parses SP root SP "(" [resource usage limit ...] ")" CRLF.
func parseQuotaData(c *cursor) (imap.QuotaData, error) {
	var qd imap.QuotaData
	if err := c.expectSP(); err != nil {
		return qd, err
	}
	root, err := parseAString(c)
	if err != nil {
		return qd, err
	}
	qd.Root = string(root.Bytes())
	if err := c.expectSP(); err != nil {
		return qd, err
	}
	if err := c.expectByte('('); err != nil {
		return qd, err
	}
	for {
		b, ok := c.peekByte()
		if !ok {
			return qd, Incomplete
		}
		if b == ')' {
			c.advance(1)
			break
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		name, err := parseAtom(c)
		if err != nil {
			return qd, err
		}
		if err := c.expectSP(); err != nil {
			return qd, err
		}
		usage, err := parseNumber64(c)
		if err != nil {
			return qd, err
		}
		if err := c.expectSP(); err != nil {
			return qd, err
		}
		limit, err := parseNumber64(c)
		if err != nil {
			return qd, err
		}
		qd.Resources = append(qd.Resources, imap.QuotaResourceData{
			Name:  imap.QuotaResource(strings.ToUpper(name.String())),
			Usage: usage,
			Limit: limit,
		})
	}
	if err := c.expectCRLF(); err != nil {
		return qd, err
	}
	return qd, nil
}

// parseQuotaRootData parses SP mailbox *(SP root) CRLF.
func parseQuotaRootData(c *cursor) (imap.QuotaRootData, error) {
	var qr imap.QuotaRootData
	if err := c.expectSP(); err != nil {
		return qr, err
	}
	m, err := parseMailbox(c)
	if err != nil {
		return qr, err
	}
	qr.Mailbox = m
	for {
		b, ok := c.peekByte()
		if !ok {
			return qr, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
		root, err := parseAString(c)
		if err != nil {
			return qr, err
		}
		qr.Roots = append(qr.Roots, string(root.Bytes()))
	}
	if err := c.expectCRLF(); err != nil {
		return qr, err
	}
	return qr, nil
}

// parseMsgAtt parses "(" msg-att *(SP msg-att) ")".
func parseMsgAtt(c *cursor) ([]imap.FetchItem, error) {
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var items []imap.FetchItem
	for {
		item, err := parseFetchItem(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return items, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseFetchItem parses one msg-att item of a FETCH response.
func parseFetchItem(c *cursor) (imap.FetchItem, error) {
	start := c.pos
	word, err := c.takeWhile1(isFetchTokenChar, "msg-att")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "FLAGS":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		flags, err := parseFlagFetchList(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemFlags{Flags: flags}, nil
	case "ENVELOPE":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		env, err := parseEnvelope(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemEnvelope{Envelope: env}, nil
	case "INTERNALDATE":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		t, err := parseDateTime(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemInternalDate{Date: t}, nil
	case "RFC822":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		s, err := parseNString(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemRFC822{Data: s}, nil
	case "RFC822.HEADER":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		s, err := parseNString(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemRFC822Header{Data: s}, nil
	case "RFC822.TEXT":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		s, err := parseNString(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemRFC822Text{Data: s}, nil
	case "RFC822.SIZE":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		n, err := parseNumber(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemRFC822Size{Size: n}, nil
	case "BODYSTRUCTURE":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		bs, err := parseBodyStructure(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemBodyStructure{Structure: bs}, nil
	case "BODY":
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == '[' {
			section, err := parseSection(c)
			if err != nil {
				return nil, err
			}
			item := imap.FetchItemBodySection{Section: section}
			nb, ok := c.peekByte()
			if !ok {
				return nil, Incomplete
			}
			if nb == '<' {
				c.advance(1)
				origin, err := parseNumber(c)
				if err != nil {
					return nil, err
				}
				if err := c.expectByte('>'); err != nil {
					return nil, err
				}
				item.Origin = &origin
			}
			if err := c.expectSP(); err != nil {
				return nil, err
			}
			data, err := parseNString(c)
			if err != nil {
				return nil, err
			}
			item.Data = data
			return item, nil
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		bs, err := parseBodyStructure(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemBody{Structure: bs}, nil
	case "UID":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		n, err := parseNZNumber(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchItemUID{UID: imap.UID(n)}, nil
	}
	return nil, errExpected("msg-att", start)
}

// parseFlagFetchList parses "(" [flag-fetch *(SP flag-fetch)] ")".
func parseFlagFetchList(c *cursor) ([]imap.FlagFetch, error) {
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var flags []imap.FlagFetch
	if b, ok := c.peekByte(); ok && b == ')' {
		c.advance(1)
		return flags, nil
	}
	for {
		f, err := parseFlagFetch(c)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return flags, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseRespText parses ["[" resp-code "]" SP] text, leaving the CRLF
// for the caller. The decoded text admits any TEXT-CHAR, wider than
// what core.NewText accepts; decoding is deliberately lenient where
// construction is strict.
func parseRespText(c *cursor) (*imap.Code, core.Text, error) {
	var code *imap.Code
	if b, ok := c.peekByte(); ok && b == '[' {
		parsed, err := parseCode(c)
		if err != nil {
			return nil, core.Text{}, err
		}
		code = &parsed
		if nb, ok := c.peekByte(); ok && nb == ' ' {
			c.advance(1)
		} else if !ok {
			return nil, core.Text{}, Incomplete
		}
	} else if !ok {
		return nil, core.Text{}, Incomplete
	}
	text, err := c.takeTextToCR()
	if err != nil {
		return nil, core.Text{}, err
	}
	return code, core.UnvalidatedText(text), nil
}

// parseCode parses "[" resp-code "]".
func parseCode(c *cursor) (imap.Code, error) {
	var zero imap.Code
	if err := c.expectByte('['); err != nil {
		return zero, err
	}
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "response code")
	if err != nil {
		return zero, err
	}
	var code imap.Code
	switch strings.ToUpper(word) {
	case "ALERT":
		code = imap.NewCodeAlert()
	case "PARSE":
		code = imap.NewCodeParse()
	case "READ-ONLY":
		code = imap.NewCodeReadOnly()
	case "READ-WRITE":
		code = imap.NewCodeReadWrite()
	case "TRYCREATE":
		code = imap.NewCodeTryCreate()
	case "COMPRESSIONACTIVE":
		if !c.ext.Compress {
			return parseCodeOther(c, word, start)
		}
		code = imap.NewCodeCompressionActive()
	case "OVERQUOTA":
		if !c.ext.Quota {
			return parseCodeOther(c, word, start)
		}
		code = imap.NewCodeOverQuota()
	case "TOOBIG":
		code = imap.NewCodeTooBig()
	case "UIDNEXT", "UIDVALIDITY", "UNSEEN":
		if err := c.expectSP(); err != nil {
			return zero, err
		}
		n, err := parseNZNumber(c)
		if err != nil {
			return zero, err
		}
		switch strings.ToUpper(word) {
		case "UIDNEXT":
			code = imap.NewCodeUIDNext(n)
		case "UIDVALIDITY":
			code = imap.NewCodeUIDValidity(n)
		default:
			code = imap.NewCodeUnseen(n)
		}
	case "BADCHARSET":
		var charsets []core.Charset
		if b, ok := c.peekByte(); ok && b == ' ' {
			c.advance(1)
			if err := c.expectByte('('); err != nil {
				return zero, err
			}
			for {
				cs, err := parseCharset(c)
				if err != nil {
					return zero, err
				}
				charsets = append(charsets, cs)
				nb, ok := c.peekByte()
				if !ok {
					return zero, Incomplete
				}
				if nb == ' ' {
					c.advance(1)
					continue
				}
				if nb == ')' {
					c.advance(1)
					break
				}
				return zero, errExpected("')' or SP", c.pos)
			}
		} else if !ok {
			return zero, Incomplete
		}
		code = imap.NewCodeBadCharset(charsets)
	case "CAPABILITY":
		var caps []imap.Cap
		for {
			b, ok := c.peekByte()
			if !ok {
				return zero, Incomplete
			}
			if b != ' ' {
				break
			}
			c.advance(1)
			capability, err := parseCap(c)
			if err != nil {
				return zero, err
			}
			caps = append(caps, capability)
		}
		if len(caps) == 0 {
			return zero, errExpected("capability", c.pos)
		}
		code = imap.NewCodeCapability(caps)
	case "PERMANENTFLAGS":
		if err := c.expectSP(); err != nil {
			return zero, err
		}
		if err := c.expectByte('('); err != nil {
			return zero, err
		}
		var flags []imap.FlagPerm
		for {
			b, ok := c.peekByte()
			if !ok {
				return zero, Incomplete
			}
			if b == ')' {
				c.advance(1)
				break
			}
			if b == ' ' {
				c.advance(1)
				continue
			}
			f, err := parseFlagPerm(c)
			if err != nil {
				return zero, err
			}
			flags = append(flags, f)
		}
		code = imap.NewCodePermanentFlags(flags)
	case "REFERRAL":
		if !c.ext.Referrals {
			return parseCodeOther(c, word, start)
		}
		if err := c.expectSP(); err != nil {
			return zero, err
		}
		url, err := c.takeWhile1(func(b byte) bool {
			return b != ']' && core.IsTextChar(b)
		}, "imap url")
		if err != nil {
			return zero, err
		}
		code = imap.NewCodeReferral(url)
	default:
		return parseCodeOther(c, word, start)
	}
	if err := c.expectByte(']'); err != nil {
		return zero, err
	}
	return code, nil
}

// parseCodeOther finishes an unrecognized response code: the already-
// consumed atom plus optional trailing text (any TEXT-CHAR except
// ']'), ending at "]" which the caller of parseCode expects us to
// leave unconsumed — so it is consumed here and the shared closing
// expectation is skipped by returning directly.
func parseCodeOther(c *cursor, word string, start int) (imap.Code, error) {
	var zero imap.Code
	atom, err := core.NewAtomExt(word)
	if err != nil {
		return zero, errExpected("response code atom", start)
	}
	text := core.NewNStringNil()
	if b, ok := c.peekByte(); ok && b == ' ' {
		c.advance(1)
		raw, err := c.takeWhile1(func(b byte) bool {
			return b != ']' && core.IsTextChar(b)
		}, "response code text")
		if err != nil {
			return zero, err
		}
		s, err := core.NewIString(raw)
		if err != nil {
			return zero, errExpected("response code text", start)
		}
		text = core.NewNString(s)
	} else if !ok {
		return zero, Incomplete
	}
	if err := c.expectByte(']'); err != nil {
		return zero, err
	}
	return imap.NewCodeOther(atom, text), nil
}

// parseContinue parses "+" SP (base64 / resp-text) CRLF. A line that
// is one well-formed base64 run is taken as a SASL challenge;
// anything else is basic text.
func parseContinue(c *cursor) (imap.Continue, error) {
	var zero imap.Continue
	if err := c.expectByte('+'); err != nil {
		return zero, err
	}
	if err := c.expectSP(); err != nil {
		return zero, err
	}
	b, ok := c.peekByte()
	if !ok {
		return zero, Incomplete
	}
	if b != '[' {
		save := c.pos
		if decoded, err := parseBase64(c); err == nil {
			if nb, ok := c.peekByte(); ok && nb == '\r' {
				if err := c.expectCRLF(); err != nil {
					return zero, err
				}
				return imap.NewContinueBase64(decoded), nil
			} else if !ok {
				return zero, Incomplete
			}
		} else if err == Incomplete {
			return zero, Incomplete
		}
		c.pos = save
	}
	code, text, err := parseRespText(c)
	if err != nil {
		return zero, err
	}
	if err := c.expectCRLF(); err != nil {
		return zero, err
	}
	return imap.NewContinueBasic(code, text), nil
}

// parseAuthenticateData parses one client SASL exchange line: "*"
// (cancel) or a base64 payload, CRLF-terminated. An empty line is an
// empty response.
func parseAuthenticateData(c *cursor) (imap.AuthenticateData, error) {
	var zero imap.AuthenticateData
	b, ok := c.peekByte()
	if !ok {
		return zero, Incomplete
	}
	if b == '*' {
		c.advance(1)
		if err := c.expectCRLF(); err != nil {
			return zero, err
		}
		return imap.AuthenticateDataCancel, nil
	}
	if b == '\r' {
		if err := c.expectCRLF(); err != nil {
			return zero, err
		}
		return imap.NewAuthenticateData([]byte{}), nil
	}
	decoded, err := parseBase64(c)
	if err != nil {
		return zero, err
	}
	if err := c.expectCRLF(); err != nil {
		return zero, err
	}
	return imap.NewAuthenticateData(decoded), nil
}

// parseIdleDone parses the case-insensitive "DONE" CRLF line ending an
// IDLE.
func parseIdleDone(c *cursor) (imap.IdleDone, error) {
	if err := c.expectKeyword("DONE"); err != nil {
		return imap.IdleDone{}, err
	}
	if err := c.expectCRLF(); err != nil {
		return imap.IdleDone{}, err
	}
	return imap.IdleDone{}, nil
}
