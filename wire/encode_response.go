package wire

import (
	"encoding/base64"
	"strconv"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

// encodeGreeting serializes the untagged greeting line. Greetings are
// server output, so the builder runs in server mode (no
// synchronization points can occur anyway: greetings carry no
// literals).
func encodeGreeting(g imap.Greeting) *Encoder {
	b := &encBuilder{server: true}
	b.writeString("* ")
	b.writeString(g.Kind.String())
	b.writeByte(' ')
	encRespText(b, g.Code, g.Text.String())
	b.writeString("\r\n")
	return b.build()
}

// encodeResponse serializes any server response. Literals inside a
// response (FETCH BODY[] and friends) are sent without awaiting a
// continuation: servers never wait, so header and payload collapse
// into a single Send.
func encodeResponse(r imap.Response) *Encoder {
	b := &encBuilder{server: true}
	switch resp := r.(type) {
	case imap.ResponseStatus:
		encStatusResponse(b, resp)
	case imap.ResponseData:
		encData(b, resp.Data)
	case imap.ResponseContinue:
		encContinue(b, resp.Continue)
	}
	return b.build()
}

// encodeContinue serializes a continuation request line.
func encodeContinue(cont imap.Continue) *Encoder {
	b := &encBuilder{server: true}
	encContinue(b, cont)
	return b.build()
}

// encodeAuthenticateData serializes one client SASL exchange line.
func encodeAuthenticateData(d imap.AuthenticateData) *Encoder {
	b := &encBuilder{}
	if d.IsCancel() {
		b.writeString("*\r\n")
		return b.build()
	}
	data, _ := d.Data()
	b.writeString(base64.StdEncoding.EncodeToString(data.Expose()))
	b.writeString("\r\n")
	return b.build()
}

// encodeIdleDone serializes the DONE line ending an IDLE.
func encodeIdleDone(imap.IdleDone) *Encoder {
	b := &encBuilder{}
	b.writeString("DONE\r\n")
	return b.build()
}

func encStatusResponse(b *encBuilder, rs imap.ResponseStatus) {
	if rs.Tag != nil {
		b.writeString(rs.Tag.String())
	} else {
		b.writeByte('*')
	}
	b.writeByte(' ')
	b.writeString(rs.Kind.String())
	b.writeByte(' ')
	encRespText(b, rs.Code, rs.Text.String())
	b.writeString("\r\n")
}

func encRespText(b *encBuilder, code *imap.Code, text string) {
	if code != nil {
		b.writeByte('[')
		b.writeString(code.String())
		b.writeByte(']')
		if text != "" {
			b.writeByte(' ')
		}
	}
	b.writeString(text)
}

func encContinue(b *encBuilder, cont imap.Continue) {
	b.writeString("+ ")
	if data, ok := cont.Base64(); ok {
		b.writeString(base64.StdEncoding.EncodeToString(data))
	} else {
		code, text, _ := cont.Basic()
		encRespText(b, code, text.String())
	}
	b.writeString("\r\n")
}

func encData(b *encBuilder, data imap.Data) {
	switch d := data.(type) {
	case imap.DataCapability:
		b.writeString("* CAPABILITY")
		for _, capability := range d.Caps {
			b.writeByte(' ')
			b.writeString(string(capability))
		}
		b.writeString("\r\n")
	case imap.DataEnabled:
		b.writeString("* ENABLED")
		for _, capability := range d.Caps {
			b.writeByte(' ')
			b.writeString(string(capability))
		}
		b.writeString("\r\n")
	case imap.DataList:
		encListData(b, "LIST", d.List)
	case imap.DataLsub:
		encListData(b, "LSUB", d.List)
	case imap.DataStatus:
		encStatusData(b, d.Status)
	case imap.DataSearch:
		b.writeString("* SEARCH")
		for _, n := range d.Search.AllSeqNums {
			b.writeByte(' ')
			b.writeString(strconv.FormatUint(uint64(n), 10))
		}
		b.writeString("\r\n")
	case imap.DataESearch:
		encESearchData(b, d.Search)
	case imap.DataFlags:
		b.writeString("* FLAGS (")
		for i, f := range d.Flags {
			if i > 0 {
				b.writeByte(' ')
			}
			encFlag(b, f)
		}
		b.writeString(")\r\n")
	case imap.DataExists:
		b.writeString("* ")
		b.writeString(strconv.FormatUint(uint64(d.Count), 10))
		b.writeString(" EXISTS\r\n")
	case imap.DataRecent:
		b.writeString("* ")
		b.writeString(strconv.FormatUint(uint64(d.Count), 10))
		b.writeString(" RECENT\r\n")
	case imap.DataExpunge:
		b.writeString("* ")
		b.writeString(strconv.FormatUint(uint64(d.SeqNum), 10))
		b.writeString(" EXPUNGE\r\n")
	case imap.DataFetch:
		encFetchData(b, d.Message)
	case imap.DataQuota:
		encQuotaData(b, d.Quota)
	case imap.DataQuotaRoot:
		encQuotaRootData(b, d.QuotaRoot)
	}
}

func encListData(b *encBuilder, name string, ld imap.ListData) {
	b.writeString("* ")
	b.writeString(name)
	b.writeString(" (")
	for i, a := range ld.Attrs {
		if i > 0 {
			b.writeByte(' ')
		}
		b.writeString(string(a))
	}
	b.writeString(") ")
	if ld.Delim == 0 {
		b.writeString("NIL")
	} else {
		b.writeByte('"')
		if ld.Delim == '"' || ld.Delim == '\\' {
			b.writeByte('\\')
		}
		b.writeByte(ld.Delim)
		b.writeByte('"')
	}
	b.writeByte(' ')
	encMailbox(b, ld.Mailbox)
	b.writeString("\r\n")
}

func encStatusData(b *encBuilder, sd imap.StatusData) {
	b.writeString("* STATUS ")
	encMailbox(b, sd.Mailbox)
	b.writeString(" (")
	first := true
	put := func(name string, v *uint32) {
		if v == nil {
			return
		}
		if !first {
			b.writeByte(' ')
		}
		b.writeString(name)
		b.writeByte(' ')
		b.writeString(strconv.FormatUint(uint64(*v), 10))
		first = false
	}
	put("MESSAGES", sd.NumMessages)
	put("RECENT", sd.NumRecent)
	put("UIDNEXT", sd.UIDNext)
	put("UIDVALIDITY", sd.UIDValidity)
	put("UNSEEN", sd.NumUnseen)
	b.writeString(")\r\n")
}

// encESearchData writes an extended search result line: correlator,
// UID marker, then each present return-data item in a fixed order.
func encESearchData(b *encBuilder, sd imap.SearchData) {
	b.writeString("* ESEARCH")
	if sd.Tag != "" {
		b.writeString(" (TAG ")
		encQuoted(b, core.UnvalidatedQuoted(sd.Tag))
		b.writeByte(')')
	}
	if sd.UID {
		b.writeString(" UID")
	}
	if sd.Min != nil {
		b.writeString(" MIN ")
		b.writeString(strconv.FormatUint(uint64(*sd.Min), 10))
	}
	if sd.Max != nil {
		b.writeString(" MAX ")
		b.writeString(strconv.FormatUint(uint64(*sd.Max), 10))
	}
	if sd.All != nil {
		b.writeString(" ALL ")
		encSequenceSet(b, *sd.All)
	}
	if sd.Count != nil {
		b.writeString(" COUNT ")
		b.writeString(strconv.FormatUint(uint64(*sd.Count), 10))
	}
	if sd.ModSeq != 0 {
		b.writeString(" MODSEQ ")
		b.writeString(strconv.FormatUint(sd.ModSeq, 10))
	}
	b.writeString("\r\n")
}

func encFetchData(b *encBuilder, md imap.FetchMessageData) {
	b.writeString("* ")
	b.writeString(strconv.FormatUint(uint64(md.SeqNum), 10))
	b.writeString(" FETCH (")
	for i, item := range md.Items {
		if i > 0 {
			b.writeByte(' ')
		}
		encFetchItem(b, item)
	}
	b.writeString(")\r\n")
}

func encFetchItem(b *encBuilder, item imap.FetchItem) {
	switch it := item.(type) {
	case imap.FetchItemFlags:
		b.writeString("FLAGS (")
		for i, f := range it.Flags {
			if i > 0 {
				b.writeByte(' ')
			}
			b.writeString(f.String())
		}
		b.writeByte(')')
	case imap.FetchItemEnvelope:
		b.writeString("ENVELOPE ")
		encEnvelope(b, it.Envelope)
	case imap.FetchItemInternalDate:
		b.writeString("INTERNALDATE ")
		encDateTime(b, it.Date)
	case imap.FetchItemRFC822:
		b.writeString("RFC822 ")
		encNString(b, it.Data)
	case imap.FetchItemRFC822Header:
		b.writeString("RFC822.HEADER ")
		encNString(b, it.Data)
	case imap.FetchItemRFC822Text:
		b.writeString("RFC822.TEXT ")
		encNString(b, it.Data)
	case imap.FetchItemRFC822Size:
		b.writeString("RFC822.SIZE ")
		b.writeString(strconv.FormatUint(uint64(it.Size), 10))
	case imap.FetchItemBody:
		b.writeString("BODY ")
		encBodyStructure(b, it.Structure)
	case imap.FetchItemBodyStructure:
		b.writeString("BODYSTRUCTURE ")
		encBodyStructure(b, it.Structure)
	case imap.FetchItemBodySection:
		b.writeString("BODY")
		encSection(b, it.Section)
		if it.Origin != nil {
			b.writeByte('<')
			b.writeString(strconv.FormatUint(uint64(*it.Origin), 10))
			b.writeByte('>')
		}
		b.writeByte(' ')
		encNString(b, it.Data)
	case imap.FetchItemUID:
		b.writeString("UID ")
		b.writeString(strconv.FormatUint(uint64(it.UID), 10))
	}
}

func encEnvelope(b *encBuilder, env imap.Envelope) {
	b.writeByte('(')
	encNString(b, env.Date)
	b.writeByte(' ')
	encNString(b, env.Subject)
	for _, addrs := range [][]imap.Address{env.From, env.Sender, env.ReplyTo, env.To, env.Cc, env.Bcc} {
		b.writeByte(' ')
		encAddressList(b, addrs)
	}
	b.writeByte(' ')
	encNString(b, env.InReplyTo)
	b.writeByte(' ')
	encNString(b, env.MessageID)
	b.writeByte(')')
}

// encAddressList writes NIL for an empty list, parenthesised
// addresses otherwise.
func encAddressList(b *encBuilder, addrs []imap.Address) {
	if len(addrs) == 0 {
		b.writeString("NIL")
		return
	}
	b.writeByte('(')
	for _, a := range addrs {
		b.writeByte('(')
		encNString(b, a.Name)
		b.writeByte(' ')
		encNString(b, a.Route)
		b.writeByte(' ')
		encNString(b, a.Mailbox)
		b.writeByte(' ')
		encNString(b, a.Host)
		b.writeByte(')')
	}
	b.writeByte(')')
}

func encBodyStructure(b *encBuilder, bs imap.BodyStructure) {
	b.writeByte('(')
	if parts, subtype, ext, ok := bs.Multi(); ok {
		for _, part := range parts {
			encBodyStructure(b, part)
		}
		b.writeByte(' ')
		encIString(b, subtype)
		encBodyExtTail(b, ext)
		b.writeByte(')')
		return
	}
	body, ext, _ := bs.Single()
	encBody(b, body)
	encBodyExtTail(b, ext)
	b.writeByte(')')
}

func encBody(b *encBuilder, body imap.Body) {
	if typ, subtype, ok := body.Specific.Basic(); ok {
		encIString(b, typ)
		b.writeByte(' ')
		encIString(b, subtype)
		b.writeByte(' ')
		encBodyFields(b, body)
		return
	}
	if env, inner, lines, ok := body.Specific.Message(); ok {
		b.writeString(`"MESSAGE" "RFC822" `)
		encBodyFields(b, body)
		b.writeByte(' ')
		encEnvelope(b, env)
		b.writeByte(' ')
		encBodyStructure(b, *inner)
		b.writeByte(' ')
		b.writeString(strconv.FormatUint(uint64(lines), 10))
		return
	}
	subtype, lines, _ := body.Specific.Text()
	b.writeString(`"TEXT" `)
	encIString(b, subtype)
	b.writeByte(' ')
	encBodyFields(b, body)
	b.writeByte(' ')
	b.writeString(strconv.FormatUint(uint64(lines), 10))
}

// encBodyFields writes params SP id SP description SP encoding SP size.
func encBodyFields(b *encBuilder, body imap.Body) {
	if len(body.Params) == 0 {
		b.writeString("NIL")
	} else {
		b.writeByte('(')
		for i, p := range body.Params {
			if i > 0 {
				b.writeByte(' ')
			}
			encIString(b, p.Key)
			b.writeByte(' ')
			encIString(b, p.Value)
		}
		b.writeByte(')')
	}
	b.writeByte(' ')
	encNString(b, body.ID)
	b.writeByte(' ')
	encNString(b, body.Description)
	b.writeByte(' ')
	encIString(b, body.Encoding)
	b.writeByte(' ')
	b.writeString(strconv.FormatUint(uint64(body.Size), 10))
}

func encBodyExtTail(b *encBuilder, ext []imap.BodyExtension) {
	for _, e := range ext {
		b.writeByte(' ')
		encBodyExtension(b, e)
	}
}

func encBodyExtension(b *encBuilder, e imap.BodyExtension) {
	if items, ok := e.List(); ok {
		b.writeByte('(')
		for i, item := range items {
			if i > 0 {
				b.writeByte(' ')
			}
			encBodyExtension(b, item)
		}
		b.writeByte(')')
		return
	}
	if n, ok := e.Number(); ok {
		b.writeString(strconv.FormatUint(uint64(n), 10))
		return
	}
	s, _ := e.String()
	encNString(b, s)
}

func encQuotaData(b *encBuilder, qd imap.QuotaData) {
	b.writeString("* QUOTA ")
	encAStringContent(b, qd.Root)
	b.writeString(" (")
	for i, r := range qd.Resources {
		if i > 0 {
			b.writeByte(' ')
		}
		b.writeString(string(r.Name))
		b.writeByte(' ')
		b.writeString(strconv.FormatInt(r.Usage, 10))
		b.writeByte(' ')
		b.writeString(strconv.FormatInt(r.Limit, 10))
	}
	b.writeString(")\r\n")
}

func encQuotaRootData(b *encBuilder, qr imap.QuotaRootData) {
	b.writeString("* QUOTAROOT ")
	encMailbox(b, qr.Mailbox)
	for _, root := range qr.Roots {
		b.writeByte(' ')
		encAStringContent(b, root)
	}
	b.writeString("\r\n")
}
