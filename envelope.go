package imap

import "github.com/meszmate/imap-wire/core"

// Address is one entry of an Envelope address list: personal name,
// source route (rarely used today), mailbox, and host, any of which
// may be absent (encoded as NIL on the wire).
type Address struct {
	Name    core.NString
	Route   core.NString
	Mailbox core.NString
	Host    core.NString
}

// Envelope is the parsed form of a message's structural header fields,
// as returned by FETCH ENVELOPE.
type Envelope struct {
	// Date is the RFC 5322 Date header, carried as the literal string
	// the server reported; parsing it into a time.Time is a concern of
	// a calling application, not this codec.
	Date      core.NString
	Subject   core.NString
	From      []Address
	Sender    []Address
	ReplyTo   []Address
	To        []Address
	Cc        []Address
	Bcc       []Address
	InReplyTo core.NString
	MessageID core.NString
}
