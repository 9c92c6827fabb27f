package imap

import (
	"strings"

	"github.com/meszmate/imap-wire/core"
)

// Mailbox is a mailbox name with INBOX singled out as a distinguished
// variant (case-insensitive on decode, always re-encoded in uppercase),
// per RFC 3501 section 5.1.
type Mailbox struct {
	inbox bool
	other core.AString
}

// Inbox is the distinguished INBOX mailbox.
var Inbox = Mailbox{inbox: true}

// NewMailbox validates name as an astring and normalizes a
// case-insensitive match of "INBOX" to Inbox.
func NewMailbox(name string) (Mailbox, error) {
	if strings.EqualFold(name, "INBOX") {
		return Inbox, nil
	}
	a, err := core.NewAString(name)
	if err != nil {
		return Mailbox{}, err
	}
	return Mailbox{other: a}, nil
}

// NewMailboxAString wraps an already-validated AString, normalizing
// INBOX the same way NewMailbox does.
func NewMailboxAString(a core.AString) Mailbox {
	if strings.EqualFold(string(a.Bytes()), "INBOX") {
		return Inbox
	}
	return Mailbox{other: a}
}

// IsInbox reports whether this is the distinguished INBOX mailbox.
func (m Mailbox) IsInbox() bool { return m.inbox }

// Name returns the mailbox name. For Inbox this is always the
// uppercase literal "INBOX", regardless of how it was spelled on the
// wire when decoded.
func (m Mailbox) Name() string {
	if m.inbox {
		return "INBOX"
	}
	return string(m.other.Bytes())
}

// AString returns the underlying AString for Other mailboxes, and
// false for Inbox (which always re-encodes as the bare atom INBOX).
func (m Mailbox) AString() (core.AString, bool) {
	if m.inbox {
		return core.AString{}, false
	}
	return m.other, true
}

func (m Mailbox) String() string { return m.Name() }
