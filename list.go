package imap

// ListData is a single untagged response to LIST or LSUB: a mailbox
// name, its hierarchy attributes, and the delimiter separating its
// hierarchy levels (0 if the server reports none).
type ListData struct {
	Attrs   []MailboxAttr
	Delim   byte
	Mailbox Mailbox
}
