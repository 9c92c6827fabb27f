package imap

// SelectData is the untagged data a server sends in response to a
// successful SELECT or EXAMINE: the mailbox's flags, message counts,
// and the identifiers a client needs to track subsequent changes.
type SelectData struct {
	Flags          []Flag
	PermanentFlags []FlagPerm
	NumMessages    uint32
	NumRecent      uint32
	UIDNext        UID
	UIDValidity    uint32
	FirstUnseen    uint32
	ReadOnly       bool
}
