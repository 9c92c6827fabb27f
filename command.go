package imap

import (
	"time"

	"github.com/meszmate/imap-wire/core"
)

// Command is a single client command line: a client-chosen tag and
// its body.
type Command struct {
	Tag  core.Tag
	Body CommandBody
}

// NewCommand pairs a tag with a body.
func NewCommand(tag core.Tag, body CommandBody) Command {
	return Command{Tag: tag, Body: body}
}

// CommandBody is the closed set of IMAP4rev1 commands plus the
// extensions this codec understands (IDLE, ENABLE, COMPRESS, QUOTA,
// UNSELECT, MOVE).
type CommandBody interface {
	commandBody()
}

type (
	CommandCapability struct{}
	CommandNoop       struct{}
	CommandLogout     struct{}
	CommandStartTLS   struct{}

	// CommandAuthenticate starts a SASL exchange. InitialResponse is
	// present only when the peer negotiated SASL-IR.
	CommandAuthenticate struct {
		Mechanism       core.Atom
		InitialResponse *core.Secret[[]byte]
	}

	// CommandLogin is cleartext authentication; Password is wrapped so
	// it never appears in debug output.
	CommandLogin struct {
		Username core.AString
		Password core.Secret[string]
	}

	CommandSelect      struct{ Mailbox Mailbox }
	CommandExamine     struct{ Mailbox Mailbox }
	CommandCreate      struct{ Mailbox Mailbox }
	CommandDelete      struct{ Mailbox Mailbox }
	CommandSubscribe   struct{ Mailbox Mailbox }
	CommandUnsubscribe struct{ Mailbox Mailbox }

	CommandRename struct {
		From, To Mailbox
	}

	// CommandList is LIST only; LSUB is distinguished at the Command
	// level by CommandLsub rather than a flag, to keep the enum closed
	// and exhaustive over switches.
	CommandList struct {
		Reference Mailbox
		Pattern   ListMailboxPattern
	}
	CommandLsub struct {
		Reference Mailbox
		Pattern   ListMailboxPattern
	}

	CommandStatus struct {
		Mailbox Mailbox
		Attrs   []StatusAttr
	}

	CommandAppend struct {
		Mailbox      Mailbox
		Flags        []Flag
		InternalDate *time.Time
		Message      core.Literal
	}

	CommandCheck     struct{}
	CommandClose     struct{}
	CommandUnselect  struct{}
	CommandExpunge   struct{}

	CommandSearch struct {
		Charset  *core.Charset
		Criteria SearchKey
		UID      bool
		Options  SearchOptions
	}

	// CommandFetch carries either a macro (ALL/FAST/FULL) or an
	// explicit attribute list; when Macro is not FetchMacroNone,
	// Attrs is empty.
	CommandFetch struct {
		Set   SequenceSet
		Macro FetchMacro
		Attrs []FetchAttr
		UID   bool
	}

	CommandStore struct {
		Set      SequenceSet
		Kind     StoreKind
		Response StoreResponse
		Flags    []Flag
		UID      bool
	}

	CommandCopy struct {
		Set     SequenceSet
		Mailbox Mailbox
		UID     bool
	}
	CommandMove struct {
		Set     SequenceSet
		Mailbox Mailbox
		UID     bool
	}

	CommandIdle struct{}

	// CommandEnable requests capabilities be turned on for the rest of
	// the connection (RFC 5161); Capabilities is never empty.
	CommandEnable struct {
		Capabilities []Cap
	}

	// CommandCompress negotiates a DEFLATE-compressed transport (RFC 4978).
	CommandCompress struct {
		Algorithm string
	}

	CommandGetQuota struct {
		Root string
	}
	CommandGetQuotaRoot struct {
		Mailbox Mailbox
	}
	CommandSetQuota struct {
		Root      string
		Resources []QuotaResourceLimit
	}
)

// ListMailboxPattern is a LIST/LSUB mailbox-name pattern: like
// AString but additionally permitting the list-wildcards '%' and '*',
// which an AString's astring-char class forbids.
type ListMailboxPattern struct {
	s string
}

// NewListMailboxPattern validates s against the list-mailbox-char
// class (any atom-char, plus the list-wildcards and the resp-special
// ']') and wraps it.
func NewListMailboxPattern(s string) (ListMailboxPattern, error) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '%' || b == '*' || core.IsAtomExtChar(b) {
			continue
		}
		return ListMailboxPattern{}, &core.ValidationError{
			Kind: core.ErrByteNotAllowed, Rule: "list-mailbox", Found: b, Position: i,
		}
	}
	return ListMailboxPattern{s: s}, nil
}

func (p ListMailboxPattern) String() string { return p.s }

func (CommandCapability) commandBody()    {}
func (CommandNoop) commandBody()          {}
func (CommandLogout) commandBody()        {}
func (CommandStartTLS) commandBody()      {}
func (CommandAuthenticate) commandBody()  {}
func (CommandLogin) commandBody()         {}
func (CommandSelect) commandBody()        {}
func (CommandExamine) commandBody()       {}
func (CommandCreate) commandBody()        {}
func (CommandDelete) commandBody()        {}
func (CommandSubscribe) commandBody()     {}
func (CommandUnsubscribe) commandBody()   {}
func (CommandRename) commandBody()        {}
func (CommandList) commandBody()          {}
func (CommandLsub) commandBody()          {}
func (CommandStatus) commandBody()        {}
func (CommandAppend) commandBody()        {}
func (CommandCheck) commandBody()         {}
func (CommandClose) commandBody()         {}
func (CommandUnselect) commandBody()      {}
func (CommandExpunge) commandBody()       {}
func (CommandSearch) commandBody()        {}
func (CommandFetch) commandBody()         {}
func (CommandStore) commandBody()         {}
func (CommandCopy) commandBody()          {}
func (CommandMove) commandBody()          {}
func (CommandIdle) commandBody()          {}
func (CommandEnable) commandBody()        {}
func (CommandCompress) commandBody()      {}
func (CommandGetQuota) commandBody()      {}
func (CommandGetQuotaRoot) commandBody()  {}
func (CommandSetQuota) commandBody()      {}
