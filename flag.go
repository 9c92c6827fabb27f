package imap

import (
	"strings"

	"github.com/meszmate/imap-wire/core"
)

// Flag is an IMAP message flag: one of the system flags defined by
// RFC 3501, a keyword atom, or an extension atom prefixed with a
// backslash.
type Flag struct {
	system FlagSystem
	atom   core.Atom
}

// FlagSystem enumerates the system flags with wire-fixed spellings.
type FlagSystem int

const (
	// flagSystemNone marks a Flag holding a keyword or extension atom
	// rather than a system flag.
	flagSystemNone FlagSystem = iota
	FlagSeen
	FlagAnswered
	FlagFlagged
	FlagDeleted
	FlagDraft
)

var systemFlagNames = map[FlagSystem]string{
	FlagSeen:     "\\Seen",
	FlagAnswered: "\\Answered",
	FlagFlagged:  "\\Flagged",
	FlagDeleted:  "\\Deleted",
	FlagDraft:    "\\Draft",
}

// NewSystemFlag builds a Flag from one of the FlagSeen/.../FlagDraft
// constants.
func NewSystemFlag(s FlagSystem) Flag {
	if _, ok := systemFlagNames[s]; !ok {
		panic("imap: not a system flag")
	}
	return Flag{system: s}
}

// NewFlagKeyword builds a Flag from a bare keyword atom (no leading
// backslash), e.g. "$Forwarded".
func NewFlagKeyword(atom string) (Flag, error) {
	a, err := core.NewAtom(atom)
	if err != nil {
		return Flag{}, err
	}
	return Flag{atom: a}, nil
}

// NewFlagExtension builds a Flag from a backslash-prefixed atom that
// is not one of the five system flags, e.g. "\\Junk" used as a
// keyword-like extension flag.
func NewFlagExtension(atomWithoutSlash string) (Flag, error) {
	a, err := core.NewAtom(atomWithoutSlash)
	if err != nil {
		return Flag{}, err
	}
	return Flag{atom: a, system: flagSystemExtension}, nil
}

const flagSystemExtension FlagSystem = -1

// IsSystem reports whether f is one of the five RFC 3501 system flags.
func (f Flag) IsSystem() bool {
	_, ok := systemFlagNames[f.system]
	return ok
}

// IsExtension reports whether f is a backslash-prefixed flag other
// than a system flag (e.g. a server-defined "\\Junk").
func (f Flag) IsExtension() bool { return f.system == flagSystemExtension }

// String returns the flag's wire spelling.
func (f Flag) String() string {
	if name, ok := systemFlagNames[f.system]; ok {
		return name
	}
	if f.system == flagSystemExtension {
		return "\\" + f.atom.String()
	}
	return f.atom.String()
}

// ParseFlag classifies a decoded flag atom (without the leading
// backslash already stripped by the caller; pass the full token
// including any backslash).
func ParseFlag(token string) (Flag, error) {
	if strings.HasPrefix(token, "\\") {
		rest := token[1:]
		for sys, name := range systemFlagNames {
			if strings.EqualFold(name[1:], rest) {
				return NewSystemFlag(sys), nil
			}
		}
		return NewFlagExtension(rest)
	}
	return NewFlagKeyword(token)
}

// FlagFetch extends Flag with \Recent, which only ever appears in a
// FETCH FLAGS response item, never in STORE/APPEND/PERMANENTFLAGS.
type FlagFetch struct {
	flag   Flag
	recent bool
}

// NewFlagFetch wraps a regular Flag.
func NewFlagFetch(f Flag) FlagFetch { return FlagFetch{flag: f} }

// FlagFetchRecent is the \Recent pseudo-flag.
var FlagFetchRecent = FlagFetch{recent: true}

func (f FlagFetch) IsRecent() bool { return f.recent }

func (f FlagFetch) Flag() (Flag, bool) {
	if f.recent {
		return Flag{}, false
	}
	return f.flag, true
}

func (f FlagFetch) String() string {
	if f.recent {
		return "\\Recent"
	}
	return f.flag.String()
}

// FlagPerm extends Flag with the "\\*" wildcard, which a PERMANENTFLAGS
// response code uses to mean "the server also accepts new keywords".
type FlagPerm struct {
	flag     Flag
	wildcard bool
}

// NewFlagPerm wraps a regular Flag.
func NewFlagPerm(f Flag) FlagPerm { return FlagPerm{flag: f} }

// FlagPermWildcard is the "\\*" wildcard permanent flag.
var FlagPermWildcard = FlagPerm{wildcard: true}

func (f FlagPerm) IsWildcard() bool { return f.wildcard }

func (f FlagPerm) Flag() (Flag, bool) {
	if f.wildcard {
		return Flag{}, false
	}
	return f.flag, true
}

func (f FlagPerm) String() string {
	if f.wildcard {
		return "\\*"
	}
	return f.flag.String()
}
