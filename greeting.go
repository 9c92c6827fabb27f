package imap

import "github.com/meszmate/imap-wire/core"

// GreetingKind is the untagged status of a server greeting.
type GreetingKind int

const (
	GreetingOK GreetingKind = iota
	GreetingPreAuth
	GreetingBye
)

func (k GreetingKind) String() string {
	switch k {
	case GreetingOK:
		return "OK"
	case GreetingPreAuth:
		return "PREAUTH"
	case GreetingBye:
		return "BYE"
	default:
		return "OK"
	}
}

// Greeting is the single untagged response line a server sends when a
// connection is first established.
type Greeting struct {
	Kind GreetingKind
	Code *Code
	Text core.Text
}

// NewGreeting builds a Greeting; code may be nil.
func NewGreeting(kind GreetingKind, code *Code, text core.Text) Greeting {
	return Greeting{Kind: kind, Code: code, Text: text}
}
