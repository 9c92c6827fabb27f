package imap

import "github.com/meszmate/imap-wire/core"

// AuthenticateData is a single line of client response during a SASL
// AUTHENTICATE exchange: a base64-encoded challenge response, or the
// bare "*" cancellation token.
type AuthenticateData struct {
	cancel bool
	data   core.Secret[[]byte]
}

// NewAuthenticateData wraps a challenge response payload. The bytes
// are redacted from debug output via core.Secret.
func NewAuthenticateData(b []byte) AuthenticateData {
	return AuthenticateData{data: core.NewSecret(b)}
}

// AuthenticateDataCancel is the "*" response that aborts an in-progress
// SASL exchange.
var AuthenticateDataCancel = AuthenticateData{cancel: true}

// IsCancel reports whether this is the "*" cancellation.
func (a AuthenticateData) IsCancel() bool { return a.cancel }

// Data returns the challenge-response payload and true, unless this
// is a cancellation.
func (a AuthenticateData) Data() (core.Secret[[]byte], bool) {
	if a.cancel {
		return core.Secret[[]byte]{}, false
	}
	return a.data, true
}

// IdleDone is the "DONE\r\n" line that terminates a client's IDLE
// command.
type IdleDone struct{}
