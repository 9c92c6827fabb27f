package wire

import (
	"errors"

	imap "github.com/meszmate/imap-wire"
)

// Codec is the contract every per-message-kind codec satisfies:
// Decode consumes a prefix of buf into a typed value and returns the
// unconsumed remainder, and Encode turns a value back into an action
// stream. On any non-nil error the remainder is buf itself,
// unchanged.
type Codec[T any] interface {
	Decode(buf []byte) (value T, remainder []byte, err error)
	Encode(value T) *Encoder
}

// Compile-time checks that each concrete codec satisfies Codec.
var (
	_ Codec[imap.Greeting]         = GreetingCodec{}
	_ Codec[imap.Command]          = CommandCodec{}
	_ Codec[imap.Response]         = ResponseCodec{}
	_ Codec[imap.Continue]         = ContinueCodec{}
	_ Codec[imap.AuthenticateData] = AuthenticateDataCodec{}
	_ Codec[imap.IdleDone]         = IdleDoneCodec{}
)

// GreetingCodec decodes and encodes the untagged server greeting.
type GreetingCodec struct {
	ext Extensions
}

// NewGreetingCodec returns a GreetingCodec with every extension
// enabled.
func NewGreetingCodec() GreetingCodec { return GreetingCodec{ext: AllExtensions} }

// NewGreetingCodecExt returns a GreetingCodec accepting only the
// given extensions' syntax.
func NewGreetingCodecExt(ext Extensions) GreetingCodec { return GreetingCodec{ext: ext} }

func (gc GreetingCodec) Decode(buf []byte) (imap.Greeting, []byte, error) {
	c := newCursor(buf, gc.ext)
	g, err := parseGreeting(c)
	if err != nil {
		return imap.Greeting{}, buf, collapseLiteralFound(err)
	}
	return g, c.remaining(), nil
}

func (GreetingCodec) Encode(g imap.Greeting) *Encoder { return encodeGreeting(g) }

// CommandCodec decodes and encodes client command lines. It is the
// one codec that surfaces LiteralFound: a server holding a partial
// command stopped at a literal boundary must answer with a
// continuation request before the client sends the payload.
type CommandCodec struct {
	ext Extensions
}

// NewCommandCodec returns a CommandCodec with every extension enabled.
func NewCommandCodec() CommandCodec { return CommandCodec{ext: AllExtensions} }

// NewCommandCodecExt returns a CommandCodec accepting only the given
// extensions' syntax.
func NewCommandCodecExt(ext Extensions) CommandCodec { return CommandCodec{ext: ext} }

func (cc CommandCodec) Decode(buf []byte) (imap.Command, []byte, error) {
	c := newCursor(buf, cc.ext)
	cmd, err := parseCommand(c)
	if err != nil {
		return imap.Command{}, buf, err
	}
	return cmd, c.remaining(), nil
}

func (CommandCodec) Encode(cmd imap.Command) *Encoder { return encodeCommand(cmd) }

// ResponseCodec decodes and encodes server responses. On the decode
// side it collapses LiteralFound into Incomplete: a client never
// answers a server literal with a continuation request, so the
// distinction carries no information for it.
type ResponseCodec struct {
	ext Extensions
}

// NewResponseCodec returns a ResponseCodec with every extension
// enabled.
func NewResponseCodec() ResponseCodec { return ResponseCodec{ext: AllExtensions} }

// NewResponseCodecExt returns a ResponseCodec accepting only the
// given extensions' syntax.
func NewResponseCodecExt(ext Extensions) ResponseCodec { return ResponseCodec{ext: ext} }

func (rc ResponseCodec) Decode(buf []byte) (imap.Response, []byte, error) {
	c := newCursor(buf, rc.ext)
	r, err := parseResponse(c)
	if err != nil {
		return nil, buf, collapseLiteralFound(err)
	}
	return r, c.remaining(), nil
}

func (ResponseCodec) Encode(r imap.Response) *Encoder { return encodeResponse(r) }

// ContinueCodec decodes and encodes continuation request lines.
type ContinueCodec struct {
	ext Extensions
}

// NewContinueCodec returns a ContinueCodec with every extension
// enabled.
func NewContinueCodec() ContinueCodec { return ContinueCodec{ext: AllExtensions} }

// NewContinueCodecExt returns a ContinueCodec accepting only the
// given extensions' syntax.
func NewContinueCodecExt(ext Extensions) ContinueCodec { return ContinueCodec{ext: ext} }

func (cc ContinueCodec) Decode(buf []byte) (imap.Continue, []byte, error) {
	c := newCursor(buf, cc.ext)
	cont, err := parseContinue(c)
	if err != nil {
		return imap.Continue{}, buf, collapseLiteralFound(err)
	}
	return cont, c.remaining(), nil
}

func (ContinueCodec) Encode(cont imap.Continue) *Encoder { return encodeContinue(cont) }

// AuthenticateDataCodec decodes and encodes the base64 client lines
// of a SASL exchange, plus the "*" cancellation.
type AuthenticateDataCodec struct{}

// NewAuthenticateDataCodec returns an AuthenticateDataCodec.
func NewAuthenticateDataCodec() AuthenticateDataCodec { return AuthenticateDataCodec{} }

func (AuthenticateDataCodec) Decode(buf []byte) (imap.AuthenticateData, []byte, error) {
	c := newCursor(buf, AllExtensions)
	d, err := parseAuthenticateData(c)
	if err != nil {
		return imap.AuthenticateData{}, buf, err
	}
	return d, c.remaining(), nil
}

func (AuthenticateDataCodec) Encode(d imap.AuthenticateData) *Encoder {
	return encodeAuthenticateData(d)
}

// IdleDoneCodec decodes and encodes the DONE line terminating an
// IDLE command.
type IdleDoneCodec struct{}

// NewIdleDoneCodec returns an IdleDoneCodec.
func NewIdleDoneCodec() IdleDoneCodec { return IdleDoneCodec{} }

func (IdleDoneCodec) Decode(buf []byte) (imap.IdleDone, []byte, error) {
	c := newCursor(buf, AllExtensions)
	d, err := parseIdleDone(c)
	if err != nil {
		return imap.IdleDone{}, buf, err
	}
	return d, c.remaining(), nil
}

func (IdleDoneCodec) Encode(d imap.IdleDone) *Encoder { return encodeIdleDone(d) }

// collapseLiteralFound rewrites LiteralFound into Incomplete for the
// codecs where the distinction is not actionable.
func collapseLiteralFound(err error) error {
	var lf LiteralFound
	if errors.As(err, &lf) {
		return Incomplete
	}
	return err
}
