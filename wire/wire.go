// Package wire implements the incremental parser and flow-aware
// encoder behind the imap package's message model: it converts
// between raw bytes on an IMAP connection and the typed values in
// package imap, without performing any I/O itself.
//
// Decoding contract. Each of the façade codecs (GreetingCodec,
// CommandCodec, ResponseCodec, ContinueCodec, AuthenticateDataCodec,
// IdleDoneCodec, see facade.go) exposes:
//
//	Decode(buf []byte) (value T, remainder []byte, err error)
//
// where err is nil on success, or one of three sentinel-wrapped
// conditions distinguished by errors.Is/As: Incomplete (read more
// bytes and retry with the accumulated buffer), LiteralFound{Length,
// Mode} (a literal header has been read; the caller must supply
// Length more bytes, sending a continuation request first if Mode is
// LiteralSync), or a *SyntaxError (the input can never become valid;
// the caller should abort or resynchronize). Decode never blocks and
// never performs partial mutation visible to the caller: on any
// non-nil error the remainder is the original buf, unchanged.
//
// Encoding contract. Encode(value T) returns an Encoder, an iterator
// of Actions (action.go): Send(bytes) instructs the caller to write
// bytes to the connection, AwaitContinuation instructs the caller
// to stop and wait for a server continuation request ("+ ...") before
// calling Next again, and Unknown marks a point where the encoder
// cannot tell whether the server will send one. This mirrors the synchronization points IMAP's
// literal framing imposes on a client.
package wire
