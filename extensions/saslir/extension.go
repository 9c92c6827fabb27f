// Package saslir identifies the SASL-IR extension (RFC 4959).
//
// SASL-IR lets a client attach its first SASL response directly to the
// AUTHENTICATE command line instead of waiting for a server challenge.
// The encoder's flow-action rules for AUTHENTICATE (see wire.CommandCodec.Encode)
// already branch on whether an initial response is present.
package saslir

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports SASL-IR.
const Name = "SASL-IR"
