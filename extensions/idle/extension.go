// Package idle identifies the IDLE extension (RFC 2177).
//
// IDLE lets a client tell the server it is ready to receive unsolicited
// mailbox updates without polling. The wire format is a bare command
// with no arguments, terminated by a client-sent "DONE" line; decoding
// of that terminator is handled by the IdleDone codec in package wire.
package idle

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports IDLE.
const Name = "IDLE"
