// Package enable identifies the ENABLE extension (RFC 5161).
//
// ENABLE lets a client opt a connection into server extensions that
// require explicit activation before they change wire behavior. The
// command carries one or more capability atoms; gating which atoms
// are accepted is a session-layer concern, not the codec's.
package enable

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports ENABLE.
const Name = "ENABLE"
