// Package unselect identifies the UNSELECT extension (RFC 3691).
//
// UNSELECT closes the currently selected mailbox without expunging
// \Deleted messages. On the wire it is an argument-less command; the
// state transition it implies (Selected -> Authenticated) is a session
// concern outside this codec.
package unselect

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports UNSELECT.
const Name = "UNSELECT"
