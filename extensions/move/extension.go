// Package move identifies the MOVE extension (RFC 6851).
//
// MOVE atomically relocates messages from the selected mailbox to a
// destination mailbox, combining what would otherwise be a UID COPY,
// UID STORE +FLAGS (\Deleted), and UID EXPUNGE into one command. Its
// wire grammar is identical to COPY with a different command verb;
// its type sits beside Copy in the top-level command model and its
// decoding beside Copy's in package wire.
package move

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports MOVE.
const Name = "MOVE"
