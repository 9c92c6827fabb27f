// Package quota identifies the QUOTA extension (RFC 9208).
//
// QUOTA lets a client query and manage storage quotas: GETQUOTA (look
// up a specific quota root), GETQUOTAROOT (find quota roots for a
// mailbox), and SETQUOTA (set resource limits on a quota root). The
// command and response types live in the top-level command/response
// model and their grammars in package wire; this package only names the capability and the well-known
// resource identifiers.
package quota

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports QUOTA.
const Name = "QUOTA"

// Well-known resource names (RFC 9208 section 6).
const (
	ResourceStorage           = "STORAGE"
	ResourceMessage           = "MESSAGE"
	ResourceMailbox           = "MAILBOX"
	ResourceAnnotationStorage = "ANNOTATION-STORAGE"
)
