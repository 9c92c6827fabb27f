// Package referral identifies the login/mailbox referral extensions
// (RFC 2221 LOGIN-REFERRALS, RFC 2193 MAILBOX-REFERRALS).
//
// A referral is carried as a response code: "[REFERRAL imapurl]" on a
// LOGIN/AUTHENTICATE status response (login referral) or on mailbox
// command status responses such as SELECT/CREATE (mailbox referral).
// The response code type lives with the other response codes in the
// top-level model and its decoding in package wire; this package only
// names the
// capabilities.
package referral

// Name capability strings for the two referral extensions.
const (
	NameLogin   = "LOGIN-REFERRALS"
	NameMailbox = "MAILBOX-REFERRALS"
)
