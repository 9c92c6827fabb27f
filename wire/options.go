package wire

// Extensions selects which extension syntaxes the parser accepts. A
// disabled extension's constructs fail parsing exactly as if the
// codec had never heard of them: its command names are unknown
// keywords, "{N+}" literal headers are rejected, AUTHENTICATE refuses
// an initial response, and the REFERRAL response code falls back to
// the generic Other code.
//
// Gating is syntactic only. Whether the peer actually advertised a
// capability is a session-layer concern and is not checked here.
type Extensions struct {
	Idle        bool // RFC 2177 IDLE
	Enable      bool // RFC 5161 ENABLE
	Compress    bool // RFC 4978 COMPRESS=DEFLATE
	LiteralPlus bool // RFC 7888 LITERAL+/LITERAL- non-sync literals
	SASLIR      bool // RFC 4959 SASL initial response
	Unselect    bool // RFC 3691 UNSELECT
	Move        bool // RFC 6851 MOVE
	Quota       bool // RFC 9208 GETQUOTA/GETQUOTAROOT/SETQUOTA
	Referrals   bool // RFC 2193/2221 REFERRAL response code
}

// AllExtensions enables every extension this codec implements. It is
// the default for codecs constructed without an explicit Extensions
// value.
var AllExtensions = Extensions{
	Idle:        true,
	Enable:      true,
	Compress:    true,
	LiteralPlus: true,
	SASLIR:      true,
	Unselect:    true,
	Move:        true,
	Quota:       true,
	Referrals:   true,
}
