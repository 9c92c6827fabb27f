// Package literalplus identifies the non-synchronizing literal extensions
// LITERAL+ and LITERAL- (RFC 7888).
//
// A non-synchronizing literal header ("{N+}" or "{N-}") tells the peer
// that the literal's bytes follow immediately, without waiting for a
// continuation request. The encoder in package wire always emits this
// syntax for non-synchronizing literals; the parser accepts it only
// when wire.Extensions.LiteralPlus is set. NamePlus/NameMinus are the
// capability names a peer advertises for support.
package literalplus

const (
	// NamePlus is the capability string for LITERAL+ (any size non-sync literal).
	NamePlus = "LITERAL+"
	// NameMinus is the capability string for LITERAL- (non-sync literals up to 4096 octets).
	NameMinus = "LITERAL-"
	// MaxNonSyncMinus is the largest literal size LITERAL- allows to be non-synchronizing.
	MaxNonSyncMinus = 4096
)
