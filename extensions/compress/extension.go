// Package compress identifies the COMPRESS=DEFLATE extension (RFC 4978).
//
// COMPRESS negotiates DEFLATE compression for the rest of a connection.
// Actually wrapping the transport in a flate.Writer/Reader happens
// above the codec boundary; this package only names the command and
// the capability string so callers can validate against them.
package compress

// Name is the capability string advertised in a CAPABILITY response
// when a peer supports COMPRESS=DEFLATE.
const Name = "COMPRESS=DEFLATE"

// Deflate is the sole algorithm name accepted by the COMPRESS command.
const Deflate = "DEFLATE"
