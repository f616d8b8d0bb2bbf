// Package protocol defines the JSON-RPC envelope types and codec used to
// talk to a verusd node.
//
// The daemon speaks the JSON-RPC 1.0 dialect of the bitcoin family: requests
// carry a numeric id and positional params, responses carry both "result"
// and "error" members with exactly one of them non-null.
//
// # Encoding and decoding
//
//	req := protocol.NewRequest(7, "getblockcount", nil)
//	data, err := protocol.EncodeRequest(req)
//
//	resp, err := protocol.DecodeResponse(data, 7)
//
// The codec is stateless: request ids are supplied by the caller, and the
// error member of a response is returned verbatim without interpretation.
// Decode failures are reported as *CodecError with a kind of CodecMalformed
// or CodecIDMismatch.
//
// # Error codes
//
// The package defines the standard JSON-RPC codes alongside the daemon's own
// error table (CodeInWarmup, CodeVerifyRejected, ...). Helper constructors
// build the error objects the bridge answers with:
//
//	err := protocol.NewMethodNotFound("Method not found")
//	err := protocol.NewInvalidParams("Invalid params parameter")
package protocol
