// Package jsonrpc implements the message-processing core of a JSON-RPC 2.0
// server: byte payloads in, response bytes (or nothing) out.
//
// This package implements the JSON-RPC 2.0 specification
// (https://www.jsonrpc.org/specification) on the server side only. It does
// not open sockets or manage connections; transports feed it raw bytes and
// write back whatever it returns. See the transport package for ready-made
// HTTP and websocket hosts.
//
// # Basic Usage
//
// Declare methods, build a registry once at startup, and call it:
//
//	reg := jsonrpc.NewRegistry(
//	    jsonrpc.NewMethod("subtract",
//	        func(ctx context.Context, minuend, subtrahend int) (int, error) {
//	            return minuend - subtrahend, nil
//	        },
//	        jsonrpc.Required("minuend"), jsonrpc.Required("subtrahend")),
//	)
//	out := jsonrpc.Call(ctx, reg, body) // nil when body was a notification
//
// # Methods and Parameters
//
// A handler has the shape
//
//	func(ctx context.Context, a1 T1, ..., an Tn) (R, error)
//
// with one argument per declared descriptor, in order. Descriptors carry
// the wire name and optionality of each argument:
//
//	jsonrpc.Required("tag")
//	jsonrpc.Optional("count", 1)
//
// Callers may pass params by name ({"tag": "x"}) or by position (["x"]);
// either way each value is converted to the handler's argument type, an
// omitted optional argument takes its default, and an omitted required
// argument fails the call with code -32602 before the handler runs.
//
// # Notifications and Batches
//
// A request without an id is a notification: its handler runs, but it
// produces no response, even on failure. A top-level JSON array is a batch;
// every element is evaluated independently and the response array preserves
// element order, skipping notifications. A batch that yields no responses
// returns nil bytes rather than an empty array.
//
// CallWithStrategy accepts a batch evaluation strategy. Sequential is the
// default; Parallel and ParallelLimit evaluate elements concurrently while
// keeping the output in request order.
//
// # Error Handling
//
// Return *Error from a handler to control the code and data sent back:
//
//	return 0, jsonrpc.NewError(-32001, "division by zero")
//
// Any other error is reported with the default server error code -32000.
// Standard codes are defined as constants:
//   - CodeParseError (-32700)
//   - CodeInvalidRequest (-32600)
//   - CodeMethodNotFound (-32601)
//   - CodeInvalidParams (-32602)
//   - CodeInternalError (-32603)
//   - CodeServerError (-32000)
//
// Call itself never returns an error: malformed payloads come back as
// encoded error responses with a null id.
package jsonrpc
