package jsonrpc

import "errors"

// Error codes reserved by the JSON-RPC 2.0 specification. Codes from
// CodeServerError down to -32099 are available to handlers for
// application-defined failures.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeServerError    = -32000
)

// Error is a JSON-RPC error object. It implements error, so handlers can
// return one directly to control the code and data sent to the caller.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error with the given code and message.
func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewErrorWithData builds an Error carrying an additional data value, which
// may be any JSON-encodable value.
func NewErrorWithData(code int, message string, data interface{}) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

// wrapError converts a handler failure into a protocol error. An *Error
// passes through untouched, anything else becomes a CodeServerError with the
// error text as its message.
func wrapError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return &Error{Code: CodeServerError, Message: err.Error()}
}
