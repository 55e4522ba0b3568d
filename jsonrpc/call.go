package jsonrpc

import (
	"context"
	"encoding/json"
)

// Response is the wire shape of one JSON-RPC response. Exactly one of
// Result and Error is set; ID is always emitted and marshals as null when
// the originating request's id could not be determined.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// newResponse wraps one outcome with its id. Error data a handler attached
// is dropped if it cannot be encoded, so building the response bytes can
// never fail afterwards.
func newResponse(id json.RawMessage, result json.RawMessage, err *Error) *Response {
	resp := &Response{JSONRPC: "2.0", ID: id}
	if err != nil {
		if err.Data != nil {
			if _, e := json.Marshal(err.Data); e != nil {
				err = NewError(err.Code, err.Message)
			}
		}
		resp.Error = err
		return resp
	}
	if len(result) == 0 {
		result = jsonNull
	}
	resp.Result = result
	return resp
}

// dispatch runs one decoded request to completion: method lookup, argument
// binding, handler invocation, result serialization.
func dispatch(ctx context.Context, reg *Registry, req *Request) (json.RawMessage, *Error) {
	method, ok := reg.Lookup(req.Method)
	if !ok {
		return nil, NewError(CodeMethodNotFound, "Method not found: "+req.Method)
	}
	args, bindErr := bindArgs(method.params, req.Params)
	if bindErr != nil {
		return nil, bindErr
	}
	result, callErr := method.invoke(ctx, args)
	if callErr != nil {
		return nil, callErr
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, NewError(CodeInternalError, "Internal error")
	}
	return raw, nil
}

// evaluate turns one raw element into at most one Response. An element that
// fails to decode is answered on its own, under its id when one could be
// recovered; a notification runs its handler but contributes nothing to the
// output.
func evaluate(ctx context.Context, reg *Registry, raw json.RawMessage) *Response {
	req, decodeErr := decodeRequest(raw)
	if decodeErr != nil {
		return newResponse(salvageID(raw), nil, decodeErr)
	}
	result, err := dispatch(ctx, reg, req)
	if req.ID == nil {
		return nil
	}
	return newResponse(req.ID, result, err)
}

// Call processes one JSON-RPC payload against reg and returns the response
// bytes, or nil when the payload produces no response (a notification, or a
// batch consisting only of notifications). Call never fails at the Go
// level: every protocol failure is encoded into the returned bytes. Batch
// elements are evaluated sequentially.
func Call(ctx context.Context, reg *Registry, body []byte) []byte {
	return CallWithStrategy(ctx, Sequential, reg, body)
}

// CallWithStrategy is Call with a caller-chosen batch evaluation strategy.
// Responses are emitted in request order regardless of the order the
// strategy completes them in. A nil strategy means Sequential.
func CallWithStrategy(ctx context.Context, strategy Strategy, reg *Registry, body []byte) []byte {
	if ctx == nil {
		ctx = context.Background()
	}
	if strategy == nil {
		strategy = Sequential
	}

	top, parseErr := parseTop(body)
	if parseErr != nil {
		return marshalOne(newResponse(jsonNull, nil, parseErr))
	}
	if top.batch && len(top.elems) == 0 {
		return marshalOne(newResponse(jsonNull, nil, invalidRequest("empty batch")))
	}

	tasks := make([]Task, len(top.elems))
	for i := range top.elems {
		raw := top.elems[i]
		tasks[i] = func() *Response {
			return evaluate(ctx, reg, raw)
		}
	}

	responses := make([]*Response, 0, len(tasks))
	for _, r := range strategy(tasks) {
		if r != nil {
			responses = append(responses, r)
		}
	}
	if len(responses) == 0 {
		return nil
	}
	if !top.batch {
		return marshalOne(responses[0])
	}
	out, _ := json.Marshal(responses)
	return out
}

func marshalOne(resp *Response) []byte {
	out, _ := json.Marshal(resp)
	return out
}
