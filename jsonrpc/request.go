package jsonrpc

import "encoding/json"

// Request is one decoded JSON-RPC request. ID and Params stay raw: a nil ID
// means the field was absent and the request is a notification, while an
// explicit null id decodes to the literal bytes "null".
type Request struct {
	Method string
	Params json.RawMessage
	ID     json.RawMessage
}

// request mirrors the wire shape of a request object. The jsonrpc version
// field is decoded but deliberately not validated; requests are accepted
// whatever it says.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  *string         `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

var (
	emptyParams = json.RawMessage("{}")
	jsonNull    = json.RawMessage("null")
)

// topLevel is the outer shape of a payload: a single request object, or a
// batch array of them.
type topLevel struct {
	batch bool
	elems []json.RawMessage
}

// parseTop decides the top-level shape of the payload. Failures here cannot
// be attributed to any request id, so callers answer them with id null.
func parseTop(body []byte) (topLevel, *Error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return topLevel{}, NewError(CodeParseError, "Invalid JSON")
	}
	switch jsonKind(raw) {
	case '{':
		return topLevel{elems: []json.RawMessage{raw}}, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return topLevel{}, NewError(CodeParseError, "Invalid JSON")
		}
		return topLevel{batch: true, elems: elems}, nil
	default:
		return topLevel{}, invalidRequest("request must be an object or an array")
	}
}

// decodeRequest decodes one top-level element, enforcing the request-object
// rules: method is a required string, params (when present) must be an
// object or an array, id (when present) must be a string, a number or null.
func decodeRequest(raw json.RawMessage) (*Request, *Error) {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, invalidRequest(err.Error())
	}
	if req.Method == nil {
		return nil, invalidRequest("missing method field")
	}
	params := req.Params
	if params == nil {
		params = emptyParams
	} else if k := jsonKind(params); k != '{' && k != '[' {
		return nil, invalidRequest("params must be an object or an array")
	}
	if req.ID != nil {
		switch jsonKind(req.ID) {
		case '"', '0', 'n':
			// string, number or null
		default:
			return nil, invalidRequest("id must be a string, a number or null")
		}
	}
	return &Request{Method: *req.Method, Params: params, ID: req.ID}, nil
}

// salvageID recovers the id of an element that failed request decoding, so
// the error can be attributed when the element got far enough to expose a
// usable id. Anything else is answered with null.
func salvageID(raw json.RawMessage) json.RawMessage {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.ID == nil {
		return jsonNull
	}
	switch jsonKind(probe.ID) {
	case '"', '0', 'n':
		return probe.ID
	}
	return jsonNull
}

func invalidRequest(detail string) *Error {
	return NewErrorWithData(CodeInvalidRequest, "Invalid JSON RPC 2.0 request", detail)
}

// jsonKind reports the first significant byte of a raw JSON value, with
// numbers normalized to '0'.
func jsonKind(raw json.RawMessage) byte {
	for _, b := range raw {
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			continue
		case b == '-' || (b >= '0' && b <= '9'):
			return '0'
		default:
			return b
		}
	}
	return 0
}
