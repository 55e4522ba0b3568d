package jsonrpc

import (
	"encoding/json"
	"reflect"
)

// Param describes one argument position of a method: its wire name and
// whether a caller may omit it. Order is significant; the position of a
// Param in a method's descriptor list is the position its argument binds
// from when params arrive as an array.
type Param struct {
	name     string
	optional bool
	def      interface{}
}

// Required declares an argument the caller must supply.
func Required(name string) Param {
	return Param{name: name}
}

// Optional declares an argument that falls back to def when the caller
// omits it. The default is converted to the handler's argument type once,
// when the method is built.
func Optional(name string, def interface{}) Param {
	return Param{name: name, optional: true, def: def}
}

// Name returns the wire name of the argument.
func (p Param) Name() string {
	return p.name
}

// boundParam is a Param resolved against a concrete handler argument type
// at method construction time.
type boundParam struct {
	Param
	typ reflect.Type
	def reflect.Value // valid only when optional
}

// bindArgs resolves raw params (a JSON object or array, as guaranteed by
// request decoding) against the descriptors in declared order. Binding is
// all-or-nothing: the first failing descriptor aborts the call. Array
// elements beyond the declared arity and object keys no descriptor names
// are ignored.
func bindArgs(params []boundParam, raw json.RawMessage) ([]reflect.Value, *Error) {
	var named map[string]json.RawMessage
	var positional []json.RawMessage
	if jsonKind(raw) == '[' {
		if err := json.Unmarshal(raw, &positional); err != nil {
			return nil, NewErrorWithData(CodeInvalidParams, "Invalid params", err.Error())
		}
	} else {
		if err := json.Unmarshal(raw, &named); err != nil {
			return nil, NewErrorWithData(CodeInvalidParams, "Invalid params", err.Error())
		}
	}

	values := make([]reflect.Value, len(params))
	for i, p := range params {
		var arg json.RawMessage
		var ok bool
		if named != nil {
			arg, ok = named[p.name]
		} else if i < len(positional) {
			arg, ok = positional[i], true
		}
		if !ok {
			if !p.optional {
				return nil, NewError(CodeInvalidParams, "Cannot find required argument: "+p.name)
			}
			values[i] = p.def
			continue
		}
		v := reflect.New(p.typ)
		if err := json.Unmarshal(arg, v.Interface()); err != nil {
			return nil, NewErrorWithData(CodeInvalidParams, "Wrong type for argument: "+p.name, err.Error())
		}
		values[i] = v.Elem()
	}
	return values, nil
}
