package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
)

var (
	typeOfContext = reflect.TypeOf((*context.Context)(nil)).Elem()
	typeOfError   = reflect.TypeOf((*error)(nil)).Elem()
)

// Method is a named handler together with the parameter descriptors its
// arguments bind against. Immutable once constructed.
type Method struct {
	name   string
	params []boundParam
	fn     reflect.Value
}

// NewMethod builds a Method from fn, which must have the shape
//
//	func(ctx context.Context, a1 T1, ..., an Tn) (R, error)
//
// with one Ti per descriptor, in declared order. NewMethod panics when fn
// does not match the descriptors or a default cannot be converted to its
// argument type; method sets are fixed at startup and a mismatch is a
// programming error.
func NewMethod(name string, fn interface{}, params ...Param) *Method {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		panic("jsonrpc: method " + name + ": handler is not a function")
	}
	if ft.NumIn() != len(params)+1 || ft.In(0) != typeOfContext {
		panic(fmt.Sprintf("jsonrpc: method %s: handler must take context.Context plus %d arguments", name, len(params)))
	}
	if ft.NumOut() != 2 || ft.Out(1) != typeOfError {
		panic("jsonrpc: method " + name + ": handler must return (result, error)")
	}
	bound := make([]boundParam, len(params))
	for i, p := range params {
		bp := boundParam{Param: p, typ: ft.In(i + 1)}
		if p.optional {
			v, err := convertDefault(p.def, bp.typ)
			if err != nil {
				panic(fmt.Sprintf("jsonrpc: method %s: default for %q does not fit %s: %v", name, p.name, bp.typ, err))
			}
			bp.def = v
		}
		bound[i] = bp
	}
	return &Method{name: name, params: bound, fn: reflect.ValueOf(fn)}
}

// Name returns the name the method is registered and looked up under.
func (m *Method) Name() string {
	return m.name
}

// convertDefault passes a declared default through the same JSON conversion
// arguments take, so a default behaves exactly like a caller-supplied value.
func convertDefault(def interface{}, typ reflect.Type) (reflect.Value, error) {
	raw, err := json.Marshal(def)
	if err != nil {
		return reflect.Value{}, err
	}
	v := reflect.New(typ)
	if err := json.Unmarshal(raw, v.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return v.Elem(), nil
}

// invoke calls the handler with already-bound arguments. A panic inside the
// handler is reported as an internal error instead of tearing down the call.
func (m *Method) invoke(ctx context.Context, args []reflect.Value) (result interface{}, rpcErr *Error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("jsonrpc: panic in method %s: %v", m.name, r)
			result, rpcErr = nil, NewError(CodeInternalError, "Internal error")
		}
	}()

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, reflect.ValueOf(ctx))
	in = append(in, args...)
	out := m.fn.Call(in)

	if !out[1].IsNil() {
		return nil, wrapError(out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}
