package jsonrpc

// Registry is an immutable name-to-method lookup table built once at
// startup. The underlying map is never written after NewRegistry returns,
// so lookups are safe for unsynchronized concurrent use.
type Registry struct {
	methods map[string]*Method
}

// NewRegistry builds a Registry from a fixed list of methods. When two
// methods share a name, the later one wins; callers should not rely on
// registration order.
func NewRegistry(methods ...*Method) *Registry {
	m := make(map[string]*Method, len(methods))
	for _, method := range methods {
		m[method.name] = method
	}
	return &Registry{methods: m}
}

// Lookup returns the method registered under name, if any.
func (r *Registry) Lookup(name string) (*Method, bool) {
	m, ok := r.methods[name]
	return m, ok
}
