// Package transport provides host adapters that feed wire bytes to the
// jsonrpc core and write back whatever it returns. The core itself never
// touches a socket; these adapters own connection handling, while all
// protocol decisions stay in jsonrpc.
package transport

import (
	"io"
	"net/http"
	"strings"

	"github.com/mnehpets/rpcserve/jsonrpc"
)

// Handler returns an http.Handler serving JSON-RPC 2.0 over HTTP POST with
// the default sequential batch strategy.
func Handler(reg *jsonrpc.Registry) http.Handler {
	return HandlerWithStrategy(nil, reg)
}

// HandlerWithStrategy is Handler with a caller-chosen batch evaluation
// strategy. Requests that produce no response bytes (notifications) are
// answered with 204 No Content.
func HandlerWithStrategy(strategy jsonrpc.Strategy, reg *jsonrpc.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "JSON-RPC requires POST method", http.StatusMethodNotAllowed)
			return
		}

		// Per JSON-RPC over HTTP, the request entity must be JSON.
		contentType := r.Header.Get("Content-Type")
		if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
			http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		out := jsonrpc.CallWithStrategy(r.Context(), strategy, reg, body)
		if out == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(out)
	})
}
