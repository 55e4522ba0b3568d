package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mnehpets/rpcserve/jsonrpc"
)

// WebsocketServer upgrades HTTP requests and serves JSON-RPC 2.0 over each
// websocket connection. Every inbound frame is one JSON-RPC payload; frames
// whose payload produces no response (notifications) are answered with
// nothing.
type WebsocketServer struct {
	Registry *jsonrpc.Registry
	Strategy jsonrpc.Strategy
	Upgrader websocket.Upgrader

	// Log receives upgrade and connection events. Defaults to slog.Default.
	Log *slog.Logger
}

func (s *WebsocketServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger().Debug("websocket upgrade failed", "error", err)
		return
	}
	s.ServeConn(r.Context(), conn)
}

// ServeConn reads frames until the connection closes, handling each in its
// own goroutine. Writes are serialized on the connection; ServeConn blocks
// until the read loop ends and all in-flight frames are done.
func (s *WebsocketServer) ServeConn(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	var writeMu sync.Mutex
	var inflight sync.WaitGroup
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			s.logger().Debug("websocket read ended", "error", err)
			break
		}
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			out := jsonrpc.CallWithStrategy(ctx, s.Strategy, s.Registry, message)
			if out == nil {
				return
			}
			writeMu.Lock()
			defer writeMu.Unlock()
			if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
				s.logger().Debug("websocket write failed", "error", err)
			}
		}()
	}
	inflight.Wait()
}

func (s *WebsocketServer) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}
