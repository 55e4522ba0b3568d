package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mnehpets/rpcserve/jsonrpc"
	"github.com/mnehpets/rpcserve/transport"
)

func main() {
	reg := jsonrpc.NewRegistry(
		jsonrpc.NewMethod("echo", func(ctx context.Context, message string) (string, error) {
			return message, nil
		}, jsonrpc.Required("message")),

		jsonrpc.NewMethod("time", func(ctx context.Context) (string, error) {
			return time.Now().Format(time.RFC3339), nil
		}),
	)

	http.Handle("/rpc", &transport.WebsocketServer{
		Registry: reg,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	})

	log.Println("Starting websocket JSON-RPC server on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
