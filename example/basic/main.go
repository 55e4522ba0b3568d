package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mnehpets/rpcserve/jsonrpc"
	"github.com/mnehpets/rpcserve/transport"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	addr := os.Getenv("RPC_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	reg := jsonrpc.NewRegistry(
		jsonrpc.NewMethod("add", func(ctx context.Context, a, b int) (int, error) {
			return a + b, nil
		}, jsonrpc.Required("a"), jsonrpc.Required("b")),

		jsonrpc.NewMethod("divide", func(ctx context.Context, dividend, divisor float64) (float64, error) {
			if divisor == 0 {
				return 0, jsonrpc.NewError(-32001, "division by zero")
			}
			return dividend / divisor, nil
		}, jsonrpc.Required("dividend"), jsonrpc.Required("divisor")),

		jsonrpc.NewMethod("greet", func(ctx context.Context, name, greeting string) (string, error) {
			return greeting + ", " + name, nil
		}, jsonrpc.Required("name"), jsonrpc.Optional("greeting", "Hello")),
	)

	http.Handle("/rpc", transport.Handler(reg))

	log.Println("Starting JSON-RPC server on", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
