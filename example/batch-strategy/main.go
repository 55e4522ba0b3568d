// Demonstrates batch evaluation strategies: the same batch payload runs
// sequentially and then with a bounded number of concurrent workers, and in
// both cases the response array follows the request order.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mnehpets/rpcserve/jsonrpc"
)

const batch = `[
	{"jsonrpc":"2.0","method":"work","params":{"label":"slow","delayMs":300},"id":1},
	{"jsonrpc":"2.0","method":"work","params":{"label":"medium","delayMs":150},"id":2},
	{"jsonrpc":"2.0","method":"work","params":{"label":"fast"},"id":3}
]`

func main() {
	reg := jsonrpc.NewRegistry(
		jsonrpc.NewMethod("work", func(ctx context.Context, label string, delayMs int) (string, error) {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
			return label + " done", nil
		}, jsonrpc.Required("label"), jsonrpc.Optional("delayMs", 0)),
	)

	ctx := context.Background()
	for _, run := range []struct {
		name     string
		strategy jsonrpc.Strategy
	}{
		{"sequential", jsonrpc.Sequential},
		{"parallel", jsonrpc.Parallel},
		{"parallel, 2 workers", jsonrpc.ParallelLimit(2)},
	} {
		start := time.Now()
		out := jsonrpc.CallWithStrategy(ctx, run.strategy, reg, []byte(batch))
		if out == nil {
			log.Fatal("batch produced no response")
		}
		fmt.Printf("%-20s %7s  %s\n", run.name, time.Since(start).Round(time.Millisecond), out)
	}
}
