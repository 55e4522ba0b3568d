package jsonrpc

import "golang.org/x/sync/errgroup"

// Task is one suspended batch element evaluation. A Task returning nil
// means its element was a notification.
type Task func() *Response

// Strategy runs a set of Tasks and returns their results in input order.
// The core only requires order preservation; when and where the tasks run
// is the strategy's choice. A Task must be run at most once.
type Strategy func(tasks []Task) []*Response

// Sequential runs tasks one after another in input order. It is the
// default strategy used by Call.
func Sequential(tasks []Task) []*Response {
	results := make([]*Response, len(tasks))
	for i, task := range tasks {
		results[i] = task()
	}
	return results
}

// Parallel runs every task in its own goroutine and waits for all of them.
// Results keep input order regardless of completion order.
func Parallel(tasks []Task) []*Response {
	results := make([]*Response, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			results[i] = task()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ParallelLimit is Parallel with at most n tasks in flight at once.
func ParallelLimit(n int) Strategy {
	return func(tasks []Task) []*Response {
		results := make([]*Response, len(tasks))
		var g errgroup.Group
		g.SetLimit(n)
		for i, task := range tasks {
			i, task := i, task
			g.Go(func() error {
				results[i] = task()
				return nil
			})
		}
		_ = g.Wait()
		return results
	}
}
