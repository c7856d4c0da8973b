package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS-based algorithms.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned when a directed cycle makes the result undefined.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph is returned when an algorithm requires directed edges.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Vertex visitation states.
const (
	White = iota // not yet visited
	Gray         // on the current recursion stack
	Black        // fully explored
)

// Option configures optional behavior of the traversals.
type Option func(*options)

// options holds settings shared by TopologicalSort and CountPaths.
type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// cancelled reports ctx's error without blocking.
func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
