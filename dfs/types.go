// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a node.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start ID is not a node of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrInvalidGraph wraps the core validation error of a malformed graph.
	ErrInvalidGraph = errors.New("dfs: invalid graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, runs after a node's descendants are explored
	// (post-order), before it is appended to Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start node. Default -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited node in ascending ID
	// order, covering all components.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 means only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal covers every component, not just the start's.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Depth maps each node ID to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[string]string

	// Visited flags which nodes were reached.
	Visited map[string]bool
}
