package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrInvalidGraph wraps the core validation error of a malformed graph
	// (empty or duplicate IDs, dangling edge endpoints).
	ErrInvalidGraph = errors.New("bfs: invalid graph")
)

// Option configures BFS. An invalid Option is remembered and reported as
// ErrOptionViolation when BFS starts.
type Option func(*BFSOptions)

// BFSOptions holds the resolved traversal parameters. Hooks are never nil
// after DefaultOptions.
type BFSOptions struct {
	Ctx context.Context

	// OnEnqueue sees a node and its depth when it joins the frontier.
	OnEnqueue func(id string, depth int)
	// OnDequeue sees a node right before it is visited.
	OnDequeue func(id string, depth int)
	// OnVisit sees a node in visit order; an error aborts the search.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops expansion past that depth; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor drops the edge curr-neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns unlimited depth, no filtering and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(string, string) bool { return true },
	}
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs the enqueue hook. nil keeps the no-op.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs the dequeue hook. nil keeps the no-op.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs the visit hook. nil keeps the no-op.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to nodes at most d edges from the start.
// d == 0 removes the limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs an edge filter. nil keeps every edge.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
