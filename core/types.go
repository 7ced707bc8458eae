// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph declarations and sentinel errors.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates a second node with an already used ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNegativeLabel indicates an initial label below zero.
	ErrNegativeLabel = errors.New("core: negative node label")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is a labeled vertex.
//
// ID uniquely identifies the Node within its Graph.
// Label is the initial color used by refinement algorithms; it must be >= 0.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id" yaml:"id"`

	// Label is the node's initial integer label.
	Label int `json:"label" yaml:"label"`
}

// Edge is an undirected connection between two nodes of the same Graph.
type Edge struct {
	// Source is one endpoint's node ID.
	Source string `json:"source" yaml:"source"`

	// Target is the other endpoint's node ID.
	Target string `json:"target" yaml:"target"`
}

// Graph is a labeled undirected graph held as plain node and edge lists.
//
// The zero value is an empty, usable graph. Order of Nodes and Edges carries
// no meaning: algorithms in this module produce identical results for any
// ordering of the same sets.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		Nodes: make([]Node, 0),
		Edges: make([]Edge, 0),
	}
}
