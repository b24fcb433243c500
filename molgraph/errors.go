package molgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for molgraph construction and lookup.
var (
	// ErrEmptyVertexID indicates an AddAtom call with an empty ID.
	ErrEmptyVertexID = errors.New("molgraph: vertex ID is empty")

	// ErrDuplicateVertexID indicates AddAtom was called twice with the same ID.
	ErrDuplicateVertexID = errors.New("molgraph: duplicate vertex ID")

	// ErrVertexNotFound indicates ResolveVertex was given an ID that names
	// no vertex in the graph.
	ErrVertexNotFound = errors.New("molgraph: vertex not found")

	// ErrMalformedEdge indicates AddBond referenced an endpoint ID not present
	// in the graph. This is the "malformed graph" programmer error of spec §7.
	ErrMalformedEdge = errors.New("molgraph: edge endpoint not in graph")

	// ErrLoopNotAllowed indicates a self-loop bond was attempted without WithLoops.
	ErrLoopNotAllowed = errors.New("molgraph: self-loop not allowed")
)

// graphErrorf wraps an inner error with a method-name prefix, preserving
// the sentinel for errors.Is via %w. Mirrors the teacher's builderErrorf.
func graphErrorf(method string, err error) error {
	return fmt.Errorf("molgraph: %s: %w", method, err)
}
