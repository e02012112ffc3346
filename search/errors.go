package search

import "errors"

// Sentinel errors for search execution.
var (
	// ErrNoEndpoints is returned by Start/Step before SetEndpoints succeeded.
	ErrNoEndpoints = errors.New("search: endpoints not set")

	// ErrNilEndpoint is returned when SetEndpoints receives a nil node.
	ErrNilEndpoint = errors.New("search: nil endpoint")

	// ErrNotStarted is returned by Step before Start.
	ErrNotStarted = errors.New("search: algorithm not started")

	// ErrUnknownAlgorithm is returned by New/ParseName for unregistered names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrUnknownHeuristic is returned by ParseHeuristic.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")

	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrPathRunaway reports a parent chain longer than MaxPathHops.
	ErrPathRunaway = errors.New("search: path reconstruction exceeded hop cap")

	// ErrBrokenPath reports a parent chain that stops before the start node.
	ErrBrokenPath = errors.New("search: broken parent chain")
)
