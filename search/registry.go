package search

import (
	"fmt"
	"strings"
)

// Name identifies a registered search variant.
type Name string

// Registered variants.
const (
	DFS              Name = "dfs"
	BFS              Name = "bfs"
	BidirectionalBFS Name = "bidirectional-bfs"
	BidirectionalDFS Name = "bidirectional-dfs"
	Dijkstra         Name = "dijkstra"
	AStar            Name = "astar"
)

var constructors = map[Name]func(Options) Algorithm{
	DFS:              func(o Options) Algorithm { return newDFS(o) },
	BFS:              func(o Options) Algorithm { return newBFS(o) },
	BidirectionalBFS: func(o Options) Algorithm { return newBidirectionalBFS(o) },
	BidirectionalDFS: func(o Options) Algorithm { return newBidirectionalDFS(o) },
	Dijkstra:         func(o Options) Algorithm { return newDijkstra(o) },
	AStar:            func(o Options) Algorithm { return newAStar(o) },
}

// aliases maps the short codes used by older host UIs.
var aliases = map[string]Name{
	"bdsbfs": BidirectionalBFS,
	"bdsdfs": BidirectionalDFS,
	"a*":     AStar,
}

// Names lists every registered variant in a stable order.
func Names() []Name {
	return []Name{DFS, BFS, BidirectionalBFS, BidirectionalDFS, Dijkstra, AStar}
}

// ParseName resolves a case-insensitive name or short code.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if n, ok := aliases[key]; ok {
		return n, nil
	}
	if _, ok := constructors[Name(key)]; ok {
		return Name(key), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// New constructs a fresh, unstarted Algorithm.
// Returns ErrUnknownAlgorithm for unregistered names and ErrOptionViolation
// when an Option is invalid.
func New(name Name, opts ...Option) (Algorithm, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return ctor(o), nil
}
