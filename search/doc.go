// Package search implements the animated, step-driven path-finding family
// over a gridgraph.GridGraph: DFS, BFS, bidirectional BFS, bidirectional DFS,
// Dijkstra and A*.
//
// What:
//
//   - Every variant satisfies Algorithm. A host calls SetEndpoints, then Start
//     (setup plus the first unit of work), then Step until it reports done.
//     Once finished, ReplayStep pops one node of the discovered path per call
//     and tags it Path so the route can be animated.
//   - Each Step finalizes exactly one node per search front: it is tagged
//     Traversed (Start and End keep their tags) and reported to the OnVisit
//     hook together with its cost (depth, distance or g).
//   - Path is ordered from the end node back toward the start, exclusive of
//     the start node, so len(Path()) is the path cost in unit edges.
//
// Why:
//
//   - A uniform Start/Step/ReplayStep contract lets one driver (package
//     scheduler) animate any variant without knowing which one runs.
//   - Walls are severed edges, so no variant ever checks for walls. A node
//     that is tagged Wall but still linked is tagged Error when reached and
//     the search carries on.
//
// Frontier discipline:
//
//   - DFS variants push a node again on every rediscovery and skip stale
//     entries at pop time against the visited set (lazy deletion).
//   - Dijkstra and A* scan their open set linearly for the minimum; ties go
//     to the earliest inserted node (A* first prefers the smaller h).
//   - Bidirectional BFS keeps the best meeting edge seen so far and stops
//     once the two queue fronts cannot improve on it, so its path length
//     always equals plain BFS.
//
// Complexity (V = Rows×Cols):
//
//   - DFS, BFS, bidirectional variants: O(V) total work.
//   - Dijkstra, A*: O(V) per Step for the linear scan, O(V²) total.
//   - Path reconstruction: O(len(path)), bounded by MaxPathHops.
//
// Errors:
//
//   - ErrNoEndpoints: Start or Step before SetEndpoints.
//   - ErrNilEndpoint: SetEndpoints with a nil node.
//   - ErrNotStarted: Step before Start.
//   - ErrUnknownAlgorithm, ErrUnknownHeuristic: registry lookups.
//   - ErrOptionViolation: an invalid Option passed to New.
//   - ErrPathRunaway, ErrBrokenPath: reported through Err() after a failed
//     reconstruction; the run then ends with an empty path.
//
// An unreachable target is not an error: the algorithm finishes with
// Found() == false and an empty path.
package search
