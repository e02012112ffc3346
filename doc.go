// Package pathviz is the root of an animated grid path-finding engine: a
// 2-D grid graph with dynamic walls, six step-driven search algorithms and
// a tick scheduler that explores frame by frame and then replays the path.
//
// Packages:
//
//	gridgraph/  Node, NodeState and the 4-connected GridGraph with sever/restore
//	frontier/   generic Stack and Queue used as search frontiers
//	search/     DFS, BFS, bidirectional BFS/DFS, Dijkstra, A* behind one Algorithm contract
//	scheduler/  Idle → Exploring → Replaying → Done driver, speeds, manual step, metrics
//	session/    one interactive grid: tools, endpoints, wall edits, runs
//	maze/       random and recursive-division wall generators
//	config/     YAML settings, validation, hot reload, zap logger
//	render/     lipgloss text rendering of a grid
//
// The pathviz command under cmd/ wires them together for a terminal.
//
// Quick start:
//
//	sess, _ := session.New(20, 40, session.WithAlgorithm(search.AStar))
//	sess.SetTool(session.ToolStart)
//	_ = sess.Apply(0, 0)
//	sess.SetTool(session.ToolTarget)
//	_ = sess.Apply(19, 39)
//	sched, _ := sess.Prepare()
//	_ = sched.Run(ctx)
package pathviz
