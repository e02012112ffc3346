package session

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for session operations.
var (
	// ErrRunning is returned for edits attempted during an active run.
	ErrRunning = errors.New("session: a run is active")

	// ErrCellLocked is returned for edits on endpoints or on cells already
	// traversed by the last run.
	ErrCellLocked = errors.New("session: cell is locked")

	// ErrNoEndpoints is returned by Prepare before start and end are placed.
	ErrNoEndpoints = errors.New("session: start and end must both be placed")

	// ErrUnknownTool is returned by ParseTool.
	ErrUnknownTool = errors.New("session: unknown tool")
)

// Tool selects what Apply does to a cell.
type Tool int

const (
	// ToolWall toggles a wall.
	ToolWall Tool = iota
	// ToolStart moves the start cell.
	ToolStart
	// ToolTarget moves the end cell.
	ToolTarget
)

func (t Tool) String() string {
	switch t {
	case ToolWall:
		return "wall"
	case ToolStart:
		return "start"
	case ToolTarget:
		return "target"
	default:
		return fmt.Sprintf("tool(%d)", int(t))
	}
}

// ParseTool maps a name to a Tool.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "walls":
		return ToolWall, nil
	case "start":
		return ToolStart, nil
	case "target", "end":
		return ToolTarget, nil
	}
	return ToolWall, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}
