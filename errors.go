// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bfdd

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalLevel is raised (as a panic) when querying a level that is
	// not in the interval [1..nin] of the manager.
	ErrIllegalLevel = errors.New("illegal level")
	// ErrBadPattern is returned by EvalCube when the pattern is too short or
	// contains something else than '0' or '1'.
	ErrBadPattern = errors.New("bad pattern")
	// ErrNullNode is raised when using the zero value of BDD or FDD.
	ErrNullNode = errors.New("null node")
	// ErrStaleHandle is raised when using a node built before the last call
	// to Init or Restart.
	ErrStaleHandle = errors.New("stale node (manager was restarted)")
	// ErrForeignNode is raised when mixing nodes from different managers.
	ErrForeignNode = errors.New("node belongs to another manager")
	// ErrZeroCare is returned by Restrict when the care set is empty.
	ErrZeroCare = errors.New("restrict with an empty care set")
	// ErrSupports is returned by New and Init on a wrong number of supports.
	ErrSupports = errors.New("wrong number of supports")
)

// fail panics with an error wrapping err. Used for caller-contract violations
// that cannot be recovered locally.
func fail(err error, format string, a ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{err}, a...)...))
}

func (m *Manager) checklevel(level int) {
	if level < 1 || level > m.nin {
		fail(ErrIllegalLevel, "level %d not in [1..%d]", level, m.nin)
	}
}
