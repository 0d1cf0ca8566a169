package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrTreeFull means the node pool or the id space is exhausted.
	ErrTreeFull       = errors.New("tree full")
	ErrParentNotFound = errors.New("parent not found")
	// ErrParentFull means the parent's child list is at capacity.
	ErrParentFull   = errors.New("parent full")
	ErrNotFound     = errors.New("not found")
	ErrNilWidget    = errors.New("nil widget")
	ErrNotResizable = errors.New("widget is not resizable")
)

// TreeError records the tree operation that failed and the id it was given.
type TreeError struct {
	Op  string
	ID  WidgetID
	Err error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("ui.%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *TreeError) Unwrap() error { return e.Err }

func treeErr(op string, id WidgetID, err error) error {
	return &TreeError{Op: op, ID: id, Err: err}
}
