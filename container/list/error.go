package list

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Code identifies the kind of an Error. Codes are errors themselves so they
// can be used as targets of errors.Is:
//
//	if errors.Is(err, list.ErrInvalidIndex) {
//		...
//	}
type Code int

const (
	// ErrInvalidIndex is returned by At, Node, Delete and Splice when called
	// with a negative index.
	ErrInvalidIndex Code = iota + 1
	// ErrEmptyReduce is returned by Reduce when the list is empty.
	ErrEmptyReduce
	// ErrNotMember is the code of panics raised when removing a node which
	// does not belong to the list.
	ErrNotMember
	// ErrNodeOwned is the code of panics raised when inserting a node which
	// is already part of a list.
	ErrNodeOwned
)

func (c Code) Error() string {
	switch c {
	case ErrInvalidIndex:
		return "invalid index"
	case ErrEmptyReduce:
		return "empty reduce"
	case ErrNotMember:
		return "node does not belong to the list"
	case ErrNodeOwned:
		return "node already belongs to a list"
	default:
		return fmt.Sprintf("list error %d", int(c))
	}
}

// Error is the error type returned (or panicked with) by list operations. It
// carries the name of the operation that failed and the arguments that caused
// the failure.
type Error struct {
	Code Code
	Op   string
	Msg  string
	Args map[string]any
}

func (e *Error) Error() string {
	s := new(strings.Builder)
	s.WriteString(e.Op)
	s.WriteString(": ")
	if e.Msg != "" {
		s.WriteString(e.Msg)
	} else {
		s.WriteString(e.Code.Error())
	}

	if len(e.Args) != 0 {
		s.WriteString(" (")
		for i, k := range slices.Sorted(maps.Keys(e.Args)) {
			if i != 0 {
				s.WriteString(", ")
			}
			fmt.Fprintf(s, "%s=%v", k, e.Args[k])
		}
		s.WriteString(")")
	}

	return s.String()
}

// Is reports whether target is the code of e, or an *Error with the same code.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return e.Code == t
	case *Error:
		return e.Code == t.Code
	}
	return false
}

// Unwrap returns the code of e.
func (e *Error) Unwrap() error { return e.Code }

func invalidIndex(op string, index int) *Error {
	return &Error{
		Code: ErrInvalidIndex,
		Op:   op,
		Msg:  "negative index not supported",
		Args: map[string]any{"index": index},
	}
}
