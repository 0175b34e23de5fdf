package setcover

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcover/combin"
)

var (
	// ErrInvalidInput is returned by New when a subset holds a negative
	// element or an element outside the declared domain.
	ErrInvalidInput = errors.New("setcover: invalid input")

	// ErrInvalidArgument is returned when a combination of negative size is
	// requested. It is the same sentinel as combin.ErrInvalidArgument.
	ErrInvalidArgument = combin.ErrInvalidArgument

	// ErrNoCover is returned by BoundSearch if even the full collection does
	// not cover the universe of its index. It cannot happen for an Index
	// built by cover.NewIndex.
	ErrNoCover = errors.New("setcover: no cover exists")
)

// EventKind classifies a search progress Event.
type EventKind int

const (
	// EventMissingElements reports values of 1..max absent from the universe.
	EventMissingElements EventKind = iota
	// EventBoundChecked is emitted before a phase-1 scan at Bound.
	EventBoundChecked
	// EventBoundDecreased is emitted when a cover of size Bound is found in
	// phase 1; Indices holds that cover.
	EventBoundDecreased
	// EventBoundFixed is emitted once k* is known; Bound holds k*.
	EventBoundFixed
	// EventSolutionFound is emitted for every phase-2 cover, in result order.
	EventSolutionFound
)

// String returns a short lowercase name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventMissingElements:
		return "missing-elements"
	case EventBoundChecked:
		return "bound-checked"
	case EventBoundDecreased:
		return "bound-decreased"
	case EventBoundFixed:
		return "bound-fixed"
	case EventSolutionFound:
		return "solution-found"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is a structured search progress notification delivered to the
// OnEvent hook. Fields not relevant to Kind are zero.
type Event struct {
	Kind EventKind

	// Bound is the combination size the event refers to.
	Bound int

	// Combinations is C(n, Bound) for EventBoundChecked (saturating).
	Combinations uint64

	// Indices is the cover for EventBoundDecreased and EventSolutionFound.
	Indices []int

	// Missing lists absent domain values for EventMissingElements.
	Missing []int
}
