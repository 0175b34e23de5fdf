package setcover

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcover/cover"
)

// Solver owns one subset collection, its universe and, after Solve, the
// complete list of minimum covers. All state is per instance; distinct
// Solvers may run concurrently.
//
// A Solver is not safe for concurrent use by multiple goroutines.
type Solver struct {
	subsets [][]int
	ix      *cover.Index[int]
	opts    Options
	missing []int

	solved    bool
	bound     int
	solutions [][]int
}

// New validates subsets and builds a Solver over a private copy of them.
//
// Validation (ErrInvalidInput):
//   - every element must be non-negative;
//   - with WithMaxElement(m), every element must be ≤ m.
//
// Duplicate elements inside one subset are accepted and collapse.
// Values of 1..max missing from the universe are reported through the
// event hook as EventMissingElements and by MissingElements.
func New(subsets [][]int, opts ...Option) (*Solver, error) {
	o := resolve(opts)

	own := make([][]int, len(subsets))
	for i, s := range subsets {
		for _, e := range s {
			if e < 0 {
				return nil, fmt.Errorf("setcover: subset %d: element %d is negative: %w", i, e, ErrInvalidInput)
			}
			if o.MaxElement >= 0 && e > o.MaxElement {
				return nil, fmt.Errorf("setcover: subset %d: element %d exceeds max %d: %w",
					i, e, o.MaxElement, ErrInvalidInput)
			}
		}
		own[i] = slices.Clone(s)
	}

	sv := &Solver{
		subsets: own,
		ix:      cover.NewIndex(own),
		opts:    o,
	}
	sv.missing = missingElements(sv.ix, o.MaxElement)
	if len(sv.missing) > 0 {
		o.emit(Event{Kind: EventMissingElements, Missing: slices.Clone(sv.missing)})
	}

	return sv, nil
}

// Solve runs phase 1 and phase 2. After the first successful call the
// result is cached and later calls return nil without searching again.
// If the context is canceled, Solve returns its error and keeps no
// partial result; a later call starts over.
func (sv *Solver) Solve() error {
	if sv.solved {
		return nil
	}

	k, err := BoundSearch(sv.ix, sv.opts)
	if err != nil {
		return err
	}
	sols, err := EnumerateAll(sv.ix, k, sv.opts)
	if err != nil {
		return err
	}

	sv.bound = k
	sv.solutions = sols
	sv.solved = true

	return nil
}

// Solutions returns a copy of every minimum cover in lexicographic index
// order. It is empty before a successful Solve.
func (sv *Solver) Solutions() [][]int {
	out := make([][]int, len(sv.solutions))
	for i, s := range sv.solutions {
		out[i] = slices.Clone(s)
	}

	return out
}

// Bound returns k* and true once Solve has succeeded, else 0 and false.
func (sv *Solver) Bound() (int, bool) {
	if !sv.solved {
		return 0, false
	}

	return sv.bound, true
}

// Len returns the number of subsets.
func (sv *Solver) Len() int { return len(sv.subsets) }

// Universe returns the distinct elements of all subsets in ascending order.
func (sv *Solver) Universe() []int {
	u := sv.ix.Universe()
	slices.Sort(u)

	return u
}

// MissingElements returns the values of 1..max that no subset contains,
// where max is the declared domain maximum or else the largest element.
func (sv *Solver) MissingElements() []int {
	return slices.Clone(sv.missing)
}

// Solve is a convenience wrapper: New, Solve, Solutions.
func Solve(subsets [][]int, opts ...Option) ([][]int, error) {
	sv, err := New(subsets, opts...)
	if err != nil {
		return nil, err
	}
	if err = sv.Solve(); err != nil {
		return nil, err
	}

	return sv.Solutions(), nil
}

// missingElements lists 1..max values absent from the universe of ix.
func missingElements(ix *cover.Index[int], declared int) []int {
	top := declared
	if top < 0 {
		for _, e := range ix.Universe() {
			top = max(top, e)
		}
	}

	var out []int
	for v := 1; v <= top; v++ {
		if _, ok := ix.Position(v); !ok {
			out = append(out, v)
		}
	}

	return out
}
