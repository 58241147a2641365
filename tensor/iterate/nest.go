package iterate

// Clause describes one level of a C-style nested loop: an initial value, a
// continuation test evaluated before every iteration of the level, and a
// step producing the next value.
type Clause struct {
	Start int
	While func(i int) bool
	Step  func(i int) int
}

// Nest expands a flat clause list into nested loops, outermost clause first.
// Each level re-evaluates its continuation test on every iteration of every
// enclosing level, and body runs only when all tests hold simultaneously. A
// false test at any level skips the deeper levels and advances that level.
//
// body receives the current value of every clause, outermost first. The ix
// slice is reused between calls; callers that retain it must copy.
func Nest(clauses []Clause, body func(ix []int)) {
	if body == nil {
		return
	}
	ix := make([]int, len(clauses))
	nest(clauses, ix, 0, body)
}

func nest(clauses []Clause, ix []int, level int, body func(ix []int)) {
	if level == len(clauses) {
		body(ix)
		return
	}
	c := clauses[level]
	for i := c.Start; c.While == nil || c.While(i); i = step(c, i) {
		ix[level] = i
		nest(clauses, ix, level+1, body)
		if c.While == nil {
			// A nil test means a single pass at Start.
			break
		}
	}
}

func step(c Clause, i int) int {
	if c.Step == nil {
		return i + 1
	}
	return c.Step(i)
}

// ForShape walks the row-major index space of shape, invoking body once per
// position with the multi-index (last axis fastest). Zero-extent or negative
// extents yield no iterations. A rank-0 shape invokes body exactly once with
// an empty index, matching the single element of a zero-dim array.
func ForShape(shape []int, body func(ix []int)) {
	if body == nil {
		return
	}
	for _, n := range shape {
		if n <= 0 {
			return
		}
	}
	clauses := make([]Clause, len(shape))
	for d, n := range shape {
		n := n
		clauses[d] = Clause{
			Start: 0,
			While: func(i int) bool { return i < n },
			Step:  func(i int) int { return i + 1 },
		}
	}
	Nest(clauses, body)
}
