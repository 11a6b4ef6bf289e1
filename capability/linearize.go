package capability

import (
	"errors"
	"fmt"
)

// ErrInconsistentHierarchy is returned when the declared parents of a
// capability admit no consistent ancestor order.
var ErrInconsistentHierarchy = errors.New("inconsistent capability hierarchy")

// linearize computes the C3 ancestor chain of c, nearest first, c excluded.
// chainOf returns the already computed chain for a parent.
func linearize(c Capability, parents []Capability, chainOf func(Capability) []Capability) ([]Capability, error) {
	if len(parents) == 0 {
		return nil, nil
	}

	seqs := make([][]Capability, 0, len(parents)+1)
	for _, p := range parents {
		seq := append([]Capability{p}, chainOf(p)...)
		seqs = append(seqs, seq)
	}

	seqs = append(seqs, append([]Capability(nil), parents...))

	var out []Capability

	for {
		seqs = dropEmpty(seqs)
		if len(seqs) == 0 {
			return out, nil
		}

		head, ok := pickHead(seqs)
		if !ok {
			return nil, fmt.Errorf("%w: cannot order ancestors of %s", ErrInconsistentHierarchy, c)
		}

		if head == c {
			return nil, fmt.Errorf("%w: %s is its own ancestor", ErrInconsistentHierarchy, c)
		}

		out = append(out, head)

		for i := range seqs {
			if seqs[i][0] == head {
				seqs[i] = seqs[i][1:]
			}
		}
	}
}

// pickHead returns the first sequence head that appears in no tail.
func pickHead(seqs [][]Capability) (Capability, bool) {
	for _, seq := range seqs {
		cand := seq[0]
		if !inAnyTail(cand, seqs) {
			return cand, true
		}
	}

	return Capability{}, false
}

func inAnyTail(c Capability, seqs [][]Capability) bool {
	for _, seq := range seqs {
		for _, x := range seq[1:] {
			if x == c {
				return true
			}
		}
	}

	return false
}

func dropEmpty(seqs [][]Capability) [][]Capability {
	out := seqs[:0]

	for _, s := range seqs {
		if len(s) > 0 {
			out = append(out, s)
		}
	}

	return out
}
