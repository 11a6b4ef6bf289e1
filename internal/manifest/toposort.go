package manifest

import (
	"errors"
	"sort"
)

var errCycle = errors.New("cycle detected")

// declarationOrder returns the indices of types so that every type comes
// after the manifest types it names as parents. Among ready types the
// smallest index goes first.
func declarationOrder(types []TypeDecl) ([]int, error) {
	index := make(map[string]int, len(types))
	for i, t := range types {
		if _, dup := index[t.Name]; !dup {
			index[t.Name] = i
		}
	}

	n := len(types)
	indeg := make([]int, n)
	out := make([][]int, n)

	for i, t := range types {
		for _, p := range t.Parents {
			d, ok := index[p]
			if !ok {
				continue
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}
