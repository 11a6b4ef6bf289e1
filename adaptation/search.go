package adaptation

import (
	"container/heap"
	"sort"

	"adaptation-engine/capability"
)

// candidate is a partial chain waiting in the priority queue.
type candidate struct {
	hops     int
	distance int
	seq      int
	path     []entry
	current  capability.Capability
}

func (c *candidate) less(o *candidate) bool {
	if c.hops != o.hops {
		return c.hops < o.hops
	}

	if c.distance != o.distance {
		return c.distance < o.distance
	}

	return c.seq < o.seq
}

// candidateQueue implements heap.Interface ordered by candidate cost.
type candidateQueue []*candidate

func (q candidateQueue) Len() int           { return len(q) }
func (q candidateQueue) Less(i, j int) bool { return q[i].less(q[j]) }
func (q candidateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x any) {
	*q = append(*q, x.(*candidate))
}

func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}

// edge is an outgoing edge of a capability: an applicable offer and the
// specificity distance from the current capability to the offer's source.
type edge struct {
	distance int
	rank     int
	entry    entry
}

// materializeFunc tries a complete chain. It reports false when a factory
// declined, and returns an error when a factory failed unexpectedly.
type materializeFunc func(path []*Offer) (any, bool, error)

// searchStats reports the work done by one search.
type searchStats struct {
	expansions int
	refusals   int
}

// searcher runs one best-first search over a registry snapshot.
type searcher struct {
	snap  *snapshot
	model capability.Model
	stats searchStats
}

// resolve finds the cheapest chain from `from` to `to` that materializes.
// The first successfully materialized chain wins, even if a cheaper chain
// was tried earlier and declined.
func (s *searcher) resolve(from, to capability.Capability, materialize materializeFunc) (any, []*Offer, bool, error) {
	if s.model.Satisfies(from, to) {
		out, ok, err := materialize(nil)
		return out, nil, ok, err
	}

	counter := 0
	queue := &candidateQueue{{current: from, seq: counter}}

	for queue.Len() > 0 {
		cur := heap.Pop(queue).(*candidate)
		s.stats.expansions++

		for _, e := range s.outgoing(cur) {
			path := make([]entry, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, e.entry)

			offer := e.entry.offer
			if s.model.Satisfies(offer.To, to) {
				chain := offers(path)

				out, ok, err := materialize(chain)
				if err != nil {
					return nil, chain, false, err
				}

				if ok {
					return out, chain, true, nil
				}

				s.stats.refusals++

				continue
			}

			counter++
			heap.Push(queue, &candidate{
				hops:     cur.hops + 1,
				distance: cur.distance + e.distance,
				seq:      counter,
				path:     path,
				current:  offer.To,
			})
		}
	}

	return nil, nil, false, nil
}

// outgoing returns the applicable edges of cur, sorted by distance, then
// by source specificity (more specific first), then registration order.
// Offers already on cur's path are skipped.
func (s *searcher) outgoing(cur *candidate) []edge {
	var edges []edge

	for _, from := range s.snap.froms {
		distance, ok := s.model.Distance(cur.current, from)
		if !ok {
			continue
		}

		rank := s.model.Rank(from)

		for _, e := range s.snap.offers[from] {
			if onPath(cur.path, e.offer) {
				continue
			}

			edges = append(edges, edge{distance: distance, rank: rank, entry: e})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}

		if a.rank != b.rank {
			return a.rank > b.rank
		}

		return a.entry.seq < b.entry.seq
	})

	return edges
}

func onPath(path []entry, offer *Offer) bool {
	for _, e := range path {
		if e.offer == offer {
			return true
		}
	}

	return false
}

func offers(path []entry) []*Offer {
	out := make([]*Offer, len(path))
	for i, e := range path {
		out[i] = e.offer
	}

	return out
}

func sortEntries(entries []entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
}
