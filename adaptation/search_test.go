package adaptation

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptation-engine/capability"
)

func TestCandidateQueue_Order(t *testing.T) {
	q := &candidateQueue{}
	heap.Push(q, &candidate{hops: 2, distance: 0, seq: 1})
	heap.Push(q, &candidate{hops: 1, distance: 3, seq: 2})
	heap.Push(q, &candidate{hops: 1, distance: 1, seq: 4})
	heap.Push(q, &candidate{hops: 1, distance: 1, seq: 3})

	var got []int
	for q.Len() > 0 {
		got = append(got, heap.Pop(q).(*candidate).seq)
	}

	assert.Equal(t, []int{3, 4, 2, 1}, got)
}

func TestOutgoing_EdgeOrder(t *testing.T) {
	primate, human, child := capability.Named("IPrimate"), capability.Named("IHuman"), capability.Named("IChild")
	src := capability.Named("Source")
	target := capability.Named("ITarget")

	table := capability.NewTable()
	require.NoError(t, table.Declare(human, primate))
	require.NoError(t, table.Declare(child, human))
	table.Provide(src, child)

	r := NewRegistry()
	fromPrimate := &Offer{Factory: NoAdapterNecessary, From: primate, To: target}
	fromHuman := &Offer{Factory: NoAdapterNecessary, From: human, To: target}
	fromChild := &Offer{Factory: NoAdapterNecessary, From: child, To: target}
	fromSource := &Offer{Factory: NoAdapterNecessary, From: src, To: target}
	fromChildAgain := &Offer{Factory: NoAdapterNecessary, From: child, To: target}

	for _, o := range []*Offer{fromPrimate, fromHuman, fromChild, fromSource, fromChildAgain} {
		require.NoError(t, r.Register(o))
	}

	s := &searcher{snap: r.snapshot(), model: table}
	edges := s.outgoing(&candidate{current: src, path: []entry{{offer: fromHuman}}})

	var got []*Offer
	for _, e := range edges {
		got = append(got, e.entry.offer)
	}

	// Every source is at distance 0 from Source, so more specific sources
	// come first, then registration order. fromHuman is already on the path.
	require.Len(t, got, 4)
	assert.Same(t, fromSource, got[0])
	assert.Same(t, fromChild, got[1])
	assert.Same(t, fromChildAgain, got[2])
	assert.Same(t, fromPrimate, got[3])
}

func TestMaterialize_Order(t *testing.T) {
	appendTo := func(s string) Factory {
		return func(a any) (any, error) { return a.(string) + s, nil }
	}

	chain := []*Offer{{Factory: appendTo("A")}, {Factory: appendTo("B")}}

	out, ok, err := materialize("x", chain)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "xAB", out)

	out, ok, err = materialize("x", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", out)
}
