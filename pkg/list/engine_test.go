package list

import (
	"math/rand"
	"testing"

	"go-poollist/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestCreateUntilExhausted(t *testing.T) {
	const headers = 10
	e := newEngine(headers, 1)

	lists := make([]List[int], 0, headers)
	for i := 0; i < headers; i++ {
		l, err := e.Create()
		require.NoError(t, err)
		lists = append(lists, l)
	}

	_, err := e.Create()
	require.ErrorIs(t, err, ErrHeaderPoolExhausted)
	require.ErrorIs(t, err, customerrors.ErrPoolExhausted)

	lists[3].Free(discard)
	l, err := e.Create()
	require.NoError(t, err)
	require.True(t, l.Valid())
	require.False(t, lists[3].Valid())
}

func TestStaleListPanics(t *testing.T) {
	e := newEngine(1, 1)
	l := build(t, e, 1)
	l.Free(discard)

	require.PanicsWithError(t, "list 1: invalid list", func() { l.Count() })
	require.Panics(t, func() { l.First() })
	require.Panics(t, func() { _ = l.Add(1) })
	require.Panics(t, func() { l.Free(discard) })

	var zero List[int]
	require.False(t, zero.Valid())
	require.Panics(t, func() { zero.Count() })
}

func TestReset(t *testing.T) {
	e := newEngine(2, 2)
	a := build(t, e, 1, 2)
	build(t, e)

	e.Reset()
	require.False(t, a.Valid())
	require.Equal(t, Stats{
		Headers: PoolStats{Capacity: 2},
		Nodes:   PoolStats{Capacity: 2},
	}, e.Stats())

	b := build(t, e, 3, 4)
	requireLinked(t, b, 3, 4)
}

func TestDefaultOptions(t *testing.T) {
	e := New[string](nil)
	require.Equal(t, DefaultHeaderCapacity, e.Stats().Headers.Capacity)
	require.Equal(t, DefaultNodeCapacity, e.Stats().Nodes.Capacity)

	l, err := e.Create()
	require.NoError(t, err)
	require.NoError(t, l.Append("a"))
	require.Equal(t, []string{"a"}, l.Items())
}

// TestShuffledPools churns both pools so that their free stacks are no longer
// in index order, then runs list operations on the reshuffled slots.
func TestShuffledPools(t *testing.T) {
	const headers, nodes = 10, 100
	rnd := rand.New(rand.NewSource(1))
	e := newEngine(headers, nodes)

	l := build(t, e)
	inserts := []func(int) error{l.Add, l.Insert, l.Prepend, l.Append}
	for i := 0; i < nodes; i++ {
		require.NoError(t, inserts[rnd.Intn(len(inserts))](i))
	}
	for _, insert := range inserts {
		require.ErrorIs(t, insert(nodes), ErrNodePoolExhausted)
	}
	require.NoError(t, l.Validate())
	l.Free(discard)

	lists := make([]List[int], headers)
	for i := range lists {
		lists[i] = build(t, e)
	}
	_, err := e.Create()
	require.ErrorIs(t, err, ErrHeaderPoolExhausted)
	for _, i := range rnd.Perm(headers) {
		lists[i].Free(discard)
	}

	a := build(t, e, 1, 2, 3)
	b := build(t, e, 4, 5)
	a.Concat(b)
	requireLinked(t, a, 1, 2, 3, 4, 5)
	require.Equal(t, Stats{
		Headers: PoolStats{Capacity: headers, InUse: 1},
		Nodes:   PoolStats{Capacity: nodes, InUse: 5},
	}, e.Stats())
}
