package list

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// none stands for "no item" in val results.
const none = -1

// val collapses an (item, ok) pair so navigation results can be compared in
// a single assertion.
func val(item int, ok bool) int {
	if !ok {
		return none
	}
	return item
}

func newEngine(headers, nodes int) *Engine[int] {
	return New[int](&Options{HeaderCapacity: headers, NodeCapacity: nodes})
}

func build(t require.TestingT, e *Engine[int], items ...int) List[int] {
	l, err := e.Create()
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, l.Append(item))
	}
	return l
}

func discard(int) {}

func requireLinked(t *testing.T, l List[int], items ...int) {
	t.Helper()
	require.NoError(t, l.Validate())
	require.Equal(t, len(items), l.Count())
	require.True(t, slices.Equal(items, l.Items()), "want %v, got %v", items, l.Items())
}
