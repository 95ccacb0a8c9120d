package list

import (
	"testing"

	"go-poollist/pkg/customerrors"

	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	e := newEngine(1, 4)
	l := build(t, e, 1, 2, 3)

	require.Equal(t, 1, val(l.First()))
	require.Equal(t, 2, val(l.Next()))
	require.Equal(t, 2, val(l.Remove()))
	require.Equal(t, 3, val(l.Current()))
	requireLinked(t, l, 1, 3)

	// removing the tail leaves the cursor after it
	require.Equal(t, 3, val(l.Remove()))
	require.Equal(t, AfterTail, l.Position())
	require.Equal(t, none, val(l.Remove()))
	requireLinked(t, l, 1)

	require.Equal(t, 1, val(l.Prev()))
	require.Equal(t, 1, val(l.Remove()))
	require.Equal(t, AfterTail, l.Position())
	requireLinked(t, l)
	require.Equal(t, 0, e.Stats().Nodes.InUse)
}

func TestRemoveOffList(t *testing.T) {
	l := build(t, newEngine(1, 2), 1, 2)

	l.First()
	l.Prev()
	require.Equal(t, none, val(l.Remove()))
	require.Equal(t, BeforeHead, l.Position())
	requireLinked(t, l, 1, 2)
}

func TestTrim(t *testing.T) {
	l := build(t, newEngine(1, 3), 1, 2, 3)

	l.First()
	require.Equal(t, 3, val(l.Trim()))
	require.Equal(t, 2, val(l.Current()))
	require.Equal(t, 2, val(l.Trim()))
	require.Equal(t, 1, val(l.Current()))
	require.Equal(t, 1, val(l.Trim()))
	require.Equal(t, AfterTail, l.Position())
	require.Equal(t, none, val(l.Trim()))
	requireLinked(t, l)
}

func TestFreeCallsDestructorInOrder(t *testing.T) {
	e := newEngine(1, 2)
	l := build(t, e, 7, 8)
	l.Last()

	var freed []int
	l.Free(func(item int) { freed = append(freed, item) })

	require.Equal(t, []int{7, 8}, freed)
	require.False(t, l.Valid())
	require.Equal(t, 0, e.Stats().Headers.InUse)
	require.Equal(t, 0, e.Stats().Nodes.InUse)
}

func TestFreeNilDestructor(t *testing.T) {
	l := build(t, newEngine(1, 1), 1)
	require.PanicsWithError(t, customerrors.ErrNilDestructor.Error(), func() { l.Free(nil) })
	requireLinked(t, l, 1)
}
