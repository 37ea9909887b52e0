package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_PushAndTraverse(t *testing.T) {
	a := NewArena[int]()
	i1 := a.PushBack(1)
	i2 := a.PushBack(2)
	i3 := a.PushBack(3)
	require.Equal(t, 3, a.Len())

	n, err := a.Next(i1)
	require.NoError(t, err)
	require.Equal(t, i2, n)

	n, err = a.Next(i3)
	require.NoError(t, err)
	require.Equal(t, i1, n) // circular invariant: last.next == first
}

func TestCursor_ExtractThenForward(t *testing.T) {
	a := NewArena[string]()
	a.PushBack("a")
	mid := a.PushBack("b")
	a.PushBack("c")

	cur := NewCursor(a)
	cur.Forward() // now at "b"
	require.Equal(t, mid, cur.Current())

	require.NoError(t, cur.Extract())
	require.Equal(t, Index(0), cur.Current()) // current-extracted state

	cur.Forward() // restores current from the pre-extraction next
	v, err := a.Value(cur.Current())
	require.NoError(t, err)
	require.Equal(t, "c", v)
	require.Equal(t, 2, a.Len())
}

func TestCursor_CycledList(t *testing.T) {
	a := NewArena[int]()
	a.PushBack(1)
	a.PushBack(2)
	a.PushBack(3)

	cur := NewCursor(a)
	cur.MarkCyclePt()
	require.False(t, cur.CycledList())
	cur.Forward()
	cur.Forward()
	require.False(t, cur.CycledList())
	cur.Forward()
	require.True(t, cur.CycledList()) // back to the marked sentinel after a full lap
}

func TestArena_ExtractSublist(t *testing.T) {
	a := NewArena[int]()
	a.PushBack(1)
	i2 := a.PushBack(2)
	i3 := a.PushBack(3)
	a.PushBack(4)

	sub, err := a.ExtractSublist(i2, i3)
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	require.Equal(t, 2, a.Len())
}
