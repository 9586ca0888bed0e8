package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	require.Equal(t, NewVector3(5, 7, 9), a.Add(b))
	require.Equal(t, NewVector3(-3, -3, -3), a.Sub(b))
	require.Equal(t, NewVector3(2, 4, 6), a.Scale(2))
	require.InDelta(t, 32.0, a.Dot(b), 1e-12)
	require.Equal(t, NewVector3(2*6-3*5, 3*4-1*6, 1*5-2*4), a.Cross(b))
}

func TestVector3Component(t *testing.T) {
	v := NewVector3(1, 2, 3)
	require.Equal(t, 1.0, v.Component(0))
	require.Equal(t, 2.0, v.Component(1))
	require.Equal(t, 3.0, v.Component(2))
	require.Panics(t, func() { v.Component(3) })
}

func TestVector3WithComponent(t *testing.T) {
	v := NewVector3(1, 2, 3)
	require.Equal(t, NewVector3(9, 2, 3), v.WithComponent(0, 9))
	require.Equal(t, NewVector3(1, 9, 3), v.WithComponent(1, 9))
	require.Equal(t, NewVector3(1, 2, 9), v.WithComponent(2, 9))
}

func TestVector3ApproxEqual(t *testing.T) {
	a := NewVector3(1, 1, 1)
	b := NewVector3(1+1e-5, 1-1e-5, 1)
	require.True(t, a.ApproxEqual(b, Epsilon))
	require.False(t, a.ApproxEqual(NewVector3(1.1, 1, 1), Epsilon))
}

func TestMinMax(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(4, 2, 3)
	require.Equal(t, NewVector3(1, 2, -2), Min(a, b))
	require.Equal(t, NewVector3(4, 5, 3), Max(a, b))
}
