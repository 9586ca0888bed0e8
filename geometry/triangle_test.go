package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriangleDegenerate(t *testing.T) {
	colinear := Triangle{
		A: NewVector3(0, 0, 0),
		B: NewVector3(1, 0, 0),
		C: NewVector3(2, 0, 0),
	}
	require.True(t, colinear.Degenerate(1e-9))

	valid := Triangle{
		A: NewVector3(0, 0, 0),
		B: NewVector3(1, 0, 0),
		C: NewVector3(0, 1, 0),
	}
	require.False(t, valid.Degenerate(1e-9))
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: NewVector3(0, 0, 0), Direction: NewVector3(0, 0, 1), MaxDistance: 100}
	require.Equal(t, NewVector3(0, 0, 10), r.At(10))
}
