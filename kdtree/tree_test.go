package kdtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshtrace/kdtree/geometry"
)

func buildGridMesh(t *testing.T, n int) *Tree {
	t.Helper()
	var vertices []float64
	var indices []uint32
	idx := uint32(0)
	for i := 0; i < n; i++ {
		x := float64(i)
		vertices = append(vertices,
			x, 0, 0,
			x+0.5, 1, 0,
			x+1, 0, 0,
		)
		indices = append(indices, idx, idx+1, idx+2)
		idx += 3
	}
	tree, err := BuildFromIndexedMesh(vertices, indices, nil)
	require.NoError(t, err)
	return tree
}

// subtreePointIndices returns the point indices of every node in the
// subtree rooted at nodeIdx (the node's own point first, then its left
// and right subtrees) so callers can check the split invariant
// directly against point positions rather than against internal node
// bounds.
func subtreePointIndices(tree *Tree, nodeIdx int) []int {
	if nodeIdx == -1 {
		return nil
	}
	n := tree.nodes[nodeIdx]
	out := []int{n.pointIndex}
	out = append(out, subtreePointIndices(tree, n.left)...)
	out = append(out, subtreePointIndices(tree, n.right)...)
	return out
}

func TestBuild_SplitInvariantHoldsAtEveryNode(t *testing.T) {
	tree := buildGridMesh(t, 12)
	for idx, n := range tree.nodes {
		if n.isLeaf() {
			continue
		}
		splitterCoord := tree.points[n.pointIndex].position.Component(n.axis)
		for _, pIdx := range subtreePointIndices(tree, n.left) {
			c := tree.points[pIdx].position.Component(n.axis)
			assert.LessOrEqualf(t, c, splitterCoord, "node %d left subtree point %d violates axis %d split", idx, pIdx, n.axis)
		}
		for _, pIdx := range subtreePointIndices(tree, n.right) {
			c := tree.points[pIdx].position.Component(n.axis)
			assert.GreaterOrEqualf(t, c, splitterCoord, "node %d right subtree point %d violates axis %d split", idx, pIdx, n.axis)
		}
	}
}

func TestBuild_BoundsContainEveryDescendantSplitter(t *testing.T) {
	tree := buildGridMesh(t, 12)
	for idx, n := range tree.nodes {
		for _, pIdx := range subtreePointIndices(tree, idx) {
			p := tree.points[pIdx].position
			for axis := 0; axis < 3; axis++ {
				c := p.Component(axis)
				assert.GreaterOrEqualf(t, n.max.Component(axis), c, "node %d max violated on axis %d", idx, axis)
				assert.LessOrEqualf(t, n.min.Component(axis), c, "node %d min violated on axis %d", idx, axis)
			}
		}
	}
}

func TestSelectAxis_PicksGreatestExtent(t *testing.T) {
	points := []point{
		{position: geometry.NewVector3(0, 0, 0)},
		{position: geometry.NewVector3(1, 5, 0)},
		{position: geometry.NewVector3(2, -5, 0)},
	}
	indices := []int{0, 1, 2}
	assert.Equal(t, 1, selectAxis(points, indices), "y has the greatest extent (10) here")
}

func TestSelectAxis_TiesBreakToLowestAxis(t *testing.T) {
	points := []point{
		{position: geometry.NewVector3(0, 0, 0)},
		{position: geometry.NewVector3(3, 3, 3)},
	}
	indices := []int{0, 1}
	assert.Equal(t, 0, selectAxis(points, indices), "all three axes tie at extent 3, axis 0 should win")
}

func TestTree_BoundsOnEmptyTreeReportsNotOk(t *testing.T) {
	tree := &Tree{root: -1}
	maxB, minB, ok := tree.Bounds()
	assert.False(t, ok)
	assert.Equal(t, geometry.Vector3{}, maxB)
	assert.Equal(t, geometry.Vector3{}, minB)
}

func TestTree_SingleTriangleBuildsThreeNodes(t *testing.T) {
	vertices := []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	indices := []uint32{0, 1, 2}
	tree, err := BuildFromIndexedMesh(vertices, indices, nil)
	require.NoError(t, err)

	require.NotEqual(t, -1, tree.root)
	assert.Equal(t, 3, len(tree.nodes), "three distinct corners, no dedup needed, so three leaf/splitter nodes")
	stats := tree.Statistics()
	assert.True(t, stats.MaxDepth >= stats.MinLeafDepth)
	assert.False(t, math.IsNaN(stats.AverageLeafDepth))
}
