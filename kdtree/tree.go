package kdtree

import (
	"math"
	"sort"

	"github.com/meshtrace/kdtree/geometry"
)

// node is one k-d tree node. Children are referenced by index into
// Tree.nodes rather than by pointer: this keeps the tree in a single
// contiguous arena (cache-friendly pre-order/enumeration) and avoids
// the Point<->Triangle pointer cycle the original implementation had,
// per the index-arena re-architecture in the design notes.
type node struct {
	pointIndex  int // index into Tree.points; the splitter (or sole point of a leaf)
	left, right int // index into Tree.nodes, or -1 if absent
	axis        int // split axis in {0,1,2}; 0 for leaves
	max, min    geometry.Vector3
}

func (n node) isLeaf() bool {
	return n.left == -1 && n.right == -1
}

// Tree is a k-d tree over a triangle mesh's points, built once and
// queried many times via Raycast. It owns all its Triangles, Points,
// and Nodes; query results (RayHit) reference triangles by index and
// are only valid for the Tree's lifetime.
type Tree struct {
	triangles []geometry.Triangle
	points    []point
	nodes     []node
	root      int // index into nodes, -1 if the tree is empty

	epsilon         float64
	epsilonParallel float64
}

// newTree constructs the k-d tree over the given triangles and
// already-deduplicated points. An empty points slice produces a tree
// with no root; all subsequent queries report no hit.
func newTree(triangles []geometry.Triangle, points []point, opts *BuildOptions) *Tree {
	t := &Tree{
		triangles:       triangles,
		points:          points,
		epsilon:         opts.epsilon(),
		epsilonParallel: opts.epsilonParallel(),
		root:            -1,
	}
	if len(points) == 0 {
		return t
	}

	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	maxB, minB := boundsOf(points, indices)
	t.root = t.build(indices, maxB, minB)
	opts.log("build complete")
	return t
}

// boundsOf computes the component-wise bounding box over the given
// point indices.
func boundsOf(points []point, indices []int) (maxB, minB geometry.Vector3) {
	maxB = points[indices[0]].position
	minB = maxB
	for _, idx := range indices[1:] {
		p := points[idx].position
		maxB = geometry.Max(maxB, p)
		minB = geometry.Min(minB, p)
	}
	return maxB, minB
}

// selectAxis picks the axis of greatest extent over the given point
// indices, with ties broken toward the lowest axis index.
func selectAxis(points []point, indices []int) int {
	var minC, maxC [3]float64
	for a := 0; a < 3; a++ {
		minC[a] = math.Inf(1)
		maxC[a] = math.Inf(-1)
	}
	for _, idx := range indices {
		p := points[idx].position
		for a := 0; a < 3; a++ {
			c := p.Component(a)
			if c < minC[a] {
				minC[a] = c
			}
			if c > maxC[a] {
				maxC[a] = c
			}
		}
	}
	axis := 0
	bestExtent := maxC[0] - minC[0]
	for a := 1; a < 3; a++ {
		extent := maxC[a] - minC[a]
		if extent > bestExtent {
			bestExtent = extent
			axis = a
		}
	}
	return axis
}

// build recursively partitions pointIndices along the axis of
// greatest extent, taking the median as the splitter, and returns the
// index of the resulting node in t.nodes (or -1 for an absent
// subtree). maxB/minB describe the bounding region this call
// partitions; they are the node's own bounds, inherited (and
// tightened on the split axis) from the parent.
func (t *Tree) build(pointIndices []int, maxB, minB geometry.Vector3) int {
	n := len(pointIndices)
	if n == 0 {
		return -1
	}
	if n == 1 {
		return t.appendNode(node{
			pointIndex: pointIndices[0],
			left:       -1,
			right:      -1,
			axis:       0,
			max:        maxB,
			min:        minB,
		})
	}

	axis := selectAxis(t.points, pointIndices)

	// An unstable nth-element partial sort would suffice; a full sort
	// keeps this simple and is not the bottleneck for the mesh sizes
	// this core targets.
	sort.Slice(pointIndices, func(i, j int) bool {
		return t.points[pointIndices[i]].position.Component(axis) <
			t.points[pointIndices[j]].position.Component(axis)
	})

	medianLocal := n / 2
	splitterIdx := pointIndices[medianLocal]
	splitterValue := t.points[splitterIdx].position.Component(axis)

	left := pointIndices[:medianLocal]
	right := pointIndices[medianLocal+1:]

	leftMax := maxB.WithComponent(axis, splitterValue)
	rightMin := minB.WithComponent(axis, splitterValue)

	leftIdx := t.build(left, leftMax, minB)
	rightIdx := t.build(right, maxB, rightMin)

	return t.appendNode(node{
		pointIndex: splitterIdx,
		left:       leftIdx,
		right:      rightIdx,
		axis:       axis,
		max:        maxB,
		min:        minB,
	})
}

func (t *Tree) appendNode(n node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// Bounds returns the bounding box of the whole mesh, i.e. the root
// node's (max, min). The second return value is false for an empty
// tree.
func (t *Tree) Bounds() (maxB, minB geometry.Vector3, ok bool) {
	if t.root == -1 {
		return geometry.Vector3{}, geometry.Vector3{}, false
	}
	root := t.nodes[t.root]
	return root.max, root.min, true
}

// NumTriangles returns the number of triangles the Tree was built
// from.
func (t *Tree) NumTriangles() int {
	return len(t.triangles)
}

// Triangle returns the triangle at the given index, as referenced by
// a RayHit's TriangleIndex.
func (t *Tree) Triangle(index int) geometry.Triangle {
	return t.triangles[index]
}
