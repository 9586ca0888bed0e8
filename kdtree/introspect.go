package kdtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/meshtrace/kdtree/geometry"
)

// NodeDescriptor is a read-only snapshot of one tree node, returned by
// Nodes(). Left/Right index into the same slice Nodes() returned
// (-1 if absent), not into the Tree's internal storage, so descriptors
// can be inspected or walked without a reference back to the Tree.
type NodeDescriptor struct {
	Position    geometry.Vector3
	Axis        int
	Max, Min    geometry.Vector3
	IsLeaf      bool
	Left, Right int
}

// Nodes returns every node in the tree in pre-order. It does not
// mutate tree state.
func (t *Tree) Nodes() []NodeDescriptor {
	if t.root == -1 {
		return nil
	}
	var out []NodeDescriptor
	var walk func(idx int) int
	walk = func(idx int) int {
		if idx == -1 {
			return -1
		}
		n := t.nodes[idx]
		pos := len(out)
		out = append(out, NodeDescriptor{})
		leftOut := walk(n.left)
		rightOut := walk(n.right)
		out[pos] = NodeDescriptor{
			Position: t.points[n.pointIndex].position,
			Axis:     n.axis,
			Max:      n.max,
			Min:      n.min,
			IsLeaf:   n.isLeaf(),
			Left:     leftOut,
			Right:    rightOut,
		}
		return pos
	}
	walk(t.root)
	return out
}

// Statistics summarizes the tree's shape. None of these figures
// mutate tree state.
type Statistics struct {
	// NodeCount is the total number of nodes, equal to the number of
	// points that became splitters or leaves.
	NodeCount int

	// MaxDepth is the depth of the deepest node (root is depth 0).
	MaxDepth int

	// MinLeafDepth is the depth of the shallowest leaf.
	MinLeafDepth int

	// MaxTrianglesPerPoint is the largest triangle-backref list held
	// by any single point in the tree.
	MaxTrianglesPerPoint int

	// LeafCount and InteriorCount partition NodeCount.
	LeafCount     int
	InteriorCount int

	// AverageLeafDepth is the mean depth across all leaves; it
	// surfaces an unbalanced tree that MaxDepth/MinLeafDepth alone
	// can hide (e.g. balanced everywhere but one deep branch).
	AverageLeafDepth float64
}

// Statistics computes tree-shape statistics in a single traversal.
func (t *Tree) Statistics() Statistics {
	var stats Statistics
	if t.root == -1 {
		return stats
	}
	stats.MinLeafDepth = -1
	var leafDepthSum int

	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		if idx == -1 {
			return
		}
		n := t.nodes[idx]
		stats.NodeCount++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if tc := len(t.points[n.pointIndex].triangleIndices); tc > stats.MaxTrianglesPerPoint {
			stats.MaxTrianglesPerPoint = tc
		}
		if n.isLeaf() {
			stats.LeafCount++
			leafDepthSum += depth
			if stats.MinLeafDepth == -1 || depth < stats.MinLeafDepth {
				stats.MinLeafDepth = depth
			}
			return
		}
		stats.InteriorCount++
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)

	if stats.LeafCount > 0 {
		stats.AverageLeafDepth = float64(leafDepthSum) / float64(stats.LeafCount)
	}
	return stats
}

// Dump writes a pre-order textual representation of the tree to w:
// one line per node (`{x,y,z} | <axis> | Max: {x,y,z} Min: {x,y,z}`)
// followed by `Left:`/`Right:` sentinels for any children. It does
// not mutate tree state and performs no I/O of its own beyond writing
// to w.
func (t *Tree) Dump(w io.Writer) error {
	if t.root == -1 {
		_, err := fmt.Fprintln(w, "(empty tree)")
		return err
	}
	return t.dumpNode(w, t.root, 0)
}

func vecString(v geometry.Vector3) string {
	return fmt.Sprintf("{%g,%g,%g}", v.X, v.Y, v.Z)
}

func (t *Tree) dumpNode(w io.Writer, idx int, depth int) error {
	indent := strings.Repeat("  ", depth)
	n := t.nodes[idx]
	p := t.points[n.pointIndex]

	if _, err := fmt.Fprintf(w, "%s%s | %d | Max: %s Min: %s\n",
		indent, vecString(p.position), n.axis, vecString(n.max), vecString(n.min)); err != nil {
		return err
	}

	if n.left != -1 {
		if _, err := fmt.Fprintf(w, "%sLeft:\n", indent); err != nil {
			return err
		}
		if err := t.dumpNode(w, n.left, depth+1); err != nil {
			return err
		}
	}
	if n.right != -1 {
		if _, err := fmt.Fprintf(w, "%sRight:\n", indent); err != nil {
			return err
		}
		if err := t.dumpNode(w, n.right, depth+1); err != nil {
			return err
		}
	}
	return nil
}
