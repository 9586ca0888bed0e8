package kdtree

import "github.com/pkg/errors"

// ErrMalformedVertexBuffer is returned when a vertex or index buffer's
// length is not a multiple of the expected stride (3 for a vertex
// buffer / index triple, 9 for a non-indexed triangle-soup buffer).
var ErrMalformedVertexBuffer = errors.New("kdtree: vertex or index buffer length is not a multiple of the expected stride")

// ErrIndexOutOfRange is returned when an index buffer references a
// vertex outside the bounds of the vertex buffer.
var ErrIndexOutOfRange = errors.New("kdtree: index buffer references a vertex index out of range")
