package jsonpointer

import "math"

const (
	rootID = int32(-1)

	// maxArenaNodes bounds the arena capacity kept across pooled reuse.
	maxArenaNodes = 1 << 14
)

type node struct {
	segment string
	parent  int32
	depth   int32
}

// Arena provides path-node storage for a single validation call.
// Paths created from an arena are valid until Reset is called.
type Arena struct {
	nodes []node

	// MaxDepth is the deepest path Exceeds accepts; 0 disables the check.
	MaxDepth int
}

// NewArena returns an arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]node, 0, capacity)}
}

// Root returns the empty path.
func (a *Arena) Root() Path {
	return Path{arena: a, id: rootID}
}

// Reset clears the arena for reuse. Paths handed out earlier become invalid.
// Segments are zeroed so a pooled arena does not pin keys of past instances.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	clear(a.nodes)
	a.nodes = a.nodes[:0]
}

// Len reports the number of nodes currently allocated.
func (a *Arena) Len() int {
	if a == nil {
		return 0
	}
	return len(a.nodes)
}

// Oversized reports whether the arena grew past the size worth keeping in a pool.
func (a *Arena) Oversized() bool {
	return a != nil && cap(a.nodes) > maxArenaNodes
}

func (a *Arena) push(parent int32, segment string) int32 {
	depth := int32(1)
	if parent != rootID {
		depth = a.nodes[parent].depth + 1
	}
	if len(a.nodes) >= math.MaxInt32 {
		panic("jsonpointer: arena exhausted")
	}
	a.nodes = append(a.nodes, node{segment: segment, parent: parent, depth: depth})
	return int32(len(a.nodes) - 1)
}
