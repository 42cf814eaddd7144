package jsonpointer

// Path is a handle to a chain of segments leading from the document root to
// the current recursion point. It is a small value: copy it freely, but never
// keep it past the validation call that owns its arena.
//
// Push never mutates the receiver, so one parent can be extended many times
// by sibling iterations without any pop bookkeeping.
type Path struct {
	arena *Arena
	id    int32
}

// Push returns a new path extending p with segment. p stays valid.
func (p Path) Push(segment string) Path {
	if p.arena == nil {
		p = Path{arena: &Arena{}, id: rootID}
	}
	return Path{arena: p.arena, id: p.arena.push(p.id, segment)}
}

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool {
	return p.arena == nil || p.id == rootID
}

// Depth returns the number of segments in p.
func (p Path) Depth() int {
	if p.IsRoot() {
		return 0
	}
	return int(p.arena.nodes[p.id].depth)
}

// Exceeds reports whether p is deeper than the arena's MaxDepth.
func (p Path) Exceeds() bool {
	if p.arena == nil || p.arena.MaxDepth <= 0 {
		return false
	}
	return p.Depth() > p.arena.MaxDepth
}

// Last returns the final segment of p, or "" for the root.
func (p Path) Last() string {
	if p.IsRoot() {
		return ""
	}
	return p.arena.nodes[p.id].segment
}

// Segments materializes p into an owned, root-to-leaf slice.
// It returns nil for the root path.
func (p Path) Segments() []string {
	depth := p.Depth()
	if depth == 0 {
		return nil
	}
	out := make([]string, depth)
	for id := p.id; id != rootID; {
		n := &p.arena.nodes[id]
		out[n.depth-1] = n.segment
		id = n.parent
	}
	return out
}

// String renders p as an escaped JSON pointer.
func (p Path) String() string {
	return Format(p.Segments())
}
