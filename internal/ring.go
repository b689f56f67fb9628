package internal

// A vertexRing tracks which vertices of a polygon have not been clipped yet,
// along with whether each one is currently convex. It is a doubly linked list
// over fixed arrays of indices, so walking to a neighbor and removing a vertex
// are both O(1), and the remaining vertices always stay in their original
// circular order.
type vertexRing struct {
	next, prev []int
	convex     []bool
	// The smallest index still in the ring. Because the ring never reorders,
	// walking from here visits the remaining vertices in ascending order.
	head int
	size int
}

func newVertexRing(convex []bool) *vertexRing {
	n := len(convex)
	ring := &vertexRing{
		next:   make([]int, n),
		prev:   make([]int, n),
		convex: append([]bool(nil), convex...),
		size:   n,
	}
	for i := range convex {
		ring.next[i] = CircularIndex(i+1, n)
		ring.prev[i] = CircularIndex(i-1, n)
	}
	return ring
}

func (r *vertexRing) Len() int {
	return r.size
}

// The four consecutive vertices starting at i.
func (r *vertexRing) window(i int) (a, b, c, d int) {
	a = i
	b = r.next[a]
	c = r.next[b]
	d = r.next[c]
	return
}

// Unlink vertex i. Its neighbors become adjacent.
func (r *vertexRing) remove(i int) {
	r.next[r.prev[i]] = r.next[i]
	r.prev[r.next[i]] = r.prev[i]
	if i == r.head {
		r.head = r.next[i]
	}
	r.size--
}

// The remaining vertices, in ascending order.
func (r *vertexRing) keys() []int {
	if r.size == 0 {
		return nil
	}
	keys := make([]int, 0, r.size)
	i := r.head
	for len(keys) < r.size {
		keys = append(keys, i)
		i = r.next[i]
	}
	return keys
}
