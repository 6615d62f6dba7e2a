package domain

// A worker located at a graph node who must be reachable from the route
// within Radius (graph distance).
type Worker struct {
	Location int
	Radius   float64
}

// Ordered node ids of a candidate solution. Repeats are allowed and the
// route does not have to be a simple path.
type Route []int

// UniqueNodes returns the route's nodes with duplicates removed, keeping
// first-occurrence order.
func (r Route) UniqueNodes() []int {
	seen := make(map[int]struct{}, len(r))
	out := make([]int, 0, len(r))
	for _, n := range r {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ClosedAtDepot reports whether the route starts and ends at node 0.
func (r Route) ClosedAtDepot() bool {
	return len(r) > 0 && r[0] == 0 && r[len(r)-1] == 0
}
