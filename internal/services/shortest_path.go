package services

import (
	"container/heap"
	"route-verifier-service/internal/domain"
)

// ShortestDistances computes, for every node in g, the distance from the
// nearest node in sources (multi-source Dijkstra).
//
// All valid seeds start at distance 0 simultaneously. Duplicate seeds are
// collapsed and out-of-range seeds are ignored. Nodes that no seed reaches
// keep params.Infinity. Weights are assumed non-negative.
//
// The frontier uses lazy deletion: a node may be pushed several times and
// entries whose distance no longer matches the recorded best are skipped
// when popped. Each call allocates a fresh table; nothing is reused.
func ShortestDistances(g *domain.Graph, sources []int, params Params) []float64 {
	n := g.NodeCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = params.Infinity
	}

	pq := make(frontier, 0, len(sources))
	for _, s := range sources {
		if !g.InRange(s) || dist[s] == 0 {
			continue
		}
		dist[s] = 0
		pq = append(pq, frontierItem{node: s, dist: 0})
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		u, d := item.node, item.dist

		// Stale entry: a shorter path to u was recorded after this push.
		if d != dist[u] {
			continue
		}

		for _, arc := range g.Neighbors(u) {
			nd := d + arc.Weight
			if nd < dist[arc.Target] {
				dist[arc.Target] = nd
				heap.Push(&pq, frontierItem{node: arc.Target, dist: nd})
			}
		}
	}

	return dist
}

type frontierItem struct {
	node int
	dist float64
}

// frontier is a min-heap of tentative distances.
type frontier []frontierItem

func (pq frontier) Len() int           { return len(pq) }
func (pq frontier) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq frontier) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
