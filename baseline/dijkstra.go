package baseline

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/swarmroute/citymap"
)

// Dijkstra is the traffic-aware cheapest route.
type Dijkstra struct {
	opts Options
}

// NewDijkstra returns a Dijkstra router starting from DefaultOptions with opts applied.
func NewDijkstra(opts ...Option) *Dijkstra {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dijkstra{opts: o}
}

// Cost returns the price of entering c.
func (d *Dijkstra) Cost(g *citymap.Grid, c citymap.Cell) float64 {
	return d.opts.StepCost + d.opts.TrafficWeight*g.Traffic(c)
}

// Solve returns the cheapest route from start to goal. Among equal-cost
// routes the one reached first in citymap neighbor order wins.
func (d *Dijkstra) Solve(g *citymap.Grid) (citymap.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if d.opts.StepCost < 0 || d.opts.TrafficWeight < 0 {
		return nil, ErrNegativeCost
	}
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return citymap.Path{start}, nil
	}

	n := g.Width * g.Height
	r := &runner{
		dist:    make([]float64, n),
		parent:  make([]int, n),
		settled: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.parent[i] = -1
	}
	s := g.Index(start)
	r.dist[s], r.parent[s] = 0, s
	heap.Push(&r.pq, &cellItem{idx: s})

	target := g.Index(goal)
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*cellItem)
		if r.settled[it.idx] {
			continue
		}
		r.settled[it.idx] = true
		if it.idx == target {
			return unwind(g, r.parent, target), nil
		}

		u := g.Coordinate(it.idx)
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			nd := r.dist[it.idx] + d.Cost(g, v)
			if r.settled[vi] || nd >= r.dist[vi] {
				continue
			}
			r.dist[vi], r.parent[vi] = nd, it.idx
			heap.Push(&r.pq, &cellItem{idx: vi, dist: nd})
		}
	}
	return nil, citymap.ErrNoPath
}

// runner holds the mutable state of one Dijkstra run.
type runner struct {
	dist    []float64
	parent  []int
	settled []bool
	pq      cellPQ
}

type cellItem struct {
	idx  int
	dist float64
}

// cellPQ is a lazy decrease-key min-heap ordered by distance, then index.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
