// Package navigation answers movement queries over a generated world map.
package navigation

import (
	"container/heap"

	"worldforge/internal/domain/world"
)

var neighborOffsets = [...]world.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

type pathNode struct {
	point  world.Point
	g      float64
	f      float64
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// heuristic is the Manhattan distance. It assumes a minimum step cost of 1,
// which road tiles (0.75) undercut, so paths along roads are not guaranteed
// to be optimal.
func heuristic(a, b world.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

func walkable(m *world.WorldMap, x, y int) bool {
	t, ok := m.TileAt(x, y)
	return ok && t.Walkable()
}

// FindPath runs A* between two tiles using 4-directional movement and the
// movement cost of each entered tile. The path excludes the start and ends on
// the destination. ok is false when an endpoint is out of bounds or not
// walkable, or when no route exists. Equal endpoints give an empty path.
func FindPath(m *world.WorldMap, startX, startY, endX, endY int) ([]world.Point, bool) {
	if m == nil || !walkable(m, startX, startY) || !walkable(m, endX, endY) {
		return nil, false
	}
	start := world.Point{X: startX, Y: startY}
	goal := world.Point{X: endX, Y: endY}
	if start == goal {
		return []world.Point{}, true
	}

	open := &pathQueue{}
	heap.Init(open)
	startNode := &pathNode{point: start, g: 0, f: heuristic(start, goal)}
	heap.Push(open, startNode)
	inOpen := map[world.Point]*pathNode{start: startNode}
	closed := make(map[world.Point]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		delete(inOpen, current.point)
		closed[current.point] = struct{}{}
		if current.point == goal {
			return reconstructPath(current), true
		}

		for _, delta := range neighborOffsets {
			next := world.Point{X: current.point.X + delta.X, Y: current.point.Y + delta.Y}
			if _, seen := closed[next]; seen {
				continue
			}
			t, ok := m.TileAt(next.X, next.Y)
			if !ok {
				continue
			}
			cost, ok := t.Terrain.MovementCost()
			if !ok {
				continue
			}
			tentativeG := current.g + cost
			if node, queued := inOpen[next]; queued {
				if tentativeG >= node.g {
					continue
				}
				node.g = tentativeG
				node.f = tentativeG + heuristic(next, goal)
				node.parent = current
				heap.Fix(open, node.index)
				continue
			}
			node := &pathNode{
				point:  next,
				g:      tentativeG,
				f:      tentativeG + heuristic(next, goal),
				parent: current,
			}
			heap.Push(open, node)
			inOpen[next] = node
		}
	}
	return nil, false
}

// reconstructPath walks parents back to the start, dropping the start itself.
func reconstructPath(end *pathNode) []world.Point {
	path := make([]world.Point, 0)
	for node := end; node != nil && node.parent != nil; node = node.parent {
		path = append(path, node.point)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost sums the movement cost of every tile entered along path.
// ok is false if any waypoint is off the map or impassable.
func PathCost(m *world.WorldMap, path []world.Point) (float64, bool) {
	total := 0.0
	for _, p := range path {
		t, ok := m.TileAt(p.X, p.Y)
		if !ok {
			return 0, false
		}
		c, ok := t.Terrain.MovementCost()
		if !ok {
			return 0, false
		}
		total += c
	}
	return total, true
}
