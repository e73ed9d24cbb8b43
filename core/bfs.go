package core

import (
	"iter"

	"github.com/encodeous/stp/state"
)

// BFS yields the switches reachable from the root in breadth-first order,
// each exactly once. Neighbors are queued in ascending id order, so the visit
// order is deterministic. Switches with no path to the root are never yielded.
func BFS(t *state.Topology) iter.Seq[*state.Switch] {
	return func(yield func(*state.Switch) bool) {
		for sw := range walk(t) {
			if !yield(sw.Switch) {
				return
			}
		}
	}
}

// visit is a switch together with the BFS level it was dequeued at.
type visit struct {
	*state.Switch
	Depth int
}

func walk(t *state.Topology) iter.Seq[visit] {
	return func(yield func(visit) bool) {
		if t.Root == nil {
			return
		}
		visited := make(map[state.SwitchId]struct{}, len(t.Switches))
		queue := []visit{{Switch: t.Root, Depth: 0}}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if _, ok := visited[cur.Id]; ok {
				continue
			}
			visited[cur.Id] = struct{}{}
			if !yield(cur) {
				return
			}

			for _, neighbor := range t.Neighbors(cur.Id) {
				if _, ok := visited[neighbor.Id]; !ok {
					queue = append(queue, visit{Switch: neighbor, Depth: cur.Depth + 1})
				}
			}
		}
	}
}
