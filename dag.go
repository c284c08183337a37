/*
Copyright © 2023 the StormLab authors.
This file is part of StormLab.

StormLab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

StormLab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with StormLab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlab

import (
	"errors"
	"fmt"
)

// ErrCycle reports that the drainage network contains a cycle and cannot
// be ordered upstream-to-downstream.
var ErrCycle = errors.New("stormlab: drainage network contains a cycle")

// TopologicalSort orders the project's node ids so that for every link
// (u → v), u precedes v (Kahn's algorithm over in-degree and adjacency
// tables). Links whose endpoints don't resolve are ignored; validation
// reports those separately. The order is deterministic: nodes without
// upstream links are queued in project node order, and every other node
// is queued when its last incoming link is consumed, in link order.
func TopologicalSort(p *Project) ([]string, error) {
	indegree := make(map[string]int, len(p.Nodes))
	adjacent := make(map[string][]string, len(p.Nodes))
	for _, n := range p.Nodes {
		indegree[n.ID] = 0
	}
	for _, l := range p.Links {
		if _, ok := indegree[l.From]; !ok {
			continue
		}
		if _, ok := indegree[l.To]; !ok {
			continue
		}
		adjacent[l.From] = append(adjacent[l.From], l.To)
		indegree[l.To]++
	}

	var queue []string
	for _, n := range p.Nodes {
		if indegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}
	order := make([]string, 0, len(p.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adjacent[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if len(order) != len(p.Nodes) {
		return nil, fmt.Errorf("%w (%d of %d nodes orderable)", ErrCycle, len(order), len(p.Nodes))
	}
	return order, nil
}
