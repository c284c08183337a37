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

import "fmt"

// NodeResult is the computed outcome for one node under one rainfall
// event. The pond-only and subcatchment-only fields are zero for other
// node kinds.
type NodeResult struct {
	NodeID   string   `json:"nodeId"`
	NodeName string   `json:"nodeName"`
	Kind     NodeKind `json:"type"`

	Outflow     Hydrograph `json:"-"`
	PeakOutflow float64    `json:"peakOutflow"` // [cfs]
	TimeOfPeak  float64    `json:"timeOfPeak"`  // [hours]
	Volume      float64    `json:"volume"`      // [ac-ft]

	// Pond routing extras.
	PeakInflow  float64 `json:"peakInflow,omitempty"`  // [cfs]
	PeakStage   float64 `json:"peakStage,omitempty"`   // [ft]
	PeakStorage float64 `json:"peakStorage,omitempty"` // [ft³]

	// Subcatchment extras.
	CurveNumber  float64 `json:"curveNumber,omitempty"`
	Area         float64 `json:"area,omitempty"`         // [acres]
	Tc           float64 `json:"tc,omitempty"`           // [hours]
	RunoffVolume float64 `json:"runoffVolume,omitempty"` // [ac-ft] pure runoff, before added inflow

	// Reach extras.
	TravelTime float64 `json:"travelTime,omitempty"` // [hours]
}

// SimulationResult maps node ids to their results for one event.
type SimulationResult struct {
	EventID string                 `json:"eventId"`
	Results map[string]*NodeResult `json:"results"`
}

// RunSimulation runs one rainfall event through the whole drainage
// network. Nodes are visited in topological order; each node's inflow is
// the sum of the outflow hydrographs of its upstream neighbors, so every
// result is final before any downstream node is computed. The project is
// never mutated.
func RunSimulation(p *Project, eventID string) (*SimulationResult, error) {
	ev := p.Event(eventID)
	if ev == nil {
		return nil, fmt.Errorf("stormlab: unknown rainfall event %q", eventID)
	}
	order, err := TopologicalSort(p)
	if err != nil {
		return nil, err
	}
	results := make(map[string]*NodeResult, len(order))

	for _, id := range order {
		node := p.Node(id)
		if node == nil {
			return nil, fmt.Errorf("stormlab: node %q missing from project", id)
		}

		var upstream []Hydrograph
		for _, fromID := range p.upstream(id) {
			if ur, ok := results[fromID]; ok {
				upstream = append(upstream, ur.Outflow)
			}
		}
		inflow := SumHydrographs(upstream)

		res := &NodeResult{NodeID: node.ID, NodeName: node.Name, Kind: node.Kind}
		switch node.Kind {
		case KindSubcatchment:
			if node.Subcatchment == nil {
				return nil, fmt.Errorf("stormlab: subcatchment node %q has no data", id)
			}
			sr, err := SubcatchmentRunoff(node.Subcatchment, ev)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", id, err)
			}
			res.CurveNumber = sr.CurveNumber
			res.Area = sr.Area
			res.Tc = sr.Tc
			res.RunoffVolume = sr.Runoff.Volume
			if len(inflow) > 0 {
				combined := SumHydrographs([]Hydrograph{sr.Runoff.Hydrograph, inflow})
				res.Outflow = combined
				res.PeakOutflow, res.TimeOfPeak = combined.Peak()
				res.Volume = combined.VolumeAcreFeet()
			} else {
				res.Outflow = sr.Runoff.Hydrograph
				res.PeakOutflow = sr.Runoff.Peak
				res.TimeOfPeak = sr.Runoff.TimeOfPeak
				res.Volume = sr.Runoff.Volume
			}
		case KindPond:
			if node.Pond == nil {
				return nil, fmt.Errorf("stormlab: pond node %q has no data", id)
			}
			if len(inflow) < 2 {
				break // no upstream inflow: a valid zero result
			}
			pr, err := RoutePond(inflow, node.Pond.Curve, node.Pond.Outlets, node.Pond.InitialWSE)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", id, err)
			}
			res.Outflow = pr.Outflow
			res.PeakOutflow = pr.PeakOutflow
			res.TimeOfPeak = pr.TimeOfPeakOutflow
			res.Volume = pr.Outflow.VolumeAcreFeet()
			res.PeakInflow = pr.PeakInflow
			res.PeakStage = pr.PeakStage
			res.PeakStorage = pr.PeakStorage
		case KindReach:
			if node.Reach == nil {
				return nil, fmt.Errorf("stormlab: reach node %q has no data", id)
			}
			if len(inflow) < 2 {
				break
			}
			rr, err := RouteReach(inflow, node.Reach)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", id, err)
			}
			res.Outflow = rr.Outflow
			res.PeakOutflow = rr.PeakOutflow
			res.TimeOfPeak = rr.TimeOfPeakOutflow
			res.Volume = rr.Outflow.VolumeAcreFeet()
			res.TravelTime = rr.TravelTime
		case KindJunction:
			res.Outflow = inflow
			res.PeakOutflow, res.TimeOfPeak = inflow.Peak()
			res.Volume = inflow.VolumeAcreFeet()
		default:
			return nil, fmt.Errorf("stormlab: node %q has unknown kind %q", id, node.Kind)
		}
		results[id] = res
	}
	return &SimulationResult{EventID: eventID, Results: results}, nil
}
