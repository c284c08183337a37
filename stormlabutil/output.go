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

package stormlabutil

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hydromodel/stormlab"
)

// writeSummary prints one row per node, upstream to downstream.
func writeSummary(w io.Writer, p *stormlab.Project, result *stormlab.SimulationResult) error {
	order, err := stormlab.TopologicalSort(p)
	if err != nil {
		return err
	}
	ev := p.Event(result.EventID)
	if ev != nil {
		fmt.Fprintf(w, "Event %s (Type %s, %.2f in)\n\n", ev.Label, ev.StormType, ev.TotalDepth)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Node\tType\tPeak Qin (cfs)\tPeak Qout (cfs)\tTp (hr)\tVolume (ac-ft)\tPeak Stage (ft)")
	for _, id := range order {
		r, ok := result.Results[id]
		if !ok {
			continue
		}
		qin, stage := "-", "-"
		if r.Kind == stormlab.KindPond {
			qin = fmt.Sprintf("%.2f", r.PeakInflow)
			stage = fmt.Sprintf("%.2f", r.PeakStage)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%.3f\t%s\n",
			r.NodeName, r.Kind, qin, r.PeakOutflow, r.TimeOfPeak, r.Volume, stage)
	}
	return tw.Flush()
}

// writeJSON emits the result as a JSON document. NodeResult serialisation
// omits the full hydrograph arrays.
func writeJSON(w io.Writer, result *stormlab.SimulationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
