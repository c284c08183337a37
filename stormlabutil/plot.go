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
	"fmt"
	"os"
	"path/filepath"

	"github.com/hydromodel/stormlab"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotHydrographs writes a PNG outflow hydrograph for every node that
// produced one.
func plotHydrographs(dir string, result *stormlab.SimulationResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for id, r := range result.Results {
		if len(r.Outflow) == 0 {
			continue
		}
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (%s)", r.NodeName, result.EventID)
		p.X.Label.Text = "time (hr)"
		p.Y.Label.Text = "flow (cfs)"
		p.Add(plotter.NewGrid())

		pts := make(plotter.XYs, len(r.Outflow))
		for i, s := range r.Outflow {
			pts[i].X = s.Time
			pts[i].Y = s.Flow
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)

		name := filepath.Join(dir, fmt.Sprintf("%s_%s.png", result.EventID, id))
		if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
			return err
		}
		log.WithField("file", name).Info("wrote hydrograph plot")
	}
	return nil
}
