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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Sample is a single hydrograph ordinate.
type Sample struct {
	Time float64 `json:"time"` // [hours]
	Flow float64 `json:"flow"` // [cfs]
}

// Hydrograph is a time series of flow at a point, with sample times in
// strictly increasing order. Different nodes may emit different time grids;
// SumHydrographs resamples onto the union of sample times before adding.
type Hydrograph []Sample

// TimeStep returns the spacing of the first sample interval [hours], or 0
// for hydrographs with fewer than two samples. Hydrographs produced by the
// engine are uniformly spaced.
func (h Hydrograph) TimeStep() float64 {
	if len(h) < 2 {
		return 0
	}
	return h[1].Time - h[0].Time
}

// Peak returns the maximum flow and the time at which it occurs. The first
// occurrence wins on ties. A hydrograph with no samples peaks at (0, 0).
func (h Hydrograph) Peak() (flow, at float64) {
	if len(h) == 0 {
		return 0, 0
	}
	flows := make([]float64, len(h))
	for i, s := range h {
		flows[i] = s.Flow
	}
	i := floats.MaxIdx(flows)
	return h[i].Flow, h[i].Time
}

// ValueAt linearly interpolates the flow at time t. Before the first sample
// the flow is 0; after the last sample the last value holds.
func (h Hydrograph) ValueAt(t float64) float64 {
	n := len(h)
	if n == 0 || t < h[0].Time {
		return 0
	}
	if t >= h[n-1].Time {
		return h[n-1].Flow
	}
	i := sort.Search(n, func(i int) bool { return h[i].Time > t }) - 1
	return interpolate(t, h[i].Time, h[i+1].Time, h[i].Flow, h[i+1].Flow)
}

// spanValue is the interpolated flow at t, taken as 0 outside the sampled
// span. Used when summing hydrographs so that inputs contribute nothing
// beyond the window they describe.
func (h Hydrograph) spanValue(t float64) float64 {
	n := len(h)
	if n == 0 || t < h[0].Time || t > h[n-1].Time {
		return 0
	}
	if t == h[n-1].Time {
		return h[n-1].Flow
	}
	i := sort.Search(n, func(i int) bool { return h[i].Time > t }) - 1
	return interpolate(t, h[i].Time, h[i+1].Time, h[i].Flow, h[i+1].Flow)
}

// VolumeAcreFeet integrates the hydrograph by the trapezoid rule and
// converts cfs·hours to acre-feet.
func (h Hydrograph) VolumeAcreFeet() float64 {
	if len(h) < 2 {
		return 0
	}
	times := make([]float64, len(h))
	flows := make([]float64, len(h))
	for i, s := range h {
		times[i] = s.Time
		flows[i] = s.Flow
	}
	return integrate.Trapezoidal(times, flows) * 3600 / cubicFeetPerAcreFoot
}

// SumHydrographs adds hydrographs sampled on (possibly) different time
// grids. The result is sampled on the sorted union of all input sample
// times; each input contributes its linear interpolation inside its own
// span and 0 outside it. Empty inputs are ignored; an all-empty list sums
// to a nil hydrograph.
func SumHydrographs(hs []Hydrograph) Hydrograph {
	var times []float64
	for _, h := range hs {
		for _, s := range h {
			times = append(times, s.Time)
		}
	}
	if len(times) == 0 {
		return nil
	}
	sort.Float64s(times)
	out := make(Hydrograph, 0, len(times))
	for i, t := range times {
		if i > 0 && t == times[i-1] {
			continue
		}
		var q float64
		for _, h := range hs {
			q += h.spanValue(t)
		}
		out = append(out, Sample{Time: t, Flow: q})
	}
	return out
}

// interpolate linearly maps x from [x0,x1] onto [y0,y1].
func interpolate(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
