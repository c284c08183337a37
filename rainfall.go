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
	"fmt"
	"sort"
)

// StormType identifies one of the four NRCS synthetic 24-hour rainfall
// distributions.
type StormType string

// The NRCS storm types. Type I and IA apply to Pacific maritime climates,
// Type III to Gulf and Atlantic coastal areas, and Type II everywhere else.
const (
	StormTypeI   StormType = "I"
	StormTypeIA  StormType = "IA"
	StormTypeII  StormType = "II"
	StormTypeIII StormType = "III"
)

const stormDuration = 24. // [hours]

type massCurvePoint struct {
	hour     float64
	fraction float64 // cumulative fraction of 24-hour depth
}

// Cumulative mass curves, NRCS TR-55 Table B-2. Each runs from (0,0) to
// (24,1) and is non-decreasing; intermediate values interpolate linearly.
var massCurves = map[StormType][]massCurvePoint{
	StormTypeI: {
		{0, 0}, {2, 0.035}, {4, 0.076}, {6, 0.125}, {7, 0.156},
		{8, 0.194}, {8.5, 0.219}, {9, 0.254}, {9.5, 0.303}, {9.75, 0.362},
		{10, 0.515}, {10.5, 0.583}, {11, 0.624}, {11.5, 0.654}, {12, 0.682},
		{13, 0.727}, {14, 0.767}, {16, 0.830}, {20, 0.926}, {24, 1},
	},
	StormTypeIA: {
		{0, 0}, {2, 0.050}, {4, 0.116}, {6, 0.206}, {7, 0.268},
		{7.5, 0.310}, {8, 0.425}, {8.5, 0.480}, {9, 0.520}, {9.5, 0.550},
		{10, 0.577}, {10.5, 0.601}, {11, 0.624}, {11.5, 0.645}, {12, 0.664},
		{13, 0.701}, {14, 0.736}, {16, 0.800}, {20, 0.906}, {24, 1},
	},
	StormTypeII: {
		{0, 0}, {1, 0.011}, {2, 0.022}, {3, 0.035}, {4, 0.048},
		{5, 0.063}, {6, 0.080}, {7, 0.098}, {8, 0.120}, {9, 0.147},
		{9.5, 0.163}, {10, 0.181}, {10.5, 0.204}, {11, 0.235}, {11.5, 0.283},
		{11.75, 0.357}, {12, 0.663}, {12.5, 0.735}, {13, 0.772}, {13.5, 0.799},
		{14, 0.820}, {16, 0.880}, {20, 0.952}, {24, 1},
	},
	StormTypeIII: {
		{0, 0}, {2, 0.020}, {4, 0.043}, {6, 0.072}, {8, 0.109},
		{9, 0.131}, {9.5, 0.144}, {10, 0.159}, {10.5, 0.178}, {11, 0.204},
		{11.5, 0.235}, {11.75, 0.283}, {12, 0.500}, {12.5, 0.702}, {13, 0.751},
		{13.5, 0.785}, {14, 0.811}, {15, 0.854}, {16, 0.886}, {18, 0.928},
		{20, 0.957}, {24, 1},
	},
}

// RainfallIncrement is the depth of rain falling in the interval ending at
// Time.
type RainfallIncrement struct {
	Time  float64 // [hours] end of interval
	Depth float64 // [inches]
}

// CumulativeRainfall returns the depth of rain [inches] accumulated by hour
// t of a storm of the given type and total depth, by linear interpolation
// of the type's mass curve. Times outside [0,24] clamp to the curve's
// endpoints.
func CumulativeRainfall(st StormType, totalDepth, t float64) (float64, error) {
	curve, ok := massCurves[st]
	if !ok {
		return 0, fmt.Errorf("stormlab: unknown storm type %q", st)
	}
	if t <= 0 {
		return 0, nil
	}
	if t >= stormDuration {
		return totalDepth, nil
	}
	i := sort.Search(len(curve), func(i int) bool { return curve[i].hour > t }) - 1
	f := interpolate(t, curve[i].hour, curve[i+1].hour, curve[i].fraction, curve[i+1].fraction)
	return totalDepth * f, nil
}

// IncrementalRainfall slices a storm into uniform intervals of dt hours and
// returns the depth falling in each, covering exactly the 24-hour window.
// The final interval is shortened if dt does not divide 24 evenly.
func IncrementalRainfall(st StormType, totalDepth, dt float64) ([]RainfallIncrement, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("stormlab: rainfall timestep must be positive, got %g", dt)
	}
	if _, ok := massCurves[st]; !ok {
		return nil, fmt.Errorf("stormlab: unknown storm type %q", st)
	}
	var incs []RainfallIncrement
	prev := 0.
	for t := dt; ; t += dt {
		if t > stormDuration {
			t = stormDuration
		}
		cum, err := CumulativeRainfall(st, totalDepth, t)
		if err != nil {
			return nil, err
		}
		incs = append(incs, RainfallIncrement{Time: t, Depth: cum - prev})
		prev = cum
		if t >= stormDuration {
			return incs, nil
		}
	}
}
