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
	"math"
)

// SoilGroup is the NRCS hydrologic soil group, A (sandy, low runoff)
// through D (clay, high runoff).
type SoilGroup string

const (
	SoilGroupA SoilGroup = "A"
	SoilGroupB SoilGroup = "B"
	SoilGroupC SoilGroup = "C"
	SoilGroupD SoilGroup = "D"
)

// SubArea is a land-cover fraction of a subcatchment with a uniform curve
// number.
type SubArea struct {
	Description string    `json:"description"`
	SoilGroup   SoilGroup `json:"soilGroup"`
	CurveNumber float64   `json:"curveNumber"`
	Area        float64   `json:"area"` // [acres]
}

// Subcatchment is a runoff-producing land parcel. Either Segments or
// TcOverride must describe the flow path; CNOverride, when positive,
// replaces the area-weighted composite curve number.
type Subcatchment struct {
	SubAreas   []SubArea     `json:"subAreas"`
	Segments   []FlowSegment `json:"flowSegments,omitempty"`
	TcOverride float64       `json:"tcOverride,omitempty"` // [hours]; 0 = unset
	CNOverride float64       `json:"cnOverride,omitempty"` // 0 = unset
}

// SubcatchmentResult bundles the derived hydrologic parameters with the
// runoff hydrograph.
type SubcatchmentResult struct {
	CurveNumber float64 // composite (or overridden) curve number
	Area        float64 // [acres]
	Tc          float64 // [hours]
	Runoff      *RunoffHydrograph
}

// CompositeCN computes the area-weighted curve number of the sub-areas,
// rounded to the nearest integer.
func CompositeCN(areas []SubArea) (float64, error) {
	if len(areas) == 0 {
		return 0, fmt.Errorf("stormlab: subcatchment has no sub-areas")
	}
	var sum, total float64
	for i, a := range areas {
		if a.Area <= 0 {
			return 0, fmt.Errorf("stormlab: sub-area %d must have a positive area, got %g", i, a.Area)
		}
		if a.CurveNumber <= 0 || a.CurveNumber > 100 {
			return 0, fmt.Errorf("stormlab: sub-area %d curve number must be in (0, 100], got %g", i, a.CurveNumber)
		}
		sum += a.CurveNumber * a.Area
		total += a.Area
	}
	return math.Round(sum / total), nil
}

// TotalArea is the summed sub-area acreage.
func (sc *Subcatchment) TotalArea() float64 {
	var total float64
	for _, a := range sc.SubAreas {
		total += a.Area
	}
	return total
}

// Tc resolves the subcatchment's time of concentration: the override when
// set, otherwise the sum of flow-segment travel times.
func (sc *Subcatchment) Tc() (float64, error) {
	if sc.TcOverride > 0 {
		return sc.TcOverride, nil
	}
	return CalculateTc(sc.Segments)
}

// SubcatchmentRunoff computes the subcatchment's runoff hydrograph for one
// rainfall event.
func SubcatchmentRunoff(sc *Subcatchment, ev *RainfallEvent) (*SubcatchmentResult, error) {
	cn := sc.CNOverride
	if cn <= 0 {
		var err error
		cn, err = CompositeCN(sc.SubAreas)
		if err != nil {
			return nil, err
		}
	}
	tc, err := sc.Tc()
	if err != nil {
		return nil, err
	}
	runoff, err := GenerateHydrograph(UHConfig{
		Area:        sc.TotalArea(),
		CurveNumber: cn,
		Tc:          tc,
		StormType:   ev.StormType,
		TotalDepth:  ev.TotalDepth,
	})
	if err != nil {
		return nil, err
	}
	return &SubcatchmentResult{
		CurveNumber: cn,
		Area:        sc.TotalArea(),
		Tc:          tc,
		Runoff:      runoff,
	}, nil
}
