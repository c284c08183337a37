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

// SegmentKind identifies the TR-55 flow regime of a travel-time segment.
type SegmentKind string

const (
	SegmentSheet   SegmentKind = "sheet"
	SegmentShallow SegmentKind = "shallow"
	SegmentChannel SegmentKind = "channel"
)

// Shallow-concentrated velocity coefficients in V = k·s^0.5 [ft/s],
// TR-55 figure 3-1.
const (
	shallowPavedK   = 20.3282
	shallowUnpavedK = 16.1345
)

// Sheet flow is only defined for the first 300 ft of the flow path.
const maxSheetLength = 300. // [ft]

// FlowSegment is one leg of the flow path from the hydraulically most
// distant point of a subcatchment to its outlet. Which fields apply
// depends on Kind: sheet uses RoughnessN, TwoYearDepth, Length and Slope;
// shallow uses Paved, Length and Slope; channel uses RoughnessN, FlowArea,
// WettedPerimeter, Length and Slope.
type FlowSegment struct {
	Kind            SegmentKind `json:"kind"`
	Description     string      `json:"description,omitempty"`
	Length          float64     `json:"length"`                    // [ft]
	Slope           float64     `json:"slope"`                     // [ft/ft]
	RoughnessN      float64     `json:"n,omitempty"`               // Manning n
	TwoYearDepth    float64     `json:"p2,omitempty"`              // [inches] 2-yr 24-hr rainfall
	Paved           bool        `json:"paved,omitempty"`           // shallow concentrated surface
	FlowArea        float64     `json:"area,omitempty"`            // [ft²]
	WettedPerimeter float64     `json:"wettedPerimeter,omitempty"` // [ft]
}

// SegmentTravelTime computes the travel time [hours] through one segment.
func SegmentTravelTime(seg FlowSegment) (float64, error) {
	if seg.Length <= 0 {
		return 0, fmt.Errorf("stormlab: segment length must be positive, got %g", seg.Length)
	}
	if seg.Slope <= 0 {
		return 0, fmt.Errorf("stormlab: segment slope must be positive, got %g", seg.Slope)
	}
	switch seg.Kind {
	case SegmentSheet:
		if seg.Length > maxSheetLength {
			return 0, fmt.Errorf("stormlab: sheet flow length is limited to %g ft, got %g", maxSheetLength, seg.Length)
		}
		if seg.TwoYearDepth <= 0 {
			return 0, fmt.Errorf("stormlab: sheet flow needs a positive 2-year rainfall depth, got %g", seg.TwoYearDepth)
		}
		if seg.RoughnessN <= 0 {
			return 0, fmt.Errorf("stormlab: sheet flow needs a positive Manning roughness, got %g", seg.RoughnessN)
		}
		return 0.007 * math.Pow(seg.RoughnessN*seg.Length, 0.8) /
			(math.Sqrt(seg.TwoYearDepth) * math.Pow(seg.Slope, 0.4)), nil
	case SegmentShallow:
		k := shallowUnpavedK
		if seg.Paved {
			k = shallowPavedK
		}
		v := k * math.Sqrt(seg.Slope)
		return seg.Length / v / 3600, nil
	case SegmentChannel:
		if seg.FlowArea <= 0 {
			return 0, fmt.Errorf("stormlab: channel segment needs a positive flow area, got %g", seg.FlowArea)
		}
		if seg.WettedPerimeter <= 0 {
			return 0, fmt.Errorf("stormlab: channel segment needs a positive wetted perimeter, got %g", seg.WettedPerimeter)
		}
		if seg.RoughnessN <= 0 {
			return 0, fmt.Errorf("stormlab: channel segment needs a positive Manning roughness, got %g", seg.RoughnessN)
		}
		r := seg.FlowArea / seg.WettedPerimeter
		v := 1.49 / seg.RoughnessN * math.Pow(r, 2./3.) * math.Sqrt(seg.Slope)
		return seg.Length / v / 3600, nil
	default:
		return 0, fmt.Errorf("stormlab: unknown flow segment kind %q", seg.Kind)
	}
}

// CalculateTc sums the travel times of the ordered flow path segments,
// returning the time of concentration [hours].
func CalculateTc(segments []FlowSegment) (float64, error) {
	if len(segments) == 0 {
		return 0, fmt.Errorf("stormlab: time of concentration needs at least one flow segment")
	}
	var tc float64
	for i, seg := range segments {
		tt, err := SegmentTravelTime(seg)
		if err != nil {
			return 0, fmt.Errorf("segment %d: %w", i, err)
		}
		tc += tt
	}
	return tc, nil
}
