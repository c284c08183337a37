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
	"sort"
)

// StagePoint pairs a water-surface elevation with the volume stored below
// it.
type StagePoint struct {
	Stage   float64 `json:"stage"`   // [ft]
	Storage float64 `json:"storage"` // [ft³]
}

// StageStorage is an elevation↔volume curve, strictly increasing in both
// axes. Lookups in either direction are piecewise linear and clamp at the
// endpoints.
type StageStorage []StagePoint

// Validate checks the curve has at least two points and that both axes
// increase strictly.
func (c StageStorage) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("stormlab: stage-storage curve needs at least 2 points, got %d", len(c))
	}
	for i := 1; i < len(c); i++ {
		if c[i].Stage <= c[i-1].Stage {
			return fmt.Errorf("stormlab: stage-storage stages must increase strictly (point %d)", i)
		}
		if c[i].Storage <= c[i-1].Storage {
			return fmt.Errorf("stormlab: stage-storage volumes must increase strictly (point %d)", i)
		}
	}
	return nil
}

// Storage interpolates the stored volume [ft³] at a stage, clamping outside
// the curve.
func (c StageStorage) Storage(stage float64) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	if stage <= c[0].Stage {
		return c[0].Storage
	}
	if stage >= c[n-1].Stage {
		return c[n-1].Storage
	}
	i := sort.Search(n, func(i int) bool { return c[i].Stage > stage }) - 1
	return interpolate(stage, c[i].Stage, c[i+1].Stage, c[i].Storage, c[i+1].Storage)
}

// Stage interpolates the water-surface elevation [ft] holding a volume,
// clamping outside the curve.
func (c StageStorage) Stage(storage float64) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}
	if storage <= c[0].Storage {
		return c[0].Stage
	}
	if storage >= c[n-1].Storage {
		return c[n-1].Stage
	}
	i := sort.Search(n, func(i int) bool { return c[i].Storage > storage }) - 1
	return interpolate(storage, c[i].Storage, c[i+1].Storage, c[i].Stage, c[i+1].Stage)
}

// PrismaticCurve generates the stage-storage curve of a flat-bottomed
// rectangular basin (bottom length×width [ft]) whose sides flare outward
// at sideSlope horizontal per vertical. The cumulative volume at depth d
// is the exact prismoid L·W·d + (L+W)·z·d² + (4/3)·z²·d³. n evenly spaced
// points span [baseElev, baseElev+depth].
func PrismaticCurve(baseElev, depth, length, width, sideSlope float64, n int) StageStorage {
	if n < 2 {
		n = 2
	}
	curve := make(StageStorage, n)
	z := sideSlope
	for i := 0; i < n; i++ {
		d := depth * float64(i) / float64(n-1)
		v := length*width*d + (length+width)*z*d*d + 4./3.*z*z*d*d*d
		curve[i] = StagePoint{Stage: baseElev + d, Storage: v}
	}
	return curve
}

// ConicalCurve generates the curve of an inverted conical frustum with the
// given bottom radius [ft] and side slope (horizontal per vertical).
func ConicalCurve(baseElev, depth, baseRadius, sideSlope float64, n int) StageStorage {
	if n < 2 {
		n = 2
	}
	curve := make(StageStorage, n)
	for i := 0; i < n; i++ {
		d := depth * float64(i) / float64(n-1)
		r := baseRadius + sideSlope*d
		v := math.Pi * d / 3 * (baseRadius*baseRadius + baseRadius*r + r*r)
		curve[i] = StagePoint{Stage: baseElev + d, Storage: v}
	}
	return curve
}

// CylindricalCurve generates the curve of a vertical-walled circular tank.
func CylindricalCurve(baseElev, depth, radius float64, n int) StageStorage {
	if n < 2 {
		n = 2
	}
	curve := make(StageStorage, n)
	for i := 0; i < n; i++ {
		d := depth * float64(i) / float64(n-1)
		curve[i] = StagePoint{Stage: baseElev + d, Storage: math.Pi * radius * radius * d}
	}
	return curve
}
