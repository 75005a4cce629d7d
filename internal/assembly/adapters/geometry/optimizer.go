// Package geometry adapts the orb geometry toolkit as the assembly
// pipeline's geometry refinement hook.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	assembly "arx-bim/internal/assembly/domain"
)

// Optimizer simplifies line and polygon geometries with Douglas-Peucker
// and snaps coordinates to a regular grid to shed floating-point noise.
type Optimizer struct {
	tolerance float64
	gridSize  float64
}

// NewOptimizer constructs an optimizer. Tolerance controls simplification
// aggressiveness; a non-positive grid size disables snapping.
func NewOptimizer(tolerance, gridSize float64) *Optimizer {
	if tolerance < 0 {
		tolerance = 0
	}
	return &Optimizer{tolerance: tolerance, gridSize: gridSize}
}

// OptimizeGeometry reworks one geometry. Point geometries and geometries
// the simplifier would degenerate are returned with snapping only.
func (o *Optimizer) OptimizeGeometry(geometry *assembly.Geometry) (*assembly.Geometry, error) {
	if geometry == nil {
		return nil, nil
	}
	out := geometry.Clone()

	switch out.Kind {
	case assembly.GeometryLineString:
		if o.tolerance > 0 && len(out.Coordinates) > 2 {
			out.Coordinates = o.simplifyLine(out.Coordinates)
		}
	case assembly.GeometryPolygon:
		if o.tolerance > 0 {
			for i, ring := range out.Rings {
				if len(ring) > 3 {
					out.Rings[i] = o.simplifyRing(ring)
				}
			}
		}
	}

	if o.gridSize > 0 {
		out.EachCoordinate(func(coord []float64) {
			for i := range coord {
				coord[i] = math.Round(coord[i]/o.gridSize) * o.gridSize
			}
		})
		if len(out.Centroid) >= 2 {
			for i := range out.Centroid {
				out.Centroid[i] = math.Round(out.Centroid[i]/o.gridSize) * o.gridSize
			}
		}
	}
	return out, nil
}

func (o *Optimizer) simplifyLine(coords [][]float64) [][]float64 {
	ls := toLineString(coords)
	s := simplify.DouglasPeucker(o.tolerance).Simplify(ls.Clone())
	result, ok := s.(orb.LineString)
	if !ok || len(result) < 2 {
		return coords
	}
	return fromLineString(result, coords)
}

func (o *Optimizer) simplifyRing(ring [][]float64) [][]float64 {
	ls := toLineString(ring)
	s := simplify.DouglasPeucker(o.tolerance).Simplify(ls.Clone())
	result, ok := s.(orb.LineString)
	if !ok || len(result) < 3 {
		return ring
	}
	return fromLineString(result, ring)
}

func toLineString(coords [][]float64) orb.LineString {
	ls := make(orb.LineString, 0, len(coords))
	for _, coord := range coords {
		if len(coord) < 2 {
			continue
		}
		ls = append(ls, orb.Point{coord[0], coord[1]})
	}
	return ls
}

// fromLineString converts simplified points back, keeping any z value of
// the original first coordinate's dimensionality at zero.
func fromLineString(ls orb.LineString, original [][]float64) [][]float64 {
	dims := 2
	if len(original) > 0 && len(original[0]) > 2 {
		dims = len(original[0])
	}
	out := make([][]float64, 0, len(ls))
	for _, pt := range ls {
		coord := make([]float64, dims)
		coord[0], coord[1] = pt[0], pt[1]
		out = append(out, coord)
	}
	return out
}
