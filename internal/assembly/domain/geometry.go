package assembly

import "math"

// GeometryKind identifies the shape class of a geometry.
type GeometryKind string

const (
	GeometryPoint      GeometryKind = "point"
	GeometryLineString GeometryKind = "linestring"
	GeometryPolygon    GeometryKind = "polygon"
)

// Geometry is the planar geometry attached to an element.
// Point and LineString geometries carry their points in Coordinates;
// Polygon geometries carry one ring per entry in Rings (outer ring first).
// Centroid is optional: elements without one are excluded from every
// distance-based operation.
type Geometry struct {
	Kind        GeometryKind   `json:"kind"`
	Coordinates [][]float64    `json:"coordinates,omitempty"`
	Rings       [][][]float64  `json:"rings,omitempty"`
	BoundingBox *BoundingBox   `json:"bounding_box,omitempty"`
	Centroid    []float64      `json:"centroid,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// BoundingBox is an axis-aligned rectangle.
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Intersects reports axis-aligned overlap. Touching boxes count as
// overlapping: only strict separation on an axis rules it out.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.MaxX < other.MinX || other.MaxX < b.MinX ||
		b.MaxY < other.MinY || other.MaxY < b.MinY)
}

// Union returns the smallest box covering both.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Center returns the box midpoint.
func (b BoundingBox) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// PointCount returns the number of coordinate points across all parts.
func (g *Geometry) PointCount() int {
	if g == nil {
		return 0
	}
	n := len(g.Coordinates)
	for _, ring := range g.Rings {
		n += len(ring)
	}
	return n
}

// EachCoordinate visits every coordinate point, flattening polygon rings.
func (g *Geometry) EachCoordinate(visit func(coord []float64)) {
	if g == nil {
		return
	}
	for _, coord := range g.Coordinates {
		visit(coord)
	}
	for _, ring := range g.Rings {
		for _, coord := range ring {
			visit(coord)
		}
	}
}

// Bounds computes the axis-aligned extent of the geometry's coordinates.
// The second return is false when the geometry holds no 2D points; the
// precomputed BoundingBox field is deliberately ignored so that overlap
// tests always reflect the actual coordinates.
func (g *Geometry) Bounds() (BoundingBox, bool) {
	if g == nil {
		return BoundingBox{}, false
	}
	box := BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	g.EachCoordinate(func(coord []float64) {
		if len(coord) < 2 {
			return
		}
		found = true
		box.MinX = math.Min(box.MinX, coord[0])
		box.MinY = math.Min(box.MinY, coord[1])
		box.MaxX = math.Max(box.MaxX, coord[0])
		box.MaxY = math.Max(box.MaxY, coord[1])
	})
	if !found {
		return BoundingBox{}, false
	}
	return box, true
}

// HasCentroid reports whether the geometry carries a usable 2D centroid.
func (g *Geometry) HasCentroid() bool {
	return g != nil && len(g.Centroid) >= 2
}

// CentroidDistance returns the Euclidean distance between two geometry
// centroids. The second return is false when either side has no centroid;
// such pairs are treated as infinitely far apart by callers.
func CentroidDistance(a, b *Geometry) (float64, bool) {
	if !a.HasCentroid() || !b.HasCentroid() {
		return math.Inf(1), false
	}
	dx := a.Centroid[0] - b.Centroid[0]
	dy := a.Centroid[1] - b.Centroid[1]
	return math.Hypot(dx, dy), true
}

// Clone returns a deep copy.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{Kind: g.Kind}
	if g.Coordinates != nil {
		out.Coordinates = make([][]float64, len(g.Coordinates))
		for i, c := range g.Coordinates {
			out.Coordinates[i] = append([]float64(nil), c...)
		}
	}
	if g.Rings != nil {
		out.Rings = make([][][]float64, len(g.Rings))
		for i, ring := range g.Rings {
			out.Rings[i] = make([][]float64, len(ring))
			for j, c := range ring {
				out.Rings[i][j] = append([]float64(nil), c...)
			}
		}
	}
	if g.BoundingBox != nil {
		box := *g.BoundingBox
		out.BoundingBox = &box
	}
	if g.Centroid != nil {
		out.Centroid = append([]float64(nil), g.Centroid...)
	}
	if g.Properties != nil {
		out.Properties = make(map[string]any, len(g.Properties))
		for k, v := range g.Properties {
			out.Properties[k] = v
		}
	}
	return out
}
