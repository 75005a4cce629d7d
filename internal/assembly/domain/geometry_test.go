package assembly

import (
	"math"
	"testing"
)

func TestBoundingBoxIntersects(t *testing.T) {
	a := BoundingBox{MinX: 0, MinY: 0, MaxX: 5, MaxY: 1}
	b := BoundingBox{MinX: 2, MinY: 0, MaxX: 7, MaxY: 1}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Fatal("expected overlapping boxes to intersect both ways")
	}

	c := BoundingBox{MinX: 6, MinY: 2, MaxX: 8, MaxY: 3}
	if a.Intersects(c) {
		t.Fatal("expected separated boxes not to intersect")
	}

	// Touching edges still count as intersecting.
	d := BoundingBox{MinX: 5, MinY: 0, MaxX: 9, MaxY: 1}
	if !a.Intersects(d) {
		t.Fatal("expected touching boxes to intersect")
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := BoundingBox{MinX: -1, MinY: 1, MaxX: 1, MaxY: 5}
	u := a.Union(b)
	if u.MinX != -1 || u.MinY != 0 || u.MaxX != 2 || u.MaxY != 5 {
		t.Fatalf("unexpected union %+v", u)
	}
}

func TestGeometryBoundsFlattensRings(t *testing.T) {
	g := &Geometry{
		Kind: GeometryPolygon,
		Rings: [][][]float64{
			{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
			{{1, 1}, {2, 1}, {2, 2}},
		},
	}
	box, ok := g.Bounds()
	if !ok {
		t.Fatal("expected bounds for polygon")
	}
	if box.MinX != 0 || box.MinY != 0 || box.MaxX != 4 || box.MaxY != 3 {
		t.Fatalf("unexpected bounds %+v", box)
	}
}

func TestGeometryBoundsEmpty(t *testing.T) {
	if _, ok := (&Geometry{Kind: GeometryPoint}).Bounds(); ok {
		t.Fatal("expected no bounds for empty geometry")
	}
	var nilGeom *Geometry
	if _, ok := nilGeom.Bounds(); ok {
		t.Fatal("expected no bounds for nil geometry")
	}
}

func TestCentroidDistance(t *testing.T) {
	a := &Geometry{Centroid: []float64{0, 0}}
	b := &Geometry{Centroid: []float64{3, 4}}
	dist, ok := CentroidDistance(a, b)
	if !ok {
		t.Fatal("expected distance for two centroids")
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %f", dist)
	}

	dist, ok = CentroidDistance(a, &Geometry{})
	if ok {
		t.Fatal("expected no distance when a centroid is missing")
	}
	if !math.IsInf(dist, 1) {
		t.Fatalf("expected +Inf distance, got %f", dist)
	}
}

func TestGeometryClone(t *testing.T) {
	g := &Geometry{
		Kind:        GeometryLineString,
		Coordinates: [][]float64{{0, 0}, {1, 1}},
		Centroid:    []float64{0.5, 0.5},
	}
	clone := g.Clone()
	clone.Coordinates[0][0] = 9
	clone.Centroid[0] = 9
	if g.Coordinates[0][0] != 0 || g.Centroid[0] != 0.5 {
		t.Fatal("expected clone mutation not to touch the original")
	}
}
