package application

import (
	"errors"
	"testing"

	assembly "arx-bim/internal/assembly/domain"
)

type doublingOptimizer struct{}

func (doublingOptimizer) OptimizeGeometry(g *assembly.Geometry) (*assembly.Geometry, error) {
	out := g.Clone()
	out.EachCoordinate(func(coord []float64) {
		for i := range coord {
			coord[i] *= 2
		}
	})
	return out, nil
}

type failingOptimizer struct{}

func (failingOptimizer) OptimizeGeometry(*assembly.Geometry) (*assembly.Geometry, error) {
	return nil, errors.New("boom")
}

func TestOptimizePrunesEmptyProperties(t *testing.T) {
	element := pointElement("a", assembly.KindWall, 1, 1)
	element.Properties = map[string]any{
		"width":  1.0,
		"empty":  "",
		"nil":    nil,
		"list":   []any{},
		"nested": map[string]any{},
	}
	o := NewOptimizer(10, nil, quietLogger())
	o.Optimize([]*assembly.Element{element}, nil, nil, nil, nil)

	if len(element.Properties) != 1 {
		t.Fatalf("expected only width to survive, got %v", element.Properties)
	}
}

func TestOptimizeInvokesGeometryHook(t *testing.T) {
	element := pointElement("a", assembly.KindWall, 3, 4)
	o := NewOptimizer(10, doublingOptimizer{}, quietLogger())
	o.Optimize([]*assembly.Element{element}, nil, nil, nil, nil)

	if element.Geometry.Coordinates[0][0] != 6 || element.Geometry.Coordinates[0][1] != 8 {
		t.Fatalf("expected doubled coordinates, got %v", element.Geometry.Coordinates[0])
	}
}

func TestOptimizeHookFailureKeepsGeometry(t *testing.T) {
	element := pointElement("a", assembly.KindWall, 3, 4)
	o := NewOptimizer(10, failingOptimizer{}, quietLogger())
	o.Optimize([]*assembly.Element{element}, nil, nil, nil, nil)

	if element.Geometry == nil || element.Geometry.Coordinates[0][0] != 3 {
		t.Fatal("expected original geometry kept on hook failure")
	}
}

func TestOptimizeRecordsCounters(t *testing.T) {
	elements := []*assembly.Element{
		pointElement("a", assembly.KindWall, 0, 0),
		pointElement("b", assembly.KindWall, 1, 1),
	}
	systems := []*assembly.System{{ID: "s0"}}
	spaces := []*assembly.Space{{ID: "sp0"}, {ID: "sp1"}, {ID: "sp2"}}
	metrics := map[string]float64{}

	// Batch size below the element count exercises the chunked path.
	o := NewOptimizer(1, nil, quietLogger())
	o.Optimize(elements, systems, spaces, nil, metrics)

	if metrics["total_elements"] != 2 || metrics["total_systems"] != 1 ||
		metrics["total_spaces"] != 3 || metrics["total_relationships"] != 0 {
		t.Fatalf("unexpected counters %v", metrics)
	}
}
