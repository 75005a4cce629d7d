package application

import (
	"fmt"
	"math"
	"testing"

	assembly "arx-bim/internal/assembly/domain"
)

func TestDetectGeometricOverlap(t *testing.T) {
	elements := classified(
		boxElement("wall-a", assembly.KindWall, 0, 0, 5, 1),
		boxElement("wall-b", assembly.KindWall, 2, 0, 7, 1),
	)
	d := NewConflictDetector(0.1, quietLogger())
	conflicts := d.Detect(elements, nil, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected one conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Type != assembly.ConflictGeometricOverlap {
		t.Fatalf("expected geometric_overlap, got %s", c.Type)
	}
	if c.Severity != 0.8 {
		t.Fatalf("expected severity 0.8, got %f", c.Severity)
	}
	if len(c.ElementIDs) != 2 || c.ElementIDs[0] != "wall-a" || c.ElementIDs[1] != "wall-b" {
		t.Fatalf("unexpected conflict elements %v", c.ElementIDs)
	}
	if c.Resolved {
		t.Fatal("expected conflict unresolved before the resolution pass")
	}
}

func TestDetectSpatialConflict(t *testing.T) {
	spaces := []*assembly.Space{
		{ID: "space_0", ElementIDs: []string{"a"}, Boundaries: assembly.Boundaries{Min: []float64{0, 0}, Max: []float64{5, 5}}},
		{ID: "space_1", ElementIDs: []string{"b"}, Boundaries: assembly.Boundaries{Min: []float64{4, 4}, Max: []float64{9, 9}}},
		{ID: "space_2", ElementIDs: []string{"c"}, Boundaries: assembly.Boundaries{Min: []float64{20, 20}, Max: []float64{21, 21}}},
	}
	d := NewConflictDetector(0.1, quietLogger())
	conflicts := d.Detect(nil, spaces, nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected one conflict, got %d", len(conflicts))
	}
	if conflicts[0].Type != assembly.ConflictSpatial || conflicts[0].Severity != 0.6 {
		t.Fatalf("unexpected conflict %+v", conflicts[0])
	}
}

func TestDetectSystemConflict(t *testing.T) {
	kinds := []assembly.Kind{
		assembly.KindAirHandler, assembly.KindVAVBox, assembly.KindDuct,
		assembly.KindThermostat, assembly.KindPanel, assembly.KindOutlet,
	}
	var members []*assembly.Element
	for i, kind := range kinds {
		members = append(members, pointElement(fmt.Sprintf("m%d", i), kind, float64(i*100), 0))
	}
	overloaded := &assembly.System{ID: "system_0", Name: "Mixed", Elements: members}
	healthy := &assembly.System{ID: "system_1", Name: "HVAC", Elements: members[:3]}

	d := NewConflictDetector(0.1, quietLogger())
	conflicts := d.Detect(nil, nil, []*assembly.System{overloaded, healthy})
	if len(conflicts) != 1 {
		t.Fatalf("expected one conflict, got %d", len(conflicts))
	}
	if conflicts[0].Type != assembly.ConflictSystem || conflicts[0].Severity != 0.4 {
		t.Fatalf("unexpected conflict %+v", conflicts[0])
	}
	if conflicts[0].ID != "system_system_0" {
		t.Fatalf("unexpected conflict id %s", conflicts[0].ID)
	}
}

func TestResolveNudgesSecondElement(t *testing.T) {
	a := boxElement("wall-a", assembly.KindWall, 0, 0, 5, 1)
	b := boxElement("wall-b", assembly.KindWall, 2, 0, 7, 1)
	elements := classified(a, b)
	before := append([]float64(nil), b.Geometry.Centroid...)

	d := NewConflictDetector(0.1, quietLogger())
	conflicts := d.Detect(elements, nil, nil)
	d.Resolve(conflicts, elements)

	if !conflicts[0].Resolved {
		t.Fatal("expected geometric conflict resolved")
	}
	if conflicts[0].Properties["resolution"] != "centroid_offset" {
		t.Fatalf("unexpected resolution %v", conflicts[0].Properties["resolution"])
	}
	if math.Abs(b.Geometry.Centroid[0]-before[0]-0.1) > 1e-9 ||
		math.Abs(b.Geometry.Centroid[1]-before[1]-0.1) > 1e-9 {
		t.Fatalf("expected +0.1 nudge, centroid went %v -> %v", before, b.Geometry.Centroid)
	}
	if a.Geometry.Centroid[0] != 2.5 {
		t.Fatal("expected first element centroid untouched")
	}
}

func TestResolveGatedByThreshold(t *testing.T) {
	elements := classified(
		boxElement("wall-a", assembly.KindWall, 0, 0, 5, 1),
		boxElement("wall-b", assembly.KindWall, 2, 0, 7, 1),
	)
	// Threshold at the geometric severity: 0.8 is not strictly greater.
	d := NewConflictDetector(0.8, quietLogger())
	conflicts := d.Detect(elements, nil, nil)
	d.Resolve(conflicts, elements)

	for _, conflict := range conflicts {
		if conflict.Resolved {
			t.Fatalf("expected conflict %s unresolved at threshold", conflict.ID)
		}
	}
}

func TestResolveNoCorrectiveActionStaysUnresolved(t *testing.T) {
	spaces := []*assembly.Space{
		{ID: "space_0", ElementIDs: []string{"a"}, Boundaries: assembly.Boundaries{Min: []float64{0, 0}, Max: []float64{5, 5}}},
		{ID: "space_1", ElementIDs: []string{"b"}, Boundaries: assembly.Boundaries{Min: []float64{1, 1}, Max: []float64{2, 2}}},
	}
	d := NewConflictDetector(0.1, quietLogger())
	conflicts := d.Detect(nil, spaces, nil)
	d.Resolve(conflicts, nil)

	if len(conflicts) != 1 {
		t.Fatalf("expected one conflict, got %d", len(conflicts))
	}
	if conflicts[0].Resolved {
		t.Fatal("expected spatial conflict to stay unresolved")
	}
	if conflicts[0].Properties["resolution"] != "no_corrective_action" {
		t.Fatalf("unexpected resolution %v", conflicts[0].Properties["resolution"])
	}
}

func TestConflictSeverityBounds(t *testing.T) {
	elements := classified(
		boxElement("a", assembly.KindWall, 0, 0, 5, 5),
		boxElement("b", assembly.KindWall, 1, 1, 6, 6),
	)
	spaces := []*assembly.Space{
		{ID: "s0", ElementIDs: []string{"a"}, Boundaries: assembly.Boundaries{Min: []float64{0, 0}, Max: []float64{5, 5}}},
		{ID: "s1", ElementIDs: []string{"b"}, Boundaries: assembly.Boundaries{Min: []float64{1, 1}, Max: []float64{6, 6}}},
	}
	d := NewConflictDetector(0.1, quietLogger())
	for _, conflict := range d.Detect(elements, spaces, nil) {
		if conflict.Severity < 0 || conflict.Severity > 1 {
			t.Fatalf("severity out of bounds: %f", conflict.Severity)
		}
	}
}
