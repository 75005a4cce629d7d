package application

import (
	"strings"
	"testing"

	assembly "arx-bim/internal/assembly/domain"
)

func TestValidateElements(t *testing.T) {
	elements := []*assembly.Element{
		pointElement("good", assembly.KindWall, 0, 0),
		{ID: "", Name: "orphan", Kind: assembly.KindWall},
		{ID: "unnamed", Kind: assembly.KindWall},
	}
	report := Validate(elements, nil, nil, nil)
	if report.Elements.Total != 3 || report.Elements.Valid != 1 || report.Elements.Invalid != 2 {
		t.Fatalf("unexpected element validation %+v", report.Elements)
	}
	if len(report.Elements.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", report.Elements.Errors)
	}
	if !strings.Contains(report.Elements.Errors[1], "unnamed") {
		t.Fatalf("expected error to name the offender, got %q", report.Elements.Errors[1])
	}
}

func TestValidateSystemsAndSpaces(t *testing.T) {
	systems := []*assembly.System{
		{ID: "system_0", Name: "HVAC", Elements: []*assembly.Element{pointElement("a", assembly.KindDuct, 0, 0)}},
		{ID: "system_1", Name: "Empty"},
	}
	spaces := []*assembly.Space{
		{ID: "space_0", ElementIDs: []string{"a"}},
		{ID: "space_1"},
	}
	report := Validate(nil, systems, spaces, nil)
	if report.Systems.Valid != 1 || report.Systems.Invalid != 1 {
		t.Fatalf("unexpected system validation %+v", report.Systems)
	}
	if report.Spaces.Valid != 1 || report.Spaces.Invalid != 1 {
		t.Fatalf("unexpected space validation %+v", report.Spaces)
	}
}

func TestValidateRelationships(t *testing.T) {
	relationships := []*assembly.Relationship{
		{ID: "r1", SourceID: "a", TargetID: "b", Type: assembly.RelationshipSpatial},
		{ID: "r2", SourceID: "a", Type: assembly.RelationshipDependency},
	}
	report := Validate(nil, nil, nil, relationships)
	if report.Relationships.Valid != 1 || report.Relationships.Invalid != 1 {
		t.Fatalf("unexpected relationship validation %+v", report.Relationships)
	}
}

func TestValidateGeometries(t *testing.T) {
	elements := []*assembly.Element{
		pointElement("with-coords", assembly.KindWall, 0, 0),
		{ID: "empty-geom", Name: "g", Kind: assembly.KindWall, Geometry: &assembly.Geometry{Kind: assembly.GeometryPoint}},
		{ID: "no-geom", Name: "n", Kind: assembly.KindWall},
	}
	report := Validate(elements, nil, nil, nil)
	// Only elements carrying a geometry count.
	if report.Geometries.Total != 2 || report.Geometries.Valid != 1 || report.Geometries.Invalid != 1 {
		t.Fatalf("unexpected geometry validation %+v", report.Geometries)
	}
}
