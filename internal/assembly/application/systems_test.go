package application

import (
	"testing"

	assembly "arx-bim/internal/assembly/domain"
)

func classified(elements ...*assembly.Element) []*assembly.Element {
	for _, element := range elements {
		element.Category = assembly.CategoryOf(element.Kind)
	}
	return elements
}

func TestIntegrateSystemsGroupsByDiscipline(t *testing.T) {
	elements := classified(
		pointElement("p1", assembly.KindPanel, 0, 0),
		pointElement("o1", assembly.KindOutlet, 1, 0),
		pointElement("o2", assembly.KindOutlet, 2, 0),
	)
	systems := IntegrateSystems(elements)
	if len(systems) != 1 {
		t.Fatalf("expected one system, got %d", len(systems))
	}
	if systems[0].Type != assembly.SystemElectrical {
		t.Fatalf("expected electrical system, got %s", systems[0].Type)
	}
	if len(systems[0].Elements) != 3 {
		t.Fatalf("expected 3 members, got %d", len(systems[0].Elements))
	}
}

func TestIntegrateSystemsSharesReferences(t *testing.T) {
	elements := classified(pointElement("v1", assembly.KindVAVBox, 0, 0))
	systems := IntegrateSystems(elements)
	if len(systems) != 1 || systems[0].Elements[0] != elements[0] {
		t.Fatal("expected system to hold the element by reference")
	}
}

func TestIntegrateSystemsSkipsEmptyGroups(t *testing.T) {
	elements := classified(
		pointElement("w1", assembly.KindWall, 0, 0),
		pointElement("c1", assembly.KindCamera, 1, 0),
	)
	systems := IntegrateSystems(elements)
	if len(systems) != 2 {
		t.Fatalf("expected two systems, got %d", len(systems))
	}
	// Emission follows the fixed discipline order, not input order.
	if systems[0].Type != assembly.SystemSecurity || systems[1].Type != assembly.SystemStructural {
		t.Fatalf("unexpected system order %s, %s", systems[0].Type, systems[1].Type)
	}
}
