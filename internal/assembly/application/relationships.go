package application

import (
	"fmt"

	assembly "arx-bim/internal/assembly/domain"
)

// dependencyRules maps a dependent element kind to the kinds it requires.
// Edges run from the dependent element to every matching requirement in
// the model, regardless of distance.
var dependencyRules = map[assembly.Kind][]assembly.Kind{
	assembly.KindOutlet:     {assembly.KindPanel},
	assembly.KindSwitch:     {assembly.KindPanel},
	assembly.KindVAVBox:     {assembly.KindAirHandler},
	assembly.KindThermostat: {assembly.KindAirHandler, assembly.KindVAVBox},
	assembly.KindSprinkler:  {assembly.KindPipe},
	assembly.KindCamera:     {assembly.KindPanel},
}

// BuildRelationships derives all element relationships in three additive
// passes: geometric overlap, system co-membership, and kind-based
// dependency rules. A pair may accumulate one relationship per pass.
func BuildRelationships(elements []*assembly.Element, systems []*assembly.System) []*assembly.Relationship {
	var relationships []*assembly.Relationship
	relationships = append(relationships, spatialRelationships(elements)...)
	relationships = append(relationships, systemRelationships(systems)...)
	relationships = append(relationships, dependencyRelationships(elements)...)
	return relationships
}

func spatialRelationships(elements []*assembly.Element) []*assembly.Relationship {
	grid := newBoundsGrid(elements, overlapCellSize(elements))
	var out []*assembly.Relationship
	for _, pair := range grid.OverlapPairs() {
		a, b := elements[pair[0]], elements[pair[1]]
		out = append(out, &assembly.Relationship{
			ID:       fmt.Sprintf("spatial_%s_%s", a.ID, b.ID),
			SourceID: a.ID,
			TargetID: b.ID,
			Type:     assembly.RelationshipSpatial,
			Properties: map[string]any{
				"intersection_type": "bounding_box",
			},
		})
	}
	return out
}

func systemRelationships(systems []*assembly.System) []*assembly.Relationship {
	var out []*assembly.Relationship
	for _, system := range systems {
		for i := 0; i < len(system.Elements); i++ {
			for j := i + 1; j < len(system.Elements); j++ {
				a, b := system.Elements[i], system.Elements[j]
				out = append(out, &assembly.Relationship{
					ID:       fmt.Sprintf("system_%s_%s", a.ID, b.ID),
					SourceID: a.ID,
					TargetID: b.ID,
					Type:     assembly.RelationshipSystem,
					Properties: map[string]any{
						"system_id":   system.ID,
						"system_type": string(system.Type),
					},
				})
			}
		}
	}
	return out
}

func dependencyRelationships(elements []*assembly.Element) []*assembly.Relationship {
	byKind := make(map[assembly.Kind][]*assembly.Element)
	for _, element := range elements {
		byKind[element.Kind] = append(byKind[element.Kind], element)
	}

	var out []*assembly.Relationship
	for _, element := range elements {
		required, ok := dependencyRules[element.Kind]
		if !ok {
			continue
		}
		for _, kind := range required {
			for _, target := range byKind[kind] {
				if target.ID == element.ID {
					continue
				}
				out = append(out, &assembly.Relationship{
					ID:       fmt.Sprintf("dependency_%s_%s", element.ID, target.ID),
					SourceID: element.ID,
					TargetID: target.ID,
					Type:     assembly.RelationshipDependency,
					Properties: map[string]any{
						"dependency_kind": string(kind),
					},
				})
			}
		}
	}
	return out
}

// overlapCellSize picks a grid cell size near the mean extent of the
// indexed geometries, so typical boxes span only a few cells.
func overlapCellSize(elements []*assembly.Element) float64 {
	var total float64
	var count int
	for _, element := range elements {
		box, ok := element.Geometry.Bounds()
		if !ok {
			continue
		}
		width := box.MaxX - box.MinX
		height := box.MaxY - box.MinY
		if extent := (width + height) / 2; extent > 0 {
			total += extent
			count++
		}
	}
	if count == 0 || total == 0 {
		return DefaultClusterDistance
	}
	return total / float64(count)
}
