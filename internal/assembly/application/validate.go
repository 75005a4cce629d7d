package application

import (
	"fmt"

	assembly "arx-bim/internal/assembly/domain"
)

// Validate checks each collection for structurally required fields and
// reports per-collection counts with human-readable errors. Collections
// are checked independently; a space referencing a missing element id is
// not flagged here.
func Validate(elements []*assembly.Element, systems []*assembly.System, spaces []*assembly.Space, relationships []*assembly.Relationship) assembly.ValidationReport {
	return assembly.ValidationReport{
		Elements:      validateElements(elements),
		Systems:       validateSystems(systems),
		Spaces:        validateSpaces(spaces),
		Relationships: validateRelationships(relationships),
		Geometries:    validateGeometries(elements),
	}
}

func validateElements(elements []*assembly.Element) assembly.CollectionValidation {
	v := assembly.CollectionValidation{Total: len(elements)}
	for i, element := range elements {
		switch {
		case element == nil:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("element at position %d is nil", i))
		case element.ID == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("element at position %d has no id", i))
		case element.Name == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("element %s has no name", element.ID))
		case element.Kind == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("element %s has no type", element.ID))
		default:
			v.Valid++
		}
	}
	return v
}

func validateSystems(systems []*assembly.System) assembly.CollectionValidation {
	v := assembly.CollectionValidation{Total: len(systems)}
	for i, system := range systems {
		switch {
		case system == nil:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("system at position %d is nil", i))
		case system.ID == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("system at position %d has no id", i))
		case system.Name == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("system %s has no name", system.ID))
		case len(system.Elements) == 0:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("system %s has no elements", system.ID))
		default:
			v.Valid++
		}
	}
	return v
}

func validateSpaces(spaces []*assembly.Space) assembly.CollectionValidation {
	v := assembly.CollectionValidation{Total: len(spaces)}
	for i, space := range spaces {
		switch {
		case space == nil:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("space at position %d is nil", i))
		case space.ID == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("space at position %d has no id", i))
		case len(space.ElementIDs) == 0:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("space %s has no elements", space.ID))
		default:
			v.Valid++
		}
	}
	return v
}

func validateRelationships(relationships []*assembly.Relationship) assembly.CollectionValidation {
	v := assembly.CollectionValidation{Total: len(relationships)}
	for i, rel := range relationships {
		switch {
		case rel == nil:
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("relationship at position %d is nil", i))
		case rel.ID == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("relationship at position %d has no id", i))
		case rel.SourceID == "" || rel.TargetID == "":
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("relationship %s is missing an endpoint", rel.ID))
		default:
			v.Valid++
		}
	}
	return v
}

// validateGeometries counts only elements that carry a geometry; the
// geometry must hold at least one coordinate point.
func validateGeometries(elements []*assembly.Element) assembly.CollectionValidation {
	var v assembly.CollectionValidation
	for _, element := range elements {
		if element == nil || element.Geometry == nil {
			continue
		}
		v.Total++
		if element.Geometry.PointCount() == 0 {
			v.Invalid++
			v.Errors = append(v.Errors, fmt.Sprintf("element %s geometry has no coordinates", element.ID))
			continue
		}
		v.Valid++
	}
	return v
}
