package application

import (
	"fmt"
	"log"

	assembly "arx-bim/internal/assembly/domain"
)

// maxKindsPerSystem is the distinct-kind count above which a system is
// flagged as overloaded.
const maxKindsPerSystem = 5

// resolutionOffset is the fixed centroid nudge applied to the second
// element of a geometric conflict. A placeholder, not a de-overlap solver.
const resolutionOffset = 0.1

// ConflictDetector finds and optionally resolves design conflicts.
type ConflictDetector struct {
	threshold float64
	logger    *log.Logger
}

// NewConflictDetector constructs a detector with the given resolution
// threshold.
func NewConflictDetector(threshold float64, logger *log.Logger) *ConflictDetector {
	if logger == nil {
		logger = log.Default()
	}
	return &ConflictDetector{threshold: threshold, logger: logger}
}

// Detect runs the three independent detection passes and returns every
// conflict found. Conflicts are data, not errors.
func (d *ConflictDetector) Detect(elements []*assembly.Element, spaces []*assembly.Space, systems []*assembly.System) []*assembly.Conflict {
	var conflicts []*assembly.Conflict
	conflicts = append(conflicts, d.geometricConflicts(elements)...)
	conflicts = append(conflicts, d.spatialConflicts(spaces)...)
	conflicts = append(conflicts, d.systemConflicts(systems)...)
	return conflicts
}

func (d *ConflictDetector) geometricConflicts(elements []*assembly.Element) []*assembly.Conflict {
	grid := newBoundsGrid(elements, overlapCellSize(elements))
	var out []*assembly.Conflict
	for _, pair := range grid.OverlapPairs() {
		a, b := elements[pair[0]], elements[pair[1]]
		var location []float64
		if a.Geometry.HasCentroid() {
			location = append([]float64(nil), a.Geometry.Centroid...)
		}
		out = append(out, &assembly.Conflict{
			ID:          fmt.Sprintf("geometric_%s_%s", a.ID, b.ID),
			Type:        assembly.ConflictGeometricOverlap,
			ElementIDs:  []string{a.ID, b.ID},
			Severity:    assembly.SeverityGeometricOverlap,
			Description: fmt.Sprintf("elements %s and %s overlap geometrically", a.ID, b.ID),
			Location:    location,
			ResolutionSuggestions: []string{
				"adjust element positions",
				"modify element geometry",
				"add clearance between elements",
			},
		})
	}
	return out
}

func (d *ConflictDetector) spatialConflicts(spaces []*assembly.Space) []*assembly.Conflict {
	var out []*assembly.Conflict
	for i := 0; i < len(spaces); i++ {
		for j := i + 1; j < len(spaces); j++ {
			a, b := spaces[i], spaces[j]
			if !a.Overlaps(b) {
				continue
			}
			out = append(out, &assembly.Conflict{
				ID:          fmt.Sprintf("spatial_%s_%s", a.ID, b.ID),
				Type:        assembly.ConflictSpatial,
				ElementIDs:  append(append([]string(nil), a.ElementIDs...), b.ElementIDs...),
				Severity:    assembly.SeveritySpatialConflict,
				Description: fmt.Sprintf("spaces %s and %s have overlapping boundaries", a.ID, b.ID),
				ResolutionSuggestions: []string{
					"adjust space boundaries",
					"merge overlapping spaces",
					"define a space hierarchy",
				},
			})
		}
	}
	return out
}

func (d *ConflictDetector) systemConflicts(systems []*assembly.System) []*assembly.Conflict {
	var out []*assembly.Conflict
	for _, system := range systems {
		kinds := make(map[assembly.Kind]struct{})
		for _, element := range system.Elements {
			kinds[element.Kind] = struct{}{}
		}
		if len(kinds) <= maxKindsPerSystem {
			continue
		}
		ids := make([]string, 0, len(system.Elements))
		for _, element := range system.Elements {
			ids = append(ids, element.ID)
		}
		out = append(out, &assembly.Conflict{
			ID:          fmt.Sprintf("system_%s", system.ID),
			Type:        assembly.ConflictSystem,
			ElementIDs:  ids,
			Severity:    assembly.SeveritySystemConflict,
			Description: fmt.Sprintf("system %s spans %d distinct element kinds", system.ID, len(kinds)),
			ResolutionSuggestions: []string{
				"split the system by subsystem",
				"reclassify outlier elements",
				"review system boundaries",
			},
		})
	}
	return out
}

// Resolve attempts resolution on every conflict above the severity
// threshold. Geometric conflicts get a fixed centroid nudge on the second
// element and are marked resolved. Spatial and system conflicts have no
// corrective action yet; they stay unresolved and are annotated so the
// report shows the attempt changed nothing.
func (d *ConflictDetector) Resolve(conflicts []*assembly.Conflict, elements []*assembly.Element) {
	byID := make(map[string]*assembly.Element, len(elements))
	for _, element := range elements {
		byID[element.ID] = element
	}

	for _, conflict := range conflicts {
		if conflict.Severity <= d.threshold {
			continue
		}
		switch conflict.Type {
		case assembly.ConflictGeometricOverlap:
			if d.nudgeSecondElement(conflict, byID) {
				conflict.Resolved = true
				setConflictResolution(conflict, "centroid_offset")
			} else {
				setConflictResolution(conflict, "no_corrective_action")
			}
		case assembly.ConflictSpatial, assembly.ConflictSystem:
			setConflictResolution(conflict, "no_corrective_action")
		}
	}
}

// nudgeSecondElement shifts the second conflicting element's centroid by
// the fixed offset. Both elements must carry centroids for the nudge to
// apply.
func (d *ConflictDetector) nudgeSecondElement(conflict *assembly.Conflict, byID map[string]*assembly.Element) bool {
	if len(conflict.ElementIDs) < 2 {
		return false
	}
	first := byID[conflict.ElementIDs[0]]
	second := byID[conflict.ElementIDs[1]]
	if first == nil || second == nil {
		return false
	}
	if !first.Geometry.HasCentroid() || !second.Geometry.HasCentroid() {
		return false
	}
	second.Geometry.Centroid = []float64{
		second.Geometry.Centroid[0] + resolutionOffset,
		second.Geometry.Centroid[1] + resolutionOffset,
	}
	d.logger.Printf("conflict_resolved: id=%s action=centroid_offset element=%s", conflict.ID, second.ID)
	return true
}

func setConflictResolution(conflict *assembly.Conflict, action string) {
	if conflict.Properties == nil {
		conflict.Properties = map[string]any{}
	}
	conflict.Properties["resolution"] = action
}
