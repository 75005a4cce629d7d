package application

import (
	"fmt"
	"math"

	assembly "arx-bim/internal/assembly/domain"
)

// DefaultClusterDistance is the centroid radius within which elements are
// grouped into the same space, in model distance units.
const DefaultClusterDistance = 10.0

// SpatialOrganizer clusters elements into spaces by centroid proximity.
type SpatialOrganizer struct {
	maxDistance float64
}

// NewSpatialOrganizer constructs an organizer. Non-positive distances fall
// back to the default cluster radius.
func NewSpatialOrganizer(maxDistance float64) *SpatialOrganizer {
	if maxDistance <= 0 {
		maxDistance = DefaultClusterDistance
	}
	return &SpatialOrganizer{maxDistance: maxDistance}
}

// Organize greedily clusters elements into spaces: each unprocessed
// element seeds a group holding every element within the cluster radius of
// its centroid, and the whole group is consumed at once. Elements without
// a centroid are never clustered. Every element with a centroid lands in
// exactly one space.
func (o *SpatialOrganizer) Organize(elements []*assembly.Element) []*assembly.Space {
	grid := newCentroidGrid(elements, o.maxDistance)
	processed := make([]bool, len(elements))

	var spaces []*assembly.Space
	for i, element := range elements {
		if processed[i] || element == nil || !element.Geometry.HasCentroid() {
			continue
		}
		group := []*assembly.Element{element}
		processed[i] = true
		for _, idx := range grid.Nearby(i, o.maxDistance) {
			if processed[idx] {
				continue
			}
			group = append(group, elements[idx])
			processed[idx] = true
		}
		spaces = append(spaces, buildSpace(fmt.Sprintf("space_%d", len(spaces)), group))
	}
	return spaces
}

func buildSpace(id string, group []*assembly.Element) *assembly.Space {
	space := &assembly.Space{
		ID:         id,
		Type:       inferSpaceType(group),
		Name:       id,
		ElementIDs: make([]string, 0, len(group)),
	}
	for _, element := range group {
		space.AddElement(element.ID)
	}
	space.Boundaries = groupBoundaries(group)
	space.Description = fmt.Sprintf("%s with %d elements", space.Type, len(space.ElementIDs))
	return space
}

// groupBoundaries is the union extent of every coordinate of every member
// geometry, polygon rings flattened. Groups without coordinates get empty
// boundaries.
func groupBoundaries(group []*assembly.Element) assembly.Boundaries {
	box := assembly.BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	for _, element := range group {
		b, ok := element.Geometry.Bounds()
		if !ok {
			continue
		}
		found = true
		box = box.Union(b)
	}
	if !found {
		return assembly.Boundaries{}
	}
	cx, cy := box.Center()
	return assembly.Boundaries{
		Min:    []float64{box.MinX, box.MinY},
		Max:    []float64{box.MaxX, box.MaxY},
		Center: []float64{cx, cy},
	}
}

// inferSpaceType applies the kind-count heuristics in priority order.
func inferSpaceType(group []*assembly.Element) assembly.SpaceType {
	counts := make(map[assembly.Kind]int, len(group))
	for _, element := range group {
		counts[element.Kind]++
	}
	switch {
	case counts[assembly.KindRoom] > 0:
		return assembly.SpaceRoom
	case counts[assembly.KindWall] > 2:
		return assembly.SpaceEnclosed
	case counts[assembly.KindDoor] > 0 && counts[assembly.KindWindow] > 0:
		return assembly.SpaceAccessible
	case counts[assembly.KindAirHandler] > 0 || counts[assembly.KindVAVBox] > 0 || counts[assembly.KindDuct] > 0:
		return assembly.SpaceMechanical
	case counts[assembly.KindPanel] > 0 || counts[assembly.KindOutlet] > 0 || counts[assembly.KindSwitch] > 0:
		return assembly.SpaceElectrical
	default:
		return assembly.SpaceGeneral
	}
}
