package assembly

// SpaceType is the heuristic classification of a spatial grouping.
type SpaceType string

const (
	SpaceRoom       SpaceType = "room"
	SpaceEnclosed   SpaceType = "enclosed_space"
	SpaceAccessible SpaceType = "accessible_space"
	SpaceMechanical SpaceType = "mechanical_space"
	SpaceElectrical SpaceType = "electrical_space"
	SpaceGeneral    SpaceType = "general_space"
)

// Boundaries is the union bounding box of a space, expressed as 2D points.
// Zero-length slices mean no member element carried coordinates.
type Boundaries struct {
	Min    []float64 `json:"min,omitempty"`
	Max    []float64 `json:"max,omitempty"`
	Center []float64 `json:"center,omitempty"`
}

// Empty reports whether the boundaries carry no extent.
func (b Boundaries) Empty() bool {
	return len(b.Min) < 2 || len(b.Max) < 2
}

// Space is an inferred spatial grouping of nearby elements. ParentID and
// Children exist for future hierarchy nesting; the current clustering
// never populates them.
type Space struct {
	ID          string         `json:"space_id"`
	Type        SpaceType      `json:"space_type"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	ElementIDs  []string       `json:"elements"`
	Boundaries  Boundaries     `json:"boundaries"`
	Properties  map[string]any `json:"properties,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	ParentID    string         `json:"parent_id,omitempty"`
	Children    []string       `json:"children,omitempty"`
}

// AddElement appends an element id if not already present.
func (s *Space) AddElement(id string) {
	for _, existing := range s.ElementIDs {
		if existing == id {
			return
		}
	}
	s.ElementIDs = append(s.ElementIDs, id)
}

// BoundaryArea returns the area of the boundary rectangle, or 0 when the
// space has no boundaries.
func (s *Space) BoundaryArea() float64 {
	if s == nil || s.Boundaries.Empty() {
		return 0
	}
	width := s.Boundaries.Max[0] - s.Boundaries.Min[0]
	height := s.Boundaries.Max[1] - s.Boundaries.Min[1]
	return width * height
}

// Overlaps reports axis-aligned overlap between two space boundaries.
// Spaces without boundaries never overlap.
func (s *Space) Overlaps(other *Space) bool {
	if s == nil || other == nil || s.Boundaries.Empty() || other.Boundaries.Empty() {
		return false
	}
	a, b := s.Boundaries, other.Boundaries
	return !(a.Max[0] < b.Min[0] || b.Max[0] < a.Min[0] ||
		a.Max[1] < b.Min[1] || b.Max[1] < a.Min[1])
}
