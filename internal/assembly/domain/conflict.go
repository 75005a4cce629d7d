package assembly

// ConflictType classifies a detected design inconsistency.
type ConflictType string

const (
	ConflictGeometricOverlap ConflictType = "geometric_overlap"
	ConflictSpatial          ConflictType = "spatial_conflict"
	ConflictSystem           ConflictType = "system_conflict"
	ConflictRelationship     ConflictType = "relationship_conflict"
	ConflictProperty         ConflictType = "property_conflict"
	ConflictPerformance      ConflictType = "performance_conflict"
)

// Severity constants assigned by the detection passes.
const (
	SeverityGeometricOverlap = 0.8
	SeveritySpatialConflict  = 0.6
	SeveritySystemConflict   = 0.4
)

// Conflict is a detected inconsistency between elements or spaces.
// Conflicts are output data, not errors: every detected conflict is
// reported regardless of whether resolution was attempted or effective.
type Conflict struct {
	ID                    string         `json:"conflict_id"`
	Type                  ConflictType   `json:"conflict_type"`
	ElementIDs            []string       `json:"elements"`
	Severity              float64        `json:"severity"`
	Description           string         `json:"description"`
	Location              []float64      `json:"location,omitempty"`
	ResolutionSuggestions []string       `json:"resolution_suggestions,omitempty"`
	Resolved              bool           `json:"resolved"`
	Properties            map[string]any `json:"properties,omitempty"`
}
