package assembly

// RelationshipType classifies an edge between two elements.
type RelationshipType string

const (
	// RelationshipSpatial marks geometric bounding-box overlap. Undirected.
	RelationshipSpatial RelationshipType = "spatial_intersection"
	// RelationshipSystem marks co-membership in a discipline system. Undirected.
	RelationshipSystem RelationshipType = "system_membership"
	// RelationshipDependency marks a functional requirement, directed from
	// the dependent element to the one it requires.
	RelationshipDependency RelationshipType = "dependency"
)

// Relationship is an edge between two elements. A pair may accumulate one
// relationship per type.
type Relationship struct {
	ID         string           `json:"id"`
	SourceID   string           `json:"source_id"`
	TargetID   string           `json:"target_id"`
	Type       RelationshipType `json:"relationship_type"`
	Properties map[string]any   `json:"properties,omitempty"`
}
