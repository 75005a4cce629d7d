package assembly

// SystemType is the discipline of a system aggregate.
type SystemType string

const (
	SystemHVAC       SystemType = "HVAC"
	SystemElectrical SystemType = "Electrical"
	SystemPlumbing   SystemType = "Plumbing"
	SystemFireSafety SystemType = "FireSafety"
	SystemSecurity   SystemType = "Security"
	SystemNetwork    SystemType = "Network"
	SystemLighting   SystemType = "Lighting"
	SystemStructural SystemType = "Structural"
	SystemOther      SystemType = "Other"
)

// DisciplineOf maps an element category to the discipline owning it.
func DisciplineOf(category Category) SystemType {
	switch category {
	case CategoryHVAC:
		return SystemHVAC
	case CategoryElectrical:
		return SystemElectrical
	case CategoryPlumbing:
		return SystemPlumbing
	case CategoryFireSafety:
		return SystemFireSafety
	case CategorySecurity:
		return SystemSecurity
	case CategoryNetwork:
		return SystemNetwork
	case CategoryLighting:
		return SystemLighting
	case CategoryStructural:
		return SystemStructural
	case CategoryEnclosure, CategorySpace, CategoryOther:
		return SystemOther
	default:
		return SystemOther
	}
}

// System groups the elements of one discipline. Elements are shared by
// reference with the run's element list, never duplicated.
type System struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        SystemType     `json:"system_type"`
	Description string         `json:"description,omitempty"`
	Elements    []*Element     `json:"elements"`
	Properties  map[string]any `json:"properties,omitempty"`
}
