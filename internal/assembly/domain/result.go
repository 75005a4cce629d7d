package assembly

// CollectionValidation summarizes validation of one collection.
type CollectionValidation struct {
	Total   int      `json:"total"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
	Errors  []string `json:"errors,omitempty"`
}

// ValidationReport is the nested consistency-validation result. Each
// collection is checked independently; no cross-collection referential
// checks are performed.
type ValidationReport struct {
	Elements      CollectionValidation `json:"elements"`
	Systems       CollectionValidation `json:"systems"`
	Spaces        CollectionValidation `json:"spaces"`
	Relationships CollectionValidation `json:"relationships"`
	Geometries    CollectionValidation `json:"geometries"`
}

// Result is the outcome of one assembly run. A failed run still carries
// whatever collections were populated before the failure, with the error
// text appended to Warnings.
type Result struct {
	Success            bool               `json:"success"`
	AssemblyID         string             `json:"assembly_id"`
	Elements           []*Element         `json:"elements"`
	Systems            []*System          `json:"systems"`
	Spaces             []*Space           `json:"spaces"`
	Relationships      []*Relationship    `json:"relationships"`
	Conflicts          []*Conflict        `json:"conflicts"`
	Validation         ValidationReport   `json:"validation_results"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics"`
	AssemblyTime       float64            `json:"assembly_time"`
	Warnings           []string           `json:"warnings,omitempty"`
}
