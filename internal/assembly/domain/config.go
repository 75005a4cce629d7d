package assembly

// ValidationLevel selects how deep consistency validation goes.
type ValidationLevel string

const (
	ValidationBasic         ValidationLevel = "basic"
	ValidationStandard      ValidationLevel = "standard"
	ValidationComprehensive ValidationLevel = "comprehensive"
)

// Default tuning values for an assembly run.
const (
	DefaultMaxWorkers        = 4
	DefaultBatchSize         = 100
	DefaultGeometryTolerance = 0.01
	DefaultConflictThreshold = 0.1
)

// Config tunes a single assembly run.
type Config struct {
	ValidationLevel                ValidationLevel `yaml:"validation_level" json:"validation_level"`
	ConflictResolutionEnabled      bool            `yaml:"conflict_resolution" json:"conflict_resolution_enabled"`
	PerformanceOptimizationEnabled bool            `yaml:"performance_optimization" json:"performance_optimization_enabled"`
	ParallelProcessing             bool            `yaml:"parallel_processing" json:"parallel_processing"`
	MaxWorkers                     int             `yaml:"max_workers" json:"max_workers"`
	BatchSize                      int             `yaml:"batch_size" json:"batch_size"`
	GeometryTolerance              float64         `yaml:"geometry_tolerance" json:"geometry_tolerance"`
	ConflictThreshold              float64         `yaml:"conflict_threshold" json:"conflict_threshold"`
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		ValidationLevel:                ValidationStandard,
		ConflictResolutionEnabled:      true,
		PerformanceOptimizationEnabled: true,
		ParallelProcessing:             true,
		MaxWorkers:                     DefaultMaxWorkers,
		BatchSize:                      DefaultBatchSize,
		GeometryTolerance:              DefaultGeometryTolerance,
		ConflictThreshold:              DefaultConflictThreshold,
	}
}

// Normalize clamps out-of-range values to usable ones.
func (c Config) Normalize() Config {
	if c.ValidationLevel == "" {
		c.ValidationLevel = ValidationStandard
	}
	if c.MaxWorkers < 1 {
		c.MaxWorkers = 1
	}
	if c.BatchSize < 1 {
		c.BatchSize = 1
	}
	if c.GeometryTolerance < 0 {
		c.GeometryTolerance = 0
	}
	if c.ConflictThreshold < 0 {
		c.ConflictThreshold = 0
	}
	if c.ConflictThreshold > 1 {
		c.ConflictThreshold = 1
	}
	return c
}
