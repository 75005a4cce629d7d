package application

import (
	"log"

	assembly "arx-bim/internal/assembly/domain"
)

// GeometryOptimizer is the downstream geometry-refinement hook invoked
// during performance optimization. Implementations simplify or otherwise
// rework a geometry and return the replacement; returning the input
// unchanged is a valid no-op.
type GeometryOptimizer interface {
	OptimizeGeometry(geometry *assembly.Geometry) (*assembly.Geometry, error)
}

// NoopGeometryOptimizer returns geometries untouched.
type NoopGeometryOptimizer struct{}

func (NoopGeometryOptimizer) OptimizeGeometry(geometry *assembly.Geometry) (*assembly.Geometry, error) {
	return geometry, nil
}

// Optimizer strips dead properties and runs geometries through the
// refinement hook, in batches.
type Optimizer struct {
	batchSize int
	geometry  GeometryOptimizer
	logger    *log.Logger
}

// NewOptimizer constructs an optimizer. A nil hook disables geometry
// refinement, a nil logger falls back to the process default.
func NewOptimizer(batchSize int, geometry GeometryOptimizer, logger *log.Logger) *Optimizer {
	if batchSize < 1 {
		batchSize = 1
	}
	if geometry == nil {
		geometry = NoopGeometryOptimizer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Optimizer{batchSize: batchSize, geometry: geometry, logger: logger}
}

// Optimize reworks elements in place and records aggregate counters in
// metrics. A hook failure on one element is logged and that geometry kept
// as-is.
func (o *Optimizer) Optimize(elements []*assembly.Element, systems []*assembly.System, spaces []*assembly.Space, relationships []*assembly.Relationship, metrics map[string]float64) {
	for start := 0; start < len(elements); start += o.batchSize {
		end := start + o.batchSize
		if end > len(elements) {
			end = len(elements)
		}
		for _, element := range elements[start:end] {
			o.optimizeElement(element)
		}
	}

	if metrics != nil {
		metrics["total_elements"] = float64(len(elements))
		metrics["total_systems"] = float64(len(systems))
		metrics["total_spaces"] = float64(len(spaces))
		metrics["total_relationships"] = float64(len(relationships))
	}
}

func (o *Optimizer) optimizeElement(element *assembly.Element) {
	if element == nil {
		return
	}
	pruneEmptyProperties(element.Properties)
	if element.Geometry == nil {
		return
	}
	optimized, err := o.geometry.OptimizeGeometry(element.Geometry)
	if err != nil {
		o.logger.Printf("geometry_optimize_failed: element=%s error=%v", element.ID, err)
		return
	}
	if optimized != nil {
		element.Geometry = optimized
	}
}

// pruneEmptyProperties drops nil and empty-valued entries in place.
func pruneEmptyProperties(properties map[string]any) {
	for key, value := range properties {
		switch v := value.(type) {
		case nil:
			delete(properties, key)
		case string:
			if v == "" {
				delete(properties, key)
			}
		case []any:
			if len(v) == 0 {
				delete(properties, key)
			}
		case map[string]any:
			if len(v) == 0 {
				delete(properties, key)
			}
		}
	}
}
