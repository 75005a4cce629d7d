package application

// RecordGeometry is the raw geometry block of a symbol record, as produced
// by the symbol-recognition stage. Coordinates arrive as decoded JSON and
// keep whatever nesting the source used: a list of points for point and
// linestring geometries, a list of rings for polygons.
type RecordGeometry struct {
	Type        string         `json:"type"`
	Coordinates any            `json:"coordinates,omitempty"`
	BoundingBox []float64      `json:"bounding_box,omitempty"`
	Centroid    []float64      `json:"centroid,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// SymbolRecord is one raw record from the symbol-recognition stage.
type SymbolRecord struct {
	ID             string          `json:"id,omitempty"`
	Type           string          `json:"type"`
	Name           string          `json:"name,omitempty"`
	Geometry       *RecordGeometry `json:"geometry,omitempty"`
	Properties     map[string]any  `json:"properties,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	SymbolMetadata map[string]any  `json:"symbol_metadata,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Status         string          `json:"status,omitempty"`
}

// asPoint coerces a decoded JSON value into a coordinate point.
func asPoint(v any) ([]float64, bool) {
	switch pt := v.(type) {
	case []float64:
		if len(pt) < 2 {
			return nil, false
		}
		return append([]float64(nil), pt...), true
	case []any:
		if len(pt) < 2 {
			return nil, false
		}
		out := make([]float64, 0, len(pt))
		for _, raw := range pt {
			f, ok := asFloat(raw)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	default:
		return nil, false
	}
}

// asPointList coerces a decoded JSON value into a list of points.
func asPointList(v any) ([][]float64, bool) {
	switch list := v.(type) {
	case [][]float64:
		out := make([][]float64, 0, len(list))
		for _, pt := range list {
			out = append(out, append([]float64(nil), pt...))
		}
		return out, true
	case []any:
		out := make([][]float64, 0, len(list))
		for _, raw := range list {
			pt, ok := asPoint(raw)
			if !ok {
				return nil, false
			}
			out = append(out, pt)
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}

// asRingList coerces a decoded JSON value into a list of polygon rings.
func asRingList(v any) ([][][]float64, bool) {
	switch list := v.(type) {
	case [][][]float64:
		out := make([][][]float64, 0, len(list))
		for _, ring := range list {
			pts := make([][]float64, 0, len(ring))
			for _, pt := range ring {
				pts = append(pts, append([]float64(nil), pt...))
			}
			out = append(out, pts)
		}
		return out, true
	case []any:
		out := make([][][]float64, 0, len(list))
		for _, raw := range list {
			ring, ok := asPointList(raw)
			if !ok {
				return nil, false
			}
			out = append(out, ring)
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
