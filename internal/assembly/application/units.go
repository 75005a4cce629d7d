package application

// PxToMeters converts source pixels to meters at the fixed 96 DPI the
// drawing pipeline assumes.
const PxToMeters = 0.0254 / 96

// linearFields are dimensional properties converted with PxToMeters.
var linearFields = map[string]struct{}{
	"width":     {},
	"height":    {},
	"thickness": {},
	"x":         {},
	"y":         {},
	"z":         {},
}

// squareFields are area properties converted with PxToMeters squared.
var squareFields = map[string]struct{}{
	"area": {},
}

// ConvertProperties converts the dimensional fields of a raw property map
// from pixels to meters. Non-dimensional fields pass through unchanged,
// linear fields whose value is not numeric pass through too, and missing
// fields are simply absent from the output.
func ConvertProperties(raw map[string]any) map[string]any {
	if raw == nil {
		return nil
	}
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if _, ok := linearFields[key]; ok {
			if f, ok := asFloat(value); ok {
				out[key] = f * PxToMeters
				continue
			}
		}
		if _, ok := squareFields[key]; ok {
			if f, ok := asFloat(value); ok {
				out[key] = f * PxToMeters * PxToMeters
				continue
			}
		}
		out[key] = value
	}
	return out
}

// MetersToPx is the inverse of the pixel conversion, used when writing
// values back into drawing space.
func MetersToPx(meters float64) float64 {
	return meters / PxToMeters
}
