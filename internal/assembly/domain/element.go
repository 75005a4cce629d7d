package assembly

// Kind is the closed set of element kinds the assembler produces.
// Rule tables (categories, disciplines, dependencies, space typing) switch
// exhaustively over this type, so adding a kind is a compile-time decision.
type Kind string

const (
	KindRoom          Kind = "room"
	KindWall          Kind = "wall"
	KindDoor          Kind = "door"
	KindWindow        Kind = "window"
	KindAirHandler    Kind = "ahu"
	KindVAVBox        Kind = "vav"
	KindDuct          Kind = "duct"
	KindThermostat    Kind = "thermostat"
	KindPanel         Kind = "panel"
	KindOutlet        Kind = "outlet"
	KindSwitch        Kind = "switch"
	KindPipe          Kind = "pipe"
	KindValve         Kind = "valve"
	KindSprinkler     Kind = "sprinkler"
	KindSmokeDetector Kind = "smoke_detector"
	KindCamera        Kind = "camera"
	KindDevice        Kind = "device"
)

// Category is the coarse discipline grouping of an element kind.
type Category string

const (
	CategoryStructural Category = "structural"
	CategoryEnclosure  Category = "enclosure"
	CategorySpace      Category = "space"
	CategoryHVAC       Category = "hvac"
	CategoryElectrical Category = "electrical"
	CategoryPlumbing   Category = "plumbing"
	CategoryFireSafety Category = "fire_safety"
	CategorySecurity   Category = "security"
	CategoryNetwork    Category = "network"
	CategoryLighting   Category = "lighting"
	CategoryOther      Category = "other"
)

// CategoryOf maps an element kind to its category.
func CategoryOf(kind Kind) Category {
	switch kind {
	case KindWall:
		return CategoryStructural
	case KindDoor, KindWindow:
		return CategoryEnclosure
	case KindRoom:
		return CategorySpace
	case KindAirHandler, KindVAVBox, KindDuct, KindThermostat:
		return CategoryHVAC
	case KindPanel, KindOutlet, KindSwitch:
		return CategoryElectrical
	case KindPipe, KindValve:
		return CategoryPlumbing
	case KindSprinkler, KindSmokeDetector:
		return CategoryFireSafety
	case KindCamera:
		return CategorySecurity
	case KindDevice:
		return CategoryOther
	default:
		return CategoryOther
	}
}

// Element is the smallest modeled unit of the building model. It is
// immutable after construction except for the category property written
// during classification and geometry mutation during conflict resolution
// and optimization.
type Element struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Kind           Kind           `json:"element_type"`
	Category       Category       `json:"category"`
	Geometry       *Geometry      `json:"geometry,omitempty"`
	Properties     map[string]any `json:"properties,omitempty"`
	SymbolMetadata map[string]any `json:"symbol_metadata,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Status         string         `json:"status,omitempty"`
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := *e
	out.Geometry = e.Geometry.Clone()
	if e.Properties != nil {
		out.Properties = make(map[string]any, len(e.Properties))
		for k, v := range e.Properties {
			out.Properties[k] = v
		}
	}
	if e.SymbolMetadata != nil {
		out.SymbolMetadata = make(map[string]any, len(e.SymbolMetadata))
		for k, v := range e.SymbolMetadata {
			out.SymbolMetadata[k] = v
		}
	}
	if e.Tags != nil {
		out.Tags = append([]string(nil), e.Tags...)
	}
	return &out
}
