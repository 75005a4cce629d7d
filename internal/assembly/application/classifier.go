package application

import (
	"strings"

	assembly "arx-bim/internal/assembly/domain"
)

// symbolKinds maps a recognized symbol name (or raw record type) to the
// element kind it produces. Names are matched lower-cased and exact.
var symbolKinds = map[string]assembly.Kind{
	"room":           assembly.KindRoom,
	"wall":           assembly.KindWall,
	"door":           assembly.KindDoor,
	"window":         assembly.KindWindow,
	"ahu":            assembly.KindAirHandler,
	"vav":            assembly.KindVAVBox,
	"duct":           assembly.KindDuct,
	"thermostat":     assembly.KindThermostat,
	"panel":          assembly.KindPanel,
	"outlet":         assembly.KindOutlet,
	"switch":         assembly.KindSwitch,
	"pipe":           assembly.KindPipe,
	"valve":          assembly.KindValve,
	"sprinkler":      assembly.KindSprinkler,
	"smoke_detector": assembly.KindSmokeDetector,
	"camera":         assembly.KindCamera,
}

// ClassifyKind resolves the element kind of a raw record. The recognized
// symbol name wins over the raw record type; records matching neither
// become generic devices.
func ClassifyKind(symbolMetadata map[string]any, recordType string) assembly.Kind {
	if symbolMetadata != nil {
		if name, ok := symbolMetadata["symbolName"].(string); ok {
			if kind, ok := symbolKinds[strings.ToLower(name)]; ok {
				return kind
			}
		}
	}
	if kind, ok := symbolKinds[strings.ToLower(recordType)]; ok {
		return kind
	}
	return assembly.KindDevice
}
