package application

import (
	"fmt"

	assembly "arx-bim/internal/assembly/domain"
)

// disciplineOrder fixes the emission order of system aggregates so runs
// over the same input produce the same output.
var disciplineOrder = []assembly.SystemType{
	assembly.SystemHVAC,
	assembly.SystemElectrical,
	assembly.SystemPlumbing,
	assembly.SystemFireSafety,
	assembly.SystemSecurity,
	assembly.SystemNetwork,
	assembly.SystemLighting,
	assembly.SystemStructural,
	assembly.SystemOther,
}

// IntegrateSystems groups elements by discipline and emits one system per
// non-empty group. Systems hold member elements by reference.
func IntegrateSystems(elements []*assembly.Element) []*assembly.System {
	groups := make(map[assembly.SystemType][]*assembly.Element)
	for _, element := range elements {
		if element == nil {
			continue
		}
		discipline := assembly.DisciplineOf(element.Category)
		groups[discipline] = append(groups[discipline], element)
	}

	var systems []*assembly.System
	for _, discipline := range disciplineOrder {
		members := groups[discipline]
		if len(members) == 0 {
			continue
		}
		systems = append(systems, &assembly.System{
			ID:          fmt.Sprintf("system_%d", len(systems)),
			Name:        fmt.Sprintf("%s System", discipline),
			Type:        discipline,
			Description: fmt.Sprintf("%s system with %d elements", discipline, len(members)),
			Elements:    members,
		})
	}
	return systems
}
