package assembly

import "testing"

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		kind Kind
		want Category
	}{
		{KindWall, CategoryStructural},
		{KindDoor, CategoryEnclosure},
		{KindWindow, CategoryEnclosure},
		{KindRoom, CategorySpace},
		{KindAirHandler, CategoryHVAC},
		{KindVAVBox, CategoryHVAC},
		{KindDuct, CategoryHVAC},
		{KindThermostat, CategoryHVAC},
		{KindPanel, CategoryElectrical},
		{KindOutlet, CategoryElectrical},
		{KindSwitch, CategoryElectrical},
		{KindPipe, CategoryPlumbing},
		{KindValve, CategoryPlumbing},
		{KindSprinkler, CategoryFireSafety},
		{KindSmokeDetector, CategoryFireSafety},
		{KindCamera, CategorySecurity},
		{KindDevice, CategoryOther},
		{Kind("mystery"), CategoryOther},
	}
	for _, tc := range cases {
		if got := CategoryOf(tc.kind); got != tc.want {
			t.Fatalf("CategoryOf(%s): expected %s, got %s", tc.kind, tc.want, got)
		}
	}
}

func TestDisciplineOf(t *testing.T) {
	cases := []struct {
		category Category
		want     SystemType
	}{
		{CategoryHVAC, SystemHVAC},
		{CategoryElectrical, SystemElectrical},
		{CategoryPlumbing, SystemPlumbing},
		{CategoryFireSafety, SystemFireSafety},
		{CategorySecurity, SystemSecurity},
		{CategoryNetwork, SystemNetwork},
		{CategoryLighting, SystemLighting},
		{CategoryStructural, SystemStructural},
		{CategoryEnclosure, SystemOther},
		{CategorySpace, SystemOther},
		{CategoryOther, SystemOther},
	}
	for _, tc := range cases {
		if got := DisciplineOf(tc.category); got != tc.want {
			t.Fatalf("DisciplineOf(%s): expected %s, got %s", tc.category, tc.want, got)
		}
	}
}

func TestElementClone(t *testing.T) {
	e := &Element{
		ID:         "e1",
		Kind:       KindWall,
		Properties: map[string]any{"width": 1.0},
		Geometry:   &Geometry{Centroid: []float64{1, 2}},
		Tags:       []string{"a"},
	}
	clone := e.Clone()
	clone.Properties["width"] = 9.0
	clone.Geometry.Centroid[0] = 9
	clone.Tags[0] = "b"
	if e.Properties["width"] != 1.0 || e.Geometry.Centroid[0] != 1 || e.Tags[0] != "a" {
		t.Fatal("expected clone mutation not to touch the original")
	}
}

func TestSpaceOverlaps(t *testing.T) {
	a := &Space{Boundaries: Boundaries{Min: []float64{0, 0}, Max: []float64{5, 5}}}
	b := &Space{Boundaries: Boundaries{Min: []float64{4, 4}, Max: []float64{8, 8}}}
	if !a.Overlaps(b) {
		t.Fatal("expected overlapping spaces")
	}
	empty := &Space{}
	if a.Overlaps(empty) {
		t.Fatal("expected empty boundaries never to overlap")
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{MaxWorkers: -1, BatchSize: 0, GeometryTolerance: -2, ConflictThreshold: 3}
	cfg = cfg.Normalize()
	if cfg.MaxWorkers != 1 {
		t.Fatalf("expected MaxWorkers 1, got %d", cfg.MaxWorkers)
	}
	if cfg.BatchSize != 1 {
		t.Fatalf("expected BatchSize 1, got %d", cfg.BatchSize)
	}
	if cfg.GeometryTolerance != 0 {
		t.Fatalf("expected tolerance 0, got %f", cfg.GeometryTolerance)
	}
	if cfg.ConflictThreshold != 1 {
		t.Fatalf("expected threshold 1, got %f", cfg.ConflictThreshold)
	}
	if cfg.ValidationLevel != ValidationStandard {
		t.Fatalf("expected standard validation, got %s", cfg.ValidationLevel)
	}
}
