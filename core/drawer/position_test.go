package drawer

import "testing"

func TestPositionModelMarks(t *testing.T) {
	m := scenarioModel(scenarioConfig())
	if got := m.PartialY(); got != 500 {
		t.Fatalf("PartialY = %v, want 500", got)
	}
	if got := m.UpperMarkY(); got != 460 {
		t.Fatalf("UpperMarkY = %v, want 460", got)
	}
	if got := m.LowerMarkY(); got != 540 {
		t.Fatalf("LowerMarkY = %v, want 540", got)
	}
	if !m.HasPartialRest() {
		t.Fatal("HasPartialRest = false, want true")
	}
}

func TestPositionModelWithoutPartialUsesContainerHeightAsLine(t *testing.T) {
	cfg := scenarioConfig()
	cfg.SupportsPartialExpansion = false
	m := PositionModel{Geometry: Geometry{Height: 800}, Config: cfg}
	if got := m.PartialY(); got != 800 {
		t.Fatalf("PartialY = %v, want 800", got)
	}
	if got := m.UpperMarkY(); got != 760 {
		t.Fatalf("UpperMarkY = %v, want 760", got)
	}
	if m.HasPartialRest() {
		t.Fatal("HasPartialRest = true, want false")
	}
}

func TestPositionModelDegeneratePartialLineDisablesPartialRest(t *testing.T) {
	cfg := scenarioConfig()
	for _, partial := range []float64{0, 800, 1200} {
		m := PositionModel{Geometry: Geometry{Height: 800}, Config: cfg, PartialExpandedHeight: partial}
		if m.HasPartialRest() {
			t.Fatalf("partial height %v: HasPartialRest = true, want false", partial)
		}
		if got := m.CornerRadiusAt(400); got != 0 {
			t.Fatalf("partial height %v: CornerRadiusAt(400) = %v, want 0", partial, got)
		}
		if m.UpperMarkY() != 760 || m.LowerMarkY() != 840 {
			t.Fatalf("partial height %v: marks = %v / %v, want 760 / 840 around the bottom edge", partial, m.UpperMarkY(), m.LowerMarkY())
		}
	}
}

func TestCornerRadiusBoundsAndEdges(t *testing.T) {
	for _, partial := range []bool{true, false} {
		cfg := scenarioConfig()
		cfg.SupportsPartialExpansion = partial
		m := scenarioModel(cfg)
		if got := m.CornerRadiusAt(0); got != 0 {
			t.Fatalf("partial=%v CornerRadiusAt(0) = %v, want 0", partial, got)
		}
		if got := m.CornerRadiusAt(800); got != 0 {
			t.Fatalf("partial=%v CornerRadiusAt(800) = %v, want 0", partial, got)
		}
		for y := 0.0; y <= 800; y += 0.5 {
			r := m.CornerRadiusAt(y)
			if r < 0 || r > cfg.MaximumCornerRadius {
				t.Fatalf("partial=%v CornerRadiusAt(%v) = %v, outside [0, %v]", partial, y, r, cfg.MaximumCornerRadius)
			}
		}
	}
}

func TestCornerRadiusOutsideContainerIsZero(t *testing.T) {
	m := scenarioModel(scenarioConfig())
	for _, y := range []float64{-1, 801, 5000} {
		if got := m.CornerRadiusAt(y); got != 0 {
			t.Fatalf("CornerRadiusAt(%v) = %v, want 0", y, got)
		}
	}
}

func TestCornerRadiusPeaksAtPartialLine(t *testing.T) {
	cfg := scenarioConfig()
	m := scenarioModel(cfg)
	if got := m.CornerRadiusAt(500); got != cfg.MaximumCornerRadius {
		t.Fatalf("CornerRadiusAt(partialY) = %v, want %v", got, cfg.MaximumCornerRadius)
	}
	// Both branches meet at the partial line.
	below := m.CornerRadiusAt(500 - 1e-9)
	above := m.CornerRadiusAt(500 + 1e-9)
	if diff := below - above; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("radius jumps at partial line: %v vs %v", below, above)
	}
	if got := m.CornerRadiusAt(250); got != 6 {
		t.Fatalf("CornerRadiusAt(250) = %v, want 6", got)
	}
	if got := m.CornerRadiusAt(650); got != 6 {
		t.Fatalf("CornerRadiusAt(650) = %v, want 6", got)
	}
}

func TestCornerRadiusWithoutPartialFadesDownward(t *testing.T) {
	cfg := scenarioConfig()
	cfg.SupportsPartialExpansion = false
	m := PositionModel{Geometry: Geometry{Height: 800}, Config: cfg}
	if got := m.CornerRadiusAt(200); got != 9 {
		t.Fatalf("CornerRadiusAt(200) = %v, want 9", got)
	}
	if got := m.CornerRadiusAt(600); got != 3 {
		t.Fatalf("CornerRadiusAt(600) = %v, want 3", got)
	}
}

func TestCornerRadiusZeroHeightContainer(t *testing.T) {
	m := PositionModel{Config: scenarioConfig(), PartialExpandedHeight: 300}
	if got := m.CornerRadiusAt(0); got != 0 {
		t.Fatalf("CornerRadiusAt(0) = %v, want 0", got)
	}
	if got := m.ContainerHeight(); got != 0 {
		t.Fatalf("ContainerHeight = %v, want 0", got)
	}
}

func TestClampIsIdempotentAndOrderPreserving(t *testing.T) {
	values := []float64{-50, -1, 0, 1, 399.5, 800, 801, 2000}
	prev := clamp(values[0], 0, 800)
	for _, v := range values {
		once := clamp(v, 0, 800)
		if twice := clamp(once, 0, 800); twice != once {
			t.Fatalf("clamp not idempotent at %v: %v then %v", v, once, twice)
		}
		if once < prev {
			t.Fatalf("clamp not order preserving at %v: %v < %v", v, once, prev)
		}
		prev = once
	}
}

func TestRestYAndRestAt(t *testing.T) {
	m := scenarioModel(scenarioConfig())
	cases := []struct {
		rest Rest
		y    float64
	}{
		{RestExpanded, 0},
		{RestPartial, 500},
		{RestHidden, 800},
	}
	for _, tc := range cases {
		if got := m.RestY(tc.rest); got != tc.y {
			t.Fatalf("RestY(%s) = %v, want %v", tc.rest, got, tc.y)
		}
		if got := m.RestAt(tc.y); got != tc.rest {
			t.Fatalf("RestAt(%v) = %s, want %s", tc.y, got, tc.rest)
		}
	}
}
