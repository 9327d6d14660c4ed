package poi

import (
	"math"
	"testing"

	"starforge-server/internal/terrain"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := terrain.NewConfig(4321, terrain.PlanetTemperate, nil)
	a := Generate(4321, terrain.PlanetTemperate, cfg)
	b := Generate(4321, terrain.PlanetTemperate, cfg)
	if len(a) != len(b) {
		t.Fatalf("counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("poi %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGasGiantsHaveNoPOIs(t *testing.T) {
	cfg := terrain.NewConfig(1, terrain.PlanetGasGiant, nil)
	if pois := Generate(1, terrain.PlanetGasGiant, cfg); pois != nil {
		t.Fatalf("expected no POIs on a gas giant, got %d", len(pois))
	}
}

func TestSizesWithinTypeBounds(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		cfg := terrain.NewConfig(seed, terrain.PlanetDesert, nil)
		for _, p := range Generate(seed, terrain.PlanetDesert, cfg) {
			min, max := SizeBounds(p.Type)
			if p.Size < min || p.Size > max {
				t.Fatalf("seed %d: %s size %v outside [%v,%v]", seed, p.Type, p.Size, min, max)
			}
		}
	}
}

func TestPositionsAboveSeaLevel(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := terrain.NewConfig(seed, terrain.PlanetTemperate, nil)
		for _, p := range Generate(seed, terrain.PlanetTemperate, cfg) {
			h := terrain.HeightAt(cfg, p.WorldX, p.WorldY)
			if h <= cfg.SeaLevel && !isFallbackPosition(p) {
				t.Fatalf("seed %d: POI %d placed underwater (h=%v sea=%v)", seed, p.Index, h, cfg.SeaLevel)
			}
		}
	}
}

func isFallbackPosition(p POI) bool {
	return p.WorldY == 0 && math.Mod(p.WorldX, fallbackSpacing) == 0
}

func TestCommonTypesOutnumberRareOnes(t *testing.T) {
	counts := map[Type]int{}
	for seed := int64(0); seed < 800; seed++ {
		cfg := terrain.NewConfig(seed, terrain.PlanetTemperate, nil)
		for _, p := range Generate(seed, terrain.PlanetTemperate, cfg) {
			counts[p.Type]++
		}
	}
	if counts[TypeCaveSystem] <= counts[TypeAncientMonument] {
		t.Fatalf("cave systems (%d) should outnumber ancient monuments (%d)", counts[TypeCaveSystem], counts[TypeAncientMonument])
	}
}

func TestArtifactNamedAndNearby(t *testing.T) {
	cfg := terrain.NewConfig(77777, terrain.PlanetTemperate, nil)
	pois := Generate(77777, terrain.PlanetTemperate, cfg)
	for _, p := range pois {
		if p.Artifact.Name == "" {
			t.Fatalf("POI %d artifact unnamed", p.Index)
		}
		d := math.Hypot(p.Artifact.RelativeX, p.Artifact.RelativeY)
		if d > artifactMaxOffset+1e-9 {
			t.Fatalf("artifact %v world units from POI origin", d)
		}
		ax, ay := p.ArtifactWorldPosition()
		if ax != p.WorldX+p.Artifact.RelativeX || ay != p.WorldY+p.Artifact.RelativeY {
			t.Fatalf("artifact world position mismatch")
		}
	}
}

func TestMutableFlagsStartClear(t *testing.T) {
	cfg := terrain.NewConfig(5, terrain.PlanetIce, nil)
	for _, p := range Generate(5, terrain.PlanetIce, cfg) {
		if p.Discovered || p.ArtifactCollected {
			t.Fatalf("generator must not set session flags: %+v", p)
		}
	}
}

func TestStructureDeterministicAndStyled(t *testing.T) {
	a := GenerateStructure(9999, 40)
	b := GenerateStructure(9999, 40)
	if a.Style != b.Style || len(a.Elements) != len(b.Elements) {
		t.Fatalf("structure generation not deterministic")
	}
	for i := range a.Elements {
		if a.Elements[i] != b.Elements[i] {
			t.Fatalf("element %d differs", i)
		}
	}
	switch a.Style {
	case StyleCircular, StyleLinear, StyleClustered:
	default:
		t.Fatalf("unknown style %q", a.Style)
	}
	if len(a.Elements) == 0 {
		t.Fatalf("empty structure layout")
	}
}

func TestStructureRubbleOnlyNearDamage(t *testing.T) {
	for seed := int64(0); seed < 60; seed++ {
		layout := GenerateStructure(seed, 35)
		damaged := 0
		rubble := 0
		for _, e := range layout.Elements {
			if e.Damaged {
				damaged++
			}
			if e.Type == ElementRubble {
				rubble++
			}
		}
		if rubble > 0 && damaged == 0 {
			t.Fatalf("seed %d: weathering rubble without damaged elements", seed)
		}
	}
}

func TestStructureTinySizeClamped(t *testing.T) {
	layout := GenerateStructure(1, 0.5)
	if len(layout.Elements) == 0 {
		t.Fatalf("tiny structures must still produce a layout")
	}
}

func TestFallbackPositionPrefersDryGround(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		cfg := terrain.NewConfig(seed, terrain.PlanetOcean, nil)
		for index := 0; index < 3; index++ {
			wx, wy := fallbackPosition(cfg, index)
			if wy != 0 {
				t.Fatalf("seed %d: fallback left the scan axis (y=%v)", seed, wy)
			}
			if math.Mod(wx, fallbackSpacing) != 0 {
				t.Fatalf("seed %d: fallback x=%v off the stride grid", seed, wx)
			}

			if terrain.HeightAt(cfg, wx, 0) > cfg.SeaLevel {
				continue
			}
			// A wet result is only allowed when the whole scan was wet.
			anchor := float64(index+1) * fallbackSpacing
			for step := 0; step < fallbackScanSteps; step++ {
				x := anchor + float64(step)*fallbackSpacing
				if terrain.HeightAt(cfg, x, 0) > cfg.SeaLevel {
					t.Fatalf("seed %d index %d: fallback settled underwater at %v with dry ground at %v", seed, index, wx, x)
				}
			}
		}
	}
}
