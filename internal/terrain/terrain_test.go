package terrain

import (
	"math"
	"testing"
)

func TestConfigDeterministic(t *testing.T) {
	a := NewConfig(555, PlanetTemperate, nil)
	b := NewConfig(555, PlanetTemperate, nil)
	if a != b {
		t.Fatalf("configs differ: %+v vs %+v", a, b)
	}
}

func TestConfigOverrideApplies(t *testing.T) {
	temp := 12.5
	water := 0.9
	cfg := NewConfig(555, PlanetTemperate, &DetailOverride{TemperatureBase: &temp, WaterCoverage: &water})
	if cfg.TemperatureBase != 12.5 || cfg.WaterCoverage != 0.9 {
		t.Fatalf("override not applied: %+v", cfg)
	}
}

func TestHeightAtRepeatable(t *testing.T) {
	cfg := NewConfig(12345, PlanetTemperate, nil)
	first := HeightAt(cfg, 12345.67, -9876.54)
	second := HeightAt(cfg, 12345.67, -9876.54)
	if math.Abs(first-second) > 1e-4 {
		t.Fatalf("HeightAt not repeatable: %v vs %v", first, second)
	}
}

func TestHeightsInUnitRangeForAllArchetypes(t *testing.T) {
	for _, pt := range SurfaceTypes {
		cfg := NewConfig(2468, pt, nil)
		tile := GenerateTile(cfg, -3, 7, 0, 17)
		for i, h := range tile.Heights {
			if h < 0 || h > 1 {
				t.Fatalf("%s: height[%d]=%v outside [0,1]", pt, i, h)
			}
		}
	}
}

func TestTileDeterministic(t *testing.T) {
	cfg := NewConfig(777, PlanetOcean, nil)
	a := GenerateTile(cfg, 2, -5, 1, 33)
	b := GenerateTile(cfg, 2, -5, 1, 33)
	for i := range a.Heights {
		if a.Heights[i] != b.Heights[i] {
			t.Fatalf("height mismatch at %d", i)
		}
		if a.Biomes[i] != b.Biomes[i] {
			t.Fatalf("biome mismatch at %d", i)
		}
	}
}

func TestSeamContinuity(t *testing.T) {
	cfg := NewConfig(424242, PlanetTemperate, nil)
	for _, res := range []int{9, 17, 33} {
		left := GenerateTile(cfg, 0, 0, 0, res)
		right := GenerateTile(cfg, 1, 0, 0, res)
		for y := 0; y < res; y++ {
			a := left.Heights[y*res+(res-1)]
			b := right.Heights[y*res+0]
			if math.Abs(a-b) > 1e-4 {
				t.Fatalf("res %d: vertical seam mismatch at row %d: %v vs %v", res, y, a, b)
			}
		}

		bottom := GenerateTile(cfg, 0, 1, 0, res)
		for x := 0; x < res; x++ {
			a := left.Heights[(res-1)*res+x]
			b := bottom.Heights[x]
			if math.Abs(a-b) > 1e-4 {
				t.Fatalf("res %d: horizontal seam mismatch at col %d: %v vs %v", res, x, a, b)
			}
		}
	}
}

func TestNormalsUnitLength(t *testing.T) {
	cfg := NewConfig(99, PlanetVolcanic, nil)
	tile := GenerateTile(cfg, 0, 0, 0, 17)
	for i, n := range tile.Normals {
		l := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		if math.Abs(l-1) > 1e-9 {
			t.Fatalf("normal %d not unit length: %v", i, n)
		}
		if n[2] <= 0 {
			t.Fatalf("normal %d points downward: %v", i, n)
		}
	}
}

func TestLatitudeFold(t *testing.T) {
	tests := []struct {
		wy   float64
		want float64
	}{
		{0, 0},
		{planetCircumference / 4, 90},
		{planetCircumference / 2, 0},
		{3 * planetCircumference / 4, -90},
		{planetCircumference, 0},
		{-planetCircumference / 4, -90},
	}
	for _, tc := range tests {
		if got := latitudeAt(tc.wy); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("latitudeAt(%v)=%v want %v", tc.wy, got, tc.want)
		}
	}
	for wy := -10000.0; wy < 10000; wy += 37.7 {
		if lat := latitudeAt(wy); lat < -90 || lat > 90 {
			t.Fatalf("latitude %v outside [-90,90] at wy=%v", lat, wy)
		}
	}
}

// Threshold pins: the classification table defines visible world character
// and must not drift.
func TestClassifyThresholds(t *testing.T) {
	cfg := Config{Type: PlanetTemperate, SeaLevel: 0.4, MountainThreshold: 0.75}

	tests := []struct {
		name             string
		height, temp, mo float64
		want             Biome
	}{
		{"frozen ocean", 0.2, -15, 0.5, BiomeFrozenOcean},
		{"deep ocean", 0.2, 5, 0.5, BiomeDeepOcean},
		{"shallow ocean", 0.35, 5, 0.5, BiomeShallowOcean},
		{"beach", 0.41, 15, 0.5, BiomeBeach},
		{"snow peak", 0.8, -5, 0.5, BiomeSnowPeak},
		{"mountain", 0.8, 5, 0.5, BiomeMountain},
		{"snow", 0.5, -12, 0.5, BiomeSnow},
		{"tundra", 0.5, -5, 0.5, BiomeTundra},
		{"hot desert", 0.5, 30, 0.2, BiomeDesert},
		{"hot grassland", 0.5, 30, 0.4, BiomeGrassland},
		{"jungle", 0.5, 30, 0.7, BiomeJungle},
		{"warm desert", 0.5, 20, 0.2, BiomeDesert},
		{"warm grassland", 0.5, 20, 0.4, BiomeGrassland},
		{"forest", 0.5, 20, 0.7, BiomeForest},
		{"swamp", 0.5, 20, 0.9, BiomeSwamp},
		{"cool grassland", 0.5, 6, 0.2, BiomeGrassland},
		{"cool forest", 0.5, 6, 0.6, BiomeForest},
	}
	for _, tc := range tests {
		if got := classify(cfg, tc.height, tc.temp, tc.mo); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}

	volcanic := Config{Type: PlanetVolcanic, SeaLevel: 0.2, MountainThreshold: 0.7}
	if got := classify(volcanic, 0.65, 25, 0.2); got != BiomeVolcanic {
		t.Fatalf("volcanic override: got %s", got)
	}
}

func TestLODTable(t *testing.T) {
	if lvl := LevelForDistance(1); lvl.LOD != 0 || lvl.Resolution != 65 {
		t.Fatalf("near tier wrong: %+v", lvl)
	}
	if lvl := LevelForDistance(100); lvl.LOD != 3 {
		t.Fatalf("far distances must clamp to coarsest tier, got %+v", lvl)
	}
	last := -1
	for _, lvl := range Levels() {
		if lvl.LOD <= last {
			t.Fatalf("LOD tiers out of order")
		}
		last = lvl.LOD
	}
}

func TestTileWorldSizeDoublesPerLOD(t *testing.T) {
	for lod := 0; lod < 4; lod++ {
		if TileWorldSize(lod+1) != TileWorldSize(lod)*2 {
			t.Fatalf("tile size must double per LOD step")
		}
	}
}
