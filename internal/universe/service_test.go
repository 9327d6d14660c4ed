package universe

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"starforge-server/internal/shared/errors"
	"starforge-server/internal/terrain"
)

func testService(seedText string) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(seedText, nil, time.Minute, logger)
}

func TestRootSeedParsing(t *testing.T) {
	if got := RootSeed("12345"); got != 12345 {
		t.Fatalf("numeric seed = %d, want 12345", got)
	}
	if got := RootSeed("-7"); got != -7 {
		t.Fatalf("negative numeric seed = %d, want -7", got)
	}
	if RootSeed("orion") == RootSeed("orionx") {
		t.Fatal("distinct word seeds hashed to the same root")
	}
	if RootSeed("orion") != RootSeed("orion") {
		t.Fatal("word seed not stable")
	}
}

func TestFacadeDeterminism(t *testing.T) {
	ctx := context.Background()
	a := testService("orion")
	b := testService("orion")

	secA := a.Sector(ctx, 1, -2, 3)
	secB := b.Sector(ctx, 1, -2, 3)
	if len(secA.Stars) != len(secB.Stars) {
		t.Fatalf("star counts differ: %d vs %d", len(secA.Stars), len(secB.Stars))
	}
	for i := range secA.Stars {
		if secA.Stars[i] != secB.Stars[i] {
			t.Fatalf("star %d differs between services", i)
		}
	}

	sysA, err := a.System(ctx, 1, -2, 3, 0)
	if err != nil {
		t.Fatalf("System: %v", err)
	}
	sysB, _ := b.System(ctx, 1, -2, 3, 0)
	if len(sysA.Bodies) != len(sysB.Bodies) {
		t.Fatal("body counts differ")
	}
	for i := range sysA.Bodies {
		if sysA.Bodies[i].Seed != sysB.Bodies[i].Seed || sysA.Bodies[i].OrbitAU != sysB.Bodies[i].OrbitAU {
			t.Fatalf("body %d differs", i)
		}
	}
}

func TestStarOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := testService("orion")

	_, err := s.Star(ctx, 0, 0, 0, 100000)
	if err == nil {
		t.Fatal("expected error for out-of-range star index")
	}
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatalf("error type = %s, want not_found", errors.GetType(err))
	}

	_, err = s.System(ctx, 0, 0, 0, -1)
	if err == nil {
		t.Fatal("expected error for negative star index")
	}
}

func TestPlanetQueries(t *testing.T) {
	ctx := context.Background()
	s := testService("orion")

	sys, err := s.System(ctx, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("System: %v", err)
	}
	if len(sys.Bodies) == 0 {
		t.Skip("star 0 has no planets under this seed")
	}

	d, err := s.PlanetDetail(ctx, 0, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("PlanetDetail: %v", err)
	}
	if d.Seed != sys.Bodies[0].Seed {
		t.Fatalf("detail seed = %d, want body seed %d", d.Seed, sys.Bodies[0].Seed)
	}

	_, err = s.PlanetDetail(ctx, 0, 0, 0, 0, len(sys.Bodies))
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatalf("out-of-range planet error type = %s, want not_found", errors.GetType(err))
	}
}

// findPlanet scans the origin sector for the first planet matching the
// predicate and returns its (starIndex, planetIndex).
func findPlanet(t *testing.T, s *Service, match func(terrain.PlanetType) bool) (int, int) {
	t.Helper()
	ctx := context.Background()
	sec := s.Sector(ctx, 0, 0, 0)
	maxStars := len(sec.Stars)
	if maxStars > 40 {
		maxStars = 40
	}
	for si := 0; si < maxStars; si++ {
		sys, err := s.System(ctx, 0, 0, 0, si)
		if err != nil {
			t.Fatalf("System(%d): %v", si, err)
		}
		for pi, body := range sys.Bodies {
			if match(body.Type) {
				return si, pi
			}
		}
	}
	return -1, -1
}

func TestTerrainQueriesOnSurfacePlanet(t *testing.T) {
	ctx := context.Background()
	s := testService("orion")

	si, pi := findPlanet(t, s, func(pt terrain.PlanetType) bool { return pt != terrain.PlanetGasGiant })
	if si < 0 {
		t.Fatal("no surface planet found in the first 40 systems")
	}

	cfg, err := s.TerrainConfig(ctx, 0, 0, 0, si, pi)
	if err != nil {
		t.Fatalf("TerrainConfig: %v", err)
	}

	tile, err := s.Tile(ctx, 0, 0, 0, si, pi, 0, 0, 0, 17)
	if err != nil {
		t.Fatalf("Tile: %v", err)
	}
	if len(tile.Heights) != 17*17 {
		t.Fatalf("tile heights len = %d, want %d", len(tile.Heights), 17*17)
	}

	h, err := s.HeightAt(ctx, 0, 0, 0, si, pi, 10.5, -3.25)
	if err != nil {
		t.Fatalf("HeightAt: %v", err)
	}
	if h != terrain.HeightAt(cfg, 10.5, -3.25) {
		t.Fatal("facade height disagrees with direct query")
	}

	if _, err := s.BiomeAt(ctx, 0, 0, 0, si, pi, 10.5, -3.25); err != nil {
		t.Fatalf("BiomeAt: %v", err)
	}

	if _, err := s.Tile(ctx, 0, 0, 0, si, pi, 0, 0, 0, 1); err == nil {
		t.Fatal("resolution 1 accepted")
	}
}

func TestGasGiantRejectedForTerrain(t *testing.T) {
	ctx := context.Background()
	s := testService("orion")

	si, pi := findPlanet(t, s, func(pt terrain.PlanetType) bool { return pt == terrain.PlanetGasGiant })
	if si < 0 {
		t.Skip("no gas giant in the first 40 systems under this seed")
	}

	_, err := s.TerrainConfig(ctx, 0, 0, 0, si, pi)
	if errors.GetType(err) != errors.ErrorTypeValidation {
		t.Fatalf("gas giant terrain error type = %v, want validation", errors.GetType(err))
	}

	pois, err := s.POIs(ctx, 0, 0, 0, si, pi)
	if err != nil {
		t.Fatalf("POIs on gas giant: %v", err)
	}
	if len(pois) != 0 {
		t.Fatalf("gas giant has %d POIs, want 0", len(pois))
	}
}

func TestStructureLookup(t *testing.T) {
	ctx := context.Background()
	s := testService("orion")

	si, pi := findPlanet(t, s, func(pt terrain.PlanetType) bool { return pt != terrain.PlanetGasGiant })
	if si < 0 {
		t.Fatal("no surface planet found")
	}

	pois, err := s.POIs(ctx, 0, 0, 0, si, pi)
	if err != nil {
		t.Fatalf("POIs: %v", err)
	}
	if len(pois) == 0 {
		t.Skip("surface planet rolled zero POIs")
	}

	layout, err := s.Structure(ctx, 0, 0, 0, si, pi, 0)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	if len(layout.Elements) == 0 {
		t.Fatal("structure has no elements")
	}

	again, _ := s.Structure(ctx, 0, 0, 0, si, pi, 0)
	if len(again.Elements) != len(layout.Elements) || again.Style != layout.Style {
		t.Fatal("structure lookup not deterministic")
	}

	if _, err := s.Structure(ctx, 0, 0, 0, si, pi, len(pois)); errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatal("out-of-range POI index should be not_found")
	}
}
