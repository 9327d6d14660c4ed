package galaxy

import (
	"testing"

	"github.com/agnivade/levenshtein"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(12345, 3, -2, 7)
	b := Generate(12345, 3, -2, 7)
	if len(a.Stars) != len(b.Stars) {
		t.Fatalf("star counts differ: %d vs %d", len(a.Stars), len(b.Stars))
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs: %+v vs %+v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestStarCountWithinBounds(t *testing.T) {
	for _, coords := range [][3]int{{0, 0, 0}, {5, 5, 5}, {-30, 10, 2}, {60, 0, 0}, {100, 100, 100}} {
		sec := Generate(777, coords[0], coords[1], coords[2])
		if len(sec.Stars) < 1 || len(sec.Stars) > MaxStars {
			t.Fatalf("sector %v has %d stars", coords, len(sec.Stars))
		}
	}
}

func TestCoreDenserThanRim(t *testing.T) {
	core := Generate(42, 0, 0, 0)
	rim := Generate(42, 80, 0, 0)
	if len(core.Stars) <= len(rim.Stars) {
		t.Fatalf("core sector (%d stars) should out-populate rim sector (%d stars)", len(core.Stars), len(rim.Stars))
	}
}

func TestStarPositionsSeparatedAndInCube(t *testing.T) {
	sec := Generate(9, 1, 2, 3)
	for i, s := range sec.Stars {
		for _, c := range s.Position {
			if c < 0 || c > 1 {
				t.Fatalf("star %d position outside unit cube: %v", i, s.Position)
			}
		}
		for j := i + 1; j < len(sec.Stars); j++ {
			o := sec.Stars[j].Position
			dx := s.Position[0] - o[0]
			dy := s.Position[1] - o[1]
			dz := s.Position[2] - o[2]
			if dx*dx+dy*dy+dz*dz < minSeparation*minSeparation {
				t.Fatalf("stars %d and %d violate minimum separation", i, j)
			}
		}
	}
}

func TestSpectralRarityOrdering(t *testing.T) {
	counts := map[SpectralClass]int{}
	for x := 0; x < 30; x++ {
		for _, s := range Generate(1001, x, 0, 0).Stars {
			counts[s.Class]++
		}
	}
	if counts[ClassM] <= counts[ClassG] {
		t.Fatalf("M-class (%d) should be more common than G-class (%d)", counts[ClassM], counts[ClassG])
	}
	if counts[ClassO] >= counts[ClassM] {
		t.Fatalf("O-class (%d) should be far rarer than M-class (%d)", counts[ClassO], counts[ClassM])
	}
}

func TestNamesDistinctWithinSector(t *testing.T) {
	sec := Generate(31337, 4, 4, 4)
	similar := 0
	for i := 0; i < len(sec.Stars); i++ {
		if sec.Stars[i].Name == "" {
			t.Fatalf("star %d has empty name", i)
		}
		for j := i + 1; j < len(sec.Stars); j++ {
			if levenshtein.ComputeDistance(sec.Stars[i].Name, sec.Stars[j].Name) < nameMinDistance {
				similar++
			}
		}
	}
	// Rerolling is bounded, so a handful of near-duplicates may survive in a
	// 300-star catalog; they must stay rare.
	if pairs := len(sec.Stars) * (len(sec.Stars) - 1) / 2; pairs > 0 && float64(similar)/float64(pairs) > 0.01 {
		t.Fatalf("too many near-duplicate names: %d of %d pairs", similar, pairs)
	}
}

func TestAdjacentSectorsDiffer(t *testing.T) {
	a := Generate(555, 10, 10, 10)
	b := Generate(555, 11, 10, 10)
	if a.Seed == b.Seed {
		t.Fatalf("adjacent sectors share a seed")
	}
	if len(a.Stars) > 0 && len(b.Stars) > 0 && a.Stars[0] == b.Stars[0] {
		t.Fatalf("adjacent sectors generated identical first stars")
	}
}
