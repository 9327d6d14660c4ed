package seed

import "testing"

func TestDerivationsDeterministic(t *testing.T) {
	if ForSector(1, 2, 3, 4) != ForSector(1, 2, 3, 4) {
		t.Fatalf("sector derivation not deterministic")
	}
	if ForSystem(99, 5) != ForSystem(99, 5) {
		t.Fatalf("system derivation not deterministic")
	}
	if FromString("andromeda") != FromString("andromeda") {
		t.Fatalf("string seed not deterministic")
	}
}

func TestNearbySectorSeedsDoNotCollide(t *testing.T) {
	const side = 22 // 22^3 > 10k coordinates
	seen := make(map[int64][3]int)
	collisions := 0
	total := 0
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				s := ForSector(777, x-side/2, y-side/2, z-side/2)
				if _, dup := seen[s]; dup {
					collisions++
				}
				seen[s] = [3]int{x, y, z}
				total++
			}
		}
	}
	if float64(collisions)/float64(total) > 0.001 {
		t.Fatalf("collision rate too high: %d of %d", collisions, total)
	}
}

func TestIndexedLayersDoNotCollide(t *testing.T) {
	for _, derive := range []func(int64, int) int64{ForSystem, ForPlanet, ForPOI, ForNPC, ForItem, ForMission} {
		seen := make(map[int64]bool)
		for i := 0; i < 10000; i++ {
			s := derive(123456, i)
			if seen[s] {
				t.Fatalf("collision at index %d", i)
			}
			seen[s] = true
		}
	}
}

func TestCrossLayerIndependence(t *testing.T) {
	// Same parent, same numeric index, different layers: all must differ.
	seeds := []int64{
		ForSystem(42, 5),
		ForPlanet(42, 5),
		ForPOI(42, 5),
		ForNPC(42, 5),
		ForItem(42, 5),
		ForMission(42, 5),
	}
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			if seeds[i] == seeds[j] {
				t.Fatalf("layers %d and %d produced the same seed", i, j)
			}
		}
	}
}

func TestAdjacentCoordinateAvalanche(t *testing.T) {
	base := ForSector(9, 10, 10, 10)
	for _, other := range []int64{
		ForSector(9, 11, 10, 10),
		ForSector(9, 10, 11, 10),
		ForSector(9, 10, 10, 11),
		ForSector(10, 10, 10, 10),
	} {
		if other == base {
			t.Fatalf("adjacent coordinate produced identical seed")
		}
	}
	if ForTile(5, 0, 1) == ForTile(5, 1, 0) {
		t.Fatalf("transposed tile coordinates must not collide")
	}
}

func TestDistinctRootsDiverge(t *testing.T) {
	if ForGalaxy(1) == ForGalaxy(2) {
		t.Fatalf("different roots produced the same galaxy seed")
	}
}
