package hash

import "testing"

func TestCombineDeterministic(t *testing.T) {
	a := Combine(42, 1, 2.5, "orion", int64(-7))
	b := Combine(42, 1, 2.5, "orion", int64(-7))
	if a != b {
		t.Fatalf("expected identical hashes, got %d and %d", a, b)
	}
}

func TestCombineOrderMatters(t *testing.T) {
	if Combine(9, 1, 2) == Combine(9, 2, 1) {
		t.Fatalf("expected order-sensitive fold")
	}
}

func TestStringBoundariesDoNotCollide(t *testing.T) {
	if Combine(0, "ab", "c") == Combine(0, "a", "bc") {
		t.Fatalf("string boundary collision")
	}
}

func TestUnsupportedTypeFoldsDeterministically(t *testing.T) {
	type odd struct{ A, B int }
	a := Combine(5, odd{1, 2})
	b := Combine(5, odd{1, 2})
	if a != b {
		t.Fatalf("fallback fold must be deterministic, got %d and %d", a, b)
	}
	if a == Combine(5, odd{2, 1}) {
		t.Fatalf("fallback fold ignored the value")
	}
}

func TestToFloatRangeInvariant(t *testing.T) {
	for i := int64(-5000); i < 5000; i++ {
		f := ToFloat(Combine(i, "range"))
		if f < 0 || f >= 1 {
			t.Fatalf("ToFloat out of [0,1): %v at %d", f, i)
		}
	}
}

func TestToFloatDecileDistribution(t *testing.T) {
	const samples = 10000
	var buckets [10]int
	for i := 0; i < samples; i++ {
		f := ToFloat(Combine(777, i))
		buckets[int(f*10)]++
	}
	expected := samples / 10
	for d, n := range buckets {
		if n < expected*85/100 || n > expected*115/100 {
			t.Fatalf("decile %d count %d outside ±15%% of %d", d, n, expected)
		}
	}
}

func TestToIntRangeInclusive(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := ToIntRange(Combine(3, i), 2, 6)
		if v < 2 || v > 6 {
			t.Fatalf("value %d outside [2,6]", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 6; v++ {
		if !seen[v] {
			t.Fatalf("value %d never produced", v)
		}
	}
}

func TestAvalancheOnSingleComponent(t *testing.T) {
	base := Combine(100, 10, 20, 30)
	for _, perturbed := range []int64{
		Combine(100, 11, 20, 30),
		Combine(100, 10, 21, 30),
		Combine(100, 10, 20, 31),
		Combine(101, 10, 20, 30),
	} {
		if perturbed == base {
			t.Fatalf("single-component change did not alter hash")
		}
	}
}
