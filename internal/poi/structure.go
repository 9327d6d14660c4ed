package poi

import (
	"math"

	"starforge-server/internal/prng"
)

// Structure grammar: a POI seed and footprint expand into a list of placed
// structural elements. A weighted style roll picks one of three layout
// algorithms, then a weathering pass scatters extra rubble near damaged
// elements.

// LayoutStyle selects the arrangement algorithm.
type LayoutStyle string

const (
	StyleCircular  LayoutStyle = "circular"
	StyleLinear    LayoutStyle = "linear"
	StyleClustered LayoutStyle = "clustered"
)

var styleWeights = []float64{45, 30, 25}

var styleOrder = []LayoutStyle{StyleCircular, StyleLinear, StyleClustered}

// ElementType is the closed set of structural pieces the grammar places.
type ElementType string

const (
	ElementPillar   ElementType = "pillar"
	ElementArch     ElementType = "arch"
	ElementAltar    ElementType = "altar"
	ElementStatue   ElementType = "statue"
	ElementRubble   ElementType = "rubble"
	ElementPedestal ElementType = "pedestal"
)

// Element is one placed piece. Position is local to the POI origin.
type Element struct {
	Type     ElementType `json:"type"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Rotation float64     `json:"rotation"`
	Scale    float64     `json:"scale"`
	Damaged  bool        `json:"damaged"`
}

// StructureLayout is the generated arrangement for one POI.
type StructureLayout struct {
	Style    LayoutStyle `json:"style"`
	Entrance float64     `json:"entrance"` // direction in radians
	Elements []Element   `json:"elements"`
}

const (
	damageChance  = 0.35
	rubbleChance  = 0.6
	rubbleSpread  = 2.5
	minStructSize = 6.0
)

// GenerateStructure expands a POI seed and size into a structural layout.
// Sizes below the grammar's minimum are clamped up so every layout has room
// for at least a small ring of elements.
func GenerateStructure(poiSeed int64, size float64) StructureLayout {
	if size < minStructSize {
		size = minStructSize
	}
	rng := prng.New(poiSeed)

	style := styleOrder[rng.WeightedIndex(styleWeights)]
	entrance := rng.FloatRange(0, 2*math.Pi)

	layout := StructureLayout{Style: style, Entrance: entrance}
	switch style {
	case StyleCircular:
		layout.Elements = circularLayout(rng, size, entrance)
	case StyleLinear:
		layout.Elements = linearLayout(rng, size, entrance)
	default:
		layout.Elements = clusteredLayout(rng, size)
	}

	layout.Elements = append(layout.Elements, weathering(rng, layout.Elements)...)
	return layout
}

// circularLayout rings pillars around a central altar, leaving a gap at the
// entrance direction, with an arch framing the way in.
func circularLayout(rng *prng.Stream, size, entrance float64) []Element {
	radius := size * 0.4
	count := rng.IntRange(6, 12)
	elements := []Element{
		{Type: ElementAltar, Scale: rng.FloatRange(0.8, 1.3), Rotation: entrance},
	}
	for i := 0; i < count; i++ {
		angle := entrance + float64(i+1)*2*math.Pi/float64(count+1)
		elements = append(elements, Element{
			Type:     ElementPillar,
			X:        math.Cos(angle) * radius,
			Y:        math.Sin(angle) * radius,
			Rotation: angle + math.Pi/2,
			Scale:    rng.FloatRange(0.7, 1.2),
			Damaged:  rng.Chance(damageChance),
		})
	}
	elements = append(elements, Element{
		Type:     ElementArch,
		X:        math.Cos(entrance) * radius,
		Y:        math.Sin(entrance) * radius,
		Rotation: entrance,
		Scale:    rng.FloatRange(0.9, 1.4),
		Damaged:  rng.Chance(damageChance),
	})
	return elements
}

// linearLayout builds a processional way: paired pillars flanking the walk
// from the entrance to a pedestal at the far end.
func linearLayout(rng *prng.Stream, size, entrance float64) []Element {
	length := size * 0.8
	pairs := rng.IntRange(3, 6)
	width := size * 0.15
	dirX, dirY := math.Cos(entrance), math.Sin(entrance)
	sideX, sideY := -dirY, dirX

	var elements []Element
	for i := 0; i < pairs; i++ {
		along := length * float64(i+1) / float64(pairs+1)
		for _, side := range []float64{-1, 1} {
			elements = append(elements, Element{
				Type:     ElementPillar,
				X:        dirX*along + sideX*width*side,
				Y:        dirY*along + sideY*width*side,
				Rotation: entrance,
				Scale:    rng.FloatRange(0.7, 1.1),
				Damaged:  rng.Chance(damageChance),
			})
		}
	}
	elements = append(elements, Element{
		Type:     ElementPedestal,
		X:        dirX * length,
		Y:        dirY * length,
		Rotation: entrance + math.Pi,
		Scale:    rng.FloatRange(0.9, 1.3),
		Damaged:  rng.Chance(damageChance),
	})
	return elements
}

// clusteredLayout scatters statues and altars in loose groups.
func clusteredLayout(rng *prng.Stream, size float64) []Element {
	clusters := rng.IntRange(2, 4)
	var elements []Element
	for c := 0; c < clusters; c++ {
		cx, cy := rng.InCircle(size * 0.45)
		members := rng.IntRange(2, 5)
		for m := 0; m < members; m++ {
			ox, oy := rng.InCircle(size * 0.12)
			etype := ElementStatue
			if m == 0 {
				etype = ElementAltar
			}
			elements = append(elements, Element{
				Type:     etype,
				X:        cx + ox,
				Y:        cy + oy,
				Rotation: rng.FloatRange(0, 2*math.Pi),
				Scale:    rng.FloatRange(0.6, 1.2),
				Damaged:  rng.Chance(damageChance),
			})
		}
	}
	return elements
}

// weathering scatters rubble next to damaged elements.
func weathering(rng *prng.Stream, elements []Element) []Element {
	var extra []Element
	for _, e := range elements {
		if !e.Damaged || !rng.Chance(rubbleChance) {
			continue
		}
		ox, oy := rng.InCircle(rubbleSpread)
		extra = append(extra, Element{
			Type:     ElementRubble,
			X:        e.X + ox,
			Y:        e.Y + oy,
			Rotation: rng.FloatRange(0, 2*math.Pi),
			Scale:    rng.FloatRange(0.3, 0.8),
		})
	}
	return extra
}
