package galaxy

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"starforge-server/internal/prng"
)

// Name synthesis: one of three style branches chosen by weighted roll.
// Within a sector, names landing within a small edit distance of an already
// issued name are rerolled so catalogs read distinct.

var nameStyleWeights = []float64{5, 3, 2} // syllables, greek+root, catalog number

var syllableOnsets = []string{
	"ka", "ve", "tor", "al", "zan", "mir", "eth", "or", "ul", "bra",
	"cyg", "dra", "fen", "gal", "hel", "ix", "jun", "kel", "lyr", "nov",
}

var syllableCodas = []string{
	"us", "a", "ion", "ar", "is", "os", "eth", "ia", "or", "ul",
	"ex", "an", "yn", "el", "ith",
}

var greekLetters = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi",
	"Rho", "Sigma", "Tau", "Upsilon", "Phi", "Chi", "Psi", "Omega",
}

var rootNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Mirfak", "Alioth", "Dubhe", "Wezen", "Sargas", "Avior", "Alhena",
	"Polaris", "Alphard", "Hamal", "Algieba", "Diphda", "Mizar", "Nunki",
	"Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab", "Saiph",
	"Enif", "Schedar", "Markab", "Unukalhai",
}

func rollName(rng *prng.Stream, taken []string) string {
	name := synthesizeName(rng)
	for attempt := 1; attempt < nameAttempts && tooSimilar(name, taken); attempt++ {
		name = synthesizeName(rng)
	}
	// Last attempt is accepted even if still similar; names are flavor, not
	// identity, and generation must not fail.
	return name
}

func synthesizeName(rng *prng.Stream) string {
	switch rng.WeightedIndex(nameStyleWeights) {
	case 0:
		return syllableName(rng)
	case 1:
		return greekLetters[rng.Pick(len(greekLetters))] + " " + rootNames[rng.Pick(len(rootNames))]
	default:
		return fmt.Sprintf("SF-%04d", rng.IntRange(0, 9999))
	}
}

func syllableName(rng *prng.Stream) string {
	parts := rng.IntRange(2, 3)
	name := ""
	for i := 0; i < parts; i++ {
		name += syllableOnsets[rng.Pick(len(syllableOnsets))]
	}
	name += syllableCodas[rng.Pick(len(syllableCodas))]
	// Capitalize the first ASCII letter.
	if len(name) > 0 && name[0] >= 'a' && name[0] <= 'z' {
		name = string(name[0]-'a'+'A') + name[1:]
	}
	return name
}

func tooSimilar(name string, taken []string) bool {
	for _, other := range taken {
		if levenshtein.ComputeDistance(name, other) < nameMinDistance {
			return true
		}
	}
	return false
}
