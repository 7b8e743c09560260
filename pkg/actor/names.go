package actor

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameSegments = []string{
	"qa", "wer", "was", "ref", "dre", "tre", "ghu", "tyu", "huy", "jui",
	"iok", "lok", "pol", "kio", "zas", "xas", "mon", "bru", "vuh", "cas",
}

// Intner is the slice of a random source name generation needs.
// *rand.Rand from math/rand/v2 satisfies it.
type Intner interface {
	IntN(n int) int
}

// RandomName joins two random segments behind an archetype title,
// e.g. "Prisoner Drekio".
func RandomName(title string, rng Intner) string {
	seg := nameSegments[rng.IntN(len(nameSegments))] + nameSegments[rng.IntN(len(nameSegments))]
	return title + " " + cases.Title(language.English).String(seg)
}
