package rulebook

import (
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// senseLabels is the closed vocabulary of sense types the schema recognizes.
// Keys are lowercase; matching against legacy text is done case-insensitively
// by lowering the candidate before lookup.
var senseLabels = map[shared.SenseType]string{
	shared.SenseDarkvision:  "Darkvision",
	shared.SenseBlindsight:  "Blindsight",
	shared.SenseTremorsense: "Tremorsense",
	shared.SenseTruesight:   "Truesight",
}

// Senses returns the recognized sense types mapped to display labels.
func Senses() map[shared.SenseType]string {
	out := make(map[shared.SenseType]string, len(senseLabels))
	for k, v := range senseLabels {
		out[k] = v
	}
	return out
}

// SenseKeySet returns the recognized sense-type keys as a set, in the shape
// the sense migration expects.
func SenseKeySet() map[shared.SenseType]struct{} {
	set := make(map[shared.SenseType]struct{}, len(senseLabels))
	for k := range senseLabels {
		set[k] = struct{}{}
	}
	return set
}

// SenseLabel returns the display label for a sense type, or the raw key if
// the type is not recognized.
func SenseLabel(key shared.SenseType) string {
	if label, ok := senseLabels[key]; ok {
		return label
	}
	return string(key)
}
