package creature

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// senseSegmentPattern matches one comma-separated term of a legacy sense
// string: a leading word, a number, and an optional trailing unit word.
// The unit word is matched so "Darkvision 60 ft" parses, but its value is
// discarded; sense ranges share a single global unit.
var senseSegmentPattern = regexp.MustCompile(`^([A-Za-z]+)\s*([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]+)?`)

// MigrateSenses upgrades a legacy free-text sense descriptor stored at
// traits.senses into the structured record at attributes.senses, mutating
// data in place.
//
// Legacy strings look like "Darkvision 60 ft, Blindsight 30 ft" but were
// user-entered and may be arbitrary prose. Every term whose leading word is
// a recognized sense type becomes a numeric range entry; terms that fail to
// parse are skipped. Only when not a single term matched is the original
// string preserved verbatim in the record's special field, so prose like
// "Keen smell and excellent hearing" survives migration intact.
//
// The operation never fails: a missing or non-string legacy value is a
// no-op, and running it again on an already-migrated record changes
// nothing.
func MigrateSenses(data *CreatureData, recognized map[shared.SenseType]struct{}) {
	if data == nil || len(data.Traits.Senses) == 0 {
		return
	}

	var legacy string
	if err := json.Unmarshal(data.Traits.Senses, &legacy); err != nil {
		// Not textual; already-structured or corrupt data is left alone.
		return
	}

	if data.Attributes.Senses == nil {
		data.Attributes.Senses = NewSenses()
	}
	senses := data.Attributes.Senses
	if senses.Ranges == nil {
		senses.Ranges = make(map[shared.SenseType]float64)
	}

	matched := false
	for _, segment := range strings.Split(legacy, ",") {
		segment = strings.TrimSpace(segment)

		m := senseSegmentPattern.FindStringSubmatch(segment)
		if m == nil {
			continue
		}

		key := shared.SenseType(strings.ToLower(m[1]))
		if _, ok := recognized[key]; !ok {
			continue
		}

		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}

		senses.Ranges[key] = roundToHalf(value)
		matched = true
	}

	// Nothing matched but the string carried something: treat the whole
	// thing as special sense material rather than dropping it.
	if !matched && legacy != "" {
		senses.Special = legacy
	}
}

// roundToHalf rounds to the nearest 0.5, the canonical granularity for
// range values.
func roundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
