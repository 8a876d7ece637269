package creature

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// Senses is the structured representation of a creature's special senses:
// recognized sense types mapped to a range value, plus a free-text field for
// anything that could not be classified.
type Senses struct {
	Ranges  map[shared.SenseType]float64 `json:"ranges,omitempty"`
	Units   string                       `json:"units"`
	Special string                       `json:"special,omitempty"`
}

// NewSenses returns an empty sense record with the canonical range unit.
func NewSenses() *Senses {
	return &Senses{
		Ranges: make(map[shared.SenseType]float64),
		Units:  shared.SenseUnitsFeet,
	}
}

// Set records a range for a sense type, overwriting any prior value.
func (s *Senses) Set(key shared.SenseType, rangeVal float64) {
	if s.Ranges == nil {
		s.Ranges = make(map[shared.SenseType]float64)
	}
	s.Ranges[key] = rangeVal
}

// Range returns the recorded range for a sense type, if any.
func (s *Senses) Range(key shared.SenseType) (float64, bool) {
	v, ok := s.Ranges[key]
	return v, ok
}

// IsEmpty reports whether the record carries no sense data at all.
func (s *Senses) IsEmpty() bool {
	return s == nil || (len(s.Ranges) == 0 && s.Special == "")
}

// Summary renders the record as a display string, e.g.
// "darkvision 60 ft, truesight 30 ft, Keen smell".
func (s *Senses) Summary() string {
	if s.IsEmpty() {
		return ""
	}

	units := s.Units
	if units == "" {
		units = shared.SenseUnitsFeet
	}

	keys := make([]shared.SenseType, 0, len(s.Ranges))
	for k := range s.Ranges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s %s", k, formatRange(s.Ranges[k]), units))
	}
	if s.Special != "" {
		parts = append(parts, s.Special)
	}

	return strings.Join(parts, ", ")
}

// formatRange drops the trailing ".0" for whole values so summaries read
// "60 ft" rather than "60.0 ft".
func formatRange(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
