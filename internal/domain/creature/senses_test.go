package creature_test

import (
	"testing"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestSenses_Summary(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *creature.Senses
		expected string
	}{
		{
			name:     "empty record",
			build:    creature.NewSenses,
			expected: "",
		},
		{
			name: "single sense",
			build: func() *creature.Senses {
				s := creature.NewSenses()
				s.Set(shared.SenseDarkvision, 60)
				return s
			},
			expected: "darkvision 60 ft",
		},
		{
			name: "multiple senses sorted by key",
			build: func() *creature.Senses {
				s := creature.NewSenses()
				s.Set(shared.SenseTruesight, 30)
				s.Set(shared.SenseBlindsight, 10)
				return s
			},
			expected: "blindsight 10 ft, truesight 30 ft",
		},
		{
			name: "half step range keeps one decimal",
			build: func() *creature.Senses {
				s := creature.NewSenses()
				s.Set(shared.SenseTremorsense, 12.5)
				return s
			},
			expected: "tremorsense 12.5 ft",
		},
		{
			name: "special text trails the ranges",
			build: func() *creature.Senses {
				s := creature.NewSenses()
				s.Set(shared.SenseDarkvision, 60)
				s.Special = "Keen smell"
				return s
			},
			expected: "darkvision 60 ft, Keen smell",
		},
		{
			name: "special only",
			build: func() *creature.Senses {
				s := creature.NewSenses()
				s.Special = "Keen smell"
				return s
			},
			expected: "Keen smell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.build().Summary())
		})
	}
}

func TestSenses_IsEmpty(t *testing.T) {
	var nilSenses *creature.Senses
	assert.True(t, nilSenses.IsEmpty())
	assert.True(t, creature.NewSenses().IsEmpty())

	withRange := creature.NewSenses()
	withRange.Set(shared.SenseDarkvision, 60)
	assert.False(t, withRange.IsEmpty())

	withSpecial := creature.NewSenses()
	withSpecial.Special = "Keen smell"
	assert.False(t, withSpecial.IsEmpty())
}

func TestSenses_SetOnZeroValue(t *testing.T) {
	// Set must work on a record decoded from JSON with no ranges map
	var s creature.Senses
	s.Set(shared.SenseBlindsight, 30)

	v, ok := s.Range(shared.SenseBlindsight)
	assert.True(t, ok)
	assert.Equal(t, float64(30), v)
}
