package rulebook_test

import (
	"testing"

	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSenseKeySet(t *testing.T) {
	set := rulebook.SenseKeySet()

	require.Len(t, set, 4)
	for _, key := range []shared.SenseType{
		shared.SenseDarkvision,
		shared.SenseBlindsight,
		shared.SenseTremorsense,
		shared.SenseTruesight,
	} {
		assert.Contains(t, set, key)
	}
}

func TestSenses_ReturnsCopy(t *testing.T) {
	first := rulebook.Senses()
	first[shared.SenseType("heatvision")] = "Heatvision"

	assert.NotContains(t, rulebook.Senses(), shared.SenseType("heatvision"))
}

func TestSenseLabel(t *testing.T) {
	assert.Equal(t, "Darkvision", rulebook.SenseLabel(shared.SenseDarkvision))
	assert.Equal(t, "heatvision", rulebook.SenseLabel(shared.SenseType("heatvision")))
}
