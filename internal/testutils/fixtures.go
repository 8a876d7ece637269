package testutils

import (
	"encoding/json"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// CreateTestCreature builds a small but complete creature entity.
func CreateTestCreature(id, ownerID, realmID, name string) *creature.Creature {
	return &creature.Creature{
		ID:              id,
		OwnerID:         ownerID,
		RealmID:         realmID,
		Name:            name,
		Size:            shared.SizeMedium,
		Type:            "humanoid",
		Alignment:       "neutral",
		ChallengeRating: 0.5,
		ArmorClass:      13,
		HitPoints:       11,
		HitDice:         "2d8",
		Speed:           30,
		Abilities: map[shared.Attribute]*creature.AbilityScore{
			shared.AttributeStrength:     creature.NewAbilityScore(14),
			shared.AttributeDexterity:    creature.NewAbilityScore(12),
			shared.AttributeConstitution: creature.NewAbilityScore(13),
			shared.AttributeIntelligence: creature.NewAbilityScore(8),
			shared.AttributeWisdom:       creature.NewAbilityScore(10),
			shared.AttributeCharisma:     creature.NewAbilityScore(9),
		},
		Status: shared.CreatureStatusActive,
	}
}

// CreateLegacyCreatureData builds a serialized record still carrying a
// free-text sense descriptor at the legacy location.
func CreateLegacyCreatureData(id, ownerID, realmID, name, legacySenses string) *creature.CreatureData {
	raw, _ := json.Marshal(legacySenses)
	return &creature.CreatureData{
		ID:      id,
		OwnerID: ownerID,
		RealmID: realmID,
		Name:    name,
		Status:  shared.CreatureStatusActive,
		Traits: creature.TraitsData{
			Senses: raw,
		},
	}
}
