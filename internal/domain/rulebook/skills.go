package rulebook

import (
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// Skill describes one entry in the skill table: its lookup key, display name,
// and the ability score its checks are rolled with.
type Skill struct {
	Key     string           `json:"key"`
	Name    string           `json:"name"`
	Ability shared.Attribute `json:"ability"`
}

var skills = []Skill{
	{Key: "acrobatics", Name: "Acrobatics", Ability: shared.AttributeDexterity},
	{Key: "animal-handling", Name: "Animal Handling", Ability: shared.AttributeWisdom},
	{Key: "arcana", Name: "Arcana", Ability: shared.AttributeIntelligence},
	{Key: "athletics", Name: "Athletics", Ability: shared.AttributeStrength},
	{Key: "deception", Name: "Deception", Ability: shared.AttributeCharisma},
	{Key: "history", Name: "History", Ability: shared.AttributeIntelligence},
	{Key: "insight", Name: "Insight", Ability: shared.AttributeWisdom},
	{Key: "intimidation", Name: "Intimidation", Ability: shared.AttributeCharisma},
	{Key: "investigation", Name: "Investigation", Ability: shared.AttributeIntelligence},
	{Key: "medicine", Name: "Medicine", Ability: shared.AttributeWisdom},
	{Key: "nature", Name: "Nature", Ability: shared.AttributeIntelligence},
	{Key: "perception", Name: "Perception", Ability: shared.AttributeWisdom},
	{Key: "performance", Name: "Performance", Ability: shared.AttributeCharisma},
	{Key: "persuasion", Name: "Persuasion", Ability: shared.AttributeCharisma},
	{Key: "religion", Name: "Religion", Ability: shared.AttributeIntelligence},
	{Key: "sleight-of-hand", Name: "Sleight of Hand", Ability: shared.AttributeDexterity},
	{Key: "stealth", Name: "Stealth", Ability: shared.AttributeDexterity},
	{Key: "survival", Name: "Survival", Ability: shared.AttributeWisdom},
}

// Skills returns the full skill table.
func Skills() []Skill {
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// GetSkill looks up a skill by key.
func GetSkill(key string) (Skill, bool) {
	for _, s := range skills {
		if s.Key == key {
			return s, true
		}
	}
	return Skill{}, false
}
