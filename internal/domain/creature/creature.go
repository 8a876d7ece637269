package creature

import (
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"

	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// AbilityScore is a raw ability score plus its derived modifier.
type AbilityScore struct {
	Score int `json:"score"`
	Bonus int `json:"bonus"`
}

// NewAbilityScore derives the modifier from the raw score.
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score: score,
		Bonus: abilityModifier(score),
	}
}

func abilityModifier(score int) int {
	// Integer division rounds toward zero; modifiers round down, so odd
	// scores below 10 need the extra step.
	mod := score - 10
	if mod < 0 {
		return (mod - 1) / 2
	}
	return mod / 2
}

// SkillBonus is a creature's bonus in one skill, with proficiency tracked
// separately so it survives recalculation.
type SkillBonus struct {
	Bonus      int  `json:"bonus"`
	Proficient bool `json:"proficient"`
}

// Creature is a stat-block entity: a monster, NPC, or summoned being.
type Creature struct {
	ID      string
	OwnerID string
	RealmID string
	Name    string

	Size            shared.Size
	Type            string
	Alignment       string
	ChallengeRating float32

	ArmorClass int
	HitPoints  int
	HitDice    string
	Speed      int

	Abilities map[shared.Attribute]*AbilityScore
	Skills    map[string]*SkillBonus
	Senses    *Senses
	Resources *Resources

	Status shared.CreatureStatus
}

// SetAbilityScore records a score and its derived modifier.
func (c *Creature) SetAbilityScore(attr shared.Attribute, score int) error {
	if score < shared.AbilityScoreMin || score > shared.AbilityScoreMax {
		return dnderr.Validationf("ability score %d out of range [%d, %d]",
			score, shared.AbilityScoreMin, shared.AbilityScoreMax).
			WithMeta("attribute", string(attr))
	}

	if c.Abilities == nil {
		c.Abilities = make(map[shared.Attribute]*AbilityScore)
	}
	c.Abilities[attr] = NewAbilityScore(score)
	return nil
}

// AbilityBonus returns the modifier for an attribute, 0 when unset.
func (c *Creature) AbilityBonus(attr shared.Attribute) int {
	if score, ok := c.Abilities[attr]; ok && score != nil {
		return score.Bonus
	}
	return 0
}

// SetSkill records a skill bonus. The key must exist in the rulebook's
// skill table.
func (c *Creature) SetSkill(key string, bonus int, proficient bool) error {
	if _, ok := rulebook.GetSkill(key); !ok {
		return dnderr.InvalidArgumentf("unknown skill %q", key)
	}

	if c.Skills == nil {
		c.Skills = make(map[string]*SkillBonus)
	}
	c.Skills[key] = &SkillBonus{Bonus: bonus, Proficient: proficient}
	return nil
}

// SenseRecord returns the creature's sense record, creating it on first use.
func (c *Creature) SenseRecord() *Senses {
	if c.Senses == nil {
		c.Senses = NewSenses()
	}
	return c.Senses
}

// Validate checks schema constraints before the creature is persisted.
func (c *Creature) Validate() error {
	if c.Name == "" {
		return dnderr.Validation("creature name is required")
	}
	if c.Size != "" && !c.Size.IsValid() {
		return dnderr.Validationf("invalid creature size %q", c.Size).
			WithMeta("size", string(c.Size))
	}
	if c.ChallengeRating < 0 {
		return dnderr.Validationf("challenge rating cannot be negative: %v", c.ChallengeRating)
	}
	for attr, score := range c.Abilities {
		if score == nil {
			continue
		}
		if score.Score < shared.AbilityScoreMin || score.Score > shared.AbilityScoreMax {
			return dnderr.Validationf("ability score %d out of range [%d, %d]",
				score.Score, shared.AbilityScoreMin, shared.AbilityScoreMax).
				WithMeta("attribute", string(attr))
		}
	}
	for key := range c.Skills {
		if _, ok := rulebook.GetSkill(key); !ok {
			return dnderr.Validationf("unknown skill %q", key)
		}
	}
	return nil
}
