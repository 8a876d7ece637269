package creature

import (
	"encoding/json"
	"time"

	"github.com/Zanderaf/dnd5e/internal/domain/shared"
)

// TraitsData is the legacy trait block of a persisted creature. Senses is
// kept as a raw message because old records stored free text there while
// newer writers may have left other shapes behind; the migration decides
// what to do with it.
type TraitsData struct {
	Senses    json.RawMessage `json:"senses,omitempty"`
	Languages []string        `json:"languages,omitempty"`
}

// AttributesData is the structured attribute block that replaced the legacy
// traits representation.
type AttributesData struct {
	Senses *Senses `json:"senses,omitempty"`
}

// CreatureData is the serialized form of a creature as stored in Redis.
type CreatureData struct {
	ID              string                              `json:"id"`
	OwnerID         string                              `json:"owner_id"`
	RealmID         string                              `json:"realm_id"`
	Name            string                              `json:"name"`
	Size            shared.Size                         `json:"size,omitempty"`
	Type            string                              `json:"type,omitempty"`
	Alignment       string                              `json:"alignment,omitempty"`
	ChallengeRating float32                             `json:"challenge_rating"`
	ArmorClass      int                                 `json:"armor_class"`
	HitPoints       int                                 `json:"hit_points"`
	HitDice         string                              `json:"hit_dice,omitempty"`
	Speed           int                                 `json:"speed"`
	Abilities       map[shared.Attribute]*AbilityScore  `json:"abilities,omitempty"`
	Skills          map[string]*SkillBonus              `json:"skills,omitempty"`
	Traits          TraitsData                          `json:"traits"`
	Attributes      AttributesData                      `json:"attributes"`
	Resources       *Resources                          `json:"resources,omitempty"`
	Status          shared.CreatureStatus               `json:"status"`
	CreatedAt       time.Time                           `json:"created_at"`
	UpdatedAt       time.Time                           `json:"updated_at"`
}

// ToData converts a creature entity to its serialized form. The legacy
// traits.senses field is never written back; once migrated, the structured
// record is the durable representation.
func (c *Creature) ToData() *CreatureData {
	return &CreatureData{
		ID:              c.ID,
		OwnerID:         c.OwnerID,
		RealmID:         c.RealmID,
		Name:            c.Name,
		Size:            c.Size,
		Type:            c.Type,
		Alignment:       c.Alignment,
		ChallengeRating: c.ChallengeRating,
		ArmorClass:      c.ArmorClass,
		HitPoints:       c.HitPoints,
		HitDice:         c.HitDice,
		Speed:           c.Speed,
		Abilities:       c.Abilities,
		Skills:          c.Skills,
		Attributes:      AttributesData{Senses: c.Senses},
		Resources:       c.Resources,
		Status:          c.Status,
	}
}

// ToCreature converts serialized data back to a creature entity. Callers
// that read legacy records should run MigrateSenses on the data first.
func (d *CreatureData) ToCreature() *Creature {
	return &Creature{
		ID:              d.ID,
		OwnerID:         d.OwnerID,
		RealmID:         d.RealmID,
		Name:            d.Name,
		Size:            d.Size,
		Type:            d.Type,
		Alignment:       d.Alignment,
		ChallengeRating: d.ChallengeRating,
		ArmorClass:      d.ArmorClass,
		HitPoints:       d.HitPoints,
		HitDice:         d.HitDice,
		Speed:           d.Speed,
		Abilities:       d.Abilities,
		Skills:          d.Skills,
		Senses:          d.Attributes.Senses,
		Resources:       d.Resources,
		Status:          d.Status,
	}
}

// HasLegacySenses reports whether the record still carries a textual legacy
// sense descriptor that MigrateSenses would act on.
func (d *CreatureData) HasLegacySenses() bool {
	if len(d.Traits.Senses) == 0 {
		return false
	}
	var legacy string
	return json.Unmarshal(d.Traits.Senses, &legacy) == nil
}
