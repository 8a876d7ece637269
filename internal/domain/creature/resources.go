package creature

import (
	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
)

// HPResource tracks hit points and temporary HP
type HPResource struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Damage applies damage, using temp HP first
func (hp *HPResource) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	originalAmount := amount

	if hp.Temporary > 0 {
		if hp.Temporary >= amount {
			hp.Temporary -= amount
			return originalAmount
		}
		amount -= hp.Temporary
		hp.Temporary = 0
	}

	hp.Current -= amount
	if hp.Current < 0 {
		hp.Current = 0
	}

	return originalAmount
}

// Heal restores hit points up to max
func (hp *HPResource) Heal(amount int) int {
	if amount <= 0 || hp.Current >= hp.Max {
		return 0
	}

	oldHP := hp.Current
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	return hp.Current - oldHP
}

// AddTemporaryHP adds temporary hit points (doesn't stack)
func (hp *HPResource) AddTemporaryHP(amount int) {
	if amount > hp.Temporary {
		hp.Temporary = amount
	}
}

// SpellSlotInfo tracks spell slots at a specific level
type SpellSlotInfo struct {
	Max       int    `json:"max"`
	Remaining int    `json:"remaining"`
	Source    string `json:"source"`
}

// LegendaryActions tracks per-round legendary action uses.
type LegendaryActions struct {
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}

// Resources tracks a creature's expendable resources
type Resources struct {
	HP               HPResource            `json:"hp"`
	SpellSlots       map[int]SpellSlotInfo `json:"spell_slots,omitempty"` // level -> slot info
	LegendaryActions *LegendaryActions     `json:"legendary_actions,omitempty"`
}

// Initialize sets up resources from hit points and caster progression
func (r *Resources) Initialize(hitPoints int, caster rulebook.CasterType, casterLevel int) {
	r.HP = HPResource{
		Current: hitPoints,
		Max:     hitPoints,
	}

	r.initializeSpellSlots(caster, casterLevel)
}

// initializeSpellSlots fills the slot map from the rulebook progression
func (r *Resources) initializeSpellSlots(caster rulebook.CasterType, level int) {
	slots := rulebook.SpellSlots(caster, level)
	if len(slots) == 0 {
		return
	}

	source := rulebook.SlotSourceSpellcasting
	if caster == rulebook.CasterPact {
		source = rulebook.SlotSourcePactMagic
	}

	r.SpellSlots = make(map[int]SpellSlotInfo, len(slots))
	for slotLevel, count := range slots {
		r.SpellSlots[slotLevel] = SpellSlotInfo{
			Max:       count,
			Remaining: count,
			Source:    source,
		}
	}
}

// UseSpellSlot consumes one slot at the given level, reporting whether one
// was available.
func (r *Resources) UseSpellSlot(level int) bool {
	slot, ok := r.SpellSlots[level]
	if !ok || slot.Remaining <= 0 {
		return false
	}

	slot.Remaining--
	r.SpellSlots[level] = slot
	return true
}

// RestoreSpellSlots refills every slot level to its max, as on a long rest.
func (r *Resources) RestoreSpellSlots() {
	for level, slot := range r.SpellSlots {
		slot.Remaining = slot.Max
		r.SpellSlots[level] = slot
	}
}

// UseLegendaryAction consumes one legendary action if any remain.
func (r *Resources) UseLegendaryAction() bool {
	if r.LegendaryActions == nil || r.LegendaryActions.Remaining <= 0 {
		return false
	}
	r.LegendaryActions.Remaining--
	return true
}

// ResetLegendaryActions restores legendary actions at the start of a round.
func (r *Resources) ResetLegendaryActions() {
	if r.LegendaryActions != nil {
		r.LegendaryActions.Remaining = r.LegendaryActions.Max
	}
}
