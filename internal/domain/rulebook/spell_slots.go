package rulebook

// CasterType controls which spell slot progression a creature follows.
type CasterType string

const (
	CasterNone CasterType = ""
	CasterFull CasterType = "full"
	CasterHalf CasterType = "half"
	CasterPact CasterType = "pact"
)

// SlotSource distinguishes standard spellcasting slots from pact magic.
const (
	SlotSourceSpellcasting = "spellcasting"
	SlotSourcePactMagic    = "pact_magic"
)

// fullCasterSlots[level-1][slotLevel-1] is the standard spellcasting table.
var fullCasterSlots = [20][9]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// pactSlots maps warlock level to (slot level, slot count).
var pactSlots = [20][2]int{
	{1, 1}, {1, 2}, {2, 2}, {2, 2}, {3, 2},
	{3, 2}, {4, 2}, {4, 2}, {5, 2}, {5, 2},
	{5, 3}, {5, 3}, {5, 3}, {5, 3}, {5, 3},
	{5, 3}, {5, 4}, {5, 4}, {5, 4}, {5, 4},
}

// SpellSlots returns the slot counts per spell level for a caster of the
// given type and level. Half casters use the full caster row for half their
// level, rounded down; they get nothing at level 1. The returned map is
// nil for non-casters and out-of-range levels.
func SpellSlots(caster CasterType, level int) map[int]int {
	if level < 1 || level > 20 {
		return nil
	}

	switch caster {
	case CasterFull:
		return slotsFromRow(fullCasterSlots[level-1])
	case CasterHalf:
		if level < 2 {
			return nil
		}
		return slotsFromRow(fullCasterSlots[level/2-1])
	case CasterPact:
		entry := pactSlots[level-1]
		return map[int]int{entry[0]: entry[1]}
	default:
		return nil
	}
}

func slotsFromRow(row [9]int) map[int]int {
	slots := make(map[int]int)
	for i, count := range row {
		if count > 0 {
			slots[i+1] = count
		}
	}
	return slots
}
