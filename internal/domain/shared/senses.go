package shared

// SenseType identifies a special sense a creature may possess. The set of
// valid values is owned by the rulebook registry, not by this type.
type SenseType string

const (
	SenseDarkvision  SenseType = "darkvision"
	SenseBlindsight  SenseType = "blindsight"
	SenseTremorsense SenseType = "tremorsense"
	SenseTruesight   SenseType = "truesight"
)

// SenseUnitsFeet is the canonical range unit for sense entries.
const SenseUnitsFeet = "ft"
