package shared

type CreatureStatus string

const (
	CreatureStatusDraft    CreatureStatus = "draft"
	CreatureStatusActive   CreatureStatus = "active"
	CreatureStatusArchived CreatureStatus = "archived"
)
