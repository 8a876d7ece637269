package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/Zanderaf/dnd5e/internal/domain/creature"
)

// Client fetches canonical monster stat blocks from the 5e API and
// converts them into the creature schema.
type Client interface {
	GetMonster(key string) (*creature.Creature, error)
	ListMonstersByCR(minCR, maxCR float32) ([]*creature.Creature, error)
}
