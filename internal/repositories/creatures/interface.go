package creatures

//go:generate mockgen -destination=mock/mock.go -package=mockcreatures -source=interface.go

import (
	"context"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
)

// Repository defines the interface for creature persistence
type Repository interface {
	// Create stores a new creature
	Create(ctx context.Context, c *creature.Creature) error

	// Get retrieves a creature by ID, upgrading legacy data on the way out
	Get(ctx context.Context, id string) (*creature.Creature, error)

	// GetData retrieves the raw serialized record without applying
	// migrations; the upgrade pipeline inspects these directly
	GetData(ctx context.Context, id string) (*creature.CreatureData, error)

	// GetByOwner retrieves all creatures for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error)

	// GetByRealm retrieves all creatures in a realm
	GetByRealm(ctx context.Context, realmID string) ([]*creature.Creature, error)

	// Update updates an existing creature
	Update(ctx context.Context, c *creature.Creature) error

	// Delete removes a creature
	Delete(ctx context.Context, id string) error

	// ListIDs returns the IDs of every stored creature; the migration
	// pipeline walks these
	ListIDs(ctx context.Context) ([]string, error)
}
