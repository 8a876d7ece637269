package creatures

import (
	"context"
	"sync"
	"time"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"
	"github.com/Zanderaf/dnd5e/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the creature
// repository. Useful for testing and development. Records are held in
// serialized form so tests can seed legacy data and watch it migrate.
type InMemoryRepository struct {
	mu            sync.RWMutex
	creatures     map[string]*creature.CreatureData
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		creatures:     make(map[string]*creature.CreatureData),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// SeedData stores a raw record directly, bypassing entity conversion.
// Tests use it to plant legacy-format records.
func (r *InMemoryRepository) SeedData(data *creature.CreatureData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creatures[data.ID] = cloneData(data)
}

// cloneData copies a record deeply enough that migrating the copy cannot
// reach back into the stored original through the senses pointer.
func cloneData(data *creature.CreatureData) *creature.CreatureData {
	copied := *data
	if data.Attributes.Senses != nil {
		senses := *data.Attributes.Senses
		if data.Attributes.Senses.Ranges != nil {
			senses.Ranges = make(map[shared.SenseType]float64, len(data.Attributes.Senses.Ranges))
			for k, v := range data.Attributes.Senses.Ranges {
				senses.Ranges[k] = v
			}
		}
		copied.Attributes.Senses = &senses
	}
	return &copied
}

// Create stores a new creature
func (r *InMemoryRepository) Create(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return dnderr.InvalidArgument("creature cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creatures[c.ID]; exists {
		return dnderr.AlreadyExistsf("creature with ID '%s' already exists", c.ID).
			WithMeta("creature_id", c.ID)
	}

	data := c.ToData()
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt
	r.creatures[c.ID] = data

	return nil
}

// Get retrieves a creature by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*creature.Creature, error) {
	data, err := r.GetData(ctx, id)
	if err != nil {
		return nil, err
	}

	creature.MigrateSenses(data, rulebook.SenseKeySet())
	return data.ToCreature(), nil
}

// GetData retrieves the raw serialized record without applying migrations
func (r *InMemoryRepository) GetData(ctx context.Context, id string) (*creature.CreatureData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("creature ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.creatures[id]
	if !exists {
		return nil, dnderr.NotFoundf("creature with ID '%s' not found", id).
			WithMeta("creature_id", id)
	}

	// Return a copy to avoid external modifications
	return cloneData(data), nil
}

// GetByOwner retrieves all creatures for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	return r.filter(func(data *creature.CreatureData) bool {
		return data.OwnerID == ownerID
	})
}

// GetByRealm retrieves all creatures in a realm
func (r *InMemoryRepository) GetByRealm(ctx context.Context, realmID string) ([]*creature.Creature, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}
	return r.filter(func(data *creature.CreatureData) bool {
		return data.RealmID == realmID
	})
}

func (r *InMemoryRepository) filter(match func(*creature.CreatureData) bool) ([]*creature.Creature, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*creature.Creature
	for _, data := range r.creatures {
		if match(data) {
			copied := cloneData(data)
			creature.MigrateSenses(copied, rulebook.SenseKeySet())
			result = append(result, copied.ToCreature())
		}
	}

	return result, nil
}

// Update updates an existing creature
func (r *InMemoryRepository) Update(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return dnderr.InvalidArgument("creature cannot be nil")
	}
	if c.ID == "" {
		return dnderr.InvalidArgument("creature ID is required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.creatures[c.ID]
	if !exists {
		return dnderr.NotFoundf("creature with ID '%s' not found", c.ID).
			WithMeta("creature_id", c.ID)
	}

	data := c.ToData()
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()
	r.creatures[c.ID] = data

	return nil
}

// Delete removes a creature
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("creature ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creatures[id]; !exists {
		return dnderr.NotFoundf("creature with ID '%s' not found", id).
			WithMeta("creature_id", id)
	}

	delete(r.creatures, id)
	return nil
}

// ListIDs returns the IDs of every stored creature
func (r *InMemoryRepository) ListIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.creatures))
	for id := range r.creatures {
		ids = append(ids, id)
	}
	return ids, nil
}
