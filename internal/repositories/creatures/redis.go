package creatures

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"

	dnderr "github.com/Zanderaf/dnd5e/internal/errors"
	"github.com/Zanderaf/dnd5e/internal/uuid"
	"github.com/redis/go-redis/v9"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	draftTTL      time.Duration // TTL for draft creatures
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	DraftTTL      time.Duration // How long to keep draft creatures (default: 24 hours)
}

// NewRedisRepository creates a new Redis-backed creature repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		draftTTL:      ttl,
	}
}

// key generates the Redis key for a creature
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("creature:%s", id)
}

// ownerCreaturesKey generates the Redis key for an owner's creature list
func (r *redisRepo) ownerCreaturesKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:creatures", ownerID)
}

// realmCreaturesKey generates the Redis key for a realm's creature list
func (r *redisRepo) realmCreaturesKey(realmID string) string {
	return fmt.Sprintf("realm:%s:creatures", realmID)
}

// allCreaturesKey is the index set holding every creature ID
func (r *redisRepo) allCreaturesKey() string {
	return "creatures"
}

// Create stores a new creature
func (r *redisRepo) Create(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return dnderr.InvalidArgument("creature cannot be nil")
	}
	if c.OwnerID == "" {
		return dnderr.InvalidArgument("creature owner ID is required")
	}
	if c.RealmID == "" {
		return dnderr.InvalidArgument("creature realm ID is required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if c.ID == "" {
		c.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(c.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check creature existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("creature with ID '%s' already exists", c.ID).
			WithMeta("creature_id", c.ID)
	}

	data := c.ToData()
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal creature: %w", err)
	}

	// Pipeline keeps the record and its index sets consistent
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(c.ID), jsonData, r.recordTTL(c))
	pipe.SAdd(ctx, r.allCreaturesKey(), c.ID)
	pipe.SAdd(ctx, r.ownerCreaturesKey(c.OwnerID), c.ID)
	pipe.SAdd(ctx, r.realmCreaturesKey(c.RealmID), c.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create creature: %w", err)
	}

	return nil
}

// recordTTL returns the expiration for a creature record. Drafts expire;
// finalized creatures do not.
func (r *redisRepo) recordTTL(c *creature.Creature) time.Duration {
	if c.Status == shared.CreatureStatusDraft {
		return r.draftTTL
	}
	return 0
}

// Get retrieves a creature by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*creature.Creature, error) {
	data, err := r.GetData(ctx, id)
	if err != nil {
		return nil, err
	}

	// Legacy records still in the old format get upgraded on the way out
	creature.MigrateSenses(data, rulebook.SenseKeySet())

	return data.ToCreature(), nil
}

// GetData retrieves the raw serialized record without applying migrations.
// The upgrade pipeline uses this to inspect and rewrite legacy records.
func (r *redisRepo) GetData(ctx context.Context, id string) (*creature.CreatureData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("creature ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, dnderr.NotFoundf("creature with ID '%s' not found", id).
				WithMeta("creature_id", id)
		}
		return nil, fmt.Errorf("failed to get creature: %w", err)
	}

	var data creature.CreatureData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal creature: %w", err)
	}

	return &data, nil
}

// GetByOwner retrieves all creatures for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*creature.Creature, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	return r.getBySet(ctx, r.ownerCreaturesKey(ownerID))
}

// GetByRealm retrieves all creatures in a realm
func (r *redisRepo) GetByRealm(ctx context.Context, realmID string) ([]*creature.Creature, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}
	return r.getBySet(ctx, r.realmCreaturesKey(realmID))
}

func (r *redisRepo) getBySet(ctx context.Context, setKey string) ([]*creature.Creature, error) {
	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list creature IDs: %w", err)
	}

	result := make([]*creature.Creature, 0, len(ids))
	for _, id := range ids {
		c, err := r.Get(ctx, id)
		if err != nil {
			if dnderr.IsNotFound(err) {
				// Index entry outlived an expired draft; skip it
				continue
			}
			return nil, err
		}
		result = append(result, c)
	}

	return result, nil
}

// Update updates an existing creature
func (r *redisRepo) Update(ctx context.Context, c *creature.Creature) error {
	if c == nil {
		return dnderr.InvalidArgument("creature cannot be nil")
	}
	if c.ID == "" {
		return dnderr.InvalidArgument("creature ID is required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	existing, err := r.GetData(ctx, c.ID)
	if err != nil {
		return err
	}

	data := c.ToData()
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal creature: %w", err)
	}

	if err := r.client.Set(ctx, r.key(c.ID), jsonData, r.recordTTL(c)).Err(); err != nil {
		return fmt.Errorf("failed to update creature: %w", err)
	}

	return nil
}

// Delete removes a creature
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("creature ID is required")
	}

	data, err := r.GetData(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.allCreaturesKey(), id)
	pipe.SRem(ctx, r.ownerCreaturesKey(data.OwnerID), id)
	pipe.SRem(ctx, r.realmCreaturesKey(data.RealmID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete creature: %w", err)
	}

	return nil
}

// ListIDs returns the IDs of every stored creature
func (r *redisRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.allCreaturesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list creature IDs: %w", err)
	}
	return ids, nil
}
