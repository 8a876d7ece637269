package creatures_test

import (
	"context"
	"testing"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"
	"github.com/Zanderaf/dnd5e/internal/repositories/creatures"
	"github.com/Zanderaf/dnd5e/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CRUD(t *testing.T) {
	repo := creatures.NewInMemoryRepository()
	ctx := context.Background()

	c := testutils.CreateTestCreature("mem-1", "owner-1", "realm-1", "Goblin")
	require.NoError(t, repo.Create(ctx, c))

	err := repo.Create(ctx, c)
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", got.Name)

	// Mutating the returned copy must not leak into the store
	got.Name = "Changed"
	again, err := repo.Get(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", again.Name)

	c.Name = "Goblin Boss"
	require.NoError(t, repo.Update(ctx, c))
	updated, err := repo.Get(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, "Goblin Boss", updated.Name)

	require.NoError(t, repo.Delete(ctx, "mem-1"))
	_, err = repo.Get(ctx, "mem-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestInMemoryRepository_GetByOwnerAndRealm(t *testing.T) {
	repo := creatures.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestCreature("a", "owner-1", "realm-1", "Goblin")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCreature("b", "owner-1", "realm-2", "Orc")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestCreature("c", "owner-2", "realm-1", "Wolf")))

	byOwner, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, byOwner, 2)

	byRealm, err := repo.GetByRealm(ctx, "realm-1")
	require.NoError(t, err)
	assert.Len(t, byRealm, 2)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
}

func TestInMemoryRepository_MigratesSeededLegacyData(t *testing.T) {
	repo := creatures.NewInMemoryRepository()
	ctx := context.Background()

	repo.SeedData(testutils.CreateLegacyCreatureData(
		"legacy-1", "owner-1", "realm-1", "Shrieker",
		"Darkvision 60 ft, Keen smell"))

	got, err := repo.Get(ctx, "legacy-1")
	require.NoError(t, err)
	require.NotNil(t, got.Senses)

	darkvision, ok := got.Senses.Range(shared.SenseDarkvision)
	require.True(t, ok)
	assert.Equal(t, float64(60), darkvision)

	// Raw read still shows the unmigrated record
	data, err := repo.GetData(ctx, "legacy-1")
	require.NoError(t, err)
	assert.True(t, data.HasLegacySenses())
}

func TestInMemoryRepository_GetDoesNotMutateStore(t *testing.T) {
	repo := creatures.NewInMemoryRepository()
	ctx := context.Background()

	// A record carrying both a legacy string and an existing structured
	// record; migrating the read copy must not reach the stored one
	seeded := testutils.CreateLegacyCreatureData(
		"aliased", "owner-1", "realm-1", "Drow",
		"Darkvision 120 ft")
	seeded.Attributes.Senses = creature.NewSenses()
	seeded.Attributes.Senses.Set(shared.SenseBlindsight, 10)
	repo.SeedData(seeded)

	got, err := repo.Get(ctx, "aliased")
	require.NoError(t, err)

	darkvision, ok := got.Senses.Range(shared.SenseDarkvision)
	require.True(t, ok)
	assert.Equal(t, float64(120), darkvision)

	data, err := repo.GetData(ctx, "aliased")
	require.NoError(t, err)
	require.NotNil(t, data.Attributes.Senses)

	_, leaked := data.Attributes.Senses.Range(shared.SenseDarkvision)
	assert.False(t, leaked, "read-path migration leaked into the store")

	byOwner, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, byOwner, 1)

	data, err = repo.GetData(ctx, "aliased")
	require.NoError(t, err)
	_, leaked = data.Attributes.Senses.Range(shared.SenseDarkvision)
	assert.False(t, leaked, "filter migration leaked into the store")
}
