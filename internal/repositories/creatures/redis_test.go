package creatures_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"
	"github.com/Zanderaf/dnd5e/internal/repositories/creatures"
	"github.com/Zanderaf/dnd5e/internal/testutils"
	"github.com/Zanderaf/dnd5e/internal/uuid"
)

const fixedID = "fixed-creature-id"

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo creatures.Repository
	ctx  context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.ctx = context.Background()
	s.repo = creatures.NewRedisRepository(&creatures.RedisRepoConfig{
		Client:        db,
		UUIDGenerator: &uuid.FixedGenerator{ID: fixedID},
		DraftTTL:      time.Hour,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestCreate() {
	c := testutils.CreateTestCreature("", "owner-1", "realm-1", "Goblin")

	s.mock.ExpectExists("creature:" + fixedID).SetVal(0)
	s.mock.Regexp().ExpectSet("creature:"+fixedID, `.*`, 0).SetVal("OK")
	s.mock.ExpectSAdd("creatures", fixedID).SetVal(1)
	s.mock.ExpectSAdd("owner:owner-1:creatures", fixedID).SetVal(1)
	s.mock.ExpectSAdd("realm:realm-1:creatures", fixedID).SetVal(1)

	err := s.repo.Create(s.ctx, c)
	s.Require().NoError(err)
	s.Equal(fixedID, c.ID, "empty ID should be generated")
}

func (s *RedisRepoTestSuite) TestCreateDraftExpires() {
	c := testutils.CreateTestCreature("draft-1", "owner-1", "realm-1", "Goblin")
	c.Status = shared.CreatureStatusDraft

	s.mock.ExpectExists("creature:draft-1").SetVal(0)
	s.mock.Regexp().ExpectSet("creature:draft-1", `.*`, time.Hour).SetVal("OK")
	s.mock.ExpectSAdd("creatures", "draft-1").SetVal(1)
	s.mock.ExpectSAdd("owner:owner-1:creatures", "draft-1").SetVal(1)
	s.mock.ExpectSAdd("realm:realm-1:creatures", "draft-1").SetVal(1)

	s.Require().NoError(s.repo.Create(s.ctx, c))
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	c := testutils.CreateTestCreature("dup-1", "owner-1", "realm-1", "Goblin")

	s.mock.ExpectExists("creature:dup-1").SetVal(1)

	err := s.repo.Create(s.ctx, c)
	s.Require().Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateInvalidCreature() {
	err := s.repo.Create(s.ctx, &creature.Creature{OwnerID: "owner-1", RealmID: "realm-1"})
	s.Require().Error(err)
	s.True(dnderr.IsValidation(err))

	err = s.repo.Create(s.ctx, nil)
	s.Require().Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGetMigratesLegacySenses() {
	stored := testutils.CreateLegacyCreatureData(
		"legacy-1", "owner-1", "realm-1", "Shrieker",
		"Blindsight 30 ft, Keen smell")
	blob, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("creature:legacy-1").SetVal(string(blob))

	c, err := s.repo.Get(s.ctx, "legacy-1")
	s.Require().NoError(err)
	s.Require().NotNil(c.Senses)

	blindsight, ok := c.Senses.Range(shared.SenseBlindsight)
	s.Require().True(ok)
	s.Equal(float64(30), blindsight)
	s.Empty(c.Senses.Special)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("creature:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetDataSkipsMigration() {
	stored := testutils.CreateLegacyCreatureData(
		"legacy-2", "owner-1", "realm-1", "Shrieker",
		"Darkvision 60 ft")
	blob, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("creature:legacy-2").SetVal(string(blob))

	data, err := s.repo.GetData(s.ctx, "legacy-2")
	s.Require().NoError(err)
	s.True(data.HasLegacySenses())
	s.Nil(data.Attributes.Senses)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	c := testutils.CreateTestCreature("up-1", "owner-1", "realm-1", "Goblin")
	existing, err := json.Marshal(c.ToData())
	s.Require().NoError(err)

	s.mock.ExpectGet("creature:up-1").SetVal(string(existing))
	s.mock.Regexp().ExpectSet("creature:up-1", `.*`, 0).SetVal("OK")

	c.Name = "Goblin Boss"
	s.Require().NoError(s.repo.Update(s.ctx, c))
}

func (s *RedisRepoTestSuite) TestUpdateNotFound() {
	c := testutils.CreateTestCreature("up-missing", "owner-1", "realm-1", "Goblin")

	s.mock.ExpectGet("creature:up-missing").RedisNil()

	err := s.repo.Update(s.ctx, c)
	s.Require().Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	stored := testutils.CreateTestCreature("del-1", "owner-1", "realm-1", "Goblin").ToData()
	blob, err := json.Marshal(stored)
	s.Require().NoError(err)

	s.mock.ExpectGet("creature:del-1").SetVal(string(blob))
	s.mock.ExpectDel("creature:del-1").SetVal(1)
	s.mock.ExpectSRem("creatures", "del-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:creatures", "del-1").SetVal(1)
	s.mock.ExpectSRem("realm:realm-1:creatures", "del-1").SetVal(1)

	s.Require().NoError(s.repo.Delete(s.ctx, "del-1"))
}

func (s *RedisRepoTestSuite) TestListIDs() {
	s.mock.ExpectSMembers("creatures").SetVal([]string{"a", "b"})

	ids, err := s.repo.ListIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, ids)
}
