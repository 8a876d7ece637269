package dnd5e

import (
	"log"
	"net/http"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg cannot be nil")
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

func (c *client) GetMonster(key string) (*creature.Creature, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("GetMonster.key is required")
	}

	monster, err := c.client.GetMonster(key)
	if err != nil {
		return nil, err
	}

	return apiMonsterToCreature(monster), nil
}

// ListMonstersByCR returns monsters within a challenge rating range
func (c *client) ListMonstersByCR(minCR, maxCR float32) ([]*creature.Creature, error) {
	// The API only supports filtering by exact CR, not range, so fetch
	// monsters for each CR value in the range
	crValues := getCRValuesInRange(minCR, maxCR)

	result := make([]*creature.Creature, 0)
	processedKeys := make(map[string]bool)

	for _, cr := range crValues {
		crFloat64 := float64(cr)
		input := &dnd5e.ListMonstersInput{
			ChallengeRating: &crFloat64,
		}

		monsterRefs, err := c.client.ListMonstersWithFilter(input)
		if err != nil {
			log.Printf("Failed to list monsters for CR %f: %v", cr, err)
			continue
		}

		for _, ref := range monsterRefs {
			if ref.Key == "" || processedKeys[ref.Key] {
				continue
			}

			monster, err := c.client.GetMonster(ref.Key)
			if err != nil {
				log.Printf("Failed to get monster %s: %v", ref.Key, err)
				continue
			}

			if converted := apiMonsterToCreature(monster); converted != nil {
				result = append(result, converted)
				processedKeys[ref.Key] = true
			}
		}
	}

	return result, nil
}

func apiMonsterToCreature(input *apiEntities.Monster) *creature.Creature {
	if input == nil {
		return nil
	}

	return &creature.Creature{
		ID:              input.Key,
		Name:            input.Name,
		Type:            input.Type,
		ArmorClass:      input.ArmorClass,
		HitPoints:       input.HitPoints,
		HitDice:         input.HitDice,
		ChallengeRating: input.ChallengeRating,
		Status:          shared.CreatureStatusActive,
	}
}

// getCRValuesInRange returns all standard CR values within the given range
func getCRValuesInRange(minCR, maxCR float32) []float32 {
	allCRs := []float32{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}

	var result []float32
	for _, cr := range allCRs {
		if cr >= minCR && cr <= maxCR {
			result = append(result, cr)
		}
	}
	return result
}
