// Package migration runs the one-time batch upgrade that converts legacy
// free-text sense descriptors into structured sense records.
package migration

import (
	"context"
	"log"
	"sync"

	"github.com/Zanderaf/dnd5e/internal/domain/creature"
	"github.com/Zanderaf/dnd5e/internal/domain/rulebook"
	"github.com/Zanderaf/dnd5e/internal/domain/shared"
	dnderr "github.com/Zanderaf/dnd5e/internal/errors"
	"github.com/Zanderaf/dnd5e/internal/repositories/creatures"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// Service walks every stored creature and rewrites records that still
// carry a legacy sense string. Each record only touches its own data, so
// entities are migrated concurrently.
type Service struct {
	repo        creatures.Repository
	recognized  map[shared.SenseType]struct{}
	concurrency int
	dryRun      bool
}

// Config holds configuration for the migration service
type Config struct {
	Repository creatures.Repository

	// Recognized overrides the rulebook's sense vocabulary; nil means use
	// the registry
	Recognized map[shared.SenseType]struct{}

	// Concurrency bounds the number of entities migrated in parallel
	Concurrency int

	// DryRun parses and counts without writing anything back
	DryRun bool
}

// NewService creates a migration service
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg cannot be nil")
	}
	if cfg.Repository == nil {
		return nil, dnderr.InvalidArgument("cfg.Repository is required")
	}

	recognized := cfg.Recognized
	if recognized == nil {
		recognized = rulebook.SenseKeySet()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Service{
		repo:        cfg.Repository,
		recognized:  recognized,
		concurrency: concurrency,
		dryRun:      cfg.DryRun,
	}, nil
}

// Result summarizes one migration pass.
type Result struct {
	// Scanned is the number of records examined
	Scanned int

	// Migrated is the number of records whose legacy string parsed into
	// at least one structured sense entry
	Migrated int

	// Fallbacks is the number of records whose legacy string matched
	// nothing and was preserved in the special field
	Fallbacks int

	// Skipped is the number of records the pass left unchanged: no legacy
	// sense string, or one that produced no new sense data
	Skipped int

	// Failed is the number of records that could not be read or written
	Failed int
}

// Run executes the migration pass over every stored creature.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list creatures for migration")
	}

	var mu sync.Mutex
	result := &Result{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			outcome := s.migrateOne(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			result.Scanned++
			switch outcome {
			case outcomeMigrated:
				result.Migrated++
			case outcomeFallback:
				result.Fallbacks++
			case outcomeSkipped:
				result.Skipped++
			case outcomeFailed:
				result.Failed++
			}
			return nil
		})
	}

	// Individual failures are counted, not propagated, so Wait only
	// reports context cancellation
	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	return result, nil
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeMigrated
	outcomeFallback
	outcomeFailed
)

func (s *Service) migrateOne(ctx context.Context, id string) outcome {
	data, err := s.repo.GetData(ctx, id)
	if err != nil {
		log.Printf("migration: failed to read creature %s: %v", id, err)
		return outcomeFailed
	}

	if !data.HasLegacySenses() {
		return outcomeSkipped
	}

	priorSpecial := ""
	var priorRanges map[shared.SenseType]float64
	if data.Attributes.Senses != nil {
		priorSpecial = data.Attributes.Senses.Special
		priorRanges = make(map[shared.SenseType]float64, len(data.Attributes.Senses.Ranges))
		for k, v := range data.Attributes.Senses.Ranges {
			priorRanges[k] = v
		}
	}

	creature.MigrateSenses(data, s.recognized)

	// An empty or already-applied legacy string changes nothing; the record
	// is only rewritten to shed the legacy field
	result := outcomeSkipped
	switch {
	case data.Attributes.Senses == nil:
	case data.Attributes.Senses.Special != priorSpecial:
		result = outcomeFallback
	case rangesChanged(priorRanges, data.Attributes.Senses.Ranges):
		result = outcomeMigrated
	}

	if s.dryRun {
		return result
	}

	// Writing the entity back drops the legacy traits field; the
	// structured record is the durable representation from here on
	if err := s.repo.Update(ctx, data.ToCreature()); err != nil {
		log.Printf("migration: failed to update creature %s: %v", id, err)
		return outcomeFailed
	}

	return result
}

func rangesChanged(before, after map[shared.SenseType]float64) bool {
	if len(before) != len(after) {
		return true
	}
	for k, v := range after {
		prior, ok := before[k]
		if !ok || prior != v {
			return true
		}
	}
	return false
}
