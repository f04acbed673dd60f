package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Seeder runs registered entities stage by stage against one store.
type Seeder struct {
	entities []*Entity
	opts     Options
	log      zerolog.Logger
	out      io.Writer
}

func New(entities []*Entity, opts Options, log zerolog.Logger) *Seeder {
	if opts.SchemaTable == "" {
		opts.SchemaTable = "shops"
	}
	var out io.Writer = os.Stdout
	if opts.Quiet {
		out = io.Discard
	}
	return &Seeder{
		entities: entities,
		opts:     opts,
		log:      log,
		out:      out,
	}
}

// Plan validates the entity declarations and computes the stage schedule.
func (s *Seeder) Plan() (*Plan, error) {
	byName := make(map[string]*Entity, len(s.entities))
	graph := NewDependencyGraph()
	for _, e := range s.entities {
		if _, dup := byName[e.Name]; dup {
			return nil, fmt.Errorf("entity %s registered twice", e.Name)
		}
		byName[e.Name] = e
		graph.Add(e.Name, e.DependsOn...)
	}

	for name, n := range s.opts.Volumes {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("volume configured for unknown entity: %s", name)
		}
		if n < 0 {
			return nil, fmt.Errorf("volume for %s cannot be negative: %d", name, n)
		}
	}

	levels, err := graph.Levels()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	plan := &Plan{}
	for i, names := range levels {
		level := Level{Index: i}
		for _, name := range names {
			level.Entities = append(level.Entities, byName[name])
		}
		plan.Levels = append(plan.Levels, level)
	}
	return plan, nil
}

func (s *Seeder) count(e *Entity) int {
	if n, ok := s.opts.Volumes[e.Name]; ok {
		return n
	}
	return e.Count
}

// Run checks the schema, then generates every entity inside one transaction.
// Nothing is committed unless every entity succeeds.
func (s *Seeder) Run(ctx context.Context, db *database.DB) (*Summary, error) {
	if err := db.EnsureSchema(ctx, s.opts.SchemaTable, s.opts.SchemaPath); err != nil {
		return nil, err
	}
	if _, err := s.Plan(); err != nil {
		return nil, err
	}

	fmt.Fprintln(s.out, color.CyanString("🔒 Transaction started"))

	var summary *Summary
	err := db.WithTx(ctx, func(sess *database.Session) error {
		var err error
		summary, err = s.Generate(ctx, sess)
		return err
	})
	if err != nil {
		fmt.Fprintln(s.out, color.YellowString("🔄 Transaction rolled back, nothing was written"))
		return nil, err
	}

	fmt.Fprintln(s.out, color.CyanString("🔓 Transaction committed"))
	return summary, nil
}

// Generate writes every entity to store in stage order without managing a
// transaction.
func (s *Seeder) Generate(ctx context.Context, store Store) (*Summary, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}

	gen := NewGenerationContext(s.opts.Seed, s.opts.Anchor)
	pools := NewPoolManager(gen)
	summary := &Summary{Seed: s.opts.Seed, Anchor: gen.Anchor().Format(time.RFC3339)}

	fmt.Fprintln(s.out, color.CyanString("🌱 Generating data with seed %d", s.opts.Seed))

	for _, level := range plan.Levels {
		names := make([]string, len(level.Entities))
		for i, e := range level.Entities {
			names[i] = e.Name
		}
		fmt.Fprintln(s.out, color.CyanString("📋 Stage %d: %s", level.Index, strings.Join(names, ", ")))

		for _, e := range level.Entities {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			task := &Task{
				Entity: e.Name,
				Count:  s.count(e),
				Gen:    gen,
				Pools:  pools.View(e.Name, e.DependsOn),
				Store:  store,
				log:    s.log.With().Str("entity", e.Name).Logger(),
			}

			start := time.Now()
			if err := e.Generate(ctx, task); err != nil {
				return nil, fmt.Errorf("failed to generate %s: %w", e.Name, err)
			}
			for _, id := range task.produced {
				if err := pools.Record(e.Name, id); err != nil {
					return nil, err
				}
			}

			summary.Entities = append(summary.Entities, EntitySummary{
				Name:    e.Name,
				Level:   level.Index,
				Rows:    task.rows,
				Skipped: task.skipped,
			})
			s.log.Debug().
				Str("entity", e.Name).
				Int("rows", task.rows).
				Int("skipped", task.skipped).
				Dur("took", time.Since(start)).
				Msg("entity generated")
			fmt.Fprintln(s.out, color.GreenString("  ✓ %-28s %6d rows", e.Name, task.rows))
		}
	}

	fmt.Fprintln(s.out, color.GreenString("✅ Generated %d rows across %d tables", summary.Total(), len(summary.Entities)))
	return summary, nil
}
