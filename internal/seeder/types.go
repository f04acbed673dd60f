package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
)

// Store is the write surface generators see. *database.Session implements it.
type Store interface {
	Builder() squirrel.StatementBuilderType
	Insert(ctx context.Context, table string, row database.Row) error
	InsertIgnoringDuplicate(ctx context.Context, table string, row database.Row) (bool, error)
	Get(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error
	Exec(ctx context.Context, q squirrel.Sqlizer) error
}

// GenerateFunc writes the rows of one entity.
type GenerateFunc func(ctx context.Context, t *Task) error

// Entity is one generated table and the tables it references.
type Entity struct {
	Name      string
	DependsOn []string
	// Count is the default target volume. Entities driven by a fixed
	// catalogue or by their parents' pools may ignore it.
	Count    int
	Generate GenerateFunc
}

// Options configures a Seeder run.
type Options struct {
	Seed    int64
	Anchor  time.Time
	Volumes map[string]int
	// SchemaTable is checked before a run; SchemaPath is named in the error
	// when it is missing.
	SchemaTable string
	SchemaPath  string
	Quiet       bool
}

// Task is the per-entity state handed to a GenerateFunc.
type Task struct {
	Entity string
	Count  int
	Gen    *GenerationContext
	Pools  *PoolView
	Store  Store

	log      zerolog.Logger
	rows     int
	skipped  int
	produced []string
}

// Create inserts a row identified by id and stages the id for the entity's
// pool. Staged ids become visible to dependants once the entity completes.
func (t *Task) Create(ctx context.Context, id string, row database.Row) error {
	row["id"] = id
	if err := t.Store.Insert(ctx, t.Entity, row); err != nil {
		return err
	}
	t.produced = append(t.produced, id)
	t.rows++
	return nil
}

// Insert writes a row that is not referenced by other entities.
func (t *Task) Insert(ctx context.Context, row database.Row) error {
	if err := t.Store.Insert(ctx, t.Entity, row); err != nil {
		return err
	}
	t.rows++
	return nil
}

// Link writes an association row, skipping it when it already exists.
func (t *Task) Link(ctx context.Context, row database.Row) error {
	added, err := t.Store.InsertIgnoringDuplicate(ctx, t.Entity, row)
	if err != nil {
		return err
	}
	if added {
		t.rows++
		return nil
	}
	t.skipped++
	t.log.Debug().Str("entity", t.Entity).Interface("row", row).Msg("duplicate association skipped")
	return nil
}

func (t *Task) Log() *zerolog.Logger { return &t.log }

func (t *Task) Rows() int    { return t.rows }
func (t *Task) Skipped() int { return t.skipped }

// Plan is the stage schedule derived from the registered entities.
type Plan struct {
	Levels []Level
}

type Level struct {
	Index    int
	Entities []*Entity
}

// Names returns the entity names of every stage.
func (p *Plan) Names() [][]string {
	names := make([][]string, len(p.Levels))
	for i, l := range p.Levels {
		for _, e := range l.Entities {
			names[i] = append(names[i], e.Name)
		}
	}
	return names
}

func (p *Plan) String() string {
	s := ""
	for _, l := range p.Levels {
		s += fmt.Sprintf("stage %d:", l.Index)
		for _, e := range l.Entities {
			s += " " + e.Name
		}
		s += "\n"
	}
	return s
}
