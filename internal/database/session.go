package database

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
)

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Row maps column names to values. Nil values are written as NULL.
type Row map[string]interface{}

// Session issues statements through one Execer, usually a transaction.
type Session struct {
	ex         Execer
	qb         squirrel.StatementBuilderType
	savepoints int
}

func NewSession(ex Execer, dialect Dialect) *Session {
	return &Session{
		ex: ex,
		qb: squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder()),
	}
}

// Builder returns a statement builder using the session's placeholder format.
func (s *Session) Builder() squirrel.StatementBuilderType {
	return s.qb
}

func (s *Session) Insert(ctx context.Context, table string, row Row) error {
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}
	for col := range row {
		if !validIdentifier.MatchString(col) {
			return fmt.Errorf("invalid column name in table %s: %s", table, col)
		}
	}

	query, args, err := s.qb.Insert(table).SetMap(row).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if _, err := s.ex.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// InsertIgnoringDuplicate inserts row inside a savepoint. A duplicate key is
// rolled back to the savepoint and reported as not added; any other failure is
// returned.
func (s *Session) InsertIgnoringDuplicate(ctx context.Context, table string, row Row) (bool, error) {
	s.savepoints++
	name := fmt.Sprintf("uruseed_sp_%d", s.savepoints)

	if _, err := s.ex.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return false, fmt.Errorf("failed to create savepoint: %w", err)
	}

	insertErr := s.Insert(ctx, table, row)
	if insertErr == nil {
		if _, err := s.ex.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
			return false, fmt.Errorf("failed to release savepoint: %w", err)
		}
		return true, nil
	}

	if !IsUniqueViolation(insertErr) {
		return false, insertErr
	}

	if _, err := s.ex.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); err != nil {
		return false, fmt.Errorf("failed to roll back savepoint: %w", err)
	}
	if _, err := s.ex.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return false, fmt.Errorf("failed to release savepoint: %w", err)
	}
	return false, nil
}

// Get scans the single row produced by q into dest.
func (s *Session) Get(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return s.ex.GetContext(ctx, dest, query, args...)
}

func (s *Session) Exec(ctx context.Context, q squirrel.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = s.ex.ExecContext(ctx, query, args...)
	return err
}

func (s *Session) Count(ctx context.Context, table string) (int, error) {
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("invalid table name: %s", table)
	}
	var n int
	if err := s.Get(ctx, &n, s.qb.Select("COUNT(*)").From(table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
