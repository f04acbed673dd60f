package database

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrSchemaMissing is matched by SchemaMissingError.
var ErrSchemaMissing = errors.New("database schema not found")

const uniqueViolationState = "23505"

// SchemaMissingError reports that the target storage has not been migrated.
type SchemaMissingError struct {
	Table      string
	SchemaPath string
}

func (e *SchemaMissingError) Error() string {
	return fmt.Sprintf("database schema not found (no %q table). Run migrations before generating data. Expected schema file at: %s",
		e.Table, e.SchemaPath)
}

func (e *SchemaMissingError) Unwrap() error { return ErrSchemaMissing }

// IsUniqueViolation reports whether err is a duplicate key error from any of
// the supported drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationState
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationState
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	return false
}
