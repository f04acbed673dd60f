package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Execer is the statement surface shared by *sqlx.DB and *sqlx.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// DB is a connection pool bound to one dialect.
type DB struct {
	db      *sqlx.DB
	dialect Dialect
	wrap    func(Execer) Execer
}

// Open connects to provider at url and verifies the connection.
func Open(ctx context.Context, provider, driver, url string) (*DB, error) {
	dialect, err := NewDialect(provider, driver)
	if err != nil {
		return nil, err
	}

	dsn, err := dialect.DSN(url)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect.Name(), err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", dialect.Name(), err)
	}

	return &DB{db: db, dialect: dialect}, nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func (d *DB) Dialect() Dialect { return d.dialect }

// Wrap installs a decorator applied to the transaction handle of every
// subsequent WithTx call.
func (d *DB) Wrap(fn func(Execer) Execer) {
	d.wrap = fn
}

// Session returns an autocommit session on the pool.
func (d *DB) Session() *Session {
	return NewSession(d.db, d.dialect)
}

// Exec runs raw SQL outside of any transaction. Used to load schemas.
func (d *DB) Exec(ctx context.Context, query string) error {
	_, err := d.db.ExecContext(ctx, query)
	return err
}

func (d *DB) TableExists(ctx context.Context, table string) (bool, error) {
	var n int
	if err := d.db.GetContext(ctx, &n, d.dialect.TableExistsQuery(), table); err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return n > 0, nil
}

// EnsureSchema fails with *SchemaMissingError when table is absent.
func (d *DB) EnsureSchema(ctx context.Context, table, schemaPath string) error {
	ok, err := d.TableExists(ctx, table)
	if err != nil {
		return err
	}
	if !ok {
		return &SchemaMissingError{Table: table, SchemaPath: schemaPath}
	}
	return nil
}

// WithTx runs fn inside one transaction, committing when fn returns nil and
// rolling back otherwise.
func (d *DB) WithTx(ctx context.Context, fn func(*Session) error) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var ex Execer = tx
	if d.wrap != nil {
		ex = d.wrap(tx)
	}

	if err := fn(NewSession(ex, d.dialect)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
