package database

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

type postgresDialect struct {
	driver string
}

func (postgresDialect) Name() string         { return "postgresql" }
func (d postgresDialect) DriverName() string { return d.driver }

func (postgresDialect) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (postgresDialect) TableExistsQuery() string {
	return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
}

func (postgresDialect) DSN(url string) (string, error) {
	return url, nil
}
