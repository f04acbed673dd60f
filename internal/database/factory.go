package database

import (
	"fmt"
	"strings"
)

var supportedProviders = []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}

// SupportedProviders lists the provider names NewDialect accepts.
func SupportedProviders() []string {
	return append([]string(nil), supportedProviders...)
}

// NewDialect resolves a provider name and an optional driver override.
func NewDialect(provider, driver string) (Dialect, error) {
	switch strings.ToLower(provider) {
	case "sqlite", "sqlite3":
		return sqliteDialect{}, nil
	case "postgresql", "postgres":
		switch driver {
		case "", "pgx":
			return postgresDialect{driver: "pgx"}, nil
		case "pq", "postgres":
			return postgresDialect{driver: "postgres"}, nil
		default:
			return nil, fmt.Errorf("unsupported postgres driver: %s (use pgx or pq)", driver)
		}
	case "mysql":
		return mysqlDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s. Supported providers: %v", provider, supportedProviders)
	}
}
