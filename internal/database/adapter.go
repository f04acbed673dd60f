package database

import "github.com/Masterminds/squirrel"

// Dialect captures what differs between the storage engines a run can target.
type Dialect interface {
	Name() string
	DriverName() string
	DSN(url string) (string, error)
	Placeholder() squirrel.PlaceholderFormat
	// TableExistsQuery returns a COUNT query taking the table name as its only argument.
	TableExistsQuery() string
}
