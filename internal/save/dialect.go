package save

import (
	"fmt"
	"strings"
)

// Dialect abstracts the SQL syntax differences between SQLite and
// PostgreSQL.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	DriverName() string

	// Placeholder returns the parameter placeholder for the given
	// position (1-indexed). SQLite ignores the position.
	Placeholder(position int) string

	// InitStatements returns database-specific setup statements.
	InitStatements() []string

	// IsDuplicateKeyError reports a unique constraint violation.
	IsDuplicateKeyError(err error) bool
}

// NewDialect creates a Dialect for the given driver name. Unknown
// names fall back to SQLite.
func NewDialect(driver string) Dialect {
	if driver == "postgres" {
		return &postgresDialect{}
	}
	return &sqliteDialect{}
}

type sqliteDialect struct{}

func (d *sqliteDialect) DriverName() string { return "sqlite" }

func (d *sqliteDialect) Placeholder(int) string { return "?" }

func (d *sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (d *sqliteDialect) IsDuplicateKeyError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type postgresDialect struct{}

func (d *postgresDialect) DriverName() string { return "postgres" }

func (d *postgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (d *postgresDialect) InitStatements() []string { return nil }

func (d *postgresDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL error code 23505 is unique_violation.
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "23505")
}
