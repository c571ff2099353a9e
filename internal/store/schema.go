// Package store persists convergence runs to DuckDB so sampler families can
// be compared across invocations.
package store

import (
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing run databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens (creating if needed) a DuckDB database at path.
func Open(path string) (*sql.DB, error) {
	return sql.Open("duckdb", path)
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("store: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
