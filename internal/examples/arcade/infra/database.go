package infra

import (
	_ "embed"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DBConfig struct {
	Path string
}

//go:embed schema.sql
var schema string

func NewDB(config DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", config.Path)
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers anyway, and ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(schema)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
