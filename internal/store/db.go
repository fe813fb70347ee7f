package store

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"
)

type DB struct {
	Bun *bun.DB
}

// Open connects to the sqlite database at path, creating the file if it
// does not exist. Use ":memory:" for a throwaway database.
func Open(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// The process is the only writer; a single connection avoids sqlite
	// lock contention between the shell and any background reload.
	sqldb.SetMaxOpenConns(1)

	return &DB{Bun: bun.NewDB(sqldb, sqlitedialect.New())}, nil
}

func (d *DB) Close() error {
	return d.Bun.Close()
}
