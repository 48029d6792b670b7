// Package store wraps the SQLite database the benchmark drives.
//
// It owns the schema, the seeding script, and the per-worker connection
// handling. SQLite's concurrency model is per-connection, so every worker
// opens its own Conn and nothing here is shared between goroutines.
package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const (
	scanSQL   = "SELECT * FROM tbl WHERE substr(c, 1, 16)>=? ORDER BY substr(c, 1, 16) LIMIT 10"
	updateSQL = "UPDATE tbl SET b=?, c=? WHERE a=?"
)

// RemoveState deletes the database file along with its -shm and -wal side
// files. Missing files are not an error; this runs before seeding and after
// a completed benchmark to guarantee a fresh store.
func RemoveState(path string) {
	_ = os.Remove(path)
	_ = os.Remove(path + "-shm")
	_ = os.Remove(path + "-wal")
}

// Seed creates the benchmark table at path and fills it with rows records.
//
// Rows are keyed by a dense integer primary key in [0, rows), each carrying
// a 200-byte random blob and a 64-character random hex string. Two indexes
// over prefixes of the hex column make the scan query selective. WAL mode
// and relaxed synchronous settings keep seeding and the benchmark itself
// from being bottlenecked on fsync.
func Seed(path string, rows int) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open store for seeding: %w", err)
	}
	defer db.Close()

	script := fmt.Sprintf(`
		PRAGMA journal_mode = WAL;
		PRAGMA mmap_size = 1000000000;
		PRAGMA synchronous = off;
		PRAGMA journal_size_limit = 16777216;

		CREATE TABLE tbl(
			a INTEGER PRIMARY KEY,
			b BLOB(200),
			c CHAR(64)
		);

		WITH RECURSIVE generate_series(value) AS (
			SELECT 0
			UNION ALL
			SELECT value+1 FROM generate_series
			WHERE value+1 < %d
		)
		INSERT INTO tbl
		SELECT value, randomblob(200), hex(randomblob(32))
		FROM generate_series;

		CREATE INDEX tbl_i1 ON tbl(substr(c, 1, 16));
		CREATE INDEX tbl_i2 ON tbl(substr(c, 2, 16));
	`, rows)

	if _, err := db.Exec(script); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	return nil
}
