package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// DefaultBusyTimeout is how long a connection waits on SQLite's internal
// lock before a statement surfaces SQLITE_BUSY, in milliseconds. This bounds
// a single lock wait; it is unrelated to the experiment deadline.
const DefaultBusyTimeout = 5000

// Conn is one worker's private handle to the store.
//
// The scan and update statements are prepared once and reused across every
// transaction the worker runs. Conn is not safe for concurrent use; workers
// never share one.
type Conn struct {
	db     *sql.DB
	scan   *sql.Stmt
	update *sql.Stmt
}

// Open opens a read-write connection with the default busy timeout.
func Open(path string) (*Conn, error) {
	return OpenWithBusyTimeout(path, DefaultBusyTimeout)
}

// OpenWithBusyTimeout opens a read-write connection that waits up to
// busyTimeoutMS milliseconds on contended locks before failing busy.
func OpenWithBusyTimeout(path string, busyTimeoutMS int) (*Conn, error) {
	dsn := fmt.Sprintf("file:%s?mode=rw&_busy_timeout=%d", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// Transactions are driven with explicit BEGIN/COMMIT statements, which
	// only works if every statement runs on the same underlying connection.
	db.SetMaxOpenConns(1)

	scan, err := db.Prepare(scanSQL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare scan statement: %w", err)
	}
	update, err := db.Prepare(updateSQL)
	if err != nil {
		scan.Close()
		db.Close()
		return nil, fmt.Errorf("prepare update statement: %w", err)
	}

	return &Conn{db: db, scan: scan, update: update}, nil
}

// Begin starts a transaction under the given mode.
func (c *Conn) Begin(m Mode) error {
	_, err := c.db.Exec("BEGIN " + m.String())
	return err
}

// Commit commits the current transaction.
func (c *Conn) Commit() error {
	_, err := c.db.Exec("COMMIT")
	return err
}

// Rollback resets the connection after a failed transaction attempt. The
// error is discarded: if the failure already rolled the transaction back,
// ROLLBACK itself fails with "no transaction active".
func (c *Conn) Rollback() {
	_, _ = c.db.Exec("ROLLBACK")
}

// Scan runs one bounded range read for probe and drains the result set.
// Row values are discarded; only the read path is being exercised.
func (c *Conn) Scan(probe string) error {
	rows, err := c.scan.Query(probe)
	if err != nil {
		return err
	}
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}

// Update rewrites the blob and hex columns of the row keyed by rowID.
func (c *Conn) Update(payload []byte, hex string, rowID int64) error {
	_, err := c.update.Exec(payload, hex, rowID)
	return err
}

// Close releases the prepared statements and the underlying connection.
func (c *Conn) Close() error {
	c.scan.Close()
	c.update.Close()
	return c.db.Close()
}

// IsBusy reports whether err is SQLite's busy/locked signal, the only error
// class a benchmark transaction is allowed to retry.
func IsBusy(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrBusy || se.Code == sqlite3.ErrLocked
	}
	return false
}
