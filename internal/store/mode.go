package store

import "fmt"

// Mode selects the locking behavior a transaction is started with.
//
// Deferred takes no locks until the first read or write, Immediate grabs the
// write lock up front, and Concurrent uses SQLite's optimistic page-level
// locking. Concurrent requires a begin-concurrent build of SQLite; against a
// stock build it fails like any other syntax error.
type Mode int

const (
	Deferred Mode = iota
	Immediate
	Concurrent
)

// Modes lists every transaction mode in the order experiments enumerate them.
var Modes = []Mode{Deferred, Immediate, Concurrent}

// String returns the keyword used after BEGIN. It doubles as the behavior
// label in result records.
func (m Mode) String() string {
	switch m {
	case Deferred:
		return "DEFERRED"
	case Immediate:
		return "IMMEDIATE"
	case Concurrent:
		return "CONCURRENT"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
