// Package sqlite persists aggregate event streams in a SQLite journal.
//
// Appends are conditional on the stream version observed at load time, which
// gives the dispatch boundary optimistic concurrency per aggregate instance.
package sqlite
