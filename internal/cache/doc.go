// Package cache persists successful translations in SQLite so re-running a
// file, or translating a file that shares dialogue with an earlier one, skips
// the network round trip.
//
// Entries are keyed by backend, language pair, and the exact merged source
// text. The schema is versioned; a database written by an incompatible build
// is rejected with ErrSchemaMismatch rather than silently reused.
package cache
