// Package sqlite provides durable catalog persistence backed by SQLite.
//
// Persistence follows the recommended layout: entries only, written in
// a single transaction so the save is atomic; the in-memory indices
// are derived data and are rebuilt deterministically when the catalog
// is loaded.
package sqlite
