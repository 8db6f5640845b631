// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogStore: in-memory catalog of entries plus derived indices
//   - CatalogPersistence: durable catalog storage
//   - Extractor: turns raw document bytes into candidate entries
//   - Exporter: serialises entries into one output format
package driven
