// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SearchService scans the catalog with one of four strategies,
// IngestService runs the extract/deduplicate/classify/validate/commit
// pipeline, CatalogService owns statistics and persistence, and
// ExportService serialises entries through the exporter registry.
package services
