// Package exporters provides the output formats the export service can
// serialise catalog entries into. Every exporter writes the same field
// set in the same order (author, title, date, period, themes, notes,
// source); only the byte-level encoding differs.
package exporters
