// Package extractors selects the document extractor for a file.
//
// Extraction is tagged-variant dispatch: a closed set of per-format
// extractors registered in a table, keyed by MIME type with priority
// tie-breaking. There is no open-ended plugin loading.
package extractors
