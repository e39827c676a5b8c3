// Package ingest parses external event records into []model.Event.
// Ingestion sits outside the analysis engine's scope, but every caller
// still needs some instance of it: this one reads the canonical CSV
// column order and a JSON-lines exchange format, and degrades per-record
// rather than aborting on a malformed row.
package ingest
