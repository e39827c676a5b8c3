package ingest

import "fmt"

// RowError reports one degraded or skipped record. Row is 1-based and
// counts header-exclusive data rows (CSV) or lines (JSON-lines).
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %s", e.Row, e.Reason) }
