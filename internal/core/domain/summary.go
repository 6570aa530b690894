package domain

import "errors"

// ErrSummaryUnavailable is returned when the external summarization
// provider is unconfigured, unreachable, or answers with an error status.
// Wrapping errors carry the upstream status and body for diagnostics.
var ErrSummaryUnavailable = errors.New("summary provider unavailable")
