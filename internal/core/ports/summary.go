package ports

import (
	"context"
	"time"
)

// Summarizer abstracts the external text-summarization provider. It may
// fail when the upstream is unreachable, unconfigured, or returns a
// non-success status; such failures surface as domain.ErrSummaryUnavailable.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummaryCache stores previously generated summaries keyed by input text.
type SummaryCache interface {
	Get(ctx context.Context, text string) (string, bool, error)
	Set(ctx context.Context, text, summary string, ttl time.Duration) error
}

// SummaryService produces course-description summaries.
type SummaryService interface {
	Summarize(ctx context.Context, text string) (string, error)
}
