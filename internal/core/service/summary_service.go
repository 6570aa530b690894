package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/course-platform/internal/api/metrics"
	"github.com/coursehub/course-platform/internal/core/ports"
)

const summaryCacheTTL = 24 * time.Hour

// SummaryService produces course-description summaries through an external
// provider, with a cache in front so identical texts are summarized once.
type SummaryService struct {
	summarizer ports.Summarizer
	cache      ports.SummaryCache
	log        zerolog.Logger
}

func NewSummaryService(summarizer ports.Summarizer, cache ports.SummaryCache, log zerolog.Logger) *SummaryService {
	return &SummaryService{summarizer: summarizer, cache: cache, log: log}
}

// Summarize returns a cached summary when one exists, otherwise calls the
// provider. Cache failures are logged and ignored; provider failures
// surface to the caller.
func (s *SummaryService) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	defer func() { metrics.SummaryDuration.Observe(time.Since(start).Seconds()) }()

	cached, ok, err := s.cache.Get(ctx, text)
	if err != nil {
		s.log.Warn().Err(err).Msg("summary cache lookup failed, calling provider")
	} else if ok {
		metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
		metrics.SummaryRequestsTotal.WithLabelValues("success").Inc()
		return cached, nil
	} else {
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		metrics.SummaryRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if err := s.cache.Set(ctx, text, summary, summaryCacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache summary")
	}

	metrics.SummaryRequestsTotal.WithLabelValues("success").Inc()
	return summary, nil
}
