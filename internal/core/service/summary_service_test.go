package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/course-platform/internal/core/domain"
)

type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.summary, s.err
}

type stubSummaryCache struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{entries: map[string]string{}}
}

func (c *stubSummaryCache) Get(_ context.Context, text string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.entries[text]
	return v, ok, nil
}

func (c *stubSummaryCache) Set(_ context.Context, text, summary string, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[text] = summary
	return nil
}

func TestSummaryService_Summarize_CallsProviderAndCaches(t *testing.T) {
	summarizer := &stubSummarizer{summary: "short version"}
	cache := newStubSummaryCache()
	svc := NewSummaryService(summarizer, cache, zerolog.Nop())

	got, err := svc.Summarize(context.Background(), "a long course description")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got != "short version" {
		t.Fatalf("summary = %q, want %q", got, "short version")
	}
	if cache.entries["a long course description"] != "short version" {
		t.Fatalf("summary was not cached")
	}
}

func TestSummaryService_Summarize_CacheHitSkipsProvider(t *testing.T) {
	summarizer := &stubSummarizer{summary: "fresh"}
	cache := newStubSummaryCache()
	cache.entries["known text"] = "cached version"
	svc := NewSummaryService(summarizer, cache, zerolog.Nop())

	got, err := svc.Summarize(context.Background(), "known text")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got != "cached version" {
		t.Fatalf("summary = %q, want cached value", got)
	}
	if summarizer.calls != 0 {
		t.Fatalf("provider called %d times, want 0", summarizer.calls)
	}
}

func TestSummaryService_Summarize_ProviderErrorSurfaces(t *testing.T) {
	summarizer := &stubSummarizer{err: domain.ErrSummaryUnavailable}
	svc := NewSummaryService(summarizer, newStubSummaryCache(), zerolog.Nop())

	if _, err := svc.Summarize(context.Background(), "text"); !errors.Is(err, domain.ErrSummaryUnavailable) {
		t.Fatalf("expected ErrSummaryUnavailable, got %v", err)
	}
}

func TestSummaryService_Summarize_CacheFailuresAreNonFatal(t *testing.T) {
	summarizer := &stubSummarizer{summary: "short version"}
	cache := newStubSummaryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewSummaryService(summarizer, cache, zerolog.Nop())

	got, err := svc.Summarize(context.Background(), "text")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if got != "short version" {
		t.Fatalf("summary = %q, want provider result", got)
	}
	if summarizer.calls != 1 {
		t.Fatalf("provider called %d times, want 1", summarizer.calls)
	}
}
