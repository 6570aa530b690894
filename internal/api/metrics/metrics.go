// Package metrics defines and registers all custom Prometheus metrics for
// the course platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "courseplatform"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: the role stored on the new account ("student", "instructor", "admin")
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Course metrics ────────────────────────────────────────────────────────────

// CoursesCreatedTotal counts newly created courses.
var CoursesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created.",
	},
)

// CoursesDeletedTotal counts deleted courses.
var CoursesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_deleted_total",
		Help:      "Total number of courses deleted.",
	},
)

// ── Enrollment metrics ────────────────────────────────────────────────────────

// EnrollmentsCreatedTotal counts successful enrollments.
var EnrollmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_created_total",
		Help:      "Total number of successful enrollments.",
	},
)

// EnrollmentConflictsTotal counts enrollment attempts rejected because the
// (student, course) pair already existed.
var EnrollmentConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollment_conflicts_total",
		Help:      "Total number of duplicate enrollment attempts rejected.",
	},
)

// ── Summary metrics ───────────────────────────────────────────────────────────

// SummaryRequestsTotal counts AI summary requests.
// Label:
//   - result: "success" or "error"
var SummaryRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_requests_total",
		Help:      "Total number of AI summary requests, by result.",
	},
	[]string{"result"},
)

// SummaryCacheTotal counts summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of summary cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// SummaryDuration measures how long a summary request takes end-to-end,
// including the upstream provider call on cache misses.
var SummaryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "summary_duration_seconds",
		Help:      "Duration of AI summary requests from receipt to response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
