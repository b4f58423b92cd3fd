package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GameCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connections_game_completions_total",
			Help: "Recorded game completions by level and kind (regular or daily).",
		},
		[]string{"level", "kind"},
	)

	PerfectCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connections_perfect_completions_total",
			Help: "Completions recorded with no mistakes and no hints.",
		},
		[]string{"level", "kind"},
	)

	DailyGamesMaterializedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "connections_daily_games_materialized_total",
			Help: "Daily games created by this process.",
		},
		[]string{"level"},
	)

	ProgressConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connections_progress_conflicts_total",
		Help: "Progress writes retried after a concurrent update to the same user.",
	})

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "connections_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

const (
	KindRegular = "regular"
	KindDaily   = "daily"
)

// RecordCompletion counts one completion.
func RecordCompletion(level, kind string, perfect bool) {
	GameCompletionsTotal.WithLabelValues(level, kind).Inc()
	if perfect {
		PerfectCompletionsTotal.WithLabelValues(level, kind).Inc()
	}
}

// Middleware observes request latency labelled by the matched route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		httpRequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
