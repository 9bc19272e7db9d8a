package repo

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// slowQuery is the threshold above which a statement counts as slow.
const slowQuery = 100 * time.Millisecond

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spotting_db_query_duration_seconds",
			Help:    "Database statement duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	queryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotting_db_queries_total",
			Help: "Total number of database statements",
		},
		[]string{"operation"},
	)

	queryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotting_db_query_errors_total",
			Help: "Total number of failed database statements",
		},
		[]string{"operation"},
	)

	slowQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spotting_db_slow_queries_total",
			Help: "Total number of database statements slower than 100ms",
		},
		[]string{"operation"},
	)
)

func recordQuery(op string, d time.Duration, err error) {
	queryTotal.WithLabelValues(op).Inc()
	queryDuration.WithLabelValues(op).Observe(d.Seconds())
	if d > slowQuery {
		slowQueries.WithLabelValues(op).Inc()
	}
	if err != nil {
		queryErrors.WithLabelValues(op).Inc()
	}
}

// operation returns the leading SQL keyword in upper case, e.g. "SELECT".
// Keeps label cardinality bounded regardless of statement text.
func operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

// RegisterPoolMetrics exposes connection pool gauges on reg.
// The acquired gauge returns to its baseline once every request has released
// its connection.
func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := []struct {
		name, help string
		value      func(*pgxpool.Stat) float64
	}{
		{"spotting_db_pool_acquired_conns", "Connections currently checked out", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) }},
		{"spotting_db_pool_idle_conns", "Idle connections in the pool", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) }},
		{"spotting_db_pool_total_conns", "Total connections in the pool", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) }},
		{"spotting_db_pool_max_conns", "Maximum pool size", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) }},
	}

	for _, g := range gauges {
		value := g.value
		collector := prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: g.name, Help: g.help},
			func() float64 { return value(pool.Stat()) },
		)
		if err := reg.Register(collector); err != nil {
			return err
		}
	}
	return nil
}
