package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

const startedAtKey = "arena:started_at"

// QueryMetricsPlugin is a GORM plugin that records query durations in a Prometheus histogram
type QueryMetricsPlugin struct {
	duration *prometheus.HistogramVec
}

// NewQueryMetricsPlugin registers the query histogram with reg
func NewQueryMetricsPlugin(reg prometheus.Registerer, namespace string) *QueryMetricsPlugin {
	return &QueryMetricsPlugin{
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database operations by table and operation",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "table", "status"}),
	}
}

// Name implements gorm.Plugin
func (p *QueryMetricsPlugin) Name() string {
	return "arena:query_metrics"
}

// Initialize implements gorm.Plugin
func (p *QueryMetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		operation string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, hook := range hooks {
		if err := hook.before("arena:before_"+hook.operation, startTimer); err != nil {
			return err
		}
		if err := hook.after("arena:after_"+hook.operation, p.observe(hook.operation)); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func (p *QueryMetricsPlugin) observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		value, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		startedAt, ok := value.(time.Time)
		if !ok {
			return
		}

		status := "ok"
		if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
			status = "error"
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		p.duration.WithLabelValues(operation, table, status).Observe(time.Since(startedAt).Seconds())
	}
}
