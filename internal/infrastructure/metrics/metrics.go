package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mentor"

// Metrics はアプリケーションのPrometheusメトリクスを保持します
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// 権限判定
	AuthzDecisionsTotal *prometheus.CounterVec

	// バックグラウンドジョブ
	JobRunsTotal         *prometheus.CounterVec
	ArchivedMentorsTotal prometheus.Counter

	// 監査ログ
	AuditDroppedTotal prometheus.Counter
}

// New は新しいレジストリにメトリクスを登録します
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry は指定したレジストリにメトリクスを登録します
func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "authz_decisions_total",
				Help:      "Total number of authorization decisions by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		JobRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "job_runs_total",
				Help:      "Total number of background job runs",
			},
			[]string{"job", "status"},
		),
		ArchivedMentorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "archived_mentors_total",
				Help:      "Total number of mentors archived by reconciliation",
			},
		),
		AuditDroppedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_dropped_total",
				Help:      "Total number of audit entries dropped because the buffer was full",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthzDecisionsTotal,
		m.JobRunsTotal,
		m.ArchivedMentorsTotal,
		m.AuditDroppedTotal,
	)

	return m
}

// RecordDecision は権限判定の結果を記録します
func (m *Metrics) RecordDecision(action, outcome string) {
	if m == nil {
		return
	}
	m.AuthzDecisionsTotal.WithLabelValues(action, outcome).Inc()
}

// RecordJobRun はジョブの実行結果を記録します
func (m *Metrics) RecordJobRun(job string, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.JobRunsTotal.WithLabelValues(job, status).Inc()
}

// Handler は/metrics用のハンドラを返します
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
