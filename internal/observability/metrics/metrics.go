package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes request counters/histograms plus CRM workflow counters.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	conversionsTotal *prometheus.CounterVec
	stageMovesTotal  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crm",
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "Latency of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		conversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "leads",
			Name:      "conversions_total",
			Help:      "Total lead conversion attempts",
		}, []string{"status"}),
		stageMovesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "deals",
			Name:      "stage_moves_total",
			Help:      "Total deal stage moves",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.conversionsTotal, m.stageMovesTotal)
	return m
}

// Middleware records per-request counters and latency, labelled by route
// template so path cardinality stays bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestLatency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func (m *Metrics) ObserveConversion(status string) {
	if m == nil {
		return
	}
	m.conversionsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveStageMove(status string) {
	if m == nil {
		return
	}
	m.stageMovesTotal.WithLabelValues(status).Inc()
}
