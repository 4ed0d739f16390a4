package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers Prometheus metrics for the HTTP surface and the
// notification dispatcher.
type Collector struct {
	httpRequests        *prometheus.CounterVec
	httpLatency         prometheus.Histogram
	notificationsSent   prometheus.Counter
	notificationsFailed prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobportal_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		notificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobportal_notifications_sent_total",
			Help: "Notification emails delivered to the relay",
		}),
		notificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobportal_notifications_failed_total",
			Help: "Notification emails that failed to send",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.notificationsSent,
		c.notificationsFailed,
	)

	return c
}

// RecordHTTPRequest counts a finished request.
func (c *Collector) RecordHTTPRequest(method, route string, status int) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordHTTPLatency records how long a request took.
func (c *Collector) RecordHTTPLatency(d time.Duration) {
	c.httpLatency.Observe(d.Seconds())
}

// RecordNotificationSent counts a delivered notification.
func (c *Collector) RecordNotificationSent() {
	c.notificationsSent.Inc()
}

// RecordNotificationFailure counts a failed notification.
func (c *Collector) RecordNotificationFailure() {
	c.notificationsFailed.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
