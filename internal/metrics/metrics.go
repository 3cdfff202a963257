// Package metrics holds the Prometheus collectors shared by the site.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

var (
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		},
		[]string{"status"}, // saved, invalid, store_error
	)

	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_chat_requests_total",
			Help: "Chatbot completions by model and outcome.",
		},
		[]string{"model", "status"},
	)
	ChatDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_chat_request_duration_seconds",
			Help:    "Chatbot completion latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	TourSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "portfolio_tour_sessions_active",
		Help: "Open guided tour websocket sessions.",
	})
	TourControls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_tour_controls_total",
			Help: "Tour control actions by action and result.",
		},
		[]string{"action", "result"},
	)
	TourNavigationWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_tour_navigation_warnings_total",
			Help: "Tour steps whose section could not be located.",
		},
		[]string{"variant", "section"},
	)
)

// Instrument adds request metrics and the /metrics endpoint to router. Only
// routes registered afterwards are measured.
func Instrument(router *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if full := c.FullPath(); full != "" {
			return full
		}
		return "unmatched"
	}
	p.Use(router)
}
