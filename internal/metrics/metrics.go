package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ReportsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_reports_submitted_total", Help: "Total price reports submitted"},
	)
	ReportsVerified = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_reports_verified_total", Help: "Total price reports verified"},
	)
	ReportsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_reports_rejected_total", Help: "Total price reports rejected"},
	)
	VotesCast = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_votes_total", Help: "Total helpful votes cast"},
	)
	BadgesAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_badges_awarded_total", Help: "Total badges awarded"},
	)
	NotificationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "pricepulse_notifications_created_total", Help: "Total notifications created"},
	)

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pricepulse_http_requests_total", Help: "HTTP requests by method, route and status"},
		[]string{"method", "route", "status"},
	)
)

func Register() {
	prometheus.MustRegister(
		ReportsSubmitted, ReportsVerified, ReportsRejected,
		VotesCast, BadgesAwarded, NotificationsCreated,
		HTTPRequests,
	)
}
