package sharetelemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	prometheusMonitoringHandler = http.NotFoundHandler

	prometheusMonitoringWrapper = func(next http.Handler) http.Handler {
		return next
	}

	rankingsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sharetelemetry_rankings_served_total",
		Help: "Number of competition rankings computed and served.",
	})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "sharetelemetry_http_request_duration_seconds",
		Help: "HTTP request durations.",
	}, []string{"method"})
)

func InitMonitoring() {
	logrus.Infof("initialising prometheus monitoring")

	prometheus.MustRegister(rankingsServed, httpRequestDuration)

	prometheusMonitoringHandler = promhttp.Handler

	prometheusMonitoringWrapper = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues(r.Method))
			defer timer.ObserveDuration()

			next.ServeHTTP(w, r)
		})
	}
}
