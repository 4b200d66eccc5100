// server/internal/metrics/metrics.go
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests handled, by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	complianceEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_compliance_evaluations_total",
			Help: "Compliance evaluations run, by entity type and resulting state.",
		},
		[]string{"entity", "state"},
	)
)

// ObserveEvaluation records one compliance evaluation outcome.
func ObserveEvaluation(entity, state string) {
	complianceEvaluations.WithLabelValues(entity, state).Inc()
}

// Middleware counts requests per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// Handler exposes the prometheus registry for the /metrics route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
