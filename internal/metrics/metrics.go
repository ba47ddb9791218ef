// Package metrics exposes request counters for the API.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "estatehub_http_requests_total",
		Help: "HTTP requests processed, by route and status code.",
	},
	[]string{"route", "status"},
)

// Middleware counts every request by matched route and response status.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
