package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder server 用来区分 web 和 admin 两个 server
func NewMetricsBuilder(server string) *MetricsBuilder {
	return NewMetricsBuilderWithRegisterer(prometheus.DefaultRegisterer, server)
}

func NewMetricsBuilderWithRegisterer(reg prometheus.Registerer, server string) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"server": server}
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:   "commande",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "commande",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()
		// 没匹配上路由时用 unmatched, 避免路径把标签撑爆
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		method := ctx.Request.Method
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
