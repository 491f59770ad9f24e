package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter jumlah request HTTP
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration durasi request dalam detik
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	OrdersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_orders_created_total",
			Help: "Orders created per business area",
		},
		[]string{"business_area_id"},
	)

	StockAdjustments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clinic_stock_adjustments_total",
			Help: "Stock ledger adjustments by direction",
		},
		[]string{"direction"},
	)

	PatientsAssigned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_patients_assigned_total",
			Help: "Patients assigned to order items",
		},
	)

	QuotaRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clinic_schedule_quota_rejections_total",
			Help: "Quota subtractions rejected because they exceed the remaining quota",
		},
	)
)

// Register mendaftarkan semua collector ke registry
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestCounter,
		RequestDuration,
		OrdersCreated,
		StockAdjustments,
		PatientsAssigned,
		QuotaRejections,
	)
}

// Middleware mencatat jumlah dan durasi request. Path memakai route template
// (c.FullPath) supaya label tidak meledak karena ID.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		RequestCounter.WithLabelValues(c.Request.Method, path, status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
