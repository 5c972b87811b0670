package sellerapi

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "console",
			Name:      "sellerapi_requests_total",
			Help:      "Llamadas a la API del vendedor por operación y código HTTP",
		},
		[]string{"operation", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "console",
			Name:      "sellerapi_request_duration_seconds",
			Help:      "Latencia de las llamadas a la API del vendedor",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration)
}
