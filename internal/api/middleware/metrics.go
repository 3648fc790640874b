package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests and server errors for the JSON
// metrics endpoint.
type MetricsCollector struct {
	requests *atomic.Int64
	errors   *atomic.Int64
}

func NewMetricsCollector(requests, errors *atomic.Int64) *MetricsCollector {
	return &MetricsCollector{requests: requests, errors: errors}
}

// Middleware increments the counters around each request.
func (m *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requests.Add(1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		if rw.statusCode >= http.StatusInternalServerError {
			m.errors.Add(1)
		}
	})
}
