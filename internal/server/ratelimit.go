package server

import (
	"math"
	"net/http"

	"golang.org/x/time/rate"

	"jenkins-pipeline-demo/internal/handlers"
)

// RateLimit returns middleware sharing one token bucket of rps tokens per
// second across all requests. A burst below 1 becomes ceil(rps).
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if burst < 1 {
		burst = max(1, int(math.Ceil(rps)))
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				handlers.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
