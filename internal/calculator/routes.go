package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints on r. The caller decides the
// prefix; the service mounts them under /api.
func RegisterRoutes(r chi.Router) {
	r.Get("/add", HandleAdd)
	r.Get("/subtract", HandleSubtract)
	r.Get("/multiply", HandleMultiply)
	r.Get("/divide", HandleDivide)
}
