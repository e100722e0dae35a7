package handlers

import "net/http"

// HealthResponse is the static body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

var health = HealthResponse{
	Status:  "UP",
	Service: "Jenkins Pipeline Demo",
	Version: "1.0.0",
}

// Health handles GET /api/health.
func Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, health)
}
