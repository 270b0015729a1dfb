package handlers

import "net/http"

// HealthResponse reports liveness and which providers have credentials.
type HealthResponse struct {
	Status          string `json:"status"`
	Agent           string `json:"agent"`
	GeminiAvailable bool   `json:"gemini_available"`
	GroqAvailable   bool   `json:"groq_available"`
}

// Health handles the health check endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		Agent:           AgentName,
		GeminiAvailable: h.geminiAvailable,
		GroqAvailable:   h.groqAvailable,
	})
}
