package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"PostCraft/internal/ports"
)

// AgentName is advertised in the agent card and the health report.
const AgentName = "POST CRAFT AGENT"

// Deps are the collaborators shared by all HTTP handlers.
type Deps struct {
	Sender          ports.MessageSender
	Card            AgentCard
	GeminiAvailable bool
	GroqAvailable   bool
	Logger          *slog.Logger
}

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	sender          ports.MessageSender
	card            AgentCard
	geminiAvailable bool
	groqAvailable   bool
	logger          *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		sender:          deps.Sender,
		card:            deps.Card,
		geminiAvailable: deps.GeminiAvailable,
		groqAvailable:   deps.GroqAvailable,
		logger:          logger,
	}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("write response", "error", err)
	}
}
