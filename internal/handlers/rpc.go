package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"PostCraft/internal/domain"
	"PostCraft/internal/metrics"
)

// RPC dispatches JSON-RPC requests posted to the root path.
func (h *Handler) RPC(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("rpc handler panic", "panic", rec)
			h.internalError(w, fmt.Errorf("%v", rec))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.internalError(w, err)
		return
	}

	var req domain.RPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("malformed rpc request", "error", err)
		metrics.RPCRequestsTotal.WithLabelValues("invalid").Inc()
		h.internalError(w, err)
		return
	}

	metrics.RPCRequestsTotal.WithLabelValues(methodLabel(req.Method)).Inc()

	switch req.Method {
	case domain.MethodMessageSend:
		h.JSON(w, http.StatusOK, h.sender.HandleMessageSend(r.Context(), req.ID, req.Params))
	case domain.MethodTasksGet:
		h.JSON(w, http.StatusOK, domain.NewErrorResponse(req.ID, domain.CodeMethodNotFound, "Task polling not implemented"))
	default:
		h.JSON(w, http.StatusOK, domain.NewErrorResponse(req.ID, domain.CodeMethodNotFound, "Method not found: "+req.Method))
	}
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.JSON(w, http.StatusInternalServerError,
		domain.NewErrorResponse(nil, domain.CodeInternalError, "Internal error: "+err.Error()))
}

func methodLabel(method string) string {
	switch method {
	case domain.MethodMessageSend, domain.MethodTasksGet:
		return method
	default:
		return "unknown"
	}
}
