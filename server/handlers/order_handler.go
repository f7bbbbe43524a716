package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"bakery-server/api/bakery"
	"bakery-server/config"
)

// forwardedHeaders are copied from the storefront request to the backend.
var forwardedHeaders = []string{"Authorization", "Accept-Language", "X-Request-ID"}

// OrderHandler proxies order creation to the bakery backend.
type OrderHandler struct {
	bakeryAPI bakery.BakeryAPI
}

func NewOrderHandler(bakeryAPI bakery.BakeryAPI) *OrderHandler {
	return &OrderHandler{bakeryAPI: bakeryAPI}
}

// CreateOrder handles POST /v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, config.MAX_PROXY_BODY_BYTES))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	if !json.Valid(payload) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	headers := make(map[string]string, len(forwardedHeaders))
	for _, name := range forwardedHeaders {
		if value := r.Header.Get(name); value != "" {
			headers[name] = value
		}
	}

	status, body, err := h.bakeryAPI.CreateOrder(r.Context(), payload, headers)
	if err != nil {
		log.Error().Err(err).Msg("Error forwarding order to backend")
		writeError(w, http.StatusBadGateway, "Order service unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
