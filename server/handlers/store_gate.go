package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"bakery-server/i18n"
	services "bakery-server/service"
)

// StoreGate blocks ordering while the store is closed.
type StoreGate struct {
	statusService *services.StoreStatusService
}

func NewStoreGate(statusService *services.StoreStatusService) *StoreGate {
	return &StoreGate{statusService: statusService}
}

// RequireOpen answers 423 Locked with the store status when the store is
// closed, and passes the request through otherwise.
func (g *StoreGate) RequireOpen(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := g.statusService.Status(i18n.ResolveTag(r, g.statusService.DefaultTag()))
		if !status.IsOpen {
			log.Info().
				Str("path", r.URL.Path).
				Str("next_open", status.NextOpenLabel).
				Msg("Rejected order while store is closed")
			writeJSON(w, http.StatusLocked, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}
