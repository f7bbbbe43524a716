package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"bakery-server/availability"
	"bakery-server/i18n"
	"bakery-server/models"
	services "bakery-server/service"
	"bakery-server/util"
)

// ClosureOverrideRequest is the PUT /v1/store/closure body.
type ClosureOverrideRequest struct {
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"max=255"`
}

// WeeklyHoursResponse is returned by GET /v1/store/hours.
type WeeklyHoursResponse struct {
	OperatingHours  models.WeeklyHours `json:"operating_hours"`
	DefaultSchedule bool               `json:"default_schedule"`
	Timezone        string             `json:"timezone"`
}

// ClosureOverrideResponse wraps the current manual override, which may be null.
type ClosureOverrideResponse struct {
	Closure *models.ClosureOverride `json:"closure"`
}

type StoreHandler struct {
	statusService *services.StoreStatusService
	validate      *validator.Validate
}

func NewStoreHandler(statusService *services.StoreStatusService) *StoreHandler {
	return &StoreHandler{
		statusService: statusService,
		validate:      validator.New(),
	}
}

// Ping handles GET /ping
func (h *StoreHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// GetStoreStatus handles GET /v1/store/status
func (h *StoreHandler) GetStoreStatus(w http.ResponseWriter, r *http.Request) {
	tag := i18n.ResolveTag(r, h.statusService.DefaultTag())
	writeJSON(w, http.StatusOK, h.statusService.Status(tag))
}

// GetStoreHours handles GET /v1/store/hours
func (h *StoreHandler) GetStoreHours(w http.ResponseWriter, r *http.Request) {
	hours, usedDefault := h.statusService.EffectiveHours()
	writeJSON(w, http.StatusOK, WeeklyHoursResponse{
		OperatingHours:  hours,
		DefaultSchedule: usedDefault,
		Timezone:        h.statusService.Location().String(),
	})
}

// GetStoreHoursChart handles GET /v1/store/hours/chart
func (h *StoreHandler) GetStoreHoursChart(w http.ResponseWriter, r *http.Request) {
	tag := i18n.ResolveTag(r, h.statusService.DefaultTag())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderWeeklyHoursChart(w, h.statusService.Snapshot().Hours, tag); err != nil {
		log.Error().Err(err).Msg("Error rendering weekly hours chart")
	}
}

// GetClosure handles GET /v1/store/closure
func (h *StoreHandler) GetClosure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ClosureOverrideResponse{Closure: h.statusService.ClosureOverride()})
}

// PutClosure handles PUT /v1/store/closure
func (h *StoreHandler) PutClosure(w http.ResponseWriter, r *http.Request) {
	var req ClosureOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	override := models.ClosureOverride{
		IsActive:  req.IsActive,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}
	if err := h.statusService.SetClosureOverride(r.Context(), override); err != nil {
		if errors.Is(err, availability.ErrInvalidClosure) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("Error saving closure override")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, ClosureOverrideResponse{Closure: &override})
}

// DeleteClosure handles DELETE /v1/store/closure
func (h *StoreHandler) DeleteClosure(w http.ResponseWriter, r *http.Request) {
	if err := h.statusService.ClearClosureOverride(r.Context()); err != nil {
		log.Error().Err(err).Msg("Error clearing closure override")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
