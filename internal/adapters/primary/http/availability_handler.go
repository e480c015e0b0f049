package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// AvailabilityHandler handles HTTP requests for availability reports
type AvailabilityHandler struct {
	availabilityService ports.AvailabilityService
	errorHandler        *ErrorHandler
	logger              *slog.Logger
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(
	availabilityService ports.AvailabilityService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		errorHandler:        errorHandler,
		logger:              logger.With("handler", "availability"),
	}
}

// Router sets up a new chi Router for all availability routes.
func (h *AvailabilityHandler) Router() http.Handler {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes sets up the routing for all availability endpoints.
func (h *AvailabilityHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleReport)
	r.Post("/recompute", h.HandleRecompute)
	r.Get("/{analystID}", h.HandleAnalystReport)
}

// --- Response DTOs ---

// AvailabilityDTO defines the JSON response for one analyst's snapshot.
type AvailabilityDTO struct {
	AnalystID              string  `json:"analystId"`
	AnalystName            string  `json:"analystName"`
	TotalAssignedHours     float64 `json:"totalAssignedHours"`
	AvailabilityPercentage int     `json:"availabilityPercentage"`
	ActiveProjectsCount    int     `json:"activeProjectsCount"`
	WorkloadLevel          string  `json:"workloadLevel"`
}

// AvailabilityReportDTO defines the JSON response for the full report.
type AvailabilityReportDTO struct {
	Date            string            `json:"date"`
	Analysts        []AvailabilityDTO `json:"analysts"`
	SkippedProjects int               `json:"skippedProjects"`
}

func toAvailabilityDTO(s domain.AvailabilitySnapshot) AvailabilityDTO {
	return AvailabilityDTO{
		AnalystID:              s.AnalystID.String(),
		AnalystName:            s.AnalystName,
		TotalAssignedHours:     s.TotalAssignedHours,
		AvailabilityPercentage: s.AvailabilityPercentage,
		ActiveProjectsCount:    s.ActiveProjectsCount,
		WorkloadLevel:          string(s.WorkloadLevel),
	}
}

func toAvailabilityReportDTO(report *ports.AvailabilityReport, today calendar.Date) AvailabilityReportDTO {
	analysts := make([]AvailabilityDTO, 0, len(report.Snapshots))
	for _, s := range report.Snapshots {
		analysts = append(analysts, toAvailabilityDTO(s))
	}
	return AvailabilityReportDTO{
		Date:            today.String(),
		Analysts:        analysts,
		SkippedProjects: report.SkippedProjects,
	}
}

// referenceDate resolves the optional "date" query parameter. The wall
// clock is only consulted here, at the HTTP boundary; everything below
// receives the date as a value.
func referenceDate(r *http.Request) (calendar.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return calendar.DateOf(timeNow()), nil
	}
	return calendar.ParseDate(raw)
}

// --- Handlers ---

// HandleReport handles GET /availability
func (h *AvailabilityHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	today, err := referenceDate(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	report, err := h.availabilityService.Report(r.Context(), today)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toAvailabilityReportDTO(report, today))
}

// HandleAnalystReport handles GET /availability/{analystID}
func (h *AvailabilityHandler) HandleAnalystReport(w http.ResponseWriter, r *http.Request) {
	analystID, err := uuid.Parse(chi.URLParam(r, "analystID"))
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewBadRequestError(err, "Invalid analyst ID"))
		return
	}

	today, err := referenceDate(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	snapshot, err := h.availabilityService.ReportForAnalyst(r.Context(), analystID, today)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toAvailabilityDTO(*snapshot))
}

// HandleRecompute handles POST /availability/recompute
func (h *AvailabilityHandler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	today, err := referenceDate(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	report, err := h.availabilityService.RecomputeAndPersist(r.Context(), today)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("availability recomputed",
		"analysts", len(report.Snapshots),
		"skipped_projects", report.SkippedProjects,
	)

	WriteJSON(w, http.StatusOK, toAvailabilityReportDTO(report, today))
}
