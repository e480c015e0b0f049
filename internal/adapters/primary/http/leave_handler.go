package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/qualitania/availability-service/internal/adapters/primary/validation"
	"github.com/qualitania/availability-service/internal/core/calendar"
	"github.com/qualitania/availability-service/internal/core/domain"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/ports"
)

const maxLeaveDescriptionLength = 500

// AnalystHandler handles HTTP requests scoped to one analyst: leave
// administration and per-analyst working-day queries.
type AnalystHandler struct {
	leaveService    ports.LeaveService
	calendarService ports.CalendarService
	errorHandler    *ErrorHandler
	logger          *slog.Logger
}

// NewAnalystHandler creates a new analyst handler
func NewAnalystHandler(
	leaveService ports.LeaveService,
	calendarService ports.CalendarService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *AnalystHandler {
	return &AnalystHandler{
		leaveService:    leaveService,
		calendarService: calendarService,
		errorHandler:    errorHandler,
		logger:          logger.With("handler", "analyst"),
	}
}

// Router sets up a new chi Router for all analyst routes.
func (h *AnalystHandler) Router() http.Handler {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes sets up the routing for all analyst endpoints.
func (h *AnalystHandler) RegisterRoutes(r chi.Router) {
	r.Route("/{analystID}", func(r chi.Router) {
		r.Get("/working-days", h.HandleWorkingDays)
		r.Get("/leaves", h.HandleListLeaves)
		r.Post("/leaves", h.HandleCreateLeave)
		r.Delete("/leaves/{leaveID}", h.HandleDeleteLeave)
	})
}

// --- Request/Response DTOs ---

// CreateLeaveRequest defines the expected JSON body for creating a leave period
type CreateLeaveRequest struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Validate validates the create leave request
func (r *CreateLeaveRequest) Validate() error {
	v := validation.NewValidator()

	v.Required("startDate", r.StartDate)
	v.Required("endDate", r.EndDate)
	v.MaxLength("description", r.Description, maxLeaveDescriptionLength)
	v.Required("type", r.Type).
		OneOf("type", r.Type, []string{
			string(domain.LeaveVacation),
			string(domain.LeaveGeneral),
			string(domain.LeaveTraining),
			string(domain.LeaveOther),
		})

	if v.HasErrors() {
		return v.Errors()
	}
	return nil
}

// LeaveDTO defines the JSON response for leave periods.
type LeaveDTO struct {
	ID          int64  `json:"id"`
	AnalystID   string `json:"analystId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
}

func toLeaveDTO(p *domain.LeavePeriod) LeaveDTO {
	return LeaveDTO{
		ID:          p.ID,
		AnalystID:   p.AnalystID.String(),
		StartDate:   p.StartDate.String(),
		EndDate:     p.EndDate.String(),
		Description: p.Description,
		Type:        string(p.Type),
	}
}

func toLeaveDTOs(periods []*domain.LeavePeriod) []LeaveDTO {
	response := make([]LeaveDTO, 0, len(periods))
	for _, p := range periods {
		response = append(response, toLeaveDTO(p))
	}
	return response
}

// analystIDParam parses the analyst ID path parameter.
func analystIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "analystID"))
	if err != nil {
		return uuid.Nil, apperrors.NewBadRequestError(err, "Invalid analyst ID")
	}
	return id, nil
}

// --- Handlers ---

// HandleWorkingDays handles GET /analysts/{analystID}/working-days
func (h *AnalystHandler) HandleWorkingDays(w http.ResponseWriter, r *http.Request) {
	analystID, err := analystIDParam(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.calendarService.AnalystWorkingDays(r.Context(), analystID, start, end)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toWorkingDaysDTO(result))
}

// HandleListLeaves handles GET /analysts/{analystID}/leaves
func (h *AnalystHandler) HandleListLeaves(w http.ResponseWriter, r *http.Request) {
	analystID, err := analystIDParam(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	periods, err := h.leaveService.ListForAnalyst(r.Context(), analystID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteList(w, toLeaveDTOs(periods))
}

// HandleCreateLeave handles POST /analysts/{analystID}/leaves
func (h *AnalystHandler) HandleCreateLeave(w http.ResponseWriter, r *http.Request) {
	analystID, err := analystIDParam(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	req, err := validation.DecodeAndValidate[CreateLeaveRequest](r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	end, err := calendar.ParseDate(req.EndDate)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	period, err := h.leaveService.CreateLeave(r.Context(), ports.CreateLeaveParams{
		AnalystID:   analystID,
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		Type:        domain.LeaveType(req.Type),
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.logger.Info("leave period created",
		"analyst_id", analystID,
		"leave_id", period.ID,
	)

	WriteCreated(w, toLeaveDTO(period))
}

// HandleDeleteLeave handles DELETE /analysts/{analystID}/leaves/{leaveID}
func (h *AnalystHandler) HandleDeleteLeave(w http.ResponseWriter, r *http.Request) {
	analystID, err := analystIDParam(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	leaveID, err := strconv.ParseInt(chi.URLParam(r, "leaveID"), 10, 64)
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewBadRequestError(err, "Invalid leave ID"))
		return
	}

	if err := h.leaveService.DeleteLeave(r.Context(), analystID, leaveID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteNoContent(w)
}
