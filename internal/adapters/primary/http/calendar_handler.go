package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/qualitania/availability-service/internal/core/calendar"
	apperrors "github.com/qualitania/availability-service/internal/core/errors"
	"github.com/qualitania/availability-service/internal/core/ports"
)

// CalendarHandler handles HTTP requests for working-day and holiday queries
type CalendarHandler struct {
	calendarService ports.CalendarService
	errorHandler    *ErrorHandler
	logger          *slog.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(
	calendarService ports.CalendarService,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		errorHandler:    errorHandler,
		logger:          logger.With("handler", "calendar"),
	}
}

// Router sets up a new chi Router for all calendar routes.
func (h *CalendarHandler) Router() http.Handler {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes sets up the routing for all calendar endpoints.
func (h *CalendarHandler) RegisterRoutes(r chi.Router) {
	r.Get("/working-days", h.HandleWorkingDays)
	r.Get("/holidays/{year}", h.HandleHolidays)
}

// --- Response DTOs ---

// WorkingDaysDTO defines the JSON response for a working-day query.
type WorkingDaysDTO struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Count int      `json:"count"`
	Dates []string `json:"dates"`
}

func toWorkingDaysDTO(r ports.WorkingDayRange) WorkingDaysDTO {
	dates := make([]string, 0, len(r.Dates))
	for _, d := range r.Dates {
		dates = append(dates, d.String())
	}
	return WorkingDaysDTO{
		Start: r.Start.String(),
		End:   r.End.String(),
		Count: r.Count,
		Dates: dates,
	}
}

// HolidayDTO defines the JSON response for one holiday.
type HolidayDTO struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Transferred bool   `json:"transferred"`
}

// parseDateRange extracts the start and end query parameters.
func parseDateRange(r *http.Request) (calendar.Date, calendar.Date, error) {
	start, err := calendar.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	end, err := calendar.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return start, end, nil
}

// --- Handlers ---

// HandleWorkingDays handles GET /calendar/working-days
func (h *CalendarHandler) HandleWorkingDays(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toWorkingDaysDTO(h.calendarService.WorkingDays(start, end)))
}

// HandleHolidays handles GET /calendar/holidays/{year}
func (h *CalendarHandler) HandleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		h.errorHandler.Handle(w, r, apperrors.NewBadRequestError(err, "Invalid year"))
		return
	}

	holidays := h.calendarService.Holidays(year)
	response := make([]HolidayDTO, 0, len(holidays))
	for _, holiday := range holidays {
		response = append(response, HolidayDTO{
			Date:        holiday.Date.String(),
			Name:        holiday.Name,
			Transferred: holiday.Transferred,
		})
	}

	WriteList(w, response)
}
