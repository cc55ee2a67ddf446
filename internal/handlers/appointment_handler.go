package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/middleware"
	"github.com/valentinobarber/site-api/internal/models"
	"github.com/valentinobarber/site-api/internal/timezone"
	ucbooking "github.com/valentinobarber/site-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	reserve  *ucbooking.Reserve
	list     *ucbooking.List
	cancel   *ucbooking.Cancel
	complete *ucbooking.Complete
	tz       string
}

func NewAppointmentHandler(
	reserve *ucbooking.Reserve,
	list *ucbooking.List,
	cancel *ucbooking.Cancel,
	complete *ucbooking.Complete,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		reserve:  reserve,
		list:     list,
		cancel:   cancel,
		complete: complete,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReserveRequest struct {
	BarberID      uint   `json:"barberId" binding:"required"`
	ServiceID     string `json:"serviceId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
}

// The wizard submits RFC 3339; the admin dashboard submits a local
// "YYYY-MM-DD HH:mm" in the shop timezone.
func (h *AppointmentHandler) parseStartTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", raw, timezone.Location(h.tz))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Missing required fields.")
		return
	}

	start, err := h.parseStartTime(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Start time is not a valid date.")
		return
	}

	ap, err := h.reserve.Execute(c.Request.Context(), ucbooking.ReserveInput{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		StartTime:     start,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.Conflict(c, "slot_conflict",
				"This barber already has an appointment at this time. Please pick another time.")
		case httperr.IsBusiness(err, "barber_not_found"):
			httperr.BadRequest(c, "barber_not_found", "Unknown barber.")
		case httperr.IsBusiness(err, "invalid_phone"):
			httperr.BadRequest(c, "invalid_phone", "Phone number is not valid.")
		case httperr.IsStorageUnavailable(err):
			httperr.Unavailable(c, "storage_unavailable", "Booking is temporarily unavailable.")
		case isValidationCode(err):
			httperr.BadRequest(c, err.Error(), "Missing or malformed field.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var barberID uint
	if raw := c.Query("barberId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "barberId must be numeric.")
			return
		}
		barberID = uint(id)
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.ParseInLocation("2006-01-02", raw, timezone.Location(h.tz))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
			return
		}
		date = &d
	}

	apps, err := h.list.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		// Reads degrade to an empty page rather than failing the whole
		// site when the datastore is unreachable.
		if httperr.IsStorageUnavailable(err) {
			httpresp.List(c, make([]models.Appointment, 0))
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// CANCEL / COMPLETE (admin)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), adminActor(c), id)
	if err != nil {
		writeTransitionError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), adminActor(c), id)
	if err != nil {
		writeTransitionError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

var validationCodes = []string{
	"missing_barber",
	"missing_service",
	"missing_customer_name",
	"missing_customer_phone",
	"missing_start_time",
}

func isValidationCode(err error) bool {
	for _, code := range validationCodes {
		if httperr.IsBusiness(err, code) {
			return true
		}
	}
	return false
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id must be numeric.")
		return 0, false
	}
	return uint(id), true
}

func adminActor(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextAdminUser); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "admin"
}

func writeTransitionError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Only scheduled appointments can be changed.")
	case httperr.IsStorageUnavailable(err):
		httperr.Unavailable(c, "storage_unavailable", "Booking changes are temporarily unavailable.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Could not update appointment.")
	}
}
