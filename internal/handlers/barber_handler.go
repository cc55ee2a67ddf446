package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	domain "github.com/valentinobarber/site-api/internal/domain/booking"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, auditD *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: auditD}
}

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"imageUrl"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		if httperr.IsStorageUnavailable(err) {
			httpresp.List(c, make([]models.Barber, 0))
			return
		}
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Name is required.")
		return
	}

	barber := models.Barber{
		Name:      req.Name,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "barber_created", "barber", &barber.ID))

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.WithContext(c.Request.Context()).First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_name", "Name is required.")
		return
	}

	barber.Name = req.Name
	barber.Specialty = req.Specialty
	barber.ImageURL = req.ImageURL

	if err := h.db.WithContext(c.Request.Context()).Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not update barber.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "barber_updated", "barber", &barber.ID))

	httpresp.OK(c, barber)
}

// Delete refuses while the barber still has non-cancelled appointments, so
// existing bookings are never orphaned.
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("barber_id = ? AND status <> ?", id, string(domain.StatusCancelled)).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}

	if count > 0 {
		httperr.Conflict(c, "barber_has_appointments",
			"This barber still has appointments. Cancel them before deleting.")
		return
	}

	res := h.db.WithContext(ctx).Delete(&models.Barber{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "barber_deleted", "barber", &id))

	httpresp.OK(c, gin.H{"success": true})
}
