package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/models"
)

type TestimonialHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTestimonialHandler(db *gorm.DB, auditD *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{db: db, audit: auditD}
}

type TestimonialRequest struct {
	Name   string `json:"name" binding:"required"`
	Handle string `json:"handle"`
	Text   string `json:"text" binding:"required"`
	Avatar string `json:"avatar"`
}

func (h *TestimonialHandler) List(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {

		if httperr.IsStorageUnavailable(err) {
			httpresp.List(c, make([]models.Testimonial, 0))
			return
		}
		httperr.Internal(c, "failed_to_list_testimonials", "Could not load testimonials.")
		return
	}

	httpresp.List(c, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Name and text are required.")
		return
	}

	testimonial := models.Testimonial{
		Name:   req.Name,
		Handle: req.Handle,
		Text:   req.Text,
		Avatar: req.Avatar,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Could not create testimonial.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "testimonial_created", "testimonial", &testimonial.ID))

	httpresp.Created(c, testimonial)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var testimonial models.Testimonial
	if err := h.db.WithContext(c.Request.Context()).First(&testimonial, id).Error; err != nil {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
		return
	}

	var req TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Name and text are required.")
		return
	}

	testimonial.Name = req.Name
	testimonial.Handle = req.Handle
	testimonial.Text = req.Text
	testimonial.Avatar = req.Avatar

	if err := h.db.WithContext(c.Request.Context()).Save(&testimonial).Error; err != nil {
		httperr.Internal(c, "failed_to_update_testimonial", "Could not update testimonial.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "testimonial_updated", "testimonial", &testimonial.ID))

	httpresp.OK(c, testimonial)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Testimonial{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_testimonial", "Could not delete testimonial.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "testimonial_deleted", "testimonial", &id))

	httpresp.OK(c, gin.H{"success": true})
}
