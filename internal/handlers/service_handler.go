package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditD *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditD}
}

type ServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Duration    *int     `json:"duration" binding:"required"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&services).Error; err != nil {

		if httperr.IsStorageUnavailable(err) {
			httpresp.List(c, make([]models.Service, 0))
			return
		}
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Name, price and duration are required.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Duration:    *req.Duration,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "service_created", "service", &service.ID))

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Name, price and duration are required.")
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = *req.Price
	service.Duration = *req.Duration

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "service_updated", "service", &service.ID))

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "service_deleted", "service", &id))

	httpresp.OK(c, gin.H{"success": true})
}
