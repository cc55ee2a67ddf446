package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/images"
	"github.com/valentinobarber/site-api/internal/models"
	"github.com/valentinobarber/site-api/internal/storage"
)

const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewGalleryHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	auditD *audit.Dispatcher,
) *GalleryHandler {
	return &GalleryHandler{
		db:       db,
		uploader: uploader,
		audit:    auditD,
	}
}

type GalleryItemRequest struct {
	ImageURL    string `json:"imageUrl" binding:"required"`
	Description string `json:"description"`
	BarberID    *uint  `json:"barberId"`
}

func (h *GalleryHandler) List(c *gin.Context) {
	var items []models.GalleryItem
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&items).Error; err != nil {

		if httperr.IsStorageUnavailable(err) {
			httpresp.List(c, make([]models.GalleryItem, 0))
			return
		}
		httperr.Internal(c, "failed_to_list_gallery", "Could not load gallery.")
		return
	}

	httpresp.List(c, items)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_image_url", "Image URL is required.")
		return
	}

	item := models.GalleryItem{
		ImageURL:    req.ImageURL,
		Description: req.Description,
		BarberID:    req.BarberID,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery_item", "Could not create gallery item.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "gallery_item_created", "gallery_item", &item.ID))

	httpresp.Created(c, item)
}

// Upload takes a multipart image, converts it to WebP, stores it in the
// bucket under a random key, and creates the gallery row pointing at it.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Unavailable(c, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "An image file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Image must be smaller than 10 MB.")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_upload", "Could not read the upload.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil || len(raw) > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Image must be smaller than 10 MB.")
		return
	}

	converted, err := images.ToWebP(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File is not a supported image.")
		return
	}

	key := "gallery/" + uuid.NewString() + ".webp"
	url, err := h.uploader.PutWebP(c.Request.Context(), key, converted)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	item := models.GalleryItem{
		ImageURL:    url,
		Description: c.PostForm("description"),
	}
	if bid, ok := formBarberID(c); ok {
		item.BarberID = &bid
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_gallery_item", "Could not create gallery item.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "gallery_image_uploaded", "gallery_item", &item.ID))

	httpresp.Created(c, item)
}

func formBarberID(c *gin.Context) (uint, bool) {
	raw := c.PostForm("barberId")
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var item models.GalleryItem
	if err := h.db.WithContext(c.Request.Context()).First(&item, id).Error; err != nil {
		httperr.NotFound(c, "gallery_item_not_found", "Gallery item not found.")
		return
	}

	var req GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_image_url", "Image URL is required.")
		return
	}

	item.ImageURL = req.ImageURL
	item.Description = req.Description
	item.BarberID = req.BarberID

	if err := h.db.WithContext(c.Request.Context()).Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_gallery_item", "Could not update gallery item.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "gallery_item_updated", "gallery_item", &item.ID))

	httpresp.OK(c, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.GalleryItem{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_gallery_item", "Could not delete gallery item.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "gallery_item_not_found", "Gallery item not found.")
		return
	}

	h.audit.Dispatch(auditEvent(c, "gallery_item_deleted", "gallery_item", &id))

	httpresp.OK(c, gin.H{"success": true})
}
