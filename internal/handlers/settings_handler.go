package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valentinobarber/site-api/internal/audit"
	"github.com/valentinobarber/site-api/internal/cache"
	"github.com/valentinobarber/site-api/internal/httperr"
	"github.com/valentinobarber/site-api/internal/httpresp"
	"github.com/valentinobarber/site-api/internal/models"
)

const (
	settingsKey      = "global"
	settingsCacheKey = "settings:global"
)

// SettingsHandler serves the single site-settings row. Every page load hits
// GET, so reads go through the cache; PUT invalidates it.
type SettingsHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewSettingsHandler(
	db *gorm.DB,
	c *cache.Cache,
	auditD *audit.Dispatcher,
) *SettingsHandler {
	return &SettingsHandler{
		db:    db,
		cache: c,
		audit: auditD,
	}
}

type SettingsRequest struct {
	BrandName    string `json:"brandName"`
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	AboutStory   string `json:"aboutStory"`

	TestimonialsTitle        string `json:"testimonialsTitle"`
	SignatureSectionTitle    string `json:"signatureSectionTitle"`
	SignatureSectionSubtitle string `json:"signatureSectionSubtitle"`
	StatsSectionTitle        string `json:"statsSectionTitle"`
	CTATitle                 string `json:"ctaTitle"`
	CTASubtitle              string `json:"ctaSubtitle"`

	InstagramURL   string `json:"instagramUrl"`
	TiktokURL      string `json:"tiktokUrl"`
	ContactAddress string `json:"contactAddress"`
	ContactPhone   string `json:"contactPhone"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var cached models.Settings
	if h.cache.GetJSON(ctx, settingsCacheKey, &cached) {
		httpresp.OK(c, cached)
		return
	}

	var settings models.Settings
	err := h.db.WithContext(ctx).
		Where("key = ?", settingsKey).
		First(&settings).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Pre-seed defaults so the site renders before any admin
			// has saved settings.
			httpresp.OK(c, models.Settings{
				Key:       settingsKey,
				BrandName: "Valentino",
			})
			return
		}
		httperr.Internal(c, "failed_to_get_settings", "Could not load settings.")
		return
	}

	h.cache.SetJSON(ctx, settingsCacheKey, settings)

	httpresp.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return
	}

	var settings models.Settings
	err := h.db.WithContext(ctx).
		Where("key = ?", settingsKey).
		First(&settings).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "failed_to_get_settings", "Could not load settings.")
			return
		}
		settings = models.Settings{Key: settingsKey}
	}

	settings.BrandName = req.BrandName
	settings.HeroTitle = req.HeroTitle
	settings.HeroSubtitle = req.HeroSubtitle
	settings.AboutStory = req.AboutStory
	settings.TestimonialsTitle = req.TestimonialsTitle
	settings.SignatureSectionTitle = req.SignatureSectionTitle
	settings.SignatureSectionSubtitle = req.SignatureSectionSubtitle
	settings.StatsSectionTitle = req.StatsSectionTitle
	settings.CTATitle = req.CTATitle
	settings.CTASubtitle = req.CTASubtitle
	settings.InstagramURL = req.InstagramURL
	settings.TiktokURL = req.TiktokURL
	settings.ContactAddress = req.ContactAddress
	settings.ContactPhone = req.ContactPhone

	if err := h.db.WithContext(ctx).Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Could not save settings.")
		return
	}

	h.cache.Delete(ctx, settingsCacheKey)

	h.audit.Dispatch(auditEvent(c, "settings_updated", "settings", &settings.ID))

	httpresp.OK(c, settings)
}
