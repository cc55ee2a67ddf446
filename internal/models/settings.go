package models

import "time"

// Settings is a single-row table keyed by "global". It carries the site copy
// edited from the admin dashboard plus the admin credentials, which are never
// serialized in API responses.
type Settings struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Key string `gorm:"size:20;uniqueIndex;not null" json:"key"`

	BrandName    string `gorm:"size:100" json:"brandName"`
	HeroTitle    string `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle string `gorm:"size:255" json:"heroSubtitle"`
	AboutStory   string `gorm:"type:text" json:"aboutStory"`

	TestimonialsTitle        string `gorm:"size:255" json:"testimonialsTitle"`
	SignatureSectionTitle    string `gorm:"size:255" json:"signatureSectionTitle"`
	SignatureSectionSubtitle string `gorm:"size:255" json:"signatureSectionSubtitle"`
	StatsSectionTitle        string `gorm:"size:255" json:"statsSectionTitle"`
	CTATitle                 string `gorm:"size:255" json:"ctaTitle"`
	CTASubtitle              string `gorm:"size:255" json:"ctaSubtitle"`

	InstagramURL   string `gorm:"size:255" json:"instagramUrl"`
	TiktokURL      string `gorm:"size:255" json:"tiktokUrl"`
	ContactAddress string `gorm:"size:255" json:"contactAddress"`
	ContactPhone   string `gorm:"size:50" json:"contactPhone"`

	AdminUsername string `gorm:"size:100" json:"-"`
	AdminPassword string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
