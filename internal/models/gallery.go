package models

import "time"

type GalleryItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ImageURL    string `gorm:"size:255;not null" json:"imageUrl"`
	Description string `gorm:"size:255" json:"description"`

	BarberID *uint `json:"barberId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}
