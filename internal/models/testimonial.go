package models

import "time"

type Testimonial struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Handle string `gorm:"size:100" json:"handle"`
	Text   string `gorm:"type:text;not null" json:"text"`
	Avatar string `gorm:"size:255" json:"avatar"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
