package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index" json:"barberId"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// Comma-joined list of the service ids picked in the booking wizard.
	ServiceID string `gorm:"size:100" json:"serviceId"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerPhone string `gorm:"size:20;not null" json:"customerPhone"`

	StartTime time.Time `gorm:"index" json:"startTime"`

	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
