package models

import "time"

// ParcelStatus represents all possible states of a parcel
type ParcelStatus string

const (
	// StatusPending and StatusPlaced both denote "awaiting assignment";
	// placed survives from older rows and is treated the same way.
	StatusPending      ParcelStatus = "pending"
	StatusPlaced       ParcelStatus = "placed"
	StatusAssigned     ParcelStatus = "assigned"
	StatusDelivered    ParcelStatus = "delivered"
	StatusNotDelivered ParcelStatus = "not_delivered"
)

type Parcel struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	VendorID        uint         `json:"vendor_id" gorm:"not null;index"`
	RecipientName   string       `json:"recipient_name" gorm:"not null"`
	Address         string       `json:"address" gorm:"not null"`
	RecipientPhone  string       `json:"recipient_phone"`
	CODAmount       float64      `json:"cod_amount" gorm:"column:cod_amount;not null;default:0"`
	AssignedRiderID *uint        `json:"assigned_rider_id" gorm:"index"`
	Status          ParcelStatus `json:"status" gorm:"not null;default:'pending'"`
	RiderComment    *string      `json:"rider_comment"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
