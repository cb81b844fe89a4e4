package models

import "time"

// RiderProfile is the rider's supplementary record, one per user.
type RiderProfile struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CitizenshipNo string    `json:"citizenship_no"`
	BikeNo        string    `json:"bike_no"`
	LicenseNo     string    `json:"license_no"`
	PhotoURL      string    `json:"photo_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// VendorProfile is the vendor's supplementary record, one per user.
type VendorProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
