package models

import "time"

// RiderDaybookEntry is a rider's self-reported activity for one calendar day.
// Re-submitting the same (rider_id, date) replaces the numeric fields.
type RiderDaybookEntry struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	RiderID          uint      `json:"rider_id" gorm:"not null;uniqueIndex:idx_rider_date"`
	Date             string    `json:"date" gorm:"type:date;not null;uniqueIndex:idx_rider_date"`
	TotalKM          float64   `json:"total_km" gorm:"column:total_km;not null;default:0"`
	ParcelsDelivered int       `json:"parcels_delivered" gorm:"not null;default:0"`
	FuelCost         float64   `json:"fuel_cost" gorm:"not null;default:0"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (RiderDaybookEntry) TableName() string { return "rider_daybook" }
