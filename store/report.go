package store

import (
	"github.com/niroj-tamang6988/RNJLogistic/models"
	"github.com/niroj-tamang6988/RNJLogistic/policy"
)

// Report rows are derived per request from the parcel and daybook tables;
// nothing here is stored.

type StatusCount struct {
	Status models.ParcelStatus `json:"status"`
	Count  int64               `json:"count"`
}

// StatusCounts groups parcels by status under the actor's scope.
func (s *Store) StatusCounts(scope policy.Scope) ([]StatusCount, error) {
	var rows []StatusCount
	err := s.scopedParcels(scope).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

type StatusFinancial struct {
	Status   models.ParcelStatus `json:"status"`
	Count    int64               `json:"count"`
	TotalCOD float64             `json:"total_cod"`
}

// FinancialReport groups parcels by status with COD sums.
func (s *Store) FinancialReport(scope policy.Scope) ([]StatusFinancial, error) {
	var rows []StatusFinancial
	err := s.scopedParcels(scope).
		Select("status, COUNT(*) as count, SUM(COALESCE(cod_amount, 0)) as total_cod").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

type DailyFinancial struct {
	Date     string              `json:"date"`
	Status   models.ParcelStatus `json:"status"`
	Count    int64               `json:"count"`
	TotalCOD float64             `json:"total_cod"`
}

// DailyFinancialReport breaks the financial report down by placement date.
func (s *Store) DailyFinancialReport(scope policy.Scope) ([]DailyFinancial, error) {
	var rows []DailyFinancial
	err := s.scopedParcels(scope).
		Select("DATE(created_at) as date, status, COUNT(*) as count, SUM(COALESCE(cod_amount, 0)) as total_cod").
		Group("DATE(created_at), status").
		Order("date desc, status").
		Scan(&rows).Error
	return rows, err
}

type VendorDay struct {
	Date                string  `json:"date"`
	TotalParcels        int64   `json:"total_parcels"`
	DeliveredParcels    int64   `json:"delivered_parcels"`
	NotDeliveredParcels int64   `json:"not_delivered_parcels"`
	InProgressParcels   int64   `json:"in_progress_parcels"`
	TotalCOD            float64 `json:"total_cod"`
	DeliveredCOD        float64 `json:"delivered_cod"`
}

// VendorDaybook is the vendor's per-day parcel breakdown.
func (s *Store) VendorDaybook(vendorID uint) ([]VendorDay, error) {
	var rows []VendorDay
	err := s.db.Model(&models.Parcel{}).
		Select(`DATE(created_at) as date,
			COUNT(*) as total_parcels,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) as delivered_parcels,
			COUNT(CASE WHEN status = 'not_delivered' THEN 1 END) as not_delivered_parcels,
			COUNT(CASE WHEN status NOT IN ('delivered', 'not_delivered') THEN 1 END) as in_progress_parcels,
			SUM(COALESCE(cod_amount, 0)) as total_cod,
			SUM(CASE WHEN status = 'delivered' THEN cod_amount ELSE 0 END) as delivered_cod`).
		Where("vendor_id = ?", vendorID).
		Group("DATE(created_at)").
		Order("date desc").
		Scan(&rows).Error
	return rows, err
}

type VendorReportRow struct {
	Date         string  `json:"date"`
	VendorName   string  `json:"vendor_name"`
	TotalParcels int64   `json:"total_parcels"`
	TotalCOD     float64 `json:"total_cod"`
}

// VendorReport groups every vendor's parcels by placement date, admin-wide.
func (s *Store) VendorReport() ([]VendorReportRow, error) {
	var rows []VendorReportRow
	err := s.db.Table("parcels p").
		Select(`DATE(p.created_at) as date, u.name as vendor_name,
			COUNT(p.id) as total_parcels, SUM(COALESCE(p.cod_amount, 0)) as total_cod`).
		Joins("JOIN users u ON p.vendor_id = u.id").
		Where("u.role = ?", models.RoleVendor).
		Group("DATE(p.created_at), u.id, u.name").
		Order("date desc, vendor_name").
		Scan(&rows).Error
	return rows, err
}

type DaybookSummary struct {
	TotalKM       float64 `json:"total_km"`
	TotalParcels  int64   `json:"total_parcels"`
	TotalFuelCost float64 `json:"total_fuel_cost"`
	TotalDays     int64   `json:"total_days"`
}

// DaybookSummary sums a rider's entire daybook.
func (s *Store) DaybookSummary(riderID uint) (*DaybookSummary, error) {
	var row DaybookSummary
	err := s.db.Model(&models.RiderDaybookEntry{}).
		Select(`COALESCE(SUM(total_km), 0) as total_km,
			COALESCE(SUM(parcels_delivered), 0) as total_parcels,
			COALESCE(SUM(fuel_cost), 0) as total_fuel_cost,
			COUNT(*) as total_days`).
		Where("rider_id = ?", riderID).
		Scan(&row).Error
	return &row, err
}

type MonthlyDaybook struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalKM       float64 `json:"total_km"`
	TotalParcels  int64   `json:"total_parcels"`
	TotalFuelCost float64 `json:"total_fuel_cost"`
	WorkingDays   int64   `json:"working_days"`
}

// MonthlyDaybook groups a rider's daybook by calendar month, newest first.
func (s *Store) MonthlyDaybook(riderID uint) ([]MonthlyDaybook, error) {
	var rows []MonthlyDaybook
	err := s.db.Model(&models.RiderDaybookEntry{}).
		Select(`CAST(strftime('%Y', date) AS INTEGER) as year,
			CAST(strftime('%m', date) AS INTEGER) as month,
			SUM(total_km) as total_km,
			SUM(parcels_delivered) as total_parcels,
			SUM(fuel_cost) as total_fuel_cost,
			COUNT(*) as working_days`).
		Where("rider_id = ?", riderID).
		Group("strftime('%Y', date), strftime('%m', date)").
		Order("year desc, month desc").
		Scan(&rows).Error
	return rows, err
}

type RiderReportRow struct {
	ID                    uint    `json:"id"`
	RiderName             string  `json:"rider_name"`
	Email                 string  `json:"email"`
	CreatedAt             string  `json:"created_at"`
	CitizenshipNo         *string `json:"citizenship_no"`
	BikeNo                *string `json:"bike_no"`
	LicenseNo             *string `json:"license_no"`
	PhotoURL              *string `json:"photo_url"`
	TotalKM               float64 `json:"total_km"`
	TotalParcelsDelivered int64   `json:"total_parcels_delivered"`
	WorkingDays           int64   `json:"working_days"`
}

// RiderReports joins accounts, profiles and daybooks into the admin-wide
// rider performance report, heaviest riders first.
func (s *Store) RiderReports() ([]RiderReportRow, error) {
	var rows []RiderReportRow
	err := s.db.Table("users u").
		Select(`u.id, u.name as rider_name, u.email, u.created_at,
			rp.citizenship_no, rp.bike_no, rp.license_no, rp.photo_url,
			COALESCE(SUM(rd.total_km), 0) as total_km,
			COALESCE(SUM(rd.parcels_delivered), 0) as total_parcels_delivered,
			COUNT(rd.id) as working_days`).
		Joins("LEFT JOIN rider_profiles rp ON u.id = rp.user_id").
		Joins("LEFT JOIN rider_daybook rd ON u.id = rd.rider_id").
		Where("u.role = ?", models.RoleRider).
		Group("u.id, u.name, u.email, u.created_at, rp.citizenship_no, rp.bike_no, rp.license_no, rp.photo_url").
		Order("total_km desc").
		Scan(&rows).Error
	return rows, err
}
