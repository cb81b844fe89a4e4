// Package store is the storage client the handlers are constructed with.
// It owns every query against the relational tables; one Store wraps one
// connection pool per process.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/models"
	"github.com/niroj-tamang6988/RNJLogistic/policy"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Parcel{},
		&models.RiderProfile{},
		&models.VendorProfile{},
		&models.RiderDaybookEntry{},
	)
}

// ── Users ──────────────────────────────────────────────────────────

// CreateUser inserts the account row. A duplicate email surfaces as a
// conflict rather than a raw constraint error so the insert itself is the
// uniqueness check; there is no read-then-write window.
func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperr.New(apperr.KindConflict, "Email already exists")
		}
		return err
	}
	return nil
}

func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc").Find(&users).Error
	return users, err
}

// ApproveUser flips the approval flag. Only vendor and rider rows are
// eligible; admin rows are approved at creation and stay untouched.
func (s *Store) ApproveUser(id uint) (int64, error) {
	res := s.db.Model(&models.User{}).
		Where("id = ? AND role IN ?", id, []models.Role{models.RoleVendor, models.RoleRider}).
		Update("is_approved", true)
	return res.RowsAffected, res.Error
}

// DeleteUser removes a vendor or rider account. Admin rows are never
// hard-deleted.
func (s *Store) DeleteUser(id uint) (int64, error) {
	res := s.db.
		Where("id = ? AND role IN ?", id, []models.Role{models.RoleVendor, models.RoleRider}).
		Delete(&models.User{})
	return res.RowsAffected, res.Error
}

// RiderRef is the id+name directory entry used by the assignment screen.
type RiderRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (s *Store) ListRiders() ([]RiderRef, error) {
	var riders []RiderRef
	err := s.db.Model(&models.User{}).
		Select("id, name").
		Where("role = ?", models.RoleRider).
		Order("name").
		Scan(&riders).Error
	return riders, err
}

// ── Parcels ────────────────────────────────────────────────────────

func (s *Store) CreateParcel(p *models.Parcel) error {
	return s.db.Create(p).Error
}

func (s *Store) GetParcel(id uint) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := s.db.First(&parcel, id).Error; err != nil {
		return nil, err
	}
	return &parcel, nil
}

// ParcelRow is a parcel with the vendor and rider display names joined in.
// Only the names are exposed; the joined accounts stay private.
type ParcelRow struct {
	models.Parcel
	VendorName *string `json:"vendor_name"`
	RiderName  *string `json:"rider_name"`
}

// ListParcels returns rows visible under the actor's scope, newest first.
func (s *Store) ListParcels(scope policy.Scope) ([]ParcelRow, error) {
	var rows []ParcelRow
	q := s.db.Table("parcels p").
		Select("p.*, u.name AS vendor_name, r.name AS rider_name").
		Joins("LEFT JOIN users u ON p.vendor_id = u.id").
		Joins("LEFT JOIN users r ON p.assigned_rider_id = r.id")
	switch {
	case scope.All:
	case scope.VendorID != 0:
		q = q.Where("p.vendor_id = ?", scope.VendorID)
	case scope.RiderID != 0:
		q = q.Where("p.assigned_rider_id = ?", scope.RiderID)
	default:
		q = q.Where("1 = 0")
	}
	err := q.Order("p.created_at desc").Scan(&rows).Error
	return rows, err
}

// AssignParcel binds a rider and moves the parcel to assigned. Re-assigning
// overwrites the rider and keeps the status.
func (s *Store) AssignParcel(parcelID, riderID uint) error {
	return s.db.Model(&models.Parcel{}).
		Where("id = ?", parcelID).
		Updates(map[string]any{
			"status":            models.StatusAssigned,
			"assigned_rider_id": riderID,
		}).Error
}

// UpdateDelivery applies a delivery-status update under the actor's row
// scope. The returned row count is zero when the scope filtered the row
// out, which the caller must not distinguish from a missing row for
// non-admin actors.
func (s *Store) UpdateDelivery(parcelID uint, status models.ParcelStatus, comment *string, scope policy.Scope) (int64, error) {
	q := s.scopedParcels(scope).Where("id = ?", parcelID)
	res := q.Updates(map[string]any{
		"status":        status,
		"rider_comment": comment,
	})
	return res.RowsAffected, res.Error
}

func (s *Store) scopedParcels(scope policy.Scope) *gorm.DB {
	q := s.db.Model(&models.Parcel{})
	switch {
	case scope.All:
		return q
	case scope.VendorID != 0:
		return q.Where("vendor_id = ?", scope.VendorID)
	case scope.RiderID != 0:
		return q.Where("assigned_rider_id = ?", scope.RiderID)
	}
	// An empty scope matches nothing rather than everything.
	return q.Where("1 = 0")
}

// ── Profiles ───────────────────────────────────────────────────────

func (s *Store) GetRiderProfile(userID uint) (*models.RiderProfile, error) {
	var profile models.RiderProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertRiderProfile inserts or fully overwrites the profile for its user
// in a single statement, keyed by user_id.
func (s *Store) UpsertRiderProfile(p *models.RiderProfile) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"citizenship_no", "bike_no", "license_no", "photo_url", "updated_at",
		}),
	}).Create(p).Error
}

func (s *Store) GetVendorProfile(userID uint) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Store) UpsertVendorProfile(p *models.VendorProfile) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "about", "photo_url", "updated_at",
		}),
	}).Create(p).Error
}

// RiderProfileRow joins account and profile data for the admin directory.
// Profile columns are nullable because the rider may not have filed one.
type RiderProfileRow struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	CreatedAt     string  `json:"created_at"`
	CitizenshipNo *string `json:"citizenship_no"`
	BikeNo        *string `json:"bike_no"`
	LicenseNo     *string `json:"license_no"`
	PhotoURL      *string `json:"photo_url"`
}

func (s *Store) ListRiderProfiles() ([]RiderProfileRow, error) {
	var rows []RiderProfileRow
	err := s.db.Table("users u").
		Select("u.id, u.name, u.email, u.created_at, rp.citizenship_no, rp.bike_no, rp.license_no, rp.photo_url").
		Joins("LEFT JOIN rider_profiles rp ON u.id = rp.user_id").
		Where("u.role = ?", models.RoleRider).
		Order("u.name").
		Scan(&rows).Error
	return rows, err
}

// ── Daybook ────────────────────────────────────────────────────────

// UpsertDaybookEntry inserts or replaces the entry for (rider_id, date).
// Numeric fields are overwritten, never accumulated.
func (s *Store) UpsertDaybookEntry(e *models.RiderDaybookEntry) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rider_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_km", "parcels_delivered", "fuel_cost", "notes", "updated_at",
		}),
	}).Create(e).Error
}

func (s *Store) ListDaybookEntries(riderID uint) ([]models.RiderDaybookEntry, error) {
	var entries []models.RiderDaybookEntry
	err := s.db.Where("rider_id = ?", riderID).Order("date desc").Find(&entries).Error
	return entries, err
}
