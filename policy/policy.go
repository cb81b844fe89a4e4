// Package policy is the single place the role/resource authorization matrix
// lives. Route groups consult AllowedRoles and row-scoped reads and writes
// consult ParcelScope, so the matrix is defined once and testable in
// isolation instead of scattered role string comparisons.
package policy

import (
	"github.com/niroj-tamang6988/RNJLogistic/models"
)

type Action string

const (
	ActionCreateParcel   Action = "parcel:create"
	ActionListParcels    Action = "parcel:list"
	ActionAssignParcel   Action = "parcel:assign"
	ActionUpdateDelivery Action = "parcel:delivery"
	ActionManageUsers    Action = "user:manage"
	ActionListRiders     Action = "user:riders"
	ActionRiderProfile   Action = "profile:rider"
	ActionVendorProfile  Action = "profile:vendor"
	ActionUploadPhoto    Action = "profile:photo"
	ActionRiderDaybook   Action = "daybook:rider"
	ActionParcelReports  Action = "report:parcels"
	ActionVendorDaybook  Action = "report:vendor-daybook"
	ActionAdminReports   Action = "report:admin"
)

// rules is the authoritative role table. Anything not listed is denied.
var rules = map[Action][]models.Role{
	ActionCreateParcel:   {models.RoleVendor},
	ActionListParcels:    {models.RoleVendor, models.RoleRider, models.RoleAdmin},
	ActionAssignParcel:   {models.RoleAdmin},
	ActionUpdateDelivery: {models.RoleRider, models.RoleAdmin},
	ActionManageUsers:    {models.RoleAdmin},
	ActionListRiders:     {models.RoleVendor, models.RoleRider, models.RoleAdmin},
	ActionRiderProfile:   {models.RoleRider},
	ActionVendorProfile:  {models.RoleVendor},
	ActionUploadPhoto:    {models.RoleRider, models.RoleVendor},
	ActionRiderDaybook:   {models.RoleRider},
	ActionParcelReports:  {models.RoleVendor, models.RoleAdmin},
	ActionVendorDaybook:  {models.RoleVendor},
	ActionAdminReports:   {models.RoleAdmin},
}

// Can reports whether role may perform action.
func Can(role models.Role, action Action) bool {
	for _, r := range rules[action] {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedRoles returns the roles permitted for action, for route wiring.
func AllowedRoles(action Action) []models.Role {
	return rules[action]
}

// Scope is the row filter a role gets over the parcels table. The zero
// value means no rows; All means unfiltered.
type Scope struct {
	All      bool
	VendorID uint
	RiderID  uint
}

// ParcelScope derives the parcel row filter for an actor. Vendors see rows
// they own, riders see rows bound to them, admins see everything.
func ParcelScope(role models.Role, userID uint) Scope {
	switch role {
	case models.RoleVendor:
		return Scope{VendorID: userID}
	case models.RoleRider:
		return Scope{RiderID: userID}
	case models.RoleAdmin:
		return Scope{All: true}
	}
	return Scope{}
}
