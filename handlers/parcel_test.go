package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niroj-tamang6988/RNJLogistic/models"
)

func TestCreateParcel(t *testing.T) {
	e := newEnv(t)
	vendor := e.createUser("vendor", models.RoleVendor, true)
	rider := e.createUser("rider", models.RoleRider, true)

	body := map[string]any{
		"recipient_name":    "Sita",
		"recipient_address": "Lalitpur",
		"recipient_phone":   "9811111111",
		"cod_amount":        550.0,
	}

	w := e.do("POST", "/api/parcels", e.token(vendor), body)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Parcel placed successfully", resp["message"])

	parcel, err := e.store.GetParcel(uint(resp["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, parcel.VendorID)
	assert.Equal(t, models.StatusPending, parcel.Status)
	assert.Nil(t, parcel.AssignedRiderID)
	assert.Equal(t, 550.0, parcel.CODAmount)

	t.Run("rider cannot place parcels", func(t *testing.T) {
		w := e.do("POST", "/api/parcels", e.token(rider), body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("negative cod rejected", func(t *testing.T) {
		bad := map[string]any{
			"recipient_name":    "Sita",
			"recipient_address": "Lalitpur",
			"cod_amount":        -5.0,
		}
		w := e.do("POST", "/api/parcels", e.token(vendor), bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListParcels_Scoping(t *testing.T) {
	e := newEnv(t)
	vendor1 := e.createUser("vendor1", models.RoleVendor, true)
	vendor2 := e.createUser("vendor2", models.RoleVendor, true)
	rider := e.createUser("rider", models.RoleRider, true)
	admin := e.createUser("admin", models.RoleAdmin, true)

	e.seedParcel(vendor1.ID, 100, models.StatusPending, nil)
	e.seedParcel(vendor1.ID, 200, models.StatusAssigned, &rider.ID)
	e.seedParcel(vendor2.ID, 300, models.StatusPending, nil)

	t.Run("vendor sees own rows only", func(t *testing.T) {
		w := e.do("GET", "/api/parcels", e.token(vendor1), nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		require.EqualValues(t, 2, resp["count"])
		for _, p := range resp["parcels"].([]any) {
			assert.EqualValues(t, vendor1.ID, p.(map[string]any)["vendor_id"])
			assert.Equal(t, "vendor1", p.(map[string]any)["vendor_name"])
		}
	})

	t.Run("rider sees assigned rows only", func(t *testing.T) {
		w := e.do("GET", "/api/parcels", e.token(rider), nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		require.EqualValues(t, 1, resp["count"])
		p := resp["parcels"].([]any)[0].(map[string]any)
		assert.EqualValues(t, rider.ID, p["assigned_rider_id"])
		assert.Equal(t, "rider", p["rider_name"])
	})

	t.Run("rows carry names, not accounts", func(t *testing.T) {
		w := e.do("GET", "/api/parcels", e.token(admin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		for _, r := range decode(t, w)["parcels"].([]any) {
			p := r.(map[string]any)
			for _, key := range []string{"vendor", "rider", "email", "is_approved", "password"} {
				assert.NotContains(t, p, key)
			}
		}
	})

	t.Run("admin sees everything", func(t *testing.T) {
		w := e.do("GET", "/api/parcels", e.token(admin), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, decode(t, w)["count"])
	})
}

func TestAssignParcel(t *testing.T) {
	e := newEnv(t)
	vendor := e.createUser("vendor", models.RoleVendor, true)
	rider1 := e.createUser("rider1", models.RoleRider, true)
	rider2 := e.createUser("rider2", models.RoleRider, true)
	admin := e.createUser("admin", models.RoleAdmin, true)

	parcel := e.seedParcel(vendor.ID, 100, models.StatusPending, nil)
	path := "/api/parcels/" + itoa(parcel.ID) + "/assign"

	t.Run("admin assigns a pending parcel", func(t *testing.T) {
		w := e.do("PUT", path, e.token(admin), map[string]any{"rider_id": rider1.ID})
		require.Equal(t, http.StatusOK, w.Code)

		got, err := e.store.GetParcel(parcel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAssigned, got.Status)
		require.NotNil(t, got.AssignedRiderID)
		assert.Equal(t, rider1.ID, *got.AssignedRiderID)
	})

	t.Run("re-assignment overwrites the rider", func(t *testing.T) {
		w := e.do("PUT", path, e.token(admin), map[string]any{"rider_id": rider2.ID})
		require.Equal(t, http.StatusOK, w.Code)

		got, err := e.store.GetParcel(parcel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAssigned, got.Status)
		require.NotNil(t, got.AssignedRiderID)
		assert.Equal(t, rider2.ID, *got.AssignedRiderID)
	})

	t.Run("vendor may not assign", func(t *testing.T) {
		w := e.do("PUT", path, e.token(vendor), map[string]any{"rider_id": rider1.ID})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delivered parcel is not assignable", func(t *testing.T) {
		done := e.seedParcel(vendor.ID, 50, models.StatusDelivered, nil)
		w := e.do("PUT", "/api/parcels/"+itoa(done.ID)+"/assign", e.token(admin), map[string]any{"rider_id": rider1.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("assignment target must be a rider", func(t *testing.T) {
		w := e.do("PUT", path, e.token(admin), map[string]any{"rider_id": vendor.ID})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing parcel", func(t *testing.T) {
		w := e.do("PUT", "/api/parcels/99999/assign", e.token(admin), map[string]any{"rider_id": rider1.ID})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateDelivery(t *testing.T) {
	e := newEnv(t)
	vendor := e.createUser("vendor", models.RoleVendor, true)
	rider := e.createUser("rider", models.RoleRider, true)
	other := e.createUser("other", models.RoleRider, true)
	admin := e.createUser("admin", models.RoleAdmin, true)

	parcel := e.seedParcel(vendor.ID, 100, models.StatusAssigned, &rider.ID)
	path := "/api/parcels/" + itoa(parcel.ID) + "/delivery"

	t.Run("non-assigned rider matches zero rows", func(t *testing.T) {
		w := e.do("PUT", path, e.token(other), map[string]any{"status": "delivered"})
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to update this parcel or parcel not found", decode(t, w)["message"])

		got, err := e.store.GetParcel(parcel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAssigned, got.Status)
	})

	t.Run("assigned rider succeeds", func(t *testing.T) {
		w := e.do("PUT", path, e.token(rider), map[string]any{
			"status":           "delivered",
			"delivery_comment": "Left with neighbour",
		})
		require.Equal(t, http.StatusOK, w.Code)

		got, err := e.store.GetParcel(parcel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDelivered, got.Status)
		require.NotNil(t, got.RiderComment)
		assert.Equal(t, "Left with neighbour", *got.RiderComment)
	})

	t.Run("status outside the allow-list", func(t *testing.T) {
		w := e.do("PUT", path, e.token(rider), map[string]any{"status": "in_transit"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid status value", decode(t, w)["message"])
	})

	t.Run("vendor may not update delivery", func(t *testing.T) {
		w := e.do("PUT", path, e.token(vendor), map[string]any{"status": "delivered"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin may update any parcel", func(t *testing.T) {
		w := e.do("PUT", path, e.token(admin), map[string]any{"status": "not_delivered"})
		require.Equal(t, http.StatusOK, w.Code)

		got, err := e.store.GetParcel(parcel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusNotDelivered, got.Status)
	})

	t.Run("admin on a missing parcel gets not found", func(t *testing.T) {
		w := e.do("PUT", "/api/parcels/99999/delivery", e.token(admin), map[string]any{"status": "delivered"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
