package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niroj-tamang6988/RNJLogistic/models"
)

func TestRiderProfile_Upsert(t *testing.T) {
	e := newEnv(t)
	rider := e.createUser("rider", models.RoleRider, true)
	token := e.token(rider)

	t.Run("empty before first save", func(t *testing.T) {
		w := e.do("GET", "/api/rider-profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "{}", strings.TrimSpace(w.Body.String()))
	})

	w := e.do("POST", "/api/rider-profile", token, map[string]any{
		"citizenship_no": "12-34-56",
		"bike_no":        "BA 12 PA 3456",
		"license_no":     "L-9876",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// second save overwrites every column for the same user
	w = e.do("POST", "/api/rider-profile", token, map[string]any{
		"citizenship_no": "12-34-56",
		"bike_no":        "BA 99 PA 0001",
		"license_no":     "L-9876",
	})
	require.Equal(t, http.StatusOK, w.Code)

	profile, err := e.store.GetRiderProfile(rider.ID)
	require.NoError(t, err)
	assert.Equal(t, "BA 99 PA 0001", profile.BikeNo)

	var count int64
	require.NoError(t, e.db.Model(&models.RiderProfile{}).Where("user_id = ?", rider.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	t.Run("vendor denied", func(t *testing.T) {
		vendor := e.createUser("vendor", models.RoleVendor, true)
		w := e.do("GET", "/api/rider-profile", e.token(vendor), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestVendorProfile_Upsert(t *testing.T) {
	e := newEnv(t)
	vendor := e.createUser("vendor", models.RoleVendor, true)
	token := e.token(vendor)

	w := e.do("POST", "/api/vendor-profile", token, map[string]any{
		"name":  "RNJ Traders",
		"about": "Electronics wholesaler",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do("POST", "/api/vendor-profile", token, map[string]any{
		"name":  "RNJ Traders Pvt Ltd",
		"about": "Electronics wholesaler",
	})
	require.Equal(t, http.StatusOK, w.Code)

	profile, err := e.store.GetVendorProfile(vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, "RNJ Traders Pvt Ltd", profile.Name)
}

func TestListRiderProfiles_AdminOnly(t *testing.T) {
	e := newEnv(t)
	admin := e.createUser("admin", models.RoleAdmin, true)
	rider := e.createUser("rider", models.RoleRider, true)

	w := e.do("POST", "/api/rider-profile", e.token(rider), map[string]any{"bike_no": "BA 1 PA 1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do("GET", "/api/rider-profiles", e.token(admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.EqualValues(t, 1, resp["count"])
	row := resp["profiles"].([]any)[0].(map[string]any)
	assert.Equal(t, "rider", row["name"])
	assert.Equal(t, "BA 1 PA 1", row["bike_no"])

	w = e.do("GET", "/api/rider-profiles", e.token(rider), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadPhoto(t *testing.T) {
	e := newEnv(t)
	rider := e.createUser("rider", models.RoleRider, true)

	upload := func(fieldContentType string, size int) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="photo"; filename="me.png"`)
		hdr.Set("Content-Type", fieldContentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0x89}, size))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/api/upload-photo", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+e.token(rider))
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		return w
	}

	t.Run("image accepted", func(t *testing.T) {
		w := upload("image/png", 128)
		require.Equal(t, http.StatusOK, w.Code)
		url, _ := decode(t, w)["photo_url"].(string)
		assert.True(t, strings.HasPrefix(url, "/uploads/rider-"))
		assert.True(t, strings.HasSuffix(url, ".png"))
	})

	t.Run("non-image rejected", func(t *testing.T) {
		w := upload("application/pdf", 128)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
