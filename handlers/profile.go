package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/models"
)

const maxPhotoSize = 5 << 20

type RiderProfileRequest struct {
	CitizenshipNo string `json:"citizenship_no"`
	BikeNo        string `json:"bike_no"`
	LicenseNo     string `json:"license_no"`
	PhotoURL      string `json:"photo_url"`
}

// GetRiderProfile returns the caller's profile, or an empty object when
// none has been filed yet.
func (h *Handler) GetRiderProfile(c *gin.Context) {
	profile, err := h.store.GetRiderProfile(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		fail(c, apperr.Internal(err, "Error fetching rider profile"))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveRiderProfile upserts the caller's profile keyed by user id.
func (h *Handler) SaveRiderProfile(c *gin.Context) {
	var req RiderProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}

	profile := models.RiderProfile{
		UserID:        middleware.GetUserID(c),
		CitizenshipNo: req.CitizenshipNo,
		BikeNo:        req.BikeNo,
		LicenseNo:     req.LicenseNo,
		PhotoURL:      req.PhotoURL,
	}
	if err := h.store.UpsertRiderProfile(&profile); err != nil {
		fail(c, apperr.Internal(err, "Error saving rider profile"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rider profile saved successfully"})
}

type VendorProfileRequest struct {
	Name     string `json:"name"`
	About    string `json:"about"`
	PhotoURL string `json:"photo_url"`
}

// GetVendorProfile returns the caller's vendor profile, or an empty object.
func (h *Handler) GetVendorProfile(c *gin.Context) {
	profile, err := h.store.GetVendorProfile(middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		fail(c, apperr.Internal(err, "Error fetching vendor profile"))
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveVendorProfile upserts the caller's vendor profile keyed by user id.
func (h *Handler) SaveVendorProfile(c *gin.Context) {
	var req VendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}

	profile := models.VendorProfile{
		UserID:   middleware.GetUserID(c),
		Name:     req.Name,
		About:    req.About,
		PhotoURL: req.PhotoURL,
	}
	if err := h.store.UpsertVendorProfile(&profile); err != nil {
		fail(c, apperr.Internal(err, "Error saving vendor profile"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor profile saved successfully"})
}

// ListRiderProfiles joins accounts with filed profiles for every rider —
// admin only.
func (h *Handler) ListRiderProfiles(c *gin.Context) {
	rows, err := h.store.ListRiderProfiles()
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching rider profiles"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "profiles": rows})
}

// UploadPhoto stores a profile image on disk and returns its relative URL.
// The caller saves the URL through the profile endpoints.
func (h *Handler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		fail(c, apperr.New(apperr.KindValidation, "No file uploaded"))
		return
	}
	if file.Size > maxPhotoSize {
		fail(c, apperr.New(apperr.KindValidation, "File too large (max 5MB)"))
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		fail(c, apperr.New(apperr.KindValidation, "Only image files are allowed"))
		return
	}

	name := "rider-" + uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		fail(c, apperr.Internal(err, "Failed to store photo"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo_url": "/uploads/" + name})
}
