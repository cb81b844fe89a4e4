package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/models"
)

type DaybookRequest struct {
	Date             string  `json:"date" binding:"required"`
	TotalKM          float64 `json:"total_km"`
	ParcelsDelivered int     `json:"parcels_delivered"`
	FuelCost         float64 `json:"fuel_cost"`
	Notes            string  `json:"notes"`
}

// SaveDaybookEntry upserts the caller's entry for one calendar day.
// Re-submitting the same date replaces the previous numbers.
func (h *Handler) SaveDaybookEntry(c *gin.Context) {
	var req DaybookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		fail(c, apperr.New(apperr.KindValidation, "Invalid date, expected YYYY-MM-DD"))
		return
	}
	if req.TotalKM < 0 || req.ParcelsDelivered < 0 || req.FuelCost < 0 {
		fail(c, apperr.New(apperr.KindValidation, "Daybook values cannot be negative"))
		return
	}

	entry := models.RiderDaybookEntry{
		RiderID:          middleware.GetUserID(c),
		Date:             req.Date,
		TotalKM:          req.TotalKM,
		ParcelsDelivered: req.ParcelsDelivered,
		FuelCost:         req.FuelCost,
		Notes:            req.Notes,
	}
	if err := h.store.UpsertDaybookEntry(&entry); err != nil {
		fail(c, apperr.Internal(err, "Error saving daybook entry"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Daybook entry saved successfully"})
}

// ListDaybookEntries returns the caller's daybook, newest day first.
func (h *Handler) ListDaybookEntries(c *gin.Context) {
	entries, err := h.store.ListDaybookEntries(middleware.GetUserID(c))
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching daybook"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// DaybookSummary sums the caller's whole daybook.
func (h *Handler) DaybookSummary(c *gin.Context) {
	summary, err := h.store.DaybookSummary(middleware.GetUserID(c))
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching daybook summary"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DaybookMonthly groups the caller's daybook by calendar month.
func (h *Handler) DaybookMonthly(c *gin.Context) {
	rows, err := h.store.MonthlyDaybook(middleware.GetUserID(c))
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching monthly daybook"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "months": rows})
}

// RiderDaybookDetails returns one rider's full daybook — admin only.
func (h *Handler) RiderDaybookDetails(c *gin.Context) {
	riderID, err := parseID(c.Param("riderId"))
	if err != nil {
		fail(c, err)
		return
	}

	entries, err := h.store.ListDaybookEntries(riderID)
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching rider daybook details"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}
