package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/policy"
)

// Stats groups parcel counts by status. Vendors are scoped to their own
// parcels; admins see everything.
func (h *Handler) Stats(c *gin.Context) {
	scope := policy.ParcelScope(middleware.GetRole(c), middleware.GetUserID(c))

	rows, err := h.store.StatusCounts(scope)
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching stats"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": rows})
}

// FinancialReport groups parcels by status with COD totals.
func (h *Handler) FinancialReport(c *gin.Context) {
	scope := policy.ParcelScope(middleware.GetRole(c), middleware.GetUserID(c))

	rows, err := h.store.FinancialReport(scope)
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching financial report"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rows})
}

// FinancialReportDaily breaks the financial report down by placement date.
func (h *Handler) FinancialReportDaily(c *gin.Context) {
	scope := policy.ParcelScope(middleware.GetRole(c), middleware.GetUserID(c))

	rows, err := h.store.DailyFinancialReport(scope)
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching daily financial report"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": rows})
}

// VendorDaybook is the vendor's per-day parcel and COD breakdown.
func (h *Handler) VendorDaybook(c *gin.Context) {
	rows, err := h.store.VendorDaybook(middleware.GetUserID(c))
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching vendor daybook"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "days": rows})
}

// VendorReport groups every vendor's parcels by date — admin only.
func (h *Handler) VendorReport(c *gin.Context) {
	rows, err := h.store.VendorReport()
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching vendor report"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "report": rows})
}

// RiderReports is the admin-wide rider performance report.
func (h *Handler) RiderReports(c *gin.Context) {
	rows, err := h.store.RiderReports()
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching rider reports"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "report": rows})
}
