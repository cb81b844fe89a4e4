package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/handlers"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/policy"
)

// Setup registers every route. Role gates come straight from the policy
// table so the authorization matrix lives in one place.
func Setup(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(jwtSecret))
	{
		api.GET("/riders",
			roleGate(policy.ActionListRiders), h.ListRiders)

		// Parcels
		api.POST("/parcels",
			roleGate(policy.ActionCreateParcel), h.CreateParcel)
		api.GET("/parcels",
			roleGate(policy.ActionListParcels), h.ListParcels)
		api.PUT("/parcels/:id/assign",
			roleGate(policy.ActionAssignParcel), h.AssignParcel)
		api.PUT("/parcels/:id/delivery",
			roleGate(policy.ActionUpdateDelivery), h.UpdateDelivery)

		// User administration
		api.GET("/users",
			roleGate(policy.ActionManageUsers), h.ListUsers)
		api.PUT("/users/:id/approve",
			roleGate(policy.ActionManageUsers), h.ApproveUser)
		api.DELETE("/users/:id",
			roleGate(policy.ActionManageUsers), h.DeleteUser)

		// Profiles
		api.GET("/rider-profile",
			roleGate(policy.ActionRiderProfile), h.GetRiderProfile)
		api.POST("/rider-profile",
			roleGate(policy.ActionRiderProfile), h.SaveRiderProfile)
		api.GET("/vendor-profile",
			roleGate(policy.ActionVendorProfile), h.GetVendorProfile)
		api.POST("/vendor-profile",
			roleGate(policy.ActionVendorProfile), h.SaveVendorProfile)
		api.GET("/rider-profiles",
			roleGate(policy.ActionAdminReports), h.ListRiderProfiles)
		api.POST("/upload-photo",
			roleGate(policy.ActionUploadPhoto), h.UploadPhoto)

		// Daybook
		api.GET("/rider-daybook",
			roleGate(policy.ActionRiderDaybook), h.ListDaybookEntries)
		api.POST("/rider-daybook",
			roleGate(policy.ActionRiderDaybook), h.SaveDaybookEntry)
		api.GET("/rider-daybook-summary",
			roleGate(policy.ActionRiderDaybook), h.DaybookSummary)
		api.GET("/rider-daybook-monthly",
			roleGate(policy.ActionRiderDaybook), h.DaybookMonthly)
		api.GET("/rider-daybook-details/:riderId",
			roleGate(policy.ActionAdminReports), h.RiderDaybookDetails)

		// Reports
		api.GET("/stats",
			roleGate(policy.ActionParcelReports), h.Stats)
		api.GET("/financial-report",
			roleGate(policy.ActionParcelReports), h.FinancialReport)
		api.GET("/financial-report-daily",
			roleGate(policy.ActionParcelReports), h.FinancialReportDaily)
		api.GET("/vendor-daybook",
			roleGate(policy.ActionVendorDaybook), h.VendorDaybook)
		api.GET("/vendor-report",
			roleGate(policy.ActionAdminReports), h.VendorReport)
		api.GET("/rider-reports",
			roleGate(policy.ActionAdminReports), h.RiderReports)
	}
}

func roleGate(action policy.Action) gin.HandlerFunc {
	return middleware.RoleRequired(policy.AllowedRoles(action)...)
}
