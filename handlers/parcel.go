package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/models"
	"github.com/niroj-tamang6988/RNJLogistic/policy"
	"github.com/niroj-tamang6988/RNJLogistic/statemachine"
)

type CreateParcelRequest struct {
	RecipientName    string  `json:"recipient_name" binding:"required"`
	RecipientAddress string  `json:"recipient_address" binding:"required"`
	RecipientPhone   string  `json:"recipient_phone"`
	CODAmount        float64 `json:"cod_amount"`
}

// CreateParcel places a new parcel owned by the calling vendor.
func (h *Handler) CreateParcel(c *gin.Context) {
	vendorID := middleware.GetUserID(c)

	var req CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}
	if req.CODAmount < 0 {
		fail(c, apperr.New(apperr.KindValidation, "COD amount cannot be negative"))
		return
	}

	parcel := models.Parcel{
		VendorID:       vendorID,
		RecipientName:  req.RecipientName,
		Address:        req.RecipientAddress,
		RecipientPhone: req.RecipientPhone,
		CODAmount:      req.CODAmount,
		Status:         models.StatusPending,
	}
	if err := h.store.CreateParcel(&parcel); err != nil {
		fail(c, apperr.Internal(err, "Error creating parcel"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Parcel placed successfully",
		"id":      parcel.ID,
	})
}

// ListParcels returns parcels visible under the caller's row scope:
// vendors see their own, riders see their assignments, admins see all.
func (h *Handler) ListParcels(c *gin.Context) {
	scope := policy.ParcelScope(middleware.GetRole(c), middleware.GetUserID(c))

	parcels, err := h.store.ListParcels(scope)
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching parcels"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(parcels), "parcels": parcels})
}

type AssignParcelRequest struct {
	RiderID uint `json:"rider_id" binding:"required"`
}

// AssignParcel binds a rider to a parcel (admin only). Re-assigning an
// already assigned parcel overwrites the rider and keeps the status.
func (h *Handler) AssignParcel(c *gin.Context) {
	parcelID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req AssignParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}

	parcel, err := h.store.GetParcel(parcelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperr.New(apperr.KindNotFound, "Parcel not found"))
			return
		}
		fail(c, apperr.Internal(err, "Error fetching parcel"))
		return
	}

	rider, err := h.store.FindUserByID(req.RiderID)
	if err != nil || rider.Role != models.RoleRider {
		fail(c, apperr.New(apperr.KindNotFound, "Rider not found"))
		return
	}

	if err := statemachine.CanAssign(parcel.Status); err != nil {
		fail(c, err)
		return
	}

	if err := h.store.AssignParcel(parcel.ID, rider.ID); err != nil {
		fail(c, apperr.Internal(err, "Error assigning parcel"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Parcel assigned successfully",
		"id":       parcel.ID,
		"rider_id": rider.ID,
		"status":   models.StatusAssigned,
	})
}

type UpdateDeliveryRequest struct {
	Status          models.ParcelStatus `json:"status" binding:"required"`
	DeliveryComment *string             `json:"delivery_comment"`
}

// UpdateDelivery records a delivery outcome. Riders may only touch parcels
// currently bound to them; the row scope enforces that, and a zero-row
// update is reported ambiguously so other tenants' parcels stay invisible.
// Admins may update any parcel.
func (h *Handler) UpdateDelivery(c *gin.Context) {
	parcelID, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}
	if err := statemachine.ValidateDeliveryTarget(req.Status); err != nil {
		fail(c, err)
		return
	}

	role := middleware.GetRole(c)
	scope := policy.Scope{All: true}
	if role == models.RoleRider {
		scope = policy.Scope{RiderID: middleware.GetUserID(c)}
	}

	affected, err := h.store.UpdateDelivery(parcelID, req.Status, req.DeliveryComment, scope)
	if err != nil {
		fail(c, apperr.Internal(err, "Error updating delivery status"))
		return
	}
	if affected == 0 {
		if role == models.RoleAdmin {
			fail(c, apperr.New(apperr.KindNotFound, "Parcel not found"))
			return
		}
		fail(c, apperr.New(apperr.KindNotAuthorizedOrNotFound, "Not authorized to update this parcel or parcel not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated successfully"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.New(apperr.KindValidation, "Invalid id")
	}
	return uint(id), nil
}
