package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
)

// ListUsers returns every account — admin only. The password hash is never
// serialized.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching users"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ApproveUser opens the login gate for a vendor or rider account.
func (h *Handler) ApproveUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	affected, err := h.store.ApproveUser(id)
	if err != nil {
		fail(c, apperr.Internal(err, "Error approving user"))
		return
	}
	if affected == 0 {
		fail(c, apperr.New(apperr.KindNotFound, "User not found or not eligible for approval"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User approved successfully"})
}

// DeleteUser removes a vendor or rider account. Admin accounts cannot be
// deleted.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	affected, err := h.store.DeleteUser(id)
	if err != nil {
		fail(c, apperr.Internal(err, "Error deleting user"))
		return
	}
	if affected == 0 {
		fail(c, apperr.New(apperr.KindNotFound, "User not found or not eligible for deletion"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListRiders is the id+name rider directory backing the assignment screen.
func (h *Handler) ListRiders(c *gin.Context) {
	riders, err := h.store.ListRiders()
	if err != nil {
		fail(c, apperr.Internal(err, "Error fetching riders"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(riders), "riders": riders})
}
