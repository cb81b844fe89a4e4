package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/models"
)

const specialChars = "@#$%^&*!"

type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// validatePassword enforces the password policy. The first unmet rule is
// the reported message.
func validatePassword(password string) *apperr.Error {
	if len(password) < 8 {
		return apperr.New(apperr.KindValidation, "Password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return apperr.New(apperr.KindValidation, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return apperr.New(apperr.KindValidation, "Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return apperr.New(apperr.KindValidation, "Password must contain at least one number")
	}
	if !hasSpecial {
		return apperr.New(apperr.KindValidation, "Password must contain at least one special character (@, #, $, %, ^, &, *, !)")
	}
	return nil
}

// Register creates a new account. Admin accounts are approved immediately;
// vendor and rider accounts wait behind the admin approval gate.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}

	if !models.ValidRole(req.Role) {
		fail(c, apperr.New(apperr.KindValidation, "Invalid role. Must be: vendor, rider, or admin"))
		return
	}

	if err := validatePassword(req.Password); err != nil {
		fail(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, apperr.Internal(err, "Failed to hash password"))
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsApproved:   req.Role == models.RoleAdmin,
	}
	// The unique index on email is the only uniqueness check; the store
	// reports a duplicate as a conflict.
	if err := h.store.CreateUser(&user); err != nil {
		fail(c, err)
		return
	}

	message := "Registration successful. Please wait for admin approval to login."
	if user.Role == models.RoleAdmin {
		message = "Admin registered successfully"
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// Login authenticates and issues a token. Non-admin accounts must have
// been approved first.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.KindValidation, err.Error()))
		return
	}

	user, err := h.store.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperr.New(apperr.KindNotFound, "User is not registered. Please register first."))
			return
		}
		fail(c, apperr.Internal(err, "Failed to look up user"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		fail(c, apperr.New(apperr.KindAuth, "Invalid password. Please check your password."))
		return
	}

	if !user.IsApproved && user.Role != models.RoleAdmin {
		fail(c, apperr.New(apperr.KindForbidden, "Account pending admin approval"))
		return
	}

	token, err := middleware.GenerateToken(user, h.cfg.JWTSecret)
	if err != nil {
		fail(c, apperr.Internal(err, "Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}
