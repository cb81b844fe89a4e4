package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/niroj-tamang6988/RNJLogistic/config"
	"github.com/niroj-tamang6988/RNJLogistic/handlers"
	"github.com/niroj-tamang6988/RNJLogistic/middleware"
	"github.com/niroj-tamang6988/RNJLogistic/models"
	"github.com/niroj-tamang6988/RNJLogistic/routes"
	"github.com/niroj-tamang6988/RNJLogistic/store"
)

const testPassword = "Pass@123"

type env struct {
	t      *testing.T
	router *gin.Engine
	store  *store.Store
	db     *gorm.DB
	cfg    *config.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, store.Migrate(db))

	cfg := &config.Config{
		JWTSecret: []byte("test-secret"),
		UploadDir: t.TempDir(),
	}
	st := store.New(db)

	r := gin.New()
	routes.Setup(r, handlers.New(st, cfg), cfg.JWTSecret)

	return &env{t: t, router: r, store: st, db: db, cfg: cfg}
}

// createUser seeds an account directly, bypassing the registration endpoint.
func (e *env) createUser(name string, role models.Role, approved bool) *models.User {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(e.t, err)

	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   approved,
	}
	require.NoError(e.t, e.store.CreateUser(user))
	return user
}

func (e *env) token(u *models.User) string {
	e.t.Helper()
	token, err := middleware.GenerateToken(u, e.cfg.JWTSecret)
	require.NoError(e.t, err)
	return token
}

// do performs a JSON request against the router. An empty token leaves the
// Authorization header unset.
func (e *env) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *env) seedParcel(vendorID uint, cod float64, status models.ParcelStatus, riderID *uint) *models.Parcel {
	e.t.Helper()
	parcel := &models.Parcel{
		VendorID:        vendorID,
		RecipientName:   "Recipient",
		Address:         "Kathmandu",
		RecipientPhone:  "9800000000",
		CODAmount:       cod,
		Status:          status,
		AssignedRiderID: riderID,
	}
	require.NoError(e.t, e.store.CreateParcel(parcel))
	return parcel
}
