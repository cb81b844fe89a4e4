package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/niroj-tamang6988/RNJLogistic/apperr"
	"github.com/niroj-tamang6988/RNJLogistic/config"
	"github.com/niroj-tamang6988/RNJLogistic/store"
)

// Handler carries the injected collaborators every endpoint uses. One
// Handler is constructed per process and shared by all routes.
type Handler struct {
	store *store.Store
	cfg   *config.Config
}

func New(s *store.Store, cfg *config.Config) *Handler {
	return &Handler{store: s, cfg: cfg}
}

// fail translates any error into a taxonomy response. Internal causes are
// logged for operators; the client sees only the generic message.
func fail(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae.Kind == apperr.KindInternal {
		log.Printf("internal error: %s %s: %v", c.Request.Method, c.Request.URL.Path, ae)
		c.JSON(ae.HTTPStatus(), gin.H{"message": "Server error"})
		return
	}
	c.JSON(ae.HTTPStatus(), gin.H{"message": ae.Message})
}
