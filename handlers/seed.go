package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xumparim-tech/Zippida/httperr"
	"github.com/xumparim-tech/Zippida/repository"
)

// SeedHandler bootstraps the fixed admin account. The admin flag is set only
// here — registration never grants it.
type SeedHandler struct {
	Users         UserStore
	AdminPhone    string
	AdminPassword string
}

// Seed creates the admin account if it does not exist yet. Idempotent.
func (h *SeedHandler) Seed(c *gin.Context) {
	_, err := h.Users.FindByPhone(c.Request.Context(), h.AdminPhone)
	if err == nil {
		c.String(http.StatusOK, "Admin already exists.")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Error().Err(err).Msg("seed: admin lookup failed")
		httperr.Respond(c, err)
		return
	}

	if _, err := h.Users.Create(c.Request.Context(), "Admin", h.AdminPhone, h.AdminPassword, true); err != nil {
		logger.Error().Err(err).Msg("seed: admin create failed")
		httperr.Respond(c, err)
		return
	}
	c.String(http.StatusOK, "Admin created!")
}
