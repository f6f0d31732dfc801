package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xumparim-tech/Zippida/httperr"
	"github.com/xumparim-tech/Zippida/middleware"
	"github.com/xumparim-tech/Zippida/models"
	"github.com/xumparim-tech/Zippida/repository"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Users  UserStore
	Secret []byte
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"phone":   user.Phone,
		"isAdmin": user.IsAdmin,
		"token":   token,
	}
}

// Register creates a new account and returns it with a fresh token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.Validation, "Name, phone and a password of at least 6 characters are required"))
		return
	}

	if _, err := h.Users.FindByPhone(c.Request.Context(), req.Phone); err == nil {
		httperr.Respond(c, httperr.New(httperr.Conflict, "This phone number is already registered"))
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		logger.Error().Err(err).Msg("register: phone lookup failed")
		httperr.Respond(c, err)
		return
	}

	user, err := h.Users.Create(c.Request.Context(), req.Name, req.Phone, req.Password, false)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			httperr.Respond(c, httperr.New(httperr.Conflict, "This phone number is already registered"))
			return
		}
		logger.Error().Err(err).Msg("register: create failed")
		httperr.Respond(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.Secret, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("register: token generation failed")
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse(user, token))
}

// Login authenticates by phone and password. A single message covers both
// unknown phone and wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.New(httperr.Validation, "Phone and password are required"))
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			httperr.Respond(c, httperr.New(httperr.Unauthorized, "Invalid phone or password"))
			return
		}
		logger.Error().Err(err).Msg("login failed")
		httperr.Respond(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.Secret, user.ID)
	if err != nil {
		logger.Error().Err(err).Msg("login: token generation failed")
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse(user, token))
}
