package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"anatomy-explorer-backend/internal/middleware"
	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/services"
	"anatomy-explorer-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService *services.AuthService
	cookies     *session.Cookies
	guard       *middleware.Guard
}

func NewUserHandler(authService *services.AuthService, cookies *session.Cookies, guard *middleware.Guard) *UserHandler {
	return &UserHandler{authService: authService, cookies: cookies, guard: guard}
}

// LoginRequest carries no validation tags; empty fields fail as a credential mismatch.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct horse"`
}

type CredentialsRequest struct {
	Username string `json:"username" binding:"required,max=255" example:"alice"`
	Password string `json:"password" binding:"required" example:"correct horse"`
}

type UserResponse struct {
	ID        int64            `json:"id" example:"1"`
	Username  string           `json:"username" example:"root"`
	Privilege models.Privilege `json:"privilege" example:"1"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Privilege: u.Privilege}
}

// Login godoc
// @Summary      Log in
// @Description  Check credentials and set the private user_id session cookie
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		middleware.RecordLogin(false)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.cookies.Set(c, user.ID); err != nil {
		respondError(c, err)
		return
	}
	middleware.RecordLogin(true)
	slog.Info("user logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, MessageResponse{Message: "logged in"})
}

// Logout godoc
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Refresh godoc
// @Summary      Re-issue the session cookie
// @Description  Renews the cookie of a valid session; clears a stale one and answers 401
// @Tags         users
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Router       /users/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	user, err := h.guard.CurrentUser(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		h.cookies.Clear(c)
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
		return
	}

	if err := h.cookies.Set(c, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "session refreshed"})
}

// Create godoc
// @Summary      Create a user
// @Description  Administrators create accounts with regular privileges
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "New account"
// @Success      200 {object} UserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /users/create [put]
func (h *UserHandler) Create(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.CreateUser(req.Username, req.Password, models.PrivilegeUser)
	if err != nil {
		respondError(c, err)
		return
	}

	slog.Info("user created", "user_id", user.ID, "by", middleware.UserFrom(c).ID)
	c.JSON(http.StatusOK, newUserResponse(user))
}

// IsAdmin godoc
// @Summary      Whether the session user is an administrator
// @Description  Anonymous callers get 404
// @Tags         users
// @Produce      json
// @Success      200 {boolean} boolean
// @Router       /users/isadmin [get]
func (h *UserHandler) IsAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.UserFrom(c).Privilege.AtLeast(models.PrivilegeAdministrator))
}

// IsModerator godoc
// @Summary      Whether the session user is a moderator or administrator
// @Description  Anonymous callers get 404
// @Tags         users
// @Produce      json
// @Success      200 {boolean} boolean
// @Router       /users/ismoderator [get]
func (h *UserHandler) IsModerator(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.UserFrom(c).Privilege.AtLeast(models.PrivilegeModerator))
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200 {object} UserResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, newUserResponse(middleware.UserFrom(c)))
}
