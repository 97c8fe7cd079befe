package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"anatomy-explorer-backend/internal/models"
	"anatomy-explorer-backend/internal/services"
	"anatomy-explorer-backend/internal/session"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// Guard resolves the session cookie to a user and gates routes by privilege.
// A request that fails a guard is answered with a bare 404, as if the route
// did not exist.
type Guard struct {
	cookies *session.Cookies
	users   *services.AuthService
}

func NewGuard(cookies *session.Cookies, users *services.AuthService) *Guard {
	return &Guard{cookies: cookies, users: users}
}

// CurrentUser returns the session user, or nil for anonymous requests. The
// result is cached on the request so stacked guards query the database once.
func (g *Guard) CurrentUser(c *gin.Context) (*models.User, error) {
	if v, ok := c.Get(currentUserKey); ok {
		user, _ := v.(*models.User)
		return user, nil
	}

	var user *models.User
	if id, ok := g.cookies.UserID(c); ok {
		u, err := g.users.GetUser(id)
		switch {
		case err == nil:
			user = u
		case errors.Is(err, services.ErrNotFound):
		default:
			return nil, err
		}
	}

	c.Set(currentUserKey, user)
	return user, nil
}

func (g *Guard) AnyUser() gin.HandlerFunc {
	return g.require(models.PrivilegeUser)
}

func (g *Guard) Moderator() gin.HandlerFunc {
	return g.require(models.PrivilegeModerator)
}

func (g *Guard) Admin() gin.HandlerFunc {
	return g.require(models.PrivilegeAdministrator)
}

func (g *Guard) require(min models.Privilege) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := g.CurrentUser(c)
		if err != nil {
			slog.Error("load session user", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user == nil || !user.Privilege.AtLeast(min) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}

// UserFrom returns the user cached by a guard earlier in the chain.
func UserFrom(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
