package handlers

import (
	"net/http"
	"time"

	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/constants"

	"github.com/gin-gonic/gin"
)

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(maxAge.Seconds()), "/", "", h.cookie.Secure, true)
}

func (h *Handler) setAuthCookies(c *gin.Context, pair *auth.TokenPair) {
	h.setCookie(c, constants.AccessTokenCookie, pair.AccessToken, h.cookie.AccessMaxAge)
	h.setCookie(c, constants.RefreshTokenCookie, pair.RefreshToken, h.cookie.RefreshMaxAge)
}

func (h *Handler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.AccessTokenCookie, "", -1, "/", "", h.cookie.Secure, true)
	c.SetCookie(constants.RefreshTokenCookie, "", -1, "/", "", h.cookie.Secure, true)
}
