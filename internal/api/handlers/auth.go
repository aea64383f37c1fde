package handlers

import (
	"net/http"

	"tripplanner-api/internal/constants"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
)

type LoginResponse struct {
	Member      *models.Member `json:"member"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type" example:"Bearer"`
}

// SignUp godoc
// @Summary Register a new member
// @Description Register a member with email, nickname and password
// @Tags members
// @Accept json
// @Produce json
// @Param member body api.SignUpRequestDoc true "Sign-up details"
// @Success 201 {object} models.Member
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/members/signup [post]
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	member, err := h.svc.Members.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password; sets accessToken and refreshToken cookies
// @Tags members
// @Accept json
// @Produce json
// @Param credentials body api.LoginRequestDoc true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/members/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	member, pair, err := h.svc.Members.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, LoginResponse{Member: member, AccessToken: pair.AccessToken, TokenType: "Bearer"})
}

// Refresh godoc
// @Summary Rotate the refresh token
// @Description Consumes the refreshToken cookie (or body) and issues a new token pair
// @Tags members
// @Produce json
// @Success 200 {object} object{access_token=string,token_type=string}
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/members/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(constants.RefreshTokenCookie)
	if token == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.svc.Members.Refresh(c.Request.Context(), token)
	if err != nil {
		h.clearAuthCookies(c)
		fail(c, err)
		return
	}

	h.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "token_type": "Bearer"})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token from the cookie and clears auth cookies
// @Tags members
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api/members/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Cookie(constants.RefreshTokenCookie)
	if err := h.svc.Members.Logout(c.Request.Context(), token); err != nil {
		fail(c, err)
		return
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// LogoutAll godoc
// @Summary Log out everywhere
// @Description Revokes every refresh token of the caller
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,revoked=int}
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/members/logout-all [post]
func (h *Handler) LogoutAll(c *gin.Context) {
	n, err := h.svc.Members.LogoutAll(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out from all sessions", "revoked": n})
}

// Me godoc
// @Summary Current member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Member
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/members/me [get]
func (h *Handler) Me(c *gin.Context) {
	member, err := h.svc.Members.GetMember(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
