package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/auth"
	"github.com/careercode/careercode-api/internal/dtos"
	"github.com/careercode/careercode-api/internal/middleware"
)

type AuthHandler struct {
	Tokens       *auth.Service
	CookieSecure bool
}

func NewAuthHandler(tokens *auth.Service, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		Tokens:       tokens,
		CookieSecure: cookieSecure,
	}
}

// IssueToken is POST /jwt: signs an identity token for the given email and
// delivers it in an HTTP-only cookie. Whether the cookie is Secure is a
// deployment decision, so it comes from config.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dtos.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.ErrBadRequest("email is required"))
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	maxAge := int(h.Tokens.TTL().Seconds())
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
