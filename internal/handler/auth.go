package handler

import (
	"net/http"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/middleware"
	"perfume-designer/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	verifier service.CredentialVerifier
}

func NewAuthHandler(verifier service.CredentialVerifier) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
	}
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	return render(c, "login", nil)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if !h.verifier.Verify(ctx, req.Username, req.Password) {
		return flashError(c, "/login", "Invalid username or password.")
	}

	middleware.GetSession(c).SetAdminLoggedIn(true)
	return flashSuccess(c, "/admin/dashboard", "Logged in successfully.")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	middleware.GetSession(c).SetAdminLoggedIn(false)
	return flashSuccess(c, "/", "Logged out successfully.")
}
