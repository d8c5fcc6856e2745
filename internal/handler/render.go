package handler

import (
	"net/http"
	"perfume-designer/internal/middleware"
	"perfume-designer/internal/session"
	"perfume-designer/internal/web"

	"github.com/labstack/echo/v4"
)

// render draws a section of the index page, consuming pending flash notices.
func render(c echo.Context, page string, data interface{}) error {
	sess := middleware.GetSession(c)
	return c.Render(http.StatusOK, "index", &web.Page{
		Name:    page,
		Admin:   sess.AdminLoggedIn(),
		Flashes: sess.PopFlashes(),
		Data:    data,
	})
}

// redirectWithFlash queues a notice for the next rendered page and redirects.
func redirectWithFlash(c echo.Context, url, category, message string) error {
	middleware.GetSession(c).AddFlash(category, message)
	return c.Redirect(http.StatusFound, url)
}

func flashError(c echo.Context, url, message string) error {
	return redirectWithFlash(c, url, session.CategoryError, message)
}

func flashSuccess(c echo.Context, url, message string) error {
	return redirectWithFlash(c, url, session.CategorySuccess, message)
}
