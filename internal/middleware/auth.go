package middleware

import (
	"net/http"
	"perfume-designer/internal/session"

	"github.com/labstack/echo/v4"
)

const sessionKey = "session"

// Session loads the signed session cookie into the echo context and writes it
// back just before the response headers go out, if a handler changed it.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := store.Load(c.Request())
			c.Set(sessionKey, sess)

			c.Response().Before(func() {
				if sess.Dirty() {
					if err := store.Save(c.Response(), sess); err != nil {
						c.Logger().Error(err)
					}
				}
			})
			return next(c)
		}
	}
}

// GetSession returns the request session, or a detached empty one when the
// Session middleware did not run.
func GetSession(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionKey).(*session.Session); ok {
		return sess
	}
	return session.New()
}

// RequireAdmin redirects to the login page unless the session carries the
// admin flag.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := GetSession(c)
			if !sess.AdminLoggedIn() {
				sess.AddFlash(session.CategoryError, "Please log in first.")
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}
