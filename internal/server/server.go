package server

import (
	"context"
	"perfume-designer/internal/handler"
	appmiddleware "perfume-designer/internal/middleware"
	"perfume-designer/internal/service"
	"perfume-designer/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo          *echo.Echo
	designHandler *handler.DesignHandler
	authHandler   *handler.AuthHandler
	adminHandler  *handler.AdminHandler
}

type Deps struct {
	OrderService service.OrderService
	AdminService service.AdminService
	Verifier     service.CredentialVerifier
	Sessions     *session.Store
	Renderer     echo.Renderer
	Log          *zap.Logger
}

func NewServer(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = deps.Renderer

	e.Use(requestLogger(deps.Log))
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Session(deps.Sessions))

	s := &Server{
		echo:          e,
		designHandler: handler.NewDesignHandler(deps.OrderService),
		authHandler:   handler.NewAuthHandler(deps.Verifier),
		adminHandler:  handler.NewAdminHandler(deps.AdminService),
	}

	s.setupRoutes()
	return s
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	s.echo.GET("/", s.designHandler.Home)
	s.echo.GET("/login", s.authHandler.LoginForm)
	s.echo.POST("/login", s.authHandler.Login)
	s.echo.GET("/logout", s.authHandler.Logout)

	// -------- order workflow --------
	s.echo.GET("/design", s.designHandler.DesignForm)
	s.echo.POST("/design", s.designHandler.SubmitDesign)
	s.echo.GET("/result/:id", s.designHandler.Result)
	s.echo.POST("/payment/:id", s.designHandler.Payment)
	s.echo.GET("/confirmation/:id", s.designHandler.Confirmation)

	// -------- admin panel --------
	admin := s.echo.Group("/admin", appmiddleware.RequireAdmin())
	admin.GET("/dashboard", s.adminHandler.Dashboard)
	admin.POST("/upload_questions", s.adminHandler.UploadQuestions)
	admin.POST("/manage_pricing", s.adminHandler.ManagePricing)
	admin.POST("/add_question", s.adminHandler.AddQuestion)
	admin.POST("/edit_question/:id", s.adminHandler.EditQuestion)
	admin.POST("/delete_question/:id", s.adminHandler.DeleteQuestion)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
