package handler

import (
	"errors"
	"fmt"
	"net/http"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/service"

	"github.com/labstack/echo/v4"
)

const dashboardURL = "/admin/dashboard"

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	dashboard, err := h.adminService.Dashboard(ctx)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	return render(c, "admin_dashboard", dashboard)
}

func (h *AdminHandler) UploadQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil || file.Filename == "" {
		return flashError(c, dashboardURL, "No file selected.")
	}

	src, err := file.Open()
	if err != nil {
		return flashError(c, dashboardURL, "Error processing file: "+err.Error())
	}
	defer src.Close()

	_, err = h.adminService.ImportQuestions(ctx, file.Filename, src)
	if errors.Is(err, service.ErrInvalidFileType) {
		return flashError(c, dashboardURL, "Invalid file format. Please upload an Excel (.xlsx) file.")
	}
	if err != nil {
		return flashError(c, dashboardURL, "Error processing file: "+err.Error())
	}

	return flashSuccess(c, dashboardURL, "Questions uploaded and updated successfully.")
}

func (h *AdminHandler) ManagePricing(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PricingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	err := h.adminService.SetPrice(ctx, &req)
	switch {
	case errors.Is(err, service.ErrInvalidSize):
		return flashError(c, dashboardURL, "Invalid bottle size.")
	case errors.Is(err, service.ErrInvalidPrice):
		return flashError(c, dashboardURL, "Invalid price.")
	case err != nil:
		return err
	}

	return flashSuccess(c, dashboardURL, "Price updated successfully.")
}

func (h *AdminHandler) AddQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	created, err := h.adminService.SaveQuestion(ctx, &req)
	if err != nil {
		return err
	}

	if created {
		return flashSuccess(c, dashboardURL, "Question added.")
	}
	return flashSuccess(c, dashboardURL, "Question updated.")
}

func (h *AdminHandler) EditQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := h.adminService.EditQuestion(ctx, c.Param("id"), &req); err != nil {
		return err
	}

	return flashSuccess(c, dashboardURL, "Question updated.")
}

func (h *AdminHandler) DeleteQuestion(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.adminService.DeleteQuestion(ctx, c.Param("id")); err != nil {
		return err
	}

	return flashSuccess(c, dashboardURL, "Question deleted.")
}
