package handler

import (
	"errors"
	"fmt"
	"net/http"
	"perfume-designer/internal/dto"
	"perfume-designer/internal/service"

	"github.com/labstack/echo/v4"
)

const msgOrderNotFound = "Order not found."

type DesignHandler struct {
	orderService service.OrderService
}

func NewDesignHandler(orderService service.OrderService) *DesignHandler {
	return &DesignHandler{
		orderService: orderService,
	}
}

func (h *DesignHandler) Home(c echo.Context) error {
	return render(c, "home", nil)
}

func (h *DesignHandler) DesignForm(c echo.Context) error {
	ctx := c.Request().Context()

	questions, err := h.orderService.Questions(ctx)
	if err != nil {
		return fmt.Errorf("list questions: %w", err)
	}

	return render(c, "design", questions)
}

func (h *DesignHandler) SubmitDesign(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	orderID, err := h.orderService.CreateOrder(ctx, &dto.DesignRequest{
		Values: form,
		Size:   form.Get("bottle_size"),
		Gift:   form.Get("gift") == "on",
		Note:   form.Get("note"),
	})
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	return c.Redirect(http.StatusFound, "/result/"+orderID)
}

func (h *DesignHandler) Result(c echo.Context) error {
	return h.showOrder(c, "result")
}

func (h *DesignHandler) Confirmation(c echo.Context) error {
	return h.showOrder(c, "confirmation")
}

func (h *DesignHandler) showOrder(c echo.Context, page string) error {
	ctx := c.Request().Context()

	summary, err := h.orderService.GetOrder(ctx, c.Param("id"))
	if errors.Is(err, service.ErrOrderNotFound) {
		return flashError(c, "/", msgOrderNotFound)
	}
	if err != nil {
		return err
	}

	return render(c, page, summary)
}

// Payment marks the order paid. No payment gateway is involved.
func (h *DesignHandler) Payment(c echo.Context) error {
	ctx := c.Request().Context()
	orderID := c.Param("id")

	err := h.orderService.MarkPaid(ctx, orderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return flashError(c, "/", msgOrderNotFound)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/confirmation/"+orderID)
}
