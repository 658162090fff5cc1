package finance

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcore/lims/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin"))
	g.GET("/finance/summary", h.GetSummary)
}

func (h *Handler) GetSummary(c echo.Context) error {
	ov, err := h.svc.Overview(c.Request().Context(), c.QueryParam("filter"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ov)
}
