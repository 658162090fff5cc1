package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcore/lims/internal/platform/auth"
	"github.com/labcore/lims/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "operator"))
	read.GET("/catalog", h.ListEntries)
	read.GET("/catalog/:code", h.GetEntry)
	read.GET("/catalog/:code/lookup", h.Lookup)

	write := api.Group("", auth.RequireRole("admin"))
	write.POST("/catalog", h.CreateEntry)
}

func (h *Handler) CreateEntry(c echo.Context) error {
	var e Entry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateEntry(c.Request().Context(), &e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) GetEntry(c echo.Context) error {
	e, err := h.svc.GetEntry(c.Request().Context(), c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "test not found")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) ListEntries(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListEntries(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// Lookup resolves unit and reference range for one component of a test.
// Misses return empty strings, not 404: the caller renders blank cells.
func (h *Handler) Lookup(c echo.Context) error {
	unit, refRange := h.svc.Lookup(c.Request().Context(), c.Param("code"), c.QueryParam("component"))
	return c.JSON(http.StatusOK, map[string]string{
		"unit":           unit,
		"referenceRange": refRange,
	})
}
