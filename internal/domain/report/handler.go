package report

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/labcore/lims/internal/platform/auth"
	"github.com/labcore/lims/pkg/pagination"
)

// Renderer produces the printable HTML view of a report.
type Renderer interface {
	ReportHTML(rec *Record, sections []Section) ([]byte, error)
}

type Handler struct {
	svc      *Service
	renderer Renderer
}

func NewHandler(svc *Service, renderer Renderer) *Handler {
	return &Handler{svc: svc, renderer: renderer}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "operator"))
	g.POST("/reports", h.CreateReport)
	g.GET("/reports", h.ListReports)
	g.GET("/reports/:id", h.GetReport)
	g.GET("/reports/:id/sections", h.GetSections)
	g.GET("/reports/:id/view", h.ViewReport)
}

func (h *Handler) CreateReport(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.CreateReport(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) GetReport(c echo.Context) error {
	rec, err := h.svc.GetReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) ListReports(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListReports(c.Request().Context(), c.QueryParam("patientId"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// GetSections returns the grouped render-ready view of a report as JSON.
func (h *Handler) GetSections(c echo.Context) error {
	rec, sections, err := h.svc.Sections(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"report":   rec,
		"sections": sections,
	})
}

// ViewReport serves the printable HTML document, charts and QR stamp
// included.
func (h *Handler) ViewReport(c echo.Context) error {
	rec, sections, err := h.svc.Sections(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	page, err := h.renderer.ReportHTML(rec, sections)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTMLBlob(http.StatusOK, page)
}
