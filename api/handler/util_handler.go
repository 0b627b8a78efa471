package handler

import (
	"net/http"

	"medstock/internal/service"

	"github.com/labstack/echo/v4"
)

type UtilHandler struct {
	Service *service.StatsService
}

func NewUtilHandler(svc *service.StatsService) *UtilHandler {
	return &UtilHandler{Service: svc}
}

func (h *UtilHandler) GraphData(c echo.Context) error {
	counts, err := h.Service.GraphData(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *UtilHandler) DashboardData(c echo.Context) error {
	data, err := h.Service.Dashboard(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

func (h *UtilHandler) Autocomplete(c echo.Context) error {
	data, err := h.Service.Autocomplete(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}
