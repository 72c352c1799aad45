package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gct/report-admin/internal/api/metrics"
	"github.com/gct/report-admin/internal/core/ports"
)

// ReportHandler exposes the report-name uniqueness check.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type checkNameResponse struct {
	Exists bool `json:"exists"`
}

// CheckName reports whether a report name is already taken.
//
// @Summary      Check report name uniqueness
// @Tags         reports
// @Produce      json
// @Param        name  query     string  true  "Report name"
// @Success      200   {object}  checkNameResponse
// @Failure      401   {object}  map[string]string
// @Router       /reports/check-name [get]
func (h *ReportHandler) CheckName(c echo.Context) error {
	exists, err := h.service.CheckNameExists(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}

	result := "miss"
	if exists {
		result = "hit"
	}
	metrics.ReportNameChecksTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, checkNameResponse{Exists: exists})
}
