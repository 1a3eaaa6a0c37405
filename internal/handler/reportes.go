package handler

import (
	"net/http"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/service"

	"github.com/gin-gonic/gin"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func (h *ReportesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reportes": h.svc.Nombres()})
}

// Exportar godoc
// @Summary Exporta un reporte a Excel
// @Tags reportes
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param nombre path string true "Nombre del reporte"
// @Param fecha_inicio query string false "YYYY-MM-DD"
// @Param fecha_fin query string false "YYYY-MM-DD"
// @Param fecha query string false "Un solo dia (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.APIError
// @Router /v1/reportes/{nombre} [get]
func (h *ReportesHandler) Exportar(c *gin.Context) {
	var q dto.ReporteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos"))
		return
	}
	archivo, err := h.svc.Generar(c.Request.Context(), c.Param("nombre"), q)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Type", mimeXLSX)
	c.FileAttachment(archivo.Path, archivo.Nombre)
}
