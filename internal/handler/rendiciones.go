package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/service"

	"github.com/gin-gonic/gin"
)

type RendicionesHandler struct{ svc service.RendicionService }

func NewRendicionesHandler(svc service.RendicionService) *RendicionesHandler {
	return &RendicionesHandler{svc: svc}
}

// Importar godoc
// @Summary Importa rendiciones desde un Excel
// @Tags rendiciones
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Archivo .xlsx con NRO_VIAJE, PDT, RUTA"
// @Success 200 {object} dto.ImportacionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/rendiciones/importar [post]
func (h *RendicionesHandler) Importar(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo requerido en el campo 'file'"))
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, apierror.New("Solo se aceptan archivos .xlsx"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo abrir el archivo"))
		return
	}
	defer file.Close()

	resp, err := h.svc.ImportarExcel(c.Request.Context(), file)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RendicionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.DefaultQuery("filtro", service.FiltroActivas))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RendicionesHandler) ActualizarEstado(c *gin.Context) {
	var req dto.ActualizarEstadoRendicionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarEstado(c.Request.Context(), c.Param("nro_viaje"), req.Estado); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
