package handler

import (
	"net/http"

	"aratrack/internal/dto"
	"aratrack/internal/service"

	"github.com/gin-gonic/gin"
)

type DespachoHandler struct{ svc service.DespachoService }

func NewDespachoHandler(svc service.DespachoService) *DespachoHandler {
	return &DespachoHandler{svc: svc}
}

// GenerarViaje godoc
// @Summary Genera la planilla de despacho de todos los centros de un viaje
// @Tags despacho
// @Security BearerAuth
// @Produce json
// @Param numero path string true "Numero de viaje"
// @Success 201 {object} dto.ArchivoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/viajes/{numero}/pdf [post]
func (h *DespachoHandler) GenerarViaje(c *gin.Context) {
	archivo, err := h.svc.GenerarViaje(c.Request.Context(), c.Param("numero"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, archivoResponse(archivo))
}

func (h *DespachoHandler) GenerarPlanilla(c *gin.Context) {
	archivo, err := h.svc.GenerarPlanilla(c.Request.Context(), c.Param("numero"), c.Param("centro"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, archivoResponse(archivo))
}

// EnviarViaje godoc
// @Summary Genera y envia por correo la planilla del viaje
// @Tags despacho
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param numero path string true "Numero de viaje"
// @Param body body dto.EnviarPlanillaRequest false "Destinatario"
// @Success 200 {object} dto.ArchivoResponse
// @Router /v1/viajes/{numero}/pdf/enviar [post]
func (h *DespachoHandler) EnviarViaje(c *gin.Context) {
	var req dto.EnviarPlanillaRequest
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	archivo, err := h.svc.EnviarViaje(c.Request.Context(), c.Param("numero"), req.Destinatario)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, archivoResponse(archivo))
}

// Descargar godoc
// @Summary Descarga un PDF generado
// @Tags despacho
// @Security BearerAuth
// @Produce application/pdf
// @Param archivo path string true "Nombre del archivo"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/pdfs/{archivo} [get]
func (h *DespachoHandler) Descargar(c *gin.Context) {
	path, err := h.svc.RutaArchivo(c.Param("archivo"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.FileAttachment(path, c.Param("archivo"))
}

func archivoResponse(a *service.ArchivoGenerado) dto.ArchivoResponse {
	return dto.ArchivoResponse{Archivo: a.Nombre, URL: "/v1/pdfs/" + a.Nombre, Paginas: a.Paginas}
}
