package handler

import (
	"net/http"

	"aratrack/internal/dto"
	"aratrack/internal/service"

	"github.com/gin-gonic/gin"
)

type ViajesHandler struct{ svc service.ViajeService }

func NewViajesHandler(svc service.ViajeService) *ViajesHandler { return &ViajesHandler{svc: svc} }

// Crear godoc
// @Summary Registra un viaje para un centro de costo
// @Tags viajes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ViajeRequest true "Viaje y comidas preparadas"
// @Success 201 {object} dto.ViajeResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/viajes [post]
func (h *ViajesHandler) Crear(c *gin.Context) {
	var req dto.ViajeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary Reemplaza los datos y comidas de (numero, centro)
// @Tags viajes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param numero path string true "Numero de viaje"
// @Param centro path string true "Centro de costo"
// @Param body body dto.ViajeRequest true "Viaje"
// @Success 200 {object} dto.ViajeResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/viajes/{numero}/centros/{centro} [put]
func (h *ViajesHandler) Actualizar(c *gin.Context) {
	var req dto.ViajeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.NumeroViaje, req.CentroCosto = c.Param("numero"), c.Param("centro")
	if !validar(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req.NumeroViaje, req.CentroCosto, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("numero"), c.Param("centro")); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Obtener godoc
// @Summary Viaje de un centro de costo con sus comidas
// @Tags viajes
// @Security BearerAuth
// @Produce json
// @Param numero path string true "Numero de viaje"
// @Param centro path string true "Centro de costo"
// @Success 200 {object} dto.ViajeResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/viajes/{numero}/centros/{centro} [get]
func (h *ViajesHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("numero"), c.Param("centro"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) ObtenerUltimo(c *gin.Context) {
	resp, err := h.svc.ObtenerUltimo(c.Request.Context(), c.Param("numero"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) ListarCentros(c *gin.Context) {
	resp, err := h.svc.ListarCentros(c.Request.Context(), c.Param("numero"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) Buscar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) ListarUnicos(c *gin.Context) {
	resp, err := h.svc.ListarUnicos(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ViajesHandler) ListarPatentes(c *gin.Context) {
	resp, err := h.svc.ListarPatentes(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patentes": resp})
}
