package handler

import (
	"net/http"

	"aratrack/internal/dto"
	"aratrack/internal/service"

	"github.com/gin-gonic/gin"
)

type MaestrasHandler struct{ svc service.MaestrasService }

func NewMaestrasHandler(svc service.MaestrasService) *MaestrasHandler {
	return &MaestrasHandler{svc: svc}
}

// ── Centros de costo ─────────────────────────────────────────────────────────

// CrearCentroCosto godoc
// @Summary Crea un centro de costo
// @Tags maestras
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CentroCostoRequest true "Centro de costo"
// @Success 201 {object} dto.CentroCostoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/centros-costo [post]
func (h *MaestrasHandler) CrearCentroCosto(c *gin.Context) {
	var req dto.CentroCostoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearCentroCosto(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaestrasHandler) ListarCentrosCosto(c *gin.Context) {
	resp, err := h.svc.ListarCentrosCosto(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaestrasHandler) ObtenerCentroCosto(c *gin.Context) {
	resp, err := h.svc.ObtenerCentroCosto(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaestrasHandler) ActualizarCentroCosto(c *gin.Context) {
	var req dto.ActualizarCentroCostoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarCentroCosto(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Choferes ─────────────────────────────────────────────────────────────────

// CrearChofer godoc
// @Summary Crea un chofer
// @Tags maestras
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.ChoferRequest true "Chofer"
// @Success 201 {object} dto.ChoferResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/choferes [post]
func (h *MaestrasHandler) CrearChofer(c *gin.Context) {
	var req dto.ChoferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearChofer(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaestrasHandler) ListarChoferes(c *gin.Context) {
	resp, err := h.svc.ListarChoferes(c.Request.Context(), c.Query("nombre"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaestrasHandler) ActualizarChofer(c *gin.Context) {
	var req dto.ActualizarChoferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarChofer(c.Request.Context(), c.Param("nombre"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Administrativos ──────────────────────────────────────────────────────────

func (h *MaestrasHandler) CrearAdministrativo(c *gin.Context) {
	var req dto.AdministrativoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	nombre, err := h.svc.CrearAdministrativo(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"nombre": nombre})
}

func (h *MaestrasHandler) ListarAdministrativos(c *gin.Context) {
	nombres, err := h.svc.ListarAdministrativos(c.Request.Context(), c.Query("nombre"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"administrativos": nombres})
}

func (h *MaestrasHandler) RenombrarAdministrativo(c *gin.Context) {
	var req dto.RenombrarAdministrativoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	nombre, err := h.svc.RenombrarAdministrativo(c.Request.Context(), c.Param("nombre"), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nombre": nombre})
}
