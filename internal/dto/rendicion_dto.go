package dto

import "time"

type ActualizarEstadoRendicionRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type RendicionResponse struct {
	NroViaje          string     `json:"nro_viaje"`
	PDT               string     `json:"pdt"`
	Ruta              string     `json:"ruta"`
	Estado            string     `json:"estado"`
	FechaCreacion     time.Time  `json:"fecha_creacion"`
	FechaModificacion *time.Time `json:"fecha_modificacion"`
}

// ImportacionResponse summarises an Excel import.
type ImportacionResponse struct {
	Cargados   int      `json:"cargados"`
	Duplicados int      `json:"duplicados"`
	Errores    int      `json:"errores"`
	Detalle    []string `json:"detalle,omitempty"`
}
