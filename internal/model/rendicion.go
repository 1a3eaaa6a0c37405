package model

import "time"

// Estados de una rendicion.
const (
	EstadoSinRevisar = "SIN REVISAR"
	EstadoSi         = "SI"
	EstadoNo         = "NO"
)

// Rendicion tracks whether the expense report of a trip has been reviewed.
type Rendicion struct {
	ID                uint       `gorm:"column:id;primaryKey;autoIncrement"`
	NroViaje          string     `gorm:"column:nro_viaje;uniqueIndex;not null"`
	PDT               string     `gorm:"column:pdt"`
	Ruta              string     `gorm:"column:ruta"`
	FechaCreacion     time.Time  `gorm:"column:fecha_creacion;not null"`
	FechaModificacion *time.Time `gorm:"column:fecha_modificacion"`
	EstadoRendicion   string     `gorm:"column:estado_rendicion;not null;default:'SIN REVISAR'"`
}

func (Rendicion) TableName() string { return "rendiciones" }

// EstadoValido reports whether e is one of the known estados.
func EstadoValido(e string) bool {
	switch e {
	case EstadoSinRevisar, EstadoSi, EstadoNo:
		return true
	}
	return false
}
