package model

import "github.com/shopspring/decimal"

// ComidaPreparada is one prepared-meal or implement line shipped with a trip
// to a cost center. (NumeroViaje, NumeroCentroCosto) always references an
// existing Viaje row.
type ComidaPreparada struct {
	ID                uint            `gorm:"column:id;primaryKey;autoIncrement"`
	NumeroViaje       string          `gorm:"column:numero_viaje;not null"`
	NumeroCentroCosto string          `gorm:"column:numero_centro_costo;not null"`
	GuiaComida        string          `gorm:"column:guia_comida"`
	Descripcion       string          `gorm:"column:descripcion"`
	Kilo              decimal.Decimal `gorm:"column:kilo;type:numeric(12,2);not null;default:0"`
	Bultos            int             `gorm:"column:bultos;not null;default:0"`
	Proveedor         string          `gorm:"column:proveedor"`
}

func (ComidaPreparada) TableName() string { return "comidas_preparadas" }
