package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Reporte describes one named read-only export query. Queries use sqlx named
// parameters (:fecha_inicio, :fecha_fin) and are rebound to the driver's
// bindvar style before running.
type Reporte struct {
	Nombre        string
	Hoja          string
	Columnas      []string
	RequiereRango bool
	query         string
}

var reportes = map[string]Reporte{
	"choferes": {
		Nombre:   "choferes",
		Hoja:     "Choferes",
		Columnas: []string{"NOMBRE", "RUT", "CELULAR"},
		query:    `SELECT nombre, rut, celular FROM choferes ORDER BY nombre`,
	},
	"centros_costo": {
		Nombre:   "centros_costo",
		Hoja:     "Centros de costo",
		Columnas: []string{"CODIGO", "CASINO", "RUTA"},
		query:    `SELECT codigo, casino, ruta FROM centros_costo ORDER BY codigo`,
	},
	"comidas": {
		Nombre:        "comidas",
		Hoja:          "Comidas preparadas",
		Columnas:      []string{"FECHA", "NUMERO VIAJE", "CENTRO COSTO", "CASINO", "GUIA", "PROVEEDOR", "DESCRIPCION", "KILO", "BULTOS"},
		RequiereRango: true,
		query: `
SELECT v.fecha, c.numero_viaje, c.numero_centro_costo, v.casino, c.guia_comida,
       c.proveedor, c.descripcion, c.kilo, c.bultos
FROM comidas_preparadas c
JOIN viajes v ON v.numero_viaje = c.numero_viaje AND v.costo_codigo = c.numero_centro_costo
WHERE v.fecha BETWEEN :fecha_inicio AND :fecha_fin
ORDER BY v.fecha, c.numero_viaje, c.numero_centro_costo, c.id`,
	},
	"viajes": {
		Nombre: "viajes",
		Hoja:   "Viajes",
		Columnas: []string{
			"FECHA", "NUMERO VIAJE", "CENTRO COSTO", "CASINO", "RUTA", "TIPO CAMION",
			"PATENTE CAMION", "PATENTE SEMI", "CONDUCTOR", "RUT", "CELULAR",
			"SALIDA DHL", "LLEGADA DHL", "PALLETS", "PALLETS CHEP", "PALLETS NEGRO GRUESO",
			"PALLETS NEGRO ALTER.", "PALLETS REFRIGERADO", "PALLETS CONGELADO",
			"PALLETS ABARROTE", "WENCOS", "WENCOS REFRIGERADO", "WENCOS CONGELADO", "BIN",
			"ADMIN. RESPONSABLE",
		},
		RequiereRango: true,
		query: `
SELECT fecha, numero_viaje, costo_codigo, casino, ruta, tipo_camion,
       patente_camion, patente_semi, conductor, rut, celular,
       fecha_hora_salida_dhl, fecha_hora_llegada_dhl, pallets, pallets_chep, pallets_pl_negro_grueso,
       pallets_pl_negro_alternativo, pallets_refrigerado, pallets_congelado,
       pallets_abarrote, num_wencos, wencos_refrigerado, wencos_congelado, bin,
       administrativo_responsable
FROM viajes
WHERE fecha BETWEEN :fecha_inicio AND :fecha_fin
ORDER BY fecha, numero_viaje, costo_codigo`,
	},
	"facturacion": {
		Nombre:        "facturacion",
		Hoja:          "Facturacion",
		Columnas:      []string{"CENTRO COSTO", "CASINO", "VIAJES", "KILOS", "BULTOS"},
		RequiereRango: true,
		query: `
SELECT v.costo_codigo, MAX(v.casino) AS casino, COUNT(DISTINCT v.numero_viaje) AS viajes,
       COALESCE(SUM(c.kilo), 0) AS kilos, COALESCE(SUM(c.bultos), 0) AS bultos
FROM viajes v
LEFT JOIN comidas_preparadas c
  ON c.numero_viaje = v.numero_viaje AND c.numero_centro_costo = v.costo_codigo
WHERE v.fecha BETWEEN :fecha_inicio AND :fecha_fin
GROUP BY v.costo_codigo
ORDER BY v.costo_codigo`,
	},
	"control_activos": {
		Nombre: "control_activos",
		Hoja:   "Control de activos",
		Columnas: []string{
			"CENTRO COSTO", "CASINO", "DESPACHOS", "PALLETS", "PALLETS CHEP",
			"PALLETS NEGRO GRUESO", "PALLETS NEGRO ALTER.", "PALLETS REFRIGERADO",
			"PALLETS CONGELADO", "PALLETS ABARROTE", "WENCOS", "WENCOS REFRIGERADO",
			"WENCOS CONGELADO", "BIN",
		},
		RequiereRango: true,
		query: `
SELECT costo_codigo, MAX(casino) AS casino, COUNT(*) AS despachos,
       SUM(pallets), SUM(pallets_chep), SUM(pallets_pl_negro_grueso),
       SUM(pallets_pl_negro_alternativo), SUM(pallets_refrigerado),
       SUM(pallets_congelado), SUM(pallets_abarrote), SUM(num_wencos),
       SUM(wencos_refrigerado), SUM(wencos_congelado), SUM(bin)
FROM viajes
WHERE fecha BETWEEN :fecha_inicio AND :fecha_fin
GROUP BY costo_codigo
ORDER BY costo_codigo`,
	},
	"rendiciones": {
		Nombre:        "rendiciones",
		Hoja:          "Rendiciones",
		Columnas:      []string{"NRO VIAJE", "PDT", "RUTA", "ESTADO", "FECHA CREACION"},
		RequiereRango: true,
		query: `
SELECT nro_viaje, pdt, ruta, estado_rendicion, {{fecha_creacion}} AS fecha_creacion
FROM rendiciones
WHERE {{fecha_creacion}} BETWEEN :fecha_inicio AND :fecha_fin
ORDER BY fecha_creacion, nro_viaje`,
	},
}

// BuscarReporte returns the definition registered under nombre.
func BuscarReporte(nombre string) (Reporte, bool) {
	r, ok := reportes[nombre]
	return r, ok
}

// NombresReportes lists every registered report name, sorted.
func NombresReportes() []string {
	nombres := make([]string, 0, len(reportes))
	for n := range reportes {
		nombres = append(nombres, n)
	}
	sort.Strings(nombres)
	return nombres
}

// RangoFechas bounds a report by inclusive YYYY-MM-DD dates.
type RangoFechas struct {
	Inicio string `db:"fecha_inicio"`
	Fin    string `db:"fecha_fin"`
}

type ReporteRepository interface {
	Ejecutar(ctx context.Context, rep Reporte, rango RangoFechas) ([][]interface{}, error)
}

type reporteRepo struct {
	db       *sqlx.DB
	postgres bool
}

// NewReporteRepository shares the gorm connection pool through sqlx.
func NewReporteRepository(db *gorm.DB) (ReporteRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	name := db.Dialector.Name()
	driver := "sqlite3"
	if name == "postgres" {
		driver = "postgres"
	}
	return &reporteRepo{db: sqlx.NewDb(sqlDB, driver), postgres: name == "postgres"}, nil
}

func (r *reporteRepo) Ejecutar(ctx context.Context, rep Reporte, rango RangoFechas) ([][]interface{}, error) {
	fechaCreacion := "substr(fecha_creacion, 1, 10)"
	if r.postgres {
		fechaCreacion = "to_char(fecha_creacion, 'YYYY-MM-DD')"
	}
	text := strings.ReplaceAll(rep.query, "{{fecha_creacion}}", fechaCreacion)

	query, args, err := sqlx.Named(text, rango)
	if err != nil {
		return nil, storeErr(err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var filas [][]interface{}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, storeErr(err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		filas = append(filas, vals)
	}
	return filas, storeErr(rows.Err())
}
