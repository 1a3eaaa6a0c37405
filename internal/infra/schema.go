package infra

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dialect holds the few DDL fragments that differ between SQLite and Postgres.
type dialect struct {
	pk string
	ts string
}

func dialectFor(db *gorm.DB) dialect {
	if db.Dialector.Name() == DriverPostgres {
		return dialect{pk: "BIGSERIAL PRIMARY KEY", ts: "TIMESTAMPTZ"}
	}
	return dialect{pk: "INTEGER PRIMARY KEY AUTOINCREMENT", ts: "DATETIME"}
}

func (d dialect) expand(sql string) string {
	return strings.NewReplacer("{{pk}}", d.pk, "{{ts}}", d.ts).Replace(sql)
}

// viajesDDL builds the trips table: counts default to zero and every text
// column defaults to the empty string so reads never see NULL.
func viajesDDL() string {
	text := []string{
		"casino", "ruta", "tipo_camion", "patente_camion", "patente_semi",
		"numero_rampa", "peso_camion", "termografos_gps", "numero_camion",
		"fecha", "fecha_hora_llegada_dhl", "fecha_hora_salida_dhl",
		"conductor", "celular", "rut",
		"check_congelado", "check_refrigerado", "check_abarrote", "check_implementos",
		"check_aseo", "check_trazabilidad", "check_plataforma_wtck",
		"check_env_correo_wtck", "check_revision_planilla_despacho",
	}
	for i := 1; i <= 5; i++ {
		text = append(text, fmt.Sprintf("sello_salida_%dp", i))
	}
	for i := 1; i <= 5; i++ {
		text = append(text, fmt.Sprintf("sello_retorno_%dp", i))
	}
	for i := 1; i <= 21; i++ {
		text = append(text, fmt.Sprintf("guia_%d", i))
	}
	text = append(text,
		"numero_certificado_fumigacion", "revision_limpieza_camion_acciones",
		"administrativo_responsable")

	counts := []string{
		"num_wencos", "bin", "pallets", "pallets_chep", "pallets_pl_negro_grueso",
		"pallets_pl_negro_alternativo", "pallets_refrigerado", "wencos_refrigerado",
		"pallets_congelado", "wencos_congelado", "pallets_abarrote",
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS viajes (\n")
	b.WriteString("  id {{pk}},\n")
	b.WriteString("  numero_viaje TEXT NOT NULL,\n")
	b.WriteString("  costo_codigo TEXT NOT NULL,\n")
	for _, c := range text {
		fmt.Fprintf(&b, "  %s TEXT NOT NULL DEFAULT '',\n", c)
	}
	for _, c := range counts {
		fmt.Fprintf(&b, "  %s INTEGER NOT NULL DEFAULT 0,\n", c)
	}
	b.WriteString("  created_at {{ts}},\n")
	b.WriteString("  updated_at {{ts}},\n")
	b.WriteString("  CONSTRAINT uq_viajes_numero_centro UNIQUE (numero_viaje, costo_codigo)\n")
	b.WriteString(")")
	return b.String()
}

// applySchema runs idempotent DDL in order. Each statement uses IF NOT EXISTS
// so re-running on an existing store is a no-op.
func applySchema(db *gorm.DB) error {
	d := dialectFor(db)
	patches := []struct{ descr, sql string }{
		{"viajes", viajesDDL()},
		{"comidas_preparadas", `
CREATE TABLE IF NOT EXISTS comidas_preparadas (
  id {{pk}},
  numero_viaje TEXT NOT NULL,
  numero_centro_costo TEXT NOT NULL,
  guia_comida TEXT NOT NULL DEFAULT '',
  descripcion TEXT NOT NULL DEFAULT '',
  kilo NUMERIC(12,2) NOT NULL DEFAULT 0,
  bultos INTEGER NOT NULL DEFAULT 0,
  proveedor TEXT NOT NULL DEFAULT '',
  CONSTRAINT fk_comidas_viaje FOREIGN KEY (numero_viaje, numero_centro_costo)
    REFERENCES viajes (numero_viaje, costo_codigo) ON DELETE CASCADE
)`},
		{"idx comidas_preparadas key",
			`CREATE INDEX IF NOT EXISTS idx_comidas_viaje ON comidas_preparadas (numero_viaje, numero_centro_costo)`},
		{"centros_costo", `
CREATE TABLE IF NOT EXISTS centros_costo (
  id {{pk}},
  codigo TEXT NOT NULL UNIQUE,
  casino TEXT NOT NULL,
  ruta TEXT NOT NULL DEFAULT ''
)`},
		{"choferes", `
CREATE TABLE IF NOT EXISTS choferes (
  id {{pk}},
  nombre TEXT NOT NULL UNIQUE,
  rut TEXT NOT NULL UNIQUE,
  celular TEXT NOT NULL DEFAULT ''
)`},
		{"administrativos", `
CREATE TABLE IF NOT EXISTS administrativos (
  id {{pk}},
  nombre TEXT NOT NULL
)`},
		{"uq administrativos lower(nombre)",
			`CREATE UNIQUE INDEX IF NOT EXISTS uq_administrativos_nombre ON administrativos (LOWER(nombre))`},
		{"usuarios", `
CREATE TABLE IF NOT EXISTS usuarios (
  id VARCHAR(36) PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  nombre_completo TEXT NOT NULL DEFAULT '',
  email TEXT,
  activo BOOLEAN NOT NULL DEFAULT TRUE,
  created_at {{ts}},
  updated_at {{ts}}
)`},
		{"rendiciones", `
CREATE TABLE IF NOT EXISTS rendiciones (
  id {{pk}},
  nro_viaje TEXT NOT NULL UNIQUE,
  pdt TEXT NOT NULL DEFAULT '',
  ruta TEXT NOT NULL DEFAULT '',
  fecha_creacion {{ts}} NOT NULL,
  fecha_modificacion {{ts}},
  estado_rendicion TEXT NOT NULL DEFAULT 'SIN REVISAR'
)`},
	}

	for _, p := range patches {
		if err := db.Exec(d.expand(p.sql)).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
