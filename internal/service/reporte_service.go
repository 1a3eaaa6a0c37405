package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/infra"
	"aratrack/internal/repository"

	"github.com/rs/zerolog/log"
)

const formatoFecha = "2006-01-02"

// ArchivoGenerado is a file written to local storage, ready to download.
type ArchivoGenerado struct {
	Path    string
	Nombre  string
	Filas   int
	Paginas int
}

type ReporteService interface {
	Nombres() []string
	// Generar runs the named report and writes it as an xlsx workbook.
	Generar(ctx context.Context, nombre string, q dto.ReporteQuery) (*ArchivoGenerado, error)
}

type reporteService struct {
	repo repository.ReporteRepository
	dir  string
	now  func() time.Time
}

func NewReporteService(repo repository.ReporteRepository, dir string) ReporteService {
	return &reporteService{repo: repo, dir: dir, now: time.Now}
}

func (s *reporteService) Nombres() []string { return repository.NombresReportes() }

func (s *reporteService) Generar(ctx context.Context, nombre string, q dto.ReporteQuery) (*ArchivoGenerado, error) {
	rep, ok := repository.BuscarReporte(strings.ToLower(strings.TrimSpace(nombre)))
	if !ok {
		return nil, apierror.NotFound(fmt.Sprintf("reporte %s", nombre))
	}

	rango, err := rangoDesdeQuery(q)
	if err != nil {
		return nil, err
	}
	if rep.RequiereRango && (rango.Inicio == "" || rango.Fin == "") {
		return nil, apierror.Invalid("fecha_inicio y fecha_fin son obligatorias")
	}

	filas, err := s.repo.Ejecutar(ctx, rep, rango)
	if err != nil {
		return nil, err
	}

	archivo := fmt.Sprintf("reporte_%s_%s.xlsx", rep.Nombre, s.now().Format("20060102_150405"))
	if rep.RequiereRango {
		archivo = fmt.Sprintf("reporte_%s_%s_%s_%s.xlsx", rep.Nombre, rango.Inicio, rango.Fin, s.now().Format("20060102_150405"))
	}
	path := filepath.Join(s.dir, archivo)
	if err := infra.EscribirReporte(path, rep.Hoja, rep.Columnas, filas); err != nil {
		return nil, err
	}

	log.Info().Str("reporte", rep.Nombre).Int("filas", len(filas)).Str("archivo", archivo).Msg("reporte generado")
	return &ArchivoGenerado{Path: path, Nombre: archivo, Filas: len(filas)}, nil
}

// rangoDesdeQuery resolves the date bounds. A lone fecha sets both ends.
func rangoDesdeQuery(q dto.ReporteQuery) (repository.RangoFechas, error) {
	r := repository.RangoFechas{
		Inicio: strings.TrimSpace(q.FechaInicio),
		Fin:    strings.TrimSpace(q.FechaFin),
	}
	if f := strings.TrimSpace(q.Fecha); f != "" && r.Inicio == "" && r.Fin == "" {
		r.Inicio, r.Fin = f, f
	}

	var ini, fin time.Time
	var err error
	if r.Inicio != "" {
		if ini, err = time.Parse(formatoFecha, r.Inicio); err != nil {
			return r, apierror.Invalid("fecha_inicio debe tener formato YYYY-MM-DD")
		}
	}
	if r.Fin != "" {
		if fin, err = time.Parse(formatoFecha, r.Fin); err != nil {
			return r, apierror.Invalid("fecha_fin debe tener formato YYYY-MM-DD")
		}
	}
	if r.Inicio != "" && r.Fin != "" && fin.Before(ini) {
		return r, apierror.Invalid("fecha_fin es anterior a fecha_inicio")
	}
	return r, nil
}
