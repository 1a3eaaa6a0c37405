package service

import (
	"context"
	"os"
	"testing"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stub report repository ───────────────────────────────────────────────────

type stubReporteRepo struct {
	llamadas int
	rango    repository.RangoFechas
	filas    [][]interface{}
}

func (r *stubReporteRepo) Ejecutar(_ context.Context, _ repository.Reporte, rango repository.RangoFechas) ([][]interface{}, error) {
	r.llamadas++
	r.rango = rango
	return r.filas, nil
}

func newReporteSvc(t *testing.T, repo repository.ReporteRepository) *reporteService {
	svc := NewReporteService(repo, t.TempDir()).(*reporteService)
	svc.now = func() time.Time { return time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestReporte_FaltaFechaNoConsulta(t *testing.T) {
	repo := &stubReporteRepo{}
	svc := newReporteSvc(t, repo)

	_, err := svc.Generar(context.Background(), "viajes", dto.ReporteQuery{FechaFin: "2024-03-31"})
	assert.ErrorIs(t, err, apierror.ErrValidation)
	assert.Zero(t, repo.llamadas)
}

func TestReporte_FechaUnica(t *testing.T) {
	repo := &stubReporteRepo{filas: [][]interface{}{{"2024-03-10", "V1"}}}
	svc := newReporteSvc(t, repo)

	archivo, err := svc.Generar(context.Background(), "comidas", dto.ReporteQuery{Fecha: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, repository.RangoFechas{Inicio: "2024-03-10", Fin: "2024-03-10"}, repo.rango)
	assert.Equal(t, "reporte_comidas_2024-03-10_2024-03-10_20240401_090000.xlsx", archivo.Nombre)
	assert.Equal(t, 1, archivo.Filas)

	_, err = os.Stat(archivo.Path)
	assert.NoError(t, err)
}

func TestReporte_SinRango(t *testing.T) {
	repo := &stubReporteRepo{}
	svc := newReporteSvc(t, repo)

	archivo, err := svc.Generar(context.Background(), " CHOFERES ", dto.ReporteQuery{})
	require.NoError(t, err)
	assert.Equal(t, "reporte_choferes_20240401_090000.xlsx", archivo.Nombre)
	assert.Equal(t, 0, archivo.Filas)
}

func TestReporte_Errores(t *testing.T) {
	svc := newReporteSvc(t, &stubReporteRepo{})
	ctx := context.Background()

	_, err := svc.Generar(ctx, "inexistente", dto.ReporteQuery{})
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	_, err = svc.Generar(ctx, "viajes", dto.ReporteQuery{FechaInicio: "10/03/2024", FechaFin: "2024-03-31"})
	assert.ErrorIs(t, err, apierror.ErrValidation)

	_, err = svc.Generar(ctx, "viajes", dto.ReporteQuery{FechaInicio: "2024-04-01", FechaFin: "2024-03-01"})
	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestReporte_Nombres(t *testing.T) {
	svc := newReporteSvc(t, &stubReporteRepo{})
	assert.Contains(t, svc.Nombres(), "facturacion")
}
