package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/infra"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	FiltroActivas = "activas"
	FiltroTodas   = "todas"
)

type RendicionService interface {
	// ImportarExcel loads NRO_VIAJE, PDT and RUTA from the first sheet. Rows
	// whose trip number is already loaded are counted as duplicates.
	ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportacionResponse, error)
	// Listar returns "activas" (SIN REVISAR and NO) or "todas", newest first.
	Listar(ctx context.Context, filtro string) ([]dto.RendicionResponse, error)
	ActualizarEstado(ctx context.Context, nroViaje, estado string) error
}

type rendicionService struct {
	repo repository.RendicionRepository
	now  func() time.Time
}

func NewRendicionService(repo repository.RendicionRepository) RendicionService {
	return &rendicionService{repo: repo, now: time.Now}
}

func (s *rendicionService) ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportacionResponse, error) {
	rows, err := infra.LeerPrimeraHoja(r)
	if err != nil {
		return nil, apierror.Invalid(err.Error())
	}

	idx := map[string]int{"NRO_VIAJE": -1, "PDT": -1, "RUTA": -1}
	for i, h := range rows[0] {
		if _, ok := idx[mayus(h)]; ok {
			idx[mayus(h)] = i
		}
	}
	if idx["NRO_VIAJE"] < 0 {
		return nil, apierror.Invalid("el archivo no tiene la columna NRO_VIAJE")
	}

	resp := &dto.ImportacionResponse{}
	for n, row := range rows[1:] {
		fila := n + 2
		nro := nroViaje(celda(row, idx["NRO_VIAJE"]))
		if nro == "" {
			if filaVacia(row) {
				continue
			}
			resp.Errores++
			resp.Detalle = append(resp.Detalle, fmt.Sprintf("Fila %d: NRO_VIAJE vacio", fila))
			continue
		}

		rend := &model.Rendicion{
			NroViaje:        nro,
			PDT:             strings.TrimSpace(celda(row, idx["PDT"])),
			Ruta:            strings.TrimSpace(celda(row, idx["RUTA"])),
			FechaCreacion:   s.now(),
			EstadoRendicion: model.EstadoSinRevisar,
		}
		if err := s.repo.Create(ctx, rend); err != nil {
			if errors.Is(err, apierror.ErrDuplicateKey) {
				resp.Duplicados++
				continue
			}
			resp.Errores++
			resp.Detalle = append(resp.Detalle, fmt.Sprintf("Fila %d: %s", fila, apierror.Message(err)))
			continue
		}
		resp.Cargados++
	}

	log.Info().
		Int("cargados", resp.Cargados).
		Int("duplicados", resp.Duplicados).
		Int("errores", resp.Errores).
		Msg("rendiciones importadas")
	return resp, nil
}

func (s *rendicionService) Listar(ctx context.Context, filtro string) ([]dto.RendicionResponse, error) {
	var estados []string
	switch strings.ToLower(strings.TrimSpace(filtro)) {
	case "", FiltroActivas:
		estados = []string{model.EstadoSinRevisar, model.EstadoNo}
	case FiltroTodas:
	default:
		return nil, apierror.Invalid(fmt.Sprintf("filtro %q desconocido", filtro))
	}

	rows, err := s.repo.List(ctx, estados)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RendicionResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.RendicionResponse{
			NroViaje:          r.NroViaje,
			PDT:               r.PDT,
			Ruta:              r.Ruta,
			Estado:            r.EstadoRendicion,
			FechaCreacion:     r.FechaCreacion,
			FechaModificacion: r.FechaModificacion,
		}
	}
	return resp, nil
}

func (s *rendicionService) ActualizarEstado(ctx context.Context, nro, estado string) error {
	estado = mayus(estado)
	if !model.EstadoValido(estado) {
		return apierror.Invalid(fmt.Sprintf("estado %q invalido", estado))
	}
	nro = nroViaje(nro)
	if err := s.repo.UpdateEstado(ctx, nro, estado, s.now()); err != nil {
		if errors.Is(err, apierror.ErrNotFound) {
			return apierror.NotFound(fmt.Sprintf("rendicion del viaje %s", nro))
		}
		return err
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func celda(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func filaVacia(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// nroViaje canonicalises trip numbers that spreadsheets store as floats
// ("12345.0" → "12345").
func nroViaje(s string) string {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strings.ToUpper(s)
}
