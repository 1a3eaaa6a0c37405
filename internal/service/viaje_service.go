package service

import (
	"context"
	"errors"
	"fmt"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/repository"
)

const (
	limiteViajesUnicos = 100
	limiteBusqueda     = 100
	sinCasino          = "Sin casino"
)

type ViajeService interface {
	Crear(ctx context.Context, req dto.ViajeRequest) (*dto.ViajeResponse, error)
	Actualizar(ctx context.Context, numero, centro string, req dto.ViajeRequest) (*dto.ViajeResponse, error)
	Eliminar(ctx context.Context, numero, centro string) error
	Obtener(ctx context.Context, numero, centro string) (*dto.ViajeResponse, error)
	ObtenerUltimo(ctx context.Context, numero string) (*dto.ViajeResponse, error)
	ListarCentros(ctx context.Context, numero string) ([]dto.CentroViajeResponse, error)
	ListarUnicos(ctx context.Context) ([]dto.ViajeUnicoResponse, error)
	Buscar(ctx context.Context, q string) ([]dto.ViajeResumenResponse, error)
	Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error)
	ListarPatentes(ctx context.Context) ([]string, error)
}

type viajeService struct {
	repo       repository.ViajeRepository
	centroRepo repository.CentroCostoRepository
}

func NewViajeService(repo repository.ViajeRepository, centroRepo repository.CentroCostoRepository) ViajeService {
	return &viajeService{repo: repo, centroRepo: centroRepo}
}

func (s *viajeService) Crear(ctx context.Context, req dto.ViajeRequest) (*dto.ViajeResponse, error) {
	numero, centro := mayus(req.NumeroViaje), mayus(req.CentroCosto)
	if numero == "" || centro == "" {
		return nil, apierror.Invalid("numero de viaje y centro de costo son obligatorios")
	}

	existe, err := s.repo.Exists(ctx, numero, centro)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, duplicadoViaje(numero, centro)
	}

	v, comidas := viajeDesdeRequest(numero, centro, req)
	if err := s.repo.Create(ctx, v, comidas); err != nil {
		if errors.Is(err, apierror.ErrDuplicateKey) {
			return nil, duplicadoViaje(numero, centro)
		}
		return nil, err
	}
	return s.Obtener(ctx, numero, centro)
}

func (s *viajeService) Actualizar(ctx context.Context, numero, centro string, req dto.ViajeRequest) (*dto.ViajeResponse, error) {
	numero, centro = mayus(numero), mayus(centro)
	v, comidas := viajeDesdeRequest(numero, centro, req)
	if err := s.repo.Update(ctx, v, comidas); err != nil {
		return nil, viajeErr(err, numero, centro)
	}
	return s.Obtener(ctx, numero, centro)
}

func (s *viajeService) Eliminar(ctx context.Context, numero, centro string) error {
	numero, centro = mayus(numero), mayus(centro)
	return viajeErr(s.repo.Delete(ctx, numero, centro), numero, centro)
}

func (s *viajeService) Obtener(ctx context.Context, numero, centro string) (*dto.ViajeResponse, error) {
	numero, centro = mayus(numero), mayus(centro)
	v, err := s.repo.FindByKey(ctx, numero, centro)
	if err != nil {
		return nil, viajeErr(err, numero, centro)
	}
	return viajeToResponse(v), nil
}

func (s *viajeService) ObtenerUltimo(ctx context.Context, numero string) (*dto.ViajeResponse, error) {
	numero = mayus(numero)
	v, err := s.repo.FindLatestByNumero(ctx, numero)
	if err != nil {
		if errors.Is(err, apierror.ErrNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("viaje %s", numero))
		}
		return nil, err
	}
	return viajeToResponse(v), nil
}

// ListarCentros returns the cost centers of a trip with their casino and
// route; codes missing from the reference table show "Sin casino".
func (s *viajeService) ListarCentros(ctx context.Context, numero string) ([]dto.CentroViajeResponse, error) {
	numero = mayus(numero)
	codigos, err := s.repo.ListCentrosCosto(ctx, numero)
	if err != nil {
		return nil, err
	}
	if len(codigos) == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("viaje %s", numero))
	}

	maestros, err := s.centroRepo.FindByCodigos(ctx, codigos)
	if err != nil {
		return nil, err
	}
	porCodigo := make(map[string]dto.CentroViajeResponse, len(maestros))
	for _, m := range maestros {
		porCodigo[m.Codigo] = dto.CentroViajeResponse{Codigo: m.Codigo, Casino: m.Casino, Ruta: m.Ruta}
	}

	resp := make([]dto.CentroViajeResponse, len(codigos))
	for i, c := range codigos {
		if m, ok := porCodigo[c]; ok {
			resp[i] = m
			continue
		}
		resp[i] = dto.CentroViajeResponse{Codigo: c, Casino: sinCasino}
	}
	return resp, nil
}

func (s *viajeService) ListarUnicos(ctx context.Context) ([]dto.ViajeUnicoResponse, error) {
	rows, err := s.repo.ListUnicos(ctx, limiteViajesUnicos)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ViajeUnicoResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.ViajeUnicoResponse{
			NumeroViaje: r.NumeroViaje,
			Conductor:   r.Conductor,
			Fecha:       r.Fecha,
			Centros:     r.Centros,
		}
	}
	return resp, nil
}

func (s *viajeService) Buscar(ctx context.Context, q string) ([]dto.ViajeResumenResponse, error) {
	rows, err := s.repo.Buscar(ctx, mayus(q), limiteBusqueda)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ViajeResumenResponse, len(rows))
	for i, r := range rows {
		resp[i] = dto.ViajeResumenResponse{
			NumeroViaje:  r.NumeroViaje,
			CentroCosto:  r.CostoCodigo,
			Casino:       r.Casino,
			Fecha:        r.Fecha,
			Conductor:    r.Conductor,
			TotalComidas: r.TotalComidas,
		}
	}
	return resp, nil
}

func (s *viajeService) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	e, err := s.repo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EstadisticasResponse{
		TotalRegistros:    e.TotalRegistros,
		ViajesUnicos:      e.ViajesUnicos,
		ViajesMultiCentro: e.ViajesMultiCentro,
	}, nil
}

func (s *viajeService) ListarPatentes(ctx context.Context) ([]string, error) {
	return s.repo.ListPatentes(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func duplicadoViaje(numero, centro string) error {
	return apierror.Duplicate(fmt.Sprintf("el viaje %s ya tiene registrado el centro de costo %s", numero, centro))
}

// viajeErr names the key in not-found errors and passes everything else through.
func viajeErr(err error, numero, centro string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apierror.ErrNotFound) {
		return apierror.NotFound(fmt.Sprintf("viaje %s centro de costo %s", numero, centro))
	}
	return err
}
