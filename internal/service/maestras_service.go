package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/model"
	"aratrack/internal/repository"
)

const limiteSugerencias = 10

// MaestrasService manages the reference lists used to fill a dispatch form:
// cost centers, drivers and administrative staff.
type MaestrasService interface {
	CrearCentroCosto(ctx context.Context, req dto.CentroCostoRequest) (*dto.CentroCostoResponse, error)
	ObtenerCentroCosto(ctx context.Context, codigo string) (*dto.CentroCostoResponse, error)
	ListarCentrosCosto(ctx context.Context) ([]dto.CentroCostoResponse, error)
	ActualizarCentroCosto(ctx context.Context, codigo string, req dto.ActualizarCentroCostoRequest) (*dto.CentroCostoResponse, error)

	CrearChofer(ctx context.Context, req dto.ChoferRequest) (*dto.ChoferResponse, error)
	ListarChoferes(ctx context.Context, nombre string) ([]dto.ChoferResponse, error)
	ActualizarChofer(ctx context.Context, nombre string, req dto.ActualizarChoferRequest) (*dto.ChoferResponse, error)

	CrearAdministrativo(ctx context.Context, req dto.AdministrativoRequest) (string, error)
	ListarAdministrativos(ctx context.Context, nombre string) ([]string, error)
	RenombrarAdministrativo(ctx context.Context, actual string, req dto.RenombrarAdministrativoRequest) (string, error)
}

type maestrasService struct {
	centros  repository.CentroCostoRepository
	choferes repository.ChoferRepository
	admins   repository.AdministrativoRepository
}

func NewMaestrasService(
	centros repository.CentroCostoRepository,
	choferes repository.ChoferRepository,
	admins repository.AdministrativoRepository,
) MaestrasService {
	return &maestrasService{centros: centros, choferes: choferes, admins: admins}
}

// ── Centros de costo ─────────────────────────────────────────────────────────

func (s *maestrasService) CrearCentroCosto(ctx context.Context, req dto.CentroCostoRequest) (*dto.CentroCostoResponse, error) {
	c := &model.CentroCosto{Codigo: mayus(req.Codigo), Casino: mayus(req.Casino), Ruta: mayus(req.Ruta)}
	if c.Codigo == "" || c.Casino == "" {
		return nil, apierror.Invalid("codigo y casino son obligatorios")
	}
	if _, err := s.centros.FindByCodigo(ctx, c.Codigo); err == nil {
		return nil, duplicadoCentro(c.Codigo)
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}
	if err := s.centros.Create(ctx, c); err != nil {
		if errors.Is(err, apierror.ErrDuplicateKey) {
			return nil, duplicadoCentro(c.Codigo)
		}
		return nil, err
	}
	return centroToResponse(c), nil
}

func (s *maestrasService) ObtenerCentroCosto(ctx context.Context, codigo string) (*dto.CentroCostoResponse, error) {
	codigo = mayus(codigo)
	c, err := s.centros.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, centroErr(err, codigo)
	}
	return centroToResponse(c), nil
}

func (s *maestrasService) ListarCentrosCosto(ctx context.Context) ([]dto.CentroCostoResponse, error) {
	centros, err := s.centros.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CentroCostoResponse, len(centros))
	for i := range centros {
		resp[i] = *centroToResponse(&centros[i])
	}
	return resp, nil
}

func (s *maestrasService) ActualizarCentroCosto(ctx context.Context, codigo string, req dto.ActualizarCentroCostoRequest) (*dto.CentroCostoResponse, error) {
	c := &model.CentroCosto{Codigo: mayus(codigo), Casino: mayus(req.Casino), Ruta: mayus(req.Ruta)}
	if err := s.centros.Update(ctx, c); err != nil {
		return nil, centroErr(err, c.Codigo)
	}
	return centroToResponse(c), nil
}

// ── Choferes ─────────────────────────────────────────────────────────────────

func (s *maestrasService) CrearChofer(ctx context.Context, req dto.ChoferRequest) (*dto.ChoferResponse, error) {
	c := &model.Chofer{Nombre: mayus(req.Nombre), RUT: mayus(req.RUT), Celular: strings.TrimSpace(req.Celular)}
	if c.Nombre == "" || c.RUT == "" {
		return nil, apierror.Invalid("nombre y RUT son obligatorios")
	}
	if _, err := s.choferes.FindByNombre(ctx, c.Nombre); err == nil {
		return nil, apierror.Duplicate(fmt.Sprintf("el chofer %s ya existe", c.Nombre))
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}
	if _, err := s.choferes.FindByRUT(ctx, c.RUT); err == nil {
		return nil, apierror.Duplicate(fmt.Sprintf("el RUT %s ya esta registrado", c.RUT))
	} else if !errors.Is(err, apierror.ErrNotFound) {
		return nil, err
	}
	if err := s.choferes.Create(ctx, c); err != nil {
		if errors.Is(err, apierror.ErrDuplicateKey) {
			return nil, apierror.Duplicate(fmt.Sprintf("el chofer %s o el RUT %s ya existe", c.Nombre, c.RUT))
		}
		return nil, err
	}
	return choferToResponse(c), nil
}

// ListarChoferes returns every driver, or up to ten partial matches when
// nombre is set.
func (s *maestrasService) ListarChoferes(ctx context.Context, nombre string) ([]dto.ChoferResponse, error) {
	var (
		choferes []model.Chofer
		err      error
	)
	if q := strings.TrimSpace(nombre); q != "" {
		choferes, err = s.choferes.BuscarPorNombre(ctx, q, limiteSugerencias)
	} else {
		choferes, err = s.choferes.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChoferResponse, len(choferes))
	for i := range choferes {
		resp[i] = *choferToResponse(&choferes[i])
	}
	return resp, nil
}

func (s *maestrasService) ActualizarChofer(ctx context.Context, nombre string, req dto.ActualizarChoferRequest) (*dto.ChoferResponse, error) {
	c := &model.Chofer{Nombre: mayus(nombre), RUT: mayus(req.RUT), Celular: strings.TrimSpace(req.Celular)}
	if err := s.choferes.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, apierror.ErrNotFound):
			return nil, apierror.NotFound(fmt.Sprintf("chofer %s", c.Nombre))
		case errors.Is(err, apierror.ErrDuplicateKey):
			return nil, apierror.Duplicate(fmt.Sprintf("el RUT %s ya esta registrado", c.RUT))
		}
		return nil, err
	}
	return choferToResponse(c), nil
}

// ── Administrativos ──────────────────────────────────────────────────────────

func (s *maestrasService) CrearAdministrativo(ctx context.Context, req dto.AdministrativoRequest) (string, error) {
	nombre := mayus(req.Nombre)
	if nombre == "" {
		return "", apierror.Invalid("nombre es obligatorio")
	}
	existe, err := s.admins.ExisteNombre(ctx, nombre)
	if err != nil {
		return "", err
	}
	if existe {
		return "", duplicadoAdmin(nombre)
	}
	if err := s.admins.Create(ctx, &model.Administrativo{Nombre: nombre}); err != nil {
		if errors.Is(err, apierror.ErrDuplicateKey) {
			return "", duplicadoAdmin(nombre)
		}
		return "", err
	}
	return nombre, nil
}

func (s *maestrasService) ListarAdministrativos(ctx context.Context, nombre string) ([]string, error) {
	if q := strings.TrimSpace(nombre); q != "" {
		return s.admins.BuscarPorNombre(ctx, q, limiteSugerencias)
	}
	return s.admins.ListNombres(ctx)
}

func (s *maestrasService) RenombrarAdministrativo(ctx context.Context, actual string, req dto.RenombrarAdministrativoRequest) (string, error) {
	actual, nuevo := mayus(actual), mayus(req.NuevoNombre)
	if nuevo == "" {
		return "", apierror.Invalid("el nuevo nombre es obligatorio")
	}
	if err := s.admins.Renombrar(ctx, actual, nuevo); err != nil {
		switch {
		case errors.Is(err, apierror.ErrNotFound):
			return "", apierror.NotFound(fmt.Sprintf("administrativo %s", actual))
		case errors.Is(err, apierror.ErrDuplicateKey):
			return "", duplicadoAdmin(nuevo)
		}
		return "", err
	}
	return nuevo, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func duplicadoCentro(codigo string) error {
	return apierror.Duplicate(fmt.Sprintf("el centro de costo %s ya existe", codigo))
}

func duplicadoAdmin(nombre string) error {
	return apierror.Duplicate(fmt.Sprintf("el administrativo %s ya existe", nombre))
}

func centroErr(err error, codigo string) error {
	if errors.Is(err, apierror.ErrNotFound) {
		return apierror.NotFound(fmt.Sprintf("centro de costo %s", codigo))
	}
	return err
}

func centroToResponse(c *model.CentroCosto) *dto.CentroCostoResponse {
	return &dto.CentroCostoResponse{Codigo: c.Codigo, Casino: c.Casino, Ruta: c.Ruta}
}

func choferToResponse(c *model.Chofer) *dto.ChoferResponse {
	return &dto.ChoferResponse{Nombre: c.Nombre, RUT: c.RUT, Celular: c.Celular}
}
