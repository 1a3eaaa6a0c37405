package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/infra"
	"aratrack/internal/repository"

	"github.com/rs/zerolog/log"
)

// PlanillaMailer sends a rendered dispatch sheet by email.
type PlanillaMailer interface {
	EnviarPlanilla(to, subject, body, pdfPath string) error
}

// DespachoService renders dispatch control sheets to PDF files.
type DespachoService interface {
	// GenerarPlanilla renders the single sheet of (numero, centro).
	GenerarPlanilla(ctx context.Context, numero, centro string) (*ArchivoGenerado, error)
	// GenerarViaje renders one page per cost center of the trip, ascending.
	GenerarViaje(ctx context.Context, numero string) (*ArchivoGenerado, error)
	// EnviarViaje renders the whole trip and mails it. An empty destinatario
	// falls back to the configured dispatch address.
	EnviarViaje(ctx context.Context, numero, destinatario string) (*ArchivoGenerado, error)
	// RutaArchivo resolves a generated file name inside the PDF storage dir.
	RutaArchivo(nombre string) (string, error)
}

type despachoService struct {
	repo    repository.ViajeRepository
	mailer  PlanillaMailer
	dir     string
	destino string
	now     func() time.Time
}

func NewDespachoService(repo repository.ViajeRepository, mailer PlanillaMailer, dir, destino string) DespachoService {
	return &despachoService{repo: repo, mailer: mailer, dir: dir, destino: destino, now: time.Now}
}

func (s *despachoService) GenerarPlanilla(ctx context.Context, numero, centro string) (*ArchivoGenerado, error) {
	numero, centro = mayus(numero), mayus(centro)
	v, err := s.repo.FindByKey(ctx, numero, centro)
	if err != nil {
		return nil, viajeErr(err, numero, centro)
	}

	doc := infra.NuevoDocumentoDespacho()
	doc.AgregarPlanilla(infra.NuevaPlanilla(v, v.Comidas))

	archivo := fmt.Sprintf("viaje_%s_%s_%s.pdf", seguro(numero), seguro(centro), s.now().Format("20060102_150405"))
	return s.guardar(doc, archivo, numero)
}

func (s *despachoService) GenerarViaje(ctx context.Context, numero string) (*ArchivoGenerado, error) {
	numero = mayus(numero)
	centros, err := s.repo.ListCentrosCosto(ctx, numero)
	if err != nil {
		return nil, err
	}
	if len(centros) == 0 {
		return nil, apierror.NotFound(fmt.Sprintf("viaje %s", numero))
	}

	doc := infra.NuevoDocumentoDespacho()
	for _, centro := range centros {
		v, err := s.repo.FindByKey(ctx, numero, centro)
		if err != nil {
			return nil, viajeErr(err, numero, centro)
		}
		doc.AgregarPlanilla(infra.NuevaPlanilla(v, v.Comidas))
	}

	archivo := fmt.Sprintf("viaje_%s_completo_%s.pdf", seguro(numero), s.now().Format("20060102_150405"))
	return s.guardar(doc, archivo, numero)
}

func (s *despachoService) EnviarViaje(ctx context.Context, numero, destinatario string) (*ArchivoGenerado, error) {
	to := strings.TrimSpace(destinatario)
	if to == "" {
		to = s.destino
	}
	if to == "" {
		return nil, apierror.Invalid("no hay destinatario para el envio")
	}

	archivo, err := s.GenerarViaje(ctx, numero)
	if err != nil {
		return nil, err
	}

	asunto := fmt.Sprintf("Planilla control despacho viaje %s", mayus(numero))
	cuerpo := fmt.Sprintf("Se adjunta la planilla de control de despacho del viaje %s (%d paginas).", mayus(numero), archivo.Paginas)
	if err := s.mailer.EnviarPlanilla(to, asunto, cuerpo, archivo.Path); err != nil {
		switch {
		case errors.Is(err, infra.ErrSMTPNoConfigurado):
			return nil, apierror.Invalid("el envio de correo no esta configurado")
		case errors.Is(err, infra.ErrCircuitOpen):
			return nil, apierror.Unavailable("correo suspendido temporalmente, reintente mas tarde")
		}
		log.Error().Err(err).Str("numero_viaje", mayus(numero)).Msg("envio de planilla fallido")
		return nil, apierror.Unavailable("no se pudo enviar el correo")
	}

	log.Info().Str("numero_viaje", mayus(numero)).Str("destinatario", to).Msg("planilla enviada")
	return archivo, nil
}

func (s *despachoService) RutaArchivo(nombre string) (string, error) {
	base := filepath.Base(nombre)
	if base != nombre || !strings.HasSuffix(strings.ToLower(base), ".pdf") {
		return "", apierror.NotFound("archivo")
	}
	path := filepath.Join(s.dir, base)
	if _, err := os.Stat(path); err != nil {
		return "", apierror.NotFound("archivo")
	}
	return path, nil
}

func (s *despachoService) guardar(doc *infra.DocumentoDespacho, archivo, numero string) (*ArchivoGenerado, error) {
	paginas := doc.Paginas()
	path := filepath.Join(s.dir, archivo)
	if err := doc.Guardar(path); err != nil {
		return nil, err
	}
	log.Info().Str("numero_viaje", numero).Int("paginas", paginas).Str("archivo", archivo).Msg("planilla generada")
	return &ArchivoGenerado{Path: path, Nombre: archivo, Paginas: paginas}, nil
}

// seguro keeps a key usable as part of a file name.
func seguro(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
