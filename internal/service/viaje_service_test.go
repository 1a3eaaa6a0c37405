package service

import (
	"context"
	"testing"

	"aratrack/internal/apierror"
	"aratrack/internal/dto"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViajeService(t *testing.T) (ViajeService, repository.CentroCostoRepository) {
	db := newTestDB(t)
	centros := repository.NewCentroCostoRepository(db)
	return NewViajeService(repository.NewViajeRepository(db), centros), centros
}

func TestViajeService_CrearNormaliza(t *testing.T) {
	svc, _ := newViajeService(t)
	req := viajeReq(" v100 ", "cc1")
	req.CheckCongelado = true
	req.Guias = []string{"g1", "", "g3"}
	req.Comidas = []dto.ComidaRequest{
		{GuiaComida: "g1", Descripcion: "pollo", Kilo: dto.Decimal{Decimal: decimal.RequireFromString("10.5")}, Bultos: 2, Proveedor: "agro"},
		{},
	}

	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "V100", resp.NumeroViaje)
	assert.Equal(t, "CC1", resp.CentroCosto)
	assert.Equal(t, "SPENCE", resp.Casino)
	assert.Equal(t, "JUAN PEREZ", resp.Conductor)
	assert.Equal(t, model.MarcaCheck, resp.CheckCongelado)
	assert.Equal(t, "", resp.CheckAseo)
	assert.Len(t, resp.Guias, model.MaxGuias)
	assert.Equal(t, "G3", resp.Guias[2])
	require.Len(t, resp.Comidas, 1, "blank meal lines are dropped")
	assert.Equal(t, "POLLO", resp.Comidas[0].Descripcion)
}

func TestViajeService_CrearDuplicado(t *testing.T) {
	svc, _ := newViajeService(t)
	ctx := context.Background()

	_, err := svc.Crear(ctx, viajeReq("V100", "CC1"))
	require.NoError(t, err)

	_, err = svc.Crear(ctx, viajeReq("v100", "cc1"))
	assert.ErrorIs(t, err, apierror.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "V100")
	assert.Contains(t, err.Error(), "CC1")

	_, err = svc.Crear(ctx, viajeReq("V100", "CC2"))
	assert.NoError(t, err, "same trip with another cost center is allowed")
}

func TestViajeService_CrearSinClave(t *testing.T) {
	svc, _ := newViajeService(t)
	_, err := svc.Crear(context.Background(), viajeReq("  ", "CC1"))
	assert.ErrorIs(t, err, apierror.ErrValidation)
}

func TestViajeService_ActualizarYEliminar(t *testing.T) {
	svc, _ := newViajeService(t)
	ctx := context.Background()

	req := viajeReq("V200", "CC1")
	req.Comidas = []dto.ComidaRequest{{GuiaComida: "G1", Bultos: 1}}
	_, err := svc.Crear(ctx, req)
	require.NoError(t, err)

	upd := viajeReq("IGNORADO", "IGNORADO")
	upd.Conductor = "pedro soto"
	upd.Comidas = []dto.ComidaRequest{{GuiaComida: "G7", Bultos: 3}, {GuiaComida: "G8", Bultos: 1}}
	resp, err := svc.Actualizar(ctx, "v200", "cc1", upd)
	require.NoError(t, err)
	assert.Equal(t, "V200", resp.NumeroViaje)
	assert.Equal(t, "PEDRO SOTO", resp.Conductor)
	require.Len(t, resp.Comidas, 2)
	assert.Equal(t, "G7", resp.Comidas[0].GuiaComida)

	_, err = svc.Actualizar(ctx, "V999", "CC1", upd)
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	require.NoError(t, svc.Eliminar(ctx, "V200", "CC1"))
	_, err = svc.Obtener(ctx, "V200", "CC1")
	assert.ErrorIs(t, err, apierror.ErrNotFound)
	assert.ErrorIs(t, svc.Eliminar(ctx, "V200", "CC1"), apierror.ErrNotFound)
}

func TestViajeService_ListarCentros(t *testing.T) {
	svc, centros := newViajeService(t)
	ctx := context.Background()

	require.NoError(t, centros.Create(ctx, &model.CentroCosto{Codigo: "CC1", Casino: "SPENCE", Ruta: "NORTE"}))
	for _, c := range []string{"CC2", "CC1"} {
		_, err := svc.Crear(ctx, viajeReq("V100", c))
		require.NoError(t, err)
	}

	got, err := svc.ListarCentros(ctx, "v100")
	require.NoError(t, err)
	assert.Equal(t, []dto.CentroViajeResponse{
		{Codigo: "CC1", Casino: "SPENCE", Ruta: "NORTE"},
		{Codigo: "CC2", Casino: sinCasino},
	}, got)

	_, err = svc.ListarCentros(ctx, "V404")
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	ultimo, err := svc.ObtenerUltimo(ctx, "V100")
	require.NoError(t, err)
	assert.Equal(t, "CC1", ultimo.CentroCosto)

	_, err = svc.ObtenerUltimo(ctx, "V404")
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestViajeService_Consultas(t *testing.T) {
	svc, _ := newViajeService(t)
	ctx := context.Background()

	a := viajeReq("V1", "CC1")
	a.PatenteCamion = "ab1234"
	_, err := svc.Crear(ctx, a)
	require.NoError(t, err)
	_, err = svc.Crear(ctx, viajeReq("V1", "CC2"))
	require.NoError(t, err)
	_, err = svc.Crear(ctx, viajeReq("V2", "CC1"))
	require.NoError(t, err)

	unicos, err := svc.ListarUnicos(ctx)
	require.NoError(t, err)
	assert.Len(t, unicos, 2)

	res, err := svc.Buscar(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, res, 2)

	e, err := svc.Estadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.EstadisticasResponse{TotalRegistros: 3, ViajesUnicos: 2, ViajesMultiCentro: 1}, e)

	patentes, err := svc.ListarPatentes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB1234"}, patentes)
}
