package repository_test

import (
	"context"
	"testing"

	"aratrack/internal/apierror"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viaje(numero, centro string) *model.Viaje {
	return &model.Viaje{
		NumeroViaje:   numero,
		CostoCodigo:   centro,
		Casino:        "CASINO " + centro,
		Fecha:         "2024-03-10",
		Conductor:     "JUAN PEREZ",
		PatenteCamion: "AB1234",
		Pallets:       3,
	}
}

func comida(guia string, kilo string, bultos int) model.ComidaPreparada {
	return model.ComidaPreparada{
		GuiaComida:  guia,
		Descripcion: "POLLO",
		Kilo:        decimal.RequireFromString(kilo),
		Bultos:      bultos,
		Proveedor:   "AGROSUPER",
	}
}

func TestViajeRepo_CreateAndFindByKey(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	v := viaje("V100", "CC1")
	require.NoError(t, repo.Create(ctx, v, []model.ComidaPreparada{comida("G1", "12.5", 2), comida("G2", "3", 1)}))
	assert.NotZero(t, v.ID)

	got, err := repo.FindByKey(ctx, "V100", "CC1")
	require.NoError(t, err)
	assert.Equal(t, "CASINO CC1", got.Casino)
	assert.Equal(t, 3, got.Pallets)
	require.Len(t, got.Comidas, 2)
	assert.Equal(t, "G1", got.Comidas[0].GuiaComida)
	assert.True(t, got.Comidas[0].Kilo.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "V100", got.Comidas[1].NumeroViaje)
	assert.Equal(t, "CC1", got.Comidas[1].NumeroCentroCosto)
}

func TestViajeRepo_CreateDuplicateKey(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, viaje("V100", "CC1"), nil))
	err := repo.Create(ctx, viaje("V100", "CC1"), []model.ComidaPreparada{comida("G1", "1", 1)})
	assert.ErrorIs(t, err, apierror.ErrDuplicateKey)

	got, err := repo.FindByKey(ctx, "V100", "CC1")
	require.NoError(t, err)
	assert.Empty(t, got.Comidas, "failed create must not leave meal lines behind")
}

func TestViajeRepo_SameNumeroDifferentCentros(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, viaje("V100", "CC2"), nil))
	require.NoError(t, repo.Create(ctx, viaje("V100", "CC1"), nil))

	centros, err := repo.ListCentrosCosto(ctx, "V100")
	require.NoError(t, err)
	assert.Equal(t, []string{"CC1", "CC2"}, centros)

	latest, err := repo.FindLatestByNumero(ctx, "V100")
	require.NoError(t, err)
	assert.Equal(t, "CC1", latest.CostoCodigo)

	exists, err := repo.Exists(ctx, "V100", "CC2")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, "V100", "CC3")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestViajeRepo_UpdateReplacesComidas(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	v := viaje("V200", "CC1")
	require.NoError(t, repo.Create(ctx, v, []model.ComidaPreparada{comida("G1", "1", 1), comida("G2", "2", 2)}))
	creado := v.ID

	upd := viaje("V200", "CC1")
	upd.Conductor = "PEDRO SOTO"
	require.NoError(t, repo.Update(ctx, upd, []model.ComidaPreparada{comida("G9", "9", 9)}))
	assert.Equal(t, creado, upd.ID)

	got, err := repo.FindByKey(ctx, "V200", "CC1")
	require.NoError(t, err)
	assert.Equal(t, "PEDRO SOTO", got.Conductor)
	require.Len(t, got.Comidas, 1)
	assert.Equal(t, "G9", got.Comidas[0].GuiaComida)
}

func TestViajeRepo_UpdateMissing(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	err := repo.Update(context.Background(), viaje("NOPE", "CC1"), nil)
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestViajeRepo_ReplaceComidas(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, viaje("V300", "CC1"), []model.ComidaPreparada{comida("G1", "1", 1)}))
	require.NoError(t, repo.ReplaceComidas(ctx, "V300", "CC1", nil))

	got, err := repo.FindByKey(ctx, "V300", "CC1")
	require.NoError(t, err)
	assert.Empty(t, got.Comidas)

	err = repo.ReplaceComidas(ctx, "V300", "CC9", []model.ComidaPreparada{comida("G1", "1", 1)})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestViajeRepo_DeleteRemovesOnlyThatCentro(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, viaje("V400", "CC1"), []model.ComidaPreparada{comida("G1", "1", 1)}))
	require.NoError(t, repo.Create(ctx, viaje("V400", "CC2"), []model.ComidaPreparada{comida("G2", "2", 2)}))

	require.NoError(t, repo.Delete(ctx, "V400", "CC1"))

	_, err := repo.FindByKey(ctx, "V400", "CC1")
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	otro, err := repo.FindByKey(ctx, "V400", "CC2")
	require.NoError(t, err)
	assert.Len(t, otro.Comidas, 1)

	assert.ErrorIs(t, repo.Delete(ctx, "V400", "CC1"), apierror.ErrNotFound)
}

func TestViajeRepo_ListadosYEstadisticas(t *testing.T) {
	repo := repository.NewViajeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, viaje("V1", "CC1"), []model.ComidaPreparada{comida("G1", "1", 1)}))
	require.NoError(t, repo.Create(ctx, viaje("V1", "CC2"), nil))
	v2 := viaje("V2", "CC1")
	v2.PatenteCamion = "ZZ9999"
	require.NoError(t, repo.Create(ctx, v2, nil))
	v3 := viaje("V3", "CC3")
	v3.PatenteCamion = ""
	require.NoError(t, repo.Create(ctx, v3, nil))

	unicos, err := repo.ListUnicos(ctx, 100)
	require.NoError(t, err)
	require.Len(t, unicos, 3)
	assert.Equal(t, "V3", unicos[0].NumeroViaje)
	for _, u := range unicos {
		if u.NumeroViaje == "V1" {
			assert.Equal(t, 2, u.Centros)
		}
	}

	res, err := repo.Buscar(ctx, "V1", 100)
	require.NoError(t, err)
	require.Len(t, res, 2)
	for _, r := range res {
		if r.CostoCodigo == "CC1" {
			assert.Equal(t, 1, r.TotalComidas)
		}
	}

	e, err := repo.Estadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), e.TotalRegistros)
	assert.Equal(t, int64(3), e.ViajesUnicos)
	assert.Equal(t, int64(1), e.ViajesMultiCentro)

	patentes, err := repo.ListPatentes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AB1234", "ZZ9999"}, patentes)
}
