package repository_test

import (
	"context"
	"testing"

	"aratrack/internal/apierror"
	"aratrack/internal/model"
	"aratrack/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroCostoRepo(t *testing.T) {
	repo := repository.NewCentroCostoRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.CentroCosto{Codigo: "CC2", Casino: "ESCONDIDA", Ruta: "R2"}))
	require.NoError(t, repo.Create(ctx, &model.CentroCosto{Codigo: "CC1", Casino: "SPENCE", Ruta: "R1"}))
	assert.ErrorIs(t, repo.Create(ctx, &model.CentroCosto{Codigo: "CC1", Casino: "OTRO"}), apierror.ErrDuplicateKey)

	c, err := repo.FindByCodigo(ctx, "CC1")
	require.NoError(t, err)
	assert.Equal(t, "SPENCE", c.Casino)

	_, err = repo.FindByCodigo(ctx, "CC9")
	assert.ErrorIs(t, err, apierror.ErrNotFound)

	varios, err := repo.FindByCodigos(ctx, []string{"CC2", "CC9", "CC1"})
	require.NoError(t, err)
	require.Len(t, varios, 2)
	assert.Equal(t, "CC1", varios[0].Codigo)

	vacio, err := repo.FindByCodigos(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, vacio)

	require.NoError(t, repo.Update(ctx, &model.CentroCosto{Codigo: "CC2", Casino: "ZALDIVAR", Ruta: "R9"}))
	todos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "ZALDIVAR", todos[1].Casino)

	assert.ErrorIs(t, repo.Update(ctx, &model.CentroCosto{Codigo: "CC9", Casino: "X"}), apierror.ErrNotFound)
}

func TestChoferRepo(t *testing.T) {
	repo := repository.NewChoferRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Chofer{Nombre: "JUAN PEREZ", RUT: "11.111.111-1", Celular: "+56911111111"}))
	require.NoError(t, repo.Create(ctx, &model.Chofer{Nombre: "ANA ROJAS", RUT: "22.222.222-2"}))

	assert.ErrorIs(t, repo.Create(ctx, &model.Chofer{Nombre: "JUAN PEREZ", RUT: "33.333.333-3"}), apierror.ErrDuplicateKey)
	assert.ErrorIs(t, repo.Create(ctx, &model.Chofer{Nombre: "OTRO", RUT: "22.222.222-2"}), apierror.ErrDuplicateKey)

	lista, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "ANA ROJAS", lista[0].Nombre)

	encontrados, err := repo.BuscarPorNombre(ctx, "per", 10)
	require.NoError(t, err)
	require.Len(t, encontrados, 1)
	assert.Equal(t, "11.111.111-1", encontrados[0].RUT)

	c, err := repo.FindByRUT(ctx, "22.222.222-2")
	require.NoError(t, err)
	assert.Equal(t, "ANA ROJAS", c.Nombre)

	require.NoError(t, repo.Update(ctx, &model.Chofer{Nombre: "ANA ROJAS", RUT: "44.444.444-4", Celular: "123"}))
	c, err = repo.FindByNombre(ctx, "ANA ROJAS")
	require.NoError(t, err)
	assert.Equal(t, "44.444.444-4", c.RUT)

	assert.ErrorIs(t, repo.Update(ctx, &model.Chofer{Nombre: "NADIE", RUT: "1"}), apierror.ErrNotFound)
}

func TestAdministrativoRepo(t *testing.T) {
	repo := repository.NewAdministrativoRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Administrativo{Nombre: "MARIA LOPEZ"}))
	require.NoError(t, repo.Create(ctx, &model.Administrativo{Nombre: "CARLOS DIAZ"}))
	assert.ErrorIs(t, repo.Create(ctx, &model.Administrativo{Nombre: "maria lopez"}), apierror.ErrDuplicateKey)

	existe, err := repo.ExisteNombre(ctx, "Maria Lopez")
	require.NoError(t, err)
	assert.True(t, existe)

	nombres, err := repo.ListNombres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CARLOS DIAZ", "MARIA LOPEZ"}, nombres)

	encontrados, err := repo.BuscarPorNombre(ctx, "lop", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"MARIA LOPEZ"}, encontrados)

	require.NoError(t, repo.Renombrar(ctx, "maria lopez", "MARIA JOSE LOPEZ"))
	nombres, err = repo.ListNombres(ctx)
	require.NoError(t, err)
	assert.Contains(t, nombres, "MARIA JOSE LOPEZ")

	assert.ErrorIs(t, repo.Renombrar(ctx, "NADIE", "ALGUIEN"), apierror.ErrNotFound)
}

func TestAdministrativoRepo_NombresConTilde(t *testing.T) {
	repo := repository.NewAdministrativoRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Administrativo{Nombre: "MARÍA PEÑA"}))

	existe, err := repo.ExisteNombre(ctx, "maría peña")
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = repo.ExisteNombre(ctx, "MARIA PENA")
	require.NoError(t, err)
	assert.False(t, existe)

	encontrados, err := repo.BuscarPorNombre(ctx, "peñ", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"MARÍA PEÑA"}, encontrados)

	require.NoError(t, repo.Renombrar(ctx, "maría peña", "MARÍA NÚÑEZ PEÑA"))
	nombres, err := repo.ListNombres(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MARÍA NÚÑEZ PEÑA"}, nombres)
}

func TestUsuarioRepo(t *testing.T) {
	repo := repository.NewUsuarioRepository(newTestDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	u := &model.Usuario{Username: "admin", PasswordHash: "hash", Activo: true}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	assert.ErrorIs(t, repo.Create(ctx, &model.Usuario{Username: "admin", PasswordHash: "x"}), apierror.ErrDuplicateKey)

	got, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got.Activo = false
	require.NoError(t, repo.Update(ctx, got))
	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, byID.Activo)

	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), apierror.ErrNotFound)
	_, err = repo.FindByUsername(ctx, "admin")
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}
