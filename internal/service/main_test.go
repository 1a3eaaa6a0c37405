package service

import (
	"path/filepath"
	"testing"

	"aratrack/internal/dto"
	"aratrack/internal/infra"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	bcryptCost = bcrypt.MinCost
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(infra.DatabaseOptions{
		Driver: infra.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "aratrack.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func viajeReq(numero, centro string) dto.ViajeRequest {
	return dto.ViajeRequest{
		NumeroViaje: numero,
		CentroCosto: centro,
		Casino:      "spence",
		Fecha:       "2024-03-10",
		Conductor:   " juan perez ",
		Pallets:     2,
	}
}
