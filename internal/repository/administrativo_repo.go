package repository

import (
	"context"
	"strings"

	"aratrack/internal/apierror"
	"aratrack/internal/model"

	"gorm.io/gorm"
)

type AdministrativoRepository interface {
	Create(ctx context.Context, a *model.Administrativo) error
	// ExisteNombre and Renombrar match names case-insensitively. Stored names
	// are upper-case, so the argument is folded in Go and compared as is.
	ExisteNombre(ctx context.Context, nombre string) (bool, error)
	ListNombres(ctx context.Context) ([]string, error)
	BuscarPorNombre(ctx context.Context, q string, limit int) ([]string, error)
	Renombrar(ctx context.Context, actual, nuevo string) error
}

type administrativoRepo struct{ db *gorm.DB }

func NewAdministrativoRepository(db *gorm.DB) AdministrativoRepository {
	return &administrativoRepo{db: db}
}

func (r *administrativoRepo) Create(ctx context.Context, a *model.Administrativo) error {
	return storeErr(r.db.WithContext(ctx).Create(a).Error)
}

func (r *administrativoRepo) ExisteNombre(ctx context.Context, nombre string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Administrativo{}).
		Where("nombre = ?", plegar(nombre)).
		Count(&n).Error
	return n > 0, storeErr(err)
}

func (r *administrativoRepo) ListNombres(ctx context.Context) ([]string, error) {
	var nombres []string
	err := r.db.WithContext(ctx).Model(&model.Administrativo{}).
		Order("nombre ASC").
		Pluck("nombre", &nombres).Error
	return nombres, storeErr(err)
}

func (r *administrativoRepo) BuscarPorNombre(ctx context.Context, q string, limit int) ([]string, error) {
	var nombres []string
	err := r.db.WithContext(ctx).Model(&model.Administrativo{}).
		Where("UPPER(nombre) LIKE ?", "%"+strings.ToUpper(q)+"%").
		Order("nombre ASC").
		Limit(limit).
		Pluck("nombre", &nombres).Error
	return nombres, storeErr(err)
}

func (r *administrativoRepo) Renombrar(ctx context.Context, actual, nuevo string) error {
	res := r.db.WithContext(ctx).Model(&model.Administrativo{}).
		Where("nombre = ?", plegar(actual)).
		Update("nombre", nuevo)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}

// plegar folds with Go's Unicode tables. SQLite's LOWER/UPPER only map ASCII,
// which would miss names like PEÑA or NÚÑEZ.
func plegar(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }
