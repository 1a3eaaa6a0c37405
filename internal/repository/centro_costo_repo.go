package repository

import (
	"context"

	"aratrack/internal/apierror"
	"aratrack/internal/model"

	"gorm.io/gorm"
)

type CentroCostoRepository interface {
	Create(ctx context.Context, c *model.CentroCosto) error
	FindByCodigo(ctx context.Context, codigo string) (*model.CentroCosto, error)
	FindByCodigos(ctx context.Context, codigos []string) ([]model.CentroCosto, error)
	List(ctx context.Context) ([]model.CentroCosto, error)
	Update(ctx context.Context, c *model.CentroCosto) error
}

type centroCostoRepo struct{ db *gorm.DB }

func NewCentroCostoRepository(db *gorm.DB) CentroCostoRepository {
	return &centroCostoRepo{db: db}
}

func (r *centroCostoRepo) Create(ctx context.Context, c *model.CentroCosto) error {
	return storeErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *centroCostoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.CentroCosto, error) {
	var c model.CentroCosto
	if err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&c).Error; err != nil {
		return nil, storeErr(err)
	}
	return &c, nil
}

func (r *centroCostoRepo) FindByCodigos(ctx context.Context, codigos []string) ([]model.CentroCosto, error) {
	var centros []model.CentroCosto
	if len(codigos) == 0 {
		return centros, nil
	}
	err := r.db.WithContext(ctx).Where("codigo IN ?", codigos).Order("codigo ASC").Find(&centros).Error
	return centros, storeErr(err)
}

func (r *centroCostoRepo) List(ctx context.Context) ([]model.CentroCosto, error) {
	var centros []model.CentroCosto
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&centros).Error
	return centros, storeErr(err)
}

// Update changes casino and ruta of the row with c.Codigo.
func (r *centroCostoRepo) Update(ctx context.Context, c *model.CentroCosto) error {
	res := r.db.WithContext(ctx).Model(&model.CentroCosto{}).
		Where("codigo = ?", c.Codigo).
		Updates(map[string]interface{}{"casino": c.Casino, "ruta": c.Ruta})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}
