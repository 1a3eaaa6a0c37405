package repository

import (
	"context"
	"strings"

	"aratrack/internal/apierror"
	"aratrack/internal/model"

	"gorm.io/gorm"
)

type ChoferRepository interface {
	Create(ctx context.Context, c *model.Chofer) error
	List(ctx context.Context) ([]model.Chofer, error)
	BuscarPorNombre(ctx context.Context, q string, limit int) ([]model.Chofer, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Chofer, error)
	FindByRUT(ctx context.Context, rut string) (*model.Chofer, error)
	// Update changes RUT and celular of the driver named c.Nombre.
	Update(ctx context.Context, c *model.Chofer) error
}

type choferRepo struct{ db *gorm.DB }

func NewChoferRepository(db *gorm.DB) ChoferRepository { return &choferRepo{db: db} }

func (r *choferRepo) Create(ctx context.Context, c *model.Chofer) error {
	return storeErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *choferRepo) List(ctx context.Context) ([]model.Chofer, error) {
	var choferes []model.Chofer
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&choferes).Error
	return choferes, storeErr(err)
}

func (r *choferRepo) BuscarPorNombre(ctx context.Context, q string, limit int) ([]model.Chofer, error) {
	var choferes []model.Chofer
	err := r.db.WithContext(ctx).
		Where("UPPER(nombre) LIKE ?", "%"+strings.ToUpper(q)+"%").
		Order("nombre ASC").
		Limit(limit).
		Find(&choferes).Error
	return choferes, storeErr(err)
}

func (r *choferRepo) FindByNombre(ctx context.Context, nombre string) (*model.Chofer, error) {
	var c model.Chofer
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error; err != nil {
		return nil, storeErr(err)
	}
	return &c, nil
}

func (r *choferRepo) FindByRUT(ctx context.Context, rut string) (*model.Chofer, error) {
	var c model.Chofer
	if err := r.db.WithContext(ctx).Where("rut = ?", rut).First(&c).Error; err != nil {
		return nil, storeErr(err)
	}
	return &c, nil
}

func (r *choferRepo) Update(ctx context.Context, c *model.Chofer) error {
	res := r.db.WithContext(ctx).Model(&model.Chofer{}).
		Where("nombre = ?", c.Nombre).
		Updates(map[string]interface{}{"rut": c.RUT, "celular": c.Celular})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}
