package repository

import (
	"context"
	"time"

	"aratrack/internal/apierror"
	"aratrack/internal/model"

	"gorm.io/gorm"
)

type RendicionRepository interface {
	Create(ctx context.Context, r *model.Rendicion) error
	// List returns newest first; an empty estados slice means every estado.
	List(ctx context.Context, estados []string) ([]model.Rendicion, error)
	UpdateEstado(ctx context.Context, nroViaje, estado string, at time.Time) error
}

type rendicionRepo struct{ db *gorm.DB }

func NewRendicionRepository(db *gorm.DB) RendicionRepository { return &rendicionRepo{db: db} }

func (r *rendicionRepo) Create(ctx context.Context, rend *model.Rendicion) error {
	return storeErr(r.db.WithContext(ctx).Create(rend).Error)
}

func (r *rendicionRepo) List(ctx context.Context, estados []string) ([]model.Rendicion, error) {
	q := r.db.WithContext(ctx).Order("fecha_creacion DESC").Order("id DESC")
	if len(estados) > 0 {
		q = q.Where("estado_rendicion IN ?", estados)
	}
	var rows []model.Rendicion
	err := q.Find(&rows).Error
	return rows, storeErr(err)
}

func (r *rendicionRepo) UpdateEstado(ctx context.Context, nroViaje, estado string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.Rendicion{}).
		Where("nro_viaje = ?", nroViaje).
		Updates(map[string]interface{}{"estado_rendicion": estado, "fecha_modificacion": at})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.ErrNotFound
	}
	return nil
}
