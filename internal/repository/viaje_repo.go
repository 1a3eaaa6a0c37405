package repository

import (
	"context"

	"aratrack/internal/apierror"
	"aratrack/internal/model"

	"gorm.io/gorm"
)

// ViajeUnico summarises every row that shares one trip number.
type ViajeUnico struct {
	NumeroViaje string `gorm:"column:numero_viaje"`
	Conductor   string `gorm:"column:conductor"`
	Fecha       string `gorm:"column:fecha"`
	Centros     int    `gorm:"column:centros"`
}

// ViajeResumen is one (trip, cost center) row with its meal-line count.
type ViajeResumen struct {
	NumeroViaje  string `gorm:"column:numero_viaje"`
	CostoCodigo  string `gorm:"column:costo_codigo"`
	Casino       string `gorm:"column:casino"`
	Fecha        string `gorm:"column:fecha"`
	Conductor    string `gorm:"column:conductor"`
	TotalComidas int    `gorm:"column:total_comidas"`
}

type ViajeEstadisticas struct {
	TotalRegistros    int64
	ViajesUnicos      int64
	ViajesMultiCentro int64
}

type ViajeRepository interface {
	// Create inserts the trip row and its meal lines in one transaction.
	Create(ctx context.Context, v *model.Viaje, comidas []model.ComidaPreparada) error
	Exists(ctx context.Context, numero, centro string) (bool, error)
	// Update overwrites the row identified by (NumeroViaje, CostoCodigo) and
	// replaces its meal lines in the same transaction.
	Update(ctx context.Context, v *model.Viaje, comidas []model.ComidaPreparada) error
	ReplaceComidas(ctx context.Context, numero, centro string, comidas []model.ComidaPreparada) error
	FindByKey(ctx context.Context, numero, centro string) (*model.Viaje, error)
	FindLatestByNumero(ctx context.Context, numero string) (*model.Viaje, error)
	ListCentrosCosto(ctx context.Context, numero string) ([]string, error)
	Delete(ctx context.Context, numero, centro string) error

	ListUnicos(ctx context.Context, limit int) ([]ViajeUnico, error)
	Buscar(ctx context.Context, q string, limit int) ([]ViajeResumen, error)
	Estadisticas(ctx context.Context) (*ViajeEstadisticas, error)
	ListPatentes(ctx context.Context) ([]string, error)
}

type viajeRepo struct{ db *gorm.DB }

func NewViajeRepository(db *gorm.DB) ViajeRepository { return &viajeRepo{db: db} }

const whereClave = "numero_viaje = ? AND costo_codigo = ?"

func (r *viajeRepo) Create(ctx context.Context, v *model.Viaje, comidas []model.ComidaPreparada) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		return insertComidas(tx, v.NumeroViaje, v.CostoCodigo, comidas)
	})
	return storeErr(err)
}

func (r *viajeRepo) Exists(ctx context.Context, numero, centro string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Viaje{}).Where(whereClave, numero, centro).Count(&n).Error
	return n > 0, storeErr(err)
}

func (r *viajeRepo) Update(ctx context.Context, v *model.Viaje, comidas []model.ComidaPreparada) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var actual model.Viaje
		if err := tx.Select("id", "created_at").Where(whereClave, v.NumeroViaje, v.CostoCodigo).First(&actual).Error; err != nil {
			return err
		}
		v.ID = actual.ID
		v.CreatedAt = actual.CreatedAt
		if err := tx.Save(v).Error; err != nil {
			return err
		}
		return replaceComidas(tx, v.NumeroViaje, v.CostoCodigo, comidas)
	})
	return storeErr(err)
}

func (r *viajeRepo) ReplaceComidas(ctx context.Context, numero, centro string, comidas []model.ComidaPreparada) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Viaje{}).Where(whereClave, numero, centro).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apierror.ErrNotFound
		}
		return replaceComidas(tx, numero, centro, comidas)
	})
	return storeErr(err)
}

func replaceComidas(tx *gorm.DB, numero, centro string, comidas []model.ComidaPreparada) error {
	if err := tx.Where("numero_viaje = ? AND numero_centro_costo = ?", numero, centro).
		Delete(&model.ComidaPreparada{}).Error; err != nil {
		return err
	}
	return insertComidas(tx, numero, centro, comidas)
}

func insertComidas(tx *gorm.DB, numero, centro string, comidas []model.ComidaPreparada) error {
	if len(comidas) == 0 {
		return nil
	}
	rows := make([]model.ComidaPreparada, len(comidas))
	for i, c := range comidas {
		c.ID = 0
		c.NumeroViaje = numero
		c.NumeroCentroCosto = centro
		rows[i] = c
	}
	return tx.Create(&rows).Error
}

func (r *viajeRepo) FindByKey(ctx context.Context, numero, centro string) (*model.Viaje, error) {
	var v model.Viaje
	db := r.db.WithContext(ctx)
	if err := db.Where(whereClave, numero, centro).First(&v).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := r.loadComidas(db, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *viajeRepo) FindLatestByNumero(ctx context.Context, numero string) (*model.Viaje, error) {
	var v model.Viaje
	db := r.db.WithContext(ctx)
	if err := db.Where("numero_viaje = ?", numero).Order("id DESC").First(&v).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := r.loadComidas(db, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *viajeRepo) loadComidas(db *gorm.DB, v *model.Viaje) error {
	var comidas []model.ComidaPreparada
	err := db.Where("numero_viaje = ? AND numero_centro_costo = ?", v.NumeroViaje, v.CostoCodigo).
		Order("id ASC").Find(&comidas).Error
	if err != nil {
		return storeErr(err)
	}
	v.Comidas = comidas
	return nil
}

func (r *viajeRepo) ListCentrosCosto(ctx context.Context, numero string) ([]string, error) {
	var centros []string
	err := r.db.WithContext(ctx).Model(&model.Viaje{}).
		Where("numero_viaje = ?", numero).
		Distinct("costo_codigo").
		Order("costo_codigo ASC").
		Pluck("costo_codigo", &centros).Error
	return centros, storeErr(err)
}

func (r *viajeRepo) Delete(ctx context.Context, numero, centro string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("numero_viaje = ? AND numero_centro_costo = ?", numero, centro).
			Delete(&model.ComidaPreparada{}).Error; err != nil {
			return err
		}
		res := tx.Where(whereClave, numero, centro).Delete(&model.Viaje{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apierror.ErrNotFound
		}
		return nil
	})
	return storeErr(err)
}

func (r *viajeRepo) ListUnicos(ctx context.Context, limit int) ([]ViajeUnico, error) {
	var rows []ViajeUnico
	err := r.db.WithContext(ctx).Raw(`
SELECT numero_viaje,
       MAX(conductor) AS conductor,
       MAX(fecha) AS fecha,
       COUNT(DISTINCT costo_codigo) AS centros
FROM viajes
GROUP BY numero_viaje
ORDER BY MAX(id) DESC
LIMIT ?`, limit).Scan(&rows).Error
	return rows, storeErr(err)
}

func (r *viajeRepo) Buscar(ctx context.Context, q string, limit int) ([]ViajeResumen, error) {
	like := "%" + q + "%"
	var rows []ViajeResumen
	err := r.db.WithContext(ctx).Raw(`
SELECT v.numero_viaje, v.costo_codigo, v.casino, v.fecha, v.conductor,
       (SELECT COUNT(*) FROM comidas_preparadas c
         WHERE c.numero_viaje = v.numero_viaje AND c.numero_centro_costo = v.costo_codigo) AS total_comidas
FROM viajes v
WHERE v.numero_viaje LIKE ? OR v.costo_codigo LIKE ?
ORDER BY v.id DESC
LIMIT ?`, like, like, limit).Scan(&rows).Error
	return rows, storeErr(err)
}

func (r *viajeRepo) Estadisticas(ctx context.Context) (*ViajeEstadisticas, error) {
	var e ViajeEstadisticas
	db := r.db.WithContext(ctx)
	if err := db.Model(&model.Viaje{}).Count(&e.TotalRegistros).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := db.Raw(`SELECT COUNT(DISTINCT numero_viaje) FROM viajes`).Scan(&e.ViajesUnicos).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := db.Raw(`
SELECT COUNT(*) FROM (
  SELECT numero_viaje FROM viajes
  GROUP BY numero_viaje
  HAVING COUNT(DISTINCT costo_codigo) > 1
) multi`).Scan(&e.ViajesMultiCentro).Error; err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

func (r *viajeRepo) ListPatentes(ctx context.Context) ([]string, error) {
	var patentes []string
	err := r.db.WithContext(ctx).Model(&model.Viaje{}).
		Where("patente_camion <> ''").
		Distinct("patente_camion").
		Order("patente_camion ASC").
		Pluck("patente_camion", &patentes).Error
	return patentes, storeErr(err)
}
