package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario stores people allowed to log in.
type Usuario struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey"`
	Username       string    `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	NombreCompleto string    `gorm:"column:nombre_completo"`
	Email          *string   `gorm:"column:email"`
	Activo         bool      `gorm:"column:activo;not null;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }

// BeforeCreate assigns the id in Go so SQLite and Postgres behave the same.
func (u *Usuario) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
