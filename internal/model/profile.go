package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile stores portal users with role-based access.
// Perfil: "usuario" | "administrador" | "superadministrador"
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	SenhaHash string    `gorm:"not null"`
	Perfil    string    `gorm:"type:varchar(30);not null;default:'usuario'"`
	Ativo     bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string { return "profiles" }
