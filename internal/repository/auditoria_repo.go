package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"gorm.io/gorm"
)

// AuditoriaRepository appends rows to the action log. Append-only: there is
// deliberately no update or delete method on this interface.
type AuditoriaRepository interface {
	Criar(ctx context.Context, a *model.Auditoria) error
	ListarRecentes(ctx context.Context, limit int) ([]model.Auditoria, error)
}

type auditoriaRepository struct{ db *gorm.DB }

func NewAuditoriaRepository(db *gorm.DB) AuditoriaRepository {
	return &auditoriaRepository{db: db}
}

func (r *auditoriaRepository) Criar(ctx context.Context, a *model.Auditoria) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditoriaRepository) ListarRecentes(ctx context.Context, limit int) ([]model.Auditoria, error) {
	if limit <= 0 {
		limit = 100
	}
	var list []model.Auditoria
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}
