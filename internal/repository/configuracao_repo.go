package repository

import (
	"context"
	"errors"

	"catalogoservicos/internal/model"

	"gorm.io/gorm"
)

// ConfiguracaoRepository manages the settings singleton row.
type ConfiguracaoRepository interface {
	// Obter returns the singleton, creating it with defaults on first access.
	Obter(ctx context.Context) (*model.Configuracao, error)
	Atualizar(ctx context.Context, c *model.Configuracao) error
}

type configuracaoRepository struct{ db *gorm.DB }

func NewConfiguracaoRepository(db *gorm.DB) ConfiguracaoRepository {
	return &configuracaoRepository{db: db}
}

func (r *configuracaoRepository) Obter(ctx context.Context) (*model.Configuracao, error) {
	var c model.Configuracao
	err := r.db.WithContext(ctx).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.Configuracao{NomePortal: "Catálogo de Serviços", SugestoesAbertas: true}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configuracaoRepository) Atualizar(ctx context.Context, c *model.Configuracao) error {
	return r.db.WithContext(ctx).Save(c).Error
}
