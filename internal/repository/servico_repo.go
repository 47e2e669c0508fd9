package repository

import (
	"context"

	"catalogoservicos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicoRepository defines the data access contract for services.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory fakes.
type ServicoRepository interface {
	Criar(ctx context.Context, s *model.Servico) error
	CriarTx(tx *gorm.DB, s *model.Servico) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Servico, error)
	ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servico, error)
	ListarPorSubprocesso(ctx context.Context, subprocessoID uuid.UUID) ([]model.Servico, error)
	ListarAtivos(ctx context.Context) ([]model.Servico, error)
	Atualizar(ctx context.Context, s *model.Servico) error
	AtualizarTx(tx *gorm.DB, s *model.Servico) error
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error

	// História de versões
	CriarHistoricoTx(tx *gorm.DB, h *model.ServicoHistorico) error
	ListarHistorico(ctx context.Context, servicoID uuid.UUID) ([]model.ServicoHistorico, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type servicoRepository struct{ db *gorm.DB }

func NewServicoRepository(db *gorm.DB) ServicoRepository {
	return &servicoRepository{db: db}
}

func (r *servicoRepository) Criar(ctx context.Context, s *model.Servico) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicoRepository) CriarTx(tx *gorm.DB, s *model.Servico) error {
	return tx.Create(s).Error
}

func (r *servicoRepository) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Servico, error) {
	var s model.Servico
	err := r.db.WithContext(ctx).
		Preload("Subprocesso").
		Preload("Subprocesso.Processo").
		Preload("Subprocesso.Processo.Area").
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ObterPorIDTx reads inside the caller's transaction, without ancestor
// preloads: edits write back the same row and never touch associations.
func (r *servicoRepository) ObterPorIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servico, error) {
	var s model.Servico
	if err := tx.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicoRepository) ListarPorSubprocesso(ctx context.Context, subprocessoID uuid.UUID) ([]model.Servico, error) {
	var list []model.Servico
	err := r.db.WithContext(ctx).
		Where("subprocesso_id = ? AND ativo = true", subprocessoID).
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *servicoRepository) ListarAtivos(ctx context.Context) ([]model.Servico, error) {
	var list []model.Servico
	err := r.db.WithContext(ctx).
		Preload("Subprocesso").
		Preload("Subprocesso.Processo").
		Preload("Subprocesso.Processo.Area").
		Where("ativo = true").
		Order("nome asc").
		Find(&list).Error
	return list, err
}

func (r *servicoRepository) Atualizar(ctx context.Context, s *model.Servico) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicoRepository) AtualizarTx(tx *gorm.DB, s *model.Servico) error {
	return tx.Save(s).Error
}

func (r *servicoRepository) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Servico{}).Where("id = ?", id).Update("ativo", false).Error
}

func (r *servicoRepository) Reativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Servico{}).Where("id = ?", id).Update("ativo", true).Error
}

func (r *servicoRepository) CriarHistoricoTx(tx *gorm.DB, h *model.ServicoHistorico) error {
	return tx.Create(h).Error
}

func (r *servicoRepository) ListarHistorico(ctx context.Context, servicoID uuid.UUID) ([]model.ServicoHistorico, error) {
	var list []model.ServicoHistorico
	err := r.db.WithContext(ctx).
		Where("servico_id = ?", servicoID).
		Order("versao desc").
		Find(&list).Error
	return list, err
}

func (r *servicoRepository) DB() *gorm.DB { return r.db }
