package infra

import (
	"fmt"

	"catalogoservicos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes, singleton guards).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. Also used by the integration test setup.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Profile{},
		&model.Area{},
		&model.Processo{},
		&model.Subprocesso{},
		&model.Servico{},
		&model.ServicoHistorico{},
		&model.Sugestao{},
		&model.Anexo{},
		&model.Auditoria{},
		&model.Configuracao{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement uses IF NOT EXISTS / DO NOTHING semantics so re-running on
// an already-patched DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the admin review queue — pending rows only
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_sugestoes_pendentes') THEN
		    CREATE INDEX idx_sugestoes_pendentes
		        ON sugestoes (created_at DESC)
		        WHERE status = 'pendente';
		  END IF;
		END $$`,
		// configuracoes is a singleton — enforce at the table level
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_configuracoes_singleton') THEN
		    CREATE UNIQUE INDEX uni_configuracoes_singleton ON configuracoes ((true));
		  END IF;
		END $$`,
		// An anexo points at a servico or a sugestao, never both
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_anexos_vinculo_unico') THEN
		    ALTER TABLE anexos ADD CONSTRAINT chk_anexos_vinculo_unico
		      CHECK (num_nonnulls(servico_id, sugestao_id) = 1);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
