package router

import (
	"time"

	"catalogoservicos/internal/config"
	"catalogoservicos/internal/handler"
	"catalogoservicos/internal/infra"
	"catalogoservicos/internal/middleware"
	"catalogoservicos/internal/repository"
	"catalogoservicos/internal/service"
	"catalogoservicos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	storage := infra.NewFileStorage(cfg.UploadStoragePath)

	// ── Repositories ─────────────────────────────────────────────────────────
	areaRepo := repository.NewAreaRepository(db)
	processoRepo := repository.NewProcessoRepository(db)
	subprocessoRepo := repository.NewSubprocessoRepository(db)
	servicoRepo := repository.NewServicoRepository(db)
	sugestaoRepo := repository.NewSugestaoRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	anexoRepo := repository.NewAnexoRepository(db)
	configuracaoRepo := repository.NewConfiguracaoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	auditor := service.NewAuditor(dispatcher.EnqueueAuditoria)

	// ── Services ─────────────────────────────────────────────────────────────
	cacheTTL := time.Duration(cfg.CatalogoCacheTTLMinutes) * time.Minute
	catalogoSvc := service.NewCatalogoService(areaRepo, processoRepo, subprocessoRepo, servicoRepo, rdb, cacheTTL)
	areaSvc := service.NewAreaService(areaRepo, catalogoSvc, auditor)
	processoSvc := service.NewProcessoService(processoRepo, areaRepo, catalogoSvc, auditor)
	subprocessoSvc := service.NewSubprocessoService(subprocessoRepo, processoRepo, catalogoSvc, auditor)
	servicoSvc := service.NewServicoService(servicoRepo, subprocessoRepo, catalogoSvc, auditor)
	sugestaoSvc := service.NewSugestaoService(sugestaoRepo, areaRepo, processoRepo, subprocessoRepo, servicoRepo, profileRepo, configuracaoRepo, catalogoSvc, dispatcher)
	authSvc := service.NewAuthService(
		profileRepo,
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpirationHours)*time.Hour,
		time.Duration(cfg.JWTRefreshHours)*time.Hour,
	)
	anexoSvc := service.NewAnexoService(anexoRepo, servicoRepo, sugestaoRepo, storage, cfg.UploadMaxBytes, auditor)
	configuracaoSvc := service.NewConfiguracaoService(configuracaoRepo, auditor)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	areasH := handler.NewAreasHandler(areaSvc)
	processosH := handler.NewProcessosHandler(processoSvc)
	subprocessosH := handler.NewSubprocessosHandler(subprocessoSvc)
	servicosH := handler.NewServicosHandler(servicoSvc)
	sugestoesH := handler.NewSugestoesHandler(sugestaoSvc)
	anexosH := handler.NewAnexosHandler(anexoSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	configuracoesH := handler.NewConfiguracoesHandler(configuracaoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public browse — the catalog is readable without a session
	catalogo := r.Group("/v1/catalogo")
	{
		catalogo.GET("/arvore", catalogoH.Arvore)
		catalogo.GET("/areas/:id", catalogoH.AreaPorID)
		catalogo.GET("/processos", catalogoH.Processos)
		catalogo.GET("/subprocessos", catalogoH.Subprocessos)
		catalogo.GET("/servicos", catalogoH.Servicos)
	}
	r.GET("/v1/configuracoes", configuracoesH.Obter)
	r.GET("/v1/servicos/:id", servicosH.ObterPorID)
	r.GET("/v1/servicos/:id/ficha", servicosH.Ficha)
	r.GET("/v1/servicos/:id/anexos", anexosH.ListarPorServico)
	r.GET("/v1/anexos/:id/download", anexosH.Download)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Self service
		v1.GET("/me", usuariosH.MeuPerfil)
		v1.PUT("/me", usuariosH.AtualizarMeuPerfil)

		// Suggestions — any authenticated user can file and follow their own
		v1.POST("/sugestoes", sugestoesH.Criar)
		v1.GET("/sugestoes/minhas", sugestoesH.ListarMinhas)
		v1.POST("/anexos", anexosH.Upload)

		// Admin decisions go against the profiles table, not the JWT claim
		adminMW := middleware.RequireAdmin(profileRepo)
		admin := v1.Group("", adminMW)
		{
			admin.GET("/sugestoes", sugestoesH.Listar)
			admin.GET("/sugestoes/:id", sugestoesH.ObterPorID)
			admin.GET("/sugestoes/:id/anexos", anexosH.ListarPorSugestao)
			admin.POST("/sugestoes/:id/resolver", sugestoesH.Resolver)

			admin.POST("/areas", areasH.Criar)
			admin.GET("/areas", areasH.Listar)
			admin.GET("/areas/:id", areasH.ObterPorID)
			admin.PUT("/areas/:id", areasH.Atualizar)
			admin.DELETE("/areas/:id", areasH.Desativar)
			admin.PATCH("/areas/:id/reativar", areasH.Reativar)

			admin.POST("/processos", processosH.Criar)
			admin.GET("/processos/:id", processosH.ObterPorID)
			admin.PUT("/processos/:id", processosH.Atualizar)
			admin.DELETE("/processos/:id", processosH.Desativar)
			admin.PATCH("/processos/:id/reativar", processosH.Reativar)

			admin.POST("/subprocessos", subprocessosH.Criar)
			admin.GET("/subprocessos/:id", subprocessosH.ObterPorID)
			admin.PUT("/subprocessos/:id", subprocessosH.Atualizar)
			admin.DELETE("/subprocessos/:id", subprocessosH.Desativar)
			admin.PATCH("/subprocessos/:id/reativar", subprocessosH.Reativar)

			admin.POST("/servicos", servicosH.Criar)
			admin.PUT("/servicos/:id", servicosH.Atualizar)
			admin.DELETE("/servicos/:id", servicosH.Desativar)
			admin.PATCH("/servicos/:id/reativar", servicosH.Reativar)
			admin.GET("/servicos/:id/historico", servicosH.Historico)

			admin.DELETE("/anexos/:id", anexosH.Remover)

			admin.PUT("/configuracoes", configuracoesH.Atualizar)
		}

		// User management — superadministrador only
		usuarios := v1.Group("/usuarios", middleware.RequirePerfil(middleware.PerfilSuperAdministrador))
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
			usuarios.PATCH("/:id/reativar", usuariosH.Reativar)
		}
	}

	return r
}
