package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hotelges/hotelges-backend/docs"
	httphandlers "github.com/hotelges/hotelges-backend/internal/handlers/http"
	"github.com/hotelges/hotelges-backend/internal/handlers/middleware"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/config"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/i18n"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/logging"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/persistence/postgres"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/token"
	"github.com/hotelges/hotelges-backend/internal/notifications"
	"github.com/hotelges/hotelges-backend/internal/services"
)

// Nomes das telas do sistema. A autorização compara o nome exato
// (case-sensitive) com as telas do cargo do operador.
const (
	telaCadastro   = "CADASTRO"
	telaAdmin      = "ADMIN"
	telaFinanceiro = "FINANCEIRO"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting hotelges backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Hub de notificações em tempo real
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := notifications.NewHub(logger)
	go hub.Run(ctx)

	// Inicializar repositories
	contaRepo := postgres.NewContaRepository(db)
	funcionarioRepo := postgres.NewFuncionarioRepository(db)
	cargoRepo := postgres.NewCargoRepository(db)
	pessoaRepo := postgres.NewPessoaRepository(db)
	quartoRepo := postgres.NewQuartoRepository(db)
	empresaRepo := postgres.NewEmpresaRepository(db)
	veiculoRepo := postgres.NewVeiculoRepository(db)
	lancamentoRepo := postgres.NewLancamentoRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Codec de tokens de sessão
	codec := token.NewJWTCodec(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Inicializar services
	authService := services.NewAuthService(contaRepo, funcionarioRepo, cargoRepo, codec, hub, logger)
	pessoaService := services.NewPessoaService(pessoaRepo, hub, logger)
	quartoService := services.NewQuartoService(quartoRepo, hub, logger)
	empresaService := services.NewEmpresaService(empresaRepo, logger)
	veiculoService := services.NewVeiculoService(veiculoRepo, pessoaRepo, logger)
	funcionarioService := services.NewFuncionarioService(funcionarioRepo, logger)
	cargoService := services.NewCargoService(cargoRepo, uow, logger)
	relatorioService := services.NewRelatorioService(lancamentoRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	pessoaHandler := httphandlers.NewPessoaHandler(pessoaService)
	quartoHandler := httphandlers.NewQuartoHandler(quartoService)
	empresaHandler := httphandlers.NewEmpresaHandler(empresaService)
	veiculoHandler := httphandlers.NewVeiculoHandler(veiculoService)
	funcionarioHandler := httphandlers.NewFuncionarioHandler(funcionarioService)
	cargoHandler := httphandlers.NewCargoHandler(cargoService)
	relatorioHandler := httphandlers.NewRelatorioHandler(relatorioService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware de request id
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "" || cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.CORS.AllowedOrigins}
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	router.Use(cors.New(corsConfig))

	// Gate de autenticação: tudo exige token, exceto a allow-list
	authMiddleware := middleware.NewAuthMiddleware(codec, logger, []string{
		"/health",
		"/swagger",
		"/api/v1/auth/login",
	})
	router.Use(authMiddleware.Authenticate())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação da API
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Autenticação
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/validate", authHandler.Validate)
		}

		// Notificações em tempo real (qualquer operador autenticado)
		v1.GET("/notificacoes/ws", hub.Handle)

		// Tela CADASTRO
		cadastro := v1.Group("", authMiddleware.RequireTela(telaCadastro))
		{
			pessoas := cadastro.Group("/pessoas")
			{
				pessoas.POST("", pessoaHandler.CreatePessoa)
				pessoas.GET("/:id", pessoaHandler.GetPessoa)
				pessoas.PUT("/:id", pessoaHandler.UpdatePessoa)
				pessoas.DELETE("/:id", pessoaHandler.DeletePessoa)
				pessoas.GET("", pessoaHandler.ListPessoas)
			}

			quartos := cadastro.Group("/quartos")
			{
				quartos.POST("", quartoHandler.CreateQuarto)
				quartos.GET("/:id", quartoHandler.GetQuarto)
				quartos.PUT("/:id", quartoHandler.UpdateQuarto)
				quartos.DELETE("/:id", quartoHandler.DeleteQuarto)
				quartos.GET("", quartoHandler.ListQuartos)
			}

			empresas := cadastro.Group("/empresas")
			{
				empresas.POST("", empresaHandler.CreateEmpresa)
				empresas.GET("/:id", empresaHandler.GetEmpresa)
				empresas.PUT("/:id", empresaHandler.UpdateEmpresa)
				empresas.DELETE("/:id", empresaHandler.DeleteEmpresa)
				empresas.GET("", empresaHandler.ListEmpresas)
			}

			veiculos := cadastro.Group("/veiculos")
			{
				veiculos.POST("", veiculoHandler.CreateVeiculo)
				veiculos.GET("/:id", veiculoHandler.GetVeiculo)
				veiculos.PUT("/:id", veiculoHandler.UpdateVeiculo)
				veiculos.DELETE("/:id", veiculoHandler.DeleteVeiculo)
				veiculos.GET("", veiculoHandler.ListVeiculos)
			}
		}

		// Tela ADMIN
		admin := v1.Group("", authMiddleware.RequireTela(telaAdmin))
		{
			funcionarios := admin.Group("/funcionarios")
			{
				funcionarios.GET("/:id", funcionarioHandler.GetFuncionario)
				funcionarios.GET("", funcionarioHandler.ListFuncionarios)
			}

			cargos := admin.Group("/cargos")
			{
				cargos.GET("", cargoHandler.ListCargos)
				cargos.GET("/:id", cargoHandler.GetCargo)
				cargos.PUT("/:id/telas/:tela_id", cargoHandler.GrantTela)
				cargos.DELETE("/:id/telas/:tela_id", cargoHandler.RevokeTela)
				cargos.PUT("/:id/permissoes/:permissao_id", cargoHandler.GrantPermissao)
				cargos.DELETE("/:id/permissoes/:permissao_id", cargoHandler.RevokePermissao)
			}
		}

		// Tela FINANCEIRO
		financeiro := v1.Group("/relatorios", authMiddleware.RequireTela(telaFinanceiro))
		{
			financeiro.GET("/financeiro", relatorioHandler.ResumoFinanceiro)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
