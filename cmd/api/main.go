package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/gestaorh/gestaorh-backend/internal/handlers/http"
	"github.com/gestaorh/gestaorh-backend/internal/handlers/middleware"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/config"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/logging"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/persistence/mysql"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/security"
	"github.com/gestaorh/gestaorh-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gestaorh backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := mysql.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := mysql.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	cargoRepo := mysql.NewCargoRepository(db)
	funcionarioRepo := mysql.NewFuncionarioRepository(db)
	uow := mysql.NewUnitOfWork(db)

	// Inicializar componentes de segurança
	tokens := security.NewTokenService(cfg.JWT)
	hasher := security.NewPasswordHasher()

	// Inicializar services
	cargoService := services.NewCargoService(cargoRepo, uow, logger)
	funcionarioService := services.NewFuncionarioService(funcionarioRepo, uow, tokens, hasher, logger)

	// Inicializar handlers
	cargoHandler := httphandlers.NewCargoHandler(cargoService)
	funcionarioHandler := httphandlers.NewFuncionarioHandler(funcionarioService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())

	// Middleware de normalização de erros: toda falha vira o
	// envelope {success:false, message, error:{message}}
	router.Use(middleware.ErrorHandler(logger))

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Cargos: todas as rotas exigem token válido
		cargos := v1.Group("/cargos", middleware.Auth(tokens))
		{
			cargos.GET("", cargoHandler.Index)
			cargos.GET("/:idCargo", middleware.ValidateID("idCargo"), cargoHandler.Show)
			cargos.POST("", middleware.ValidateCargoBody(), cargoHandler.Store)
			cargos.PUT("/:idCargo",
				middleware.ValidateID("idCargo"),
				middleware.ValidateCargoBody(),
				cargoHandler.Update)
			cargos.DELETE("/:idCargo", middleware.ValidateID("idCargo"), cargoHandler.Destroy)
		}

		// Funcionários: login é público, o restante exige token
		funcionarios := v1.Group("/funcionarios")
		{
			funcionarios.POST("/login", funcionarioHandler.Login)

			protegidas := funcionarios.Group("", middleware.Auth(tokens))
			{
				protegidas.GET("", funcionarioHandler.Index)
				protegidas.GET("/:idFuncionario",
					middleware.ValidateID("idFuncionario"),
					funcionarioHandler.Show)
				protegidas.POST("", middleware.ValidateFuncionarioBody(), funcionarioHandler.Store)
				protegidas.PUT("/:idFuncionario",
					middleware.ValidateID("idFuncionario"),
					middleware.ValidateFuncionarioBody(),
					funcionarioHandler.Update)
				protegidas.DELETE("/:idFuncionario",
					middleware.ValidateID("idFuncionario"),
					funcionarioHandler.Destroy)
			}
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
