package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/election-api/internal/application/auth"
	"github.com/jhoicas/election-api/internal/application/results"
	"github.com/jhoicas/election-api/internal/application/usecase"
	"github.com/jhoicas/election-api/internal/application/voting"
	inframail "github.com/jhoicas/election-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/election-api/internal/infrastructure/pdf"
	"github.com/jhoicas/election-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/election-api/internal/interfaces/http"
	"github.com/jhoicas/election-api/pkg/config"
	"github.com/jhoicas/election-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	electionRepo := postgres.NewElectionRepository(pool)
	candidateRepo := postgres.NewCandidateRepository(pool)
	voteRepo := postgres.NewVoteRepository(pool)
	resultsRepo := postgres.NewResultsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := inframail.NewSMTPMailer(cfg.SMTP, log)
	pdfGenerator := infrapdf.NewMarotoResultsGenerator()

	authUC := auth.NewAuthUseCase(userRepo, voteRepo, mailer, log)
	adminUC := usecase.NewAdminUseCase(userRepo, mailer, log)
	electionUC := usecase.NewElectionUseCase(electionRepo, candidateRepo)
	candidateUC := usecase.NewCandidateUseCase(candidateRepo, electionRepo)
	votingUC := voting.NewVotingUseCase(txRunner, voteRepo)
	resultsUC := results.NewResultsUseCase(resultsRepo, electionRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// El frontend vive en otro origen y la sesión viaja en cookie, así que
	// CORS va con credenciales y origen explícito.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.ClientOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AdminUC:     adminUC,
		ElectionUC:  electionUC,
		CandidateUC: candidateUC,
		VotingUC:    votingUC,
		ResultsUC:   resultsUC,
		JWT:         cfg.JWT,
		IsProd:      cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
