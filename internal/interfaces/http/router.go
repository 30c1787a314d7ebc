package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/auth"
	"github.com/jhoicas/election-api/internal/application/results"
	"github.com/jhoicas/election-api/internal/application/usecase"
	"github.com/jhoicas/election-api/internal/application/voting"
	"github.com/jhoicas/election-api/internal/domain/entity"
	pkgconfig "github.com/jhoicas/election-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AdminUC     *usecase.AdminUseCase
	ElectionUC  *usecase.ElectionUseCase
	CandidateUC *usecase.CandidateUseCase
	VotingUC    *voting.VotingUseCase
	ResultsUC   *results.ResultsUseCase
	JWT         pkgconfig.JWTConfig
	IsProd      bool
}

// Router registra las rutas de la API con sus reglas de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWT.Secret)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT, deps.IsProd)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/voter-login", authHandler.VoterLogin)
	authGroup.Get("/getme", authRequired, authHandler.GetMe)
	authGroup.Post("/logout", authHandler.Logout)

	// Administración y reportes
	admin := api.Group("/admin", authRequired)
	adminHandler := NewAdminHandler(deps.AdminUC, deps.ResultsUC)
	admin.Get("/", RequireRole(entity.RoleAdmin, entity.RoleChairman), adminHandler.ListUsers)
	admin.Post("/generate-access-codes", RequireRole(entity.RoleAdmin), adminHandler.GenerateAccessCodes)
	admin.Put("/voter/:id", RequireRole(entity.RoleAdmin), adminHandler.UpdateVoter)
	admin.Delete("/voter/:id", RequireRole(entity.RoleAdmin), adminHandler.DeleteVoter)
	admin.Get("/monitor", RequireRole(entity.RoleAdmin), adminHandler.Monitor)
	admin.Get("/results", RequireRole(entity.RoleAdmin, entity.RoleChairman, entity.RoleVoter), adminHandler.AllResults)
	admin.Get("/results/pdf", RequireRole(entity.RoleAdmin, entity.RoleChairman), adminHandler.ResultsPDF)

	// Elecciones. "/active" va antes de "/:id" para que no lo capture el
	// parámetro.
	elections := api.Group("/elections", authRequired)
	electionHandler := NewElectionHandler(deps.ElectionUC)
	manage := RequireRole(entity.RoleAdmin, entity.RoleChairman)
	elections.Get("/active", RequireRole(entity.RoleVoter), electionHandler.ListActive)
	elections.Get("/", manage, electionHandler.List)
	elections.Post("/", manage, electionHandler.Create)
	elections.Get("/:id", manage, electionHandler.GetByID)
	elections.Put("/:id/activate", manage, electionHandler.Activate)
	elections.Put("/:id/end", manage, electionHandler.End)
	elections.Put("/:id", manage, electionHandler.Update)
	elections.Delete("/:id", manage, electionHandler.Delete)

	// Candidatos
	candidates := api.Group("/candidates", authRequired)
	candidateHandler := NewCandidateHandler(deps.CandidateUC)
	candidates.Post("/", RequireRole(entity.RoleChairman), candidateHandler.Create)
	candidates.Get("/", RequireRole(entity.RoleAdmin, entity.RoleChairman), candidateHandler.List)
	candidates.Get("/:electionId", RequireRole(entity.RoleAdmin, entity.RoleChairman, entity.RoleVoter), candidateHandler.ListByElection)
	candidates.Put("/:id", RequireRole(entity.RoleChairman), candidateHandler.Update)
	candidates.Delete("/:id", RequireRole(entity.RoleChairman), candidateHandler.Delete)

	// Votos
	votes := api.Group("/votes", authRequired)
	voteHandler := NewVoteHandler(deps.VotingUC, deps.ResultsUC)
	votes.Post("/", RequireRole(entity.RoleVoter), voteHandler.CastVote)
	votes.Get("/my", RequireRole(entity.RoleVoter), voteHandler.GetMyVotes)
	votes.Get("/results", RequireRole(entity.RoleVoter, entity.RoleChairman, entity.RoleAdmin), voteHandler.Results)
}
