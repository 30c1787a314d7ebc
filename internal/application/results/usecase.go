package results

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// ResultsUseCase agregación de resultados: escrutinio por elección, reporte
// global y monitoreo de actividad. Todo se calcula bajo demanda desde el
// registro de votos; no hay contadores materializados.
type ResultsUseCase struct {
	resultsRepo  repository.ResultsRepository
	electionRepo repository.ElectionRepository
	pdfGen       ReportPDFGenerator
	now          func() time.Time
}

// NewResultsUseCase construye el agregador.
func NewResultsUseCase(resultsRepo repository.ResultsRepository, electionRepo repository.ElectionRepository, pdfGen ReportPDFGenerator) *ResultsUseCase {
	return &ResultsUseCase{resultsRepo: resultsRepo, electionRepo: electionRepo, pdfGen: pdfGen, now: time.Now}
}

// ResultsFor escrutinio de una elección: votos agrupados por candidato con
// sus metadatos, orden descendente por conteo. Los candidatos sin votos se
// omiten; el orden entre empatados no está definido.
func (uc *ResultsUseCase) ResultsFor(ctx context.Context, electionID string) (*dto.ElectionResultsResponse, error) {
	if uuid.Validate(electionID) != nil {
		return nil, domain.ErrInvalidID
	}
	election, err := uc.electionRepo.GetByID(electionID)
	if err != nil {
		return nil, err
	}
	if election == nil {
		return nil, domain.ErrElectionNotFound
	}

	tallies, err := uc.resultsRepo.TallyForElection(ctx, electionID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, t := range tallies {
		total += t.TotalVotes
	}

	return &dto.ElectionResultsResponse{
		Election:   dto.ElectionRef{ID: election.ID, Title: election.Title},
		TotalVotes: total,
		Results:    toResultRows(tallies, total),
	}, nil
}

// AllResults reporte global: cada elección con todos sus candidatos y
// conteos, incluidos los ceros (vista de administración).
func (uc *ResultsUseCase) AllResults(ctx context.Context) ([]dto.AllResultsElection, error) {
	elections, err := uc.electionRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]dto.AllResultsElection, 0, len(elections))
	for _, e := range elections {
		tallies, err := uc.resultsRepo.TallyAllCandidates(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, t := range tallies {
			total += t.TotalVotes
		}
		out = append(out, dto.AllResultsElection{
			ElectionResponse: dto.ElectionResponse{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				StartTime:   e.StartTime,
				EndTime:     e.EndTime,
				IsActive:    e.IsActive,
				CreatedBy:   e.CreatedBy,
				CreatedAt:   e.CreatedAt,
				UpdatedAt:   e.UpdatedAt,
			},
			Results: toResultRows(tallies, total),
		})
	}
	return out, nil
}

// ResultsPDF genera el reporte global como PDF.
func (uc *ResultsUseCase) ResultsPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.AllResults(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateResultsPDF(ctx, report, uc.now())
}

// Monitor reporte de actividad del sistema: totales, votos por elección y
// cada usuario con las elecciones en las que votó. Tolera votos huérfanos de
// elecciones borradas.
func (uc *ResultsUseCase) Monitor(ctx context.Context) (*dto.MonitorResponse, error) {
	totalUsers, err := uc.resultsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalElections, err := uc.resultsRepo.CountElections(ctx)
	if err != nil {
		return nil, err
	}
	byElection, err := uc.resultsRepo.VotesByElection(ctx)
	if err != nil {
		return nil, err
	}
	activity, err := uc.resultsRepo.UserActivity(ctx)
	if err != nil {
		return nil, err
	}

	totalVotes := 0
	votesByElection := make([]dto.VotesByElectionResponse, 0, len(byElection))
	for _, v := range byElection {
		totalVotes += v.Votes
		votesByElection = append(votesByElection, dto.VotesByElectionResponse{
			ElectionID:    v.ElectionID,
			ElectionTitle: v.ElectionTitle,
			Votes:         v.Votes,
		})
	}

	users := make([]dto.UserActivityResponse, 0, len(activity))
	for _, u := range activity {
		voted := make([]dto.VotedElectionResponse, 0, len(u.VotedElections))
		for _, ve := range u.VotedElections {
			voted = append(voted, dto.VotedElectionResponse{
				ElectionID:    ve.ElectionID,
				ElectionTitle: ve.ElectionTitle,
			})
		}
		users = append(users, dto.UserActivityResponse{
			ID:             u.UserID,
			Name:           u.Name,
			Email:          u.Email,
			Role:           u.Role,
			HasVoted:       u.HasVoted,
			VotedElections: voted,
		})
	}

	return &dto.MonitorResponse{
		TotalUsers:      totalUsers,
		TotalElections:  totalElections,
		TotalVotes:      totalVotes,
		VotesByElection: votesByElection,
		Users:           users,
	}, nil
}

// toResultRows calcula el porcentaje de cada candidato sobre el total de la
// elección (dos decimales; cero si nadie votó).
func toResultRows(tallies []repository.CandidateTally, total int) []dto.CandidateResultResponse {
	rows := make([]dto.CandidateResultResponse, 0, len(tallies))
	for _, t := range tallies {
		rows = append(rows, dto.CandidateResultResponse{
			CandidateID:   t.CandidateID,
			CandidateName: t.CandidateName,
			Party:         t.Party,
			TotalVotes:    t.TotalVotes,
			Share:         share(t.TotalVotes, total),
		})
	}
	return rows
}

func share(votes, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(votes) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}
