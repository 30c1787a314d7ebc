package results

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del agregador
// ──────────────────────────────────────────────────────────────────────────────

type fakeResultsRepo struct {
	// tallies por elección: [electionID] → filas disputadas (sin ceros)
	tallies map[string][]repository.CandidateTally
	// allTallies por elección: incluye ceros
	allTallies map[string][]repository.CandidateTally
	users      int
	elections  int
	byElection []repository.ElectionVoteCount
	activity   []repository.UserActivity
}

func (r *fakeResultsRepo) TallyForElection(_ context.Context, electionID string) ([]repository.CandidateTally, error) {
	return r.tallies[electionID], nil
}

func (r *fakeResultsRepo) TallyAllCandidates(_ context.Context, electionID string) ([]repository.CandidateTally, error) {
	return r.allTallies[electionID], nil
}

func (r *fakeResultsRepo) CountUsers(context.Context) (int, error)     { return r.users, nil }
func (r *fakeResultsRepo) CountElections(context.Context) (int, error) { return r.elections, nil }
func (r *fakeResultsRepo) VotesByElection(context.Context) ([]repository.ElectionVoteCount, error) {
	return r.byElection, nil
}
func (r *fakeResultsRepo) UserActivity(context.Context) ([]repository.UserActivity, error) {
	return r.activity, nil
}

type fakeElectionRepo struct {
	elections map[string]*entity.Election
}

func (r *fakeElectionRepo) Create(e *entity.Election) error { r.elections[e.ID] = e; return nil }
func (r *fakeElectionRepo) GetByID(id string) (*entity.Election, error) {
	return r.elections[id], nil
}
func (r *fakeElectionRepo) Update(e *entity.Election) error { r.elections[e.ID] = e; return nil }
func (r *fakeElectionRepo) Delete(id string) error          { delete(r.elections, id); return nil }
func (r *fakeElectionRepo) List() ([]*entity.Election, error) {
	var out []*entity.Election
	for _, e := range r.elections {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeElectionRepo) ListActive(time.Time) ([]*entity.Election, error) { return nil, nil }

type fakePDFGen struct {
	called int
	seen   int // elecciones recibidas en la última llamada
}

func (g *fakePDFGen) GenerateResultsPDF(_ context.Context, elections []dto.AllResultsElection, _ time.Time) ([]byte, error) {
	g.called++
	g.seen = len(elections)
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestResultsFor_OrdenYPorcentajes(t *testing.T) {
	electionID := uuid.New().String()
	elections := &fakeElectionRepo{elections: map[string]*entity.Election{
		electionID: {ID: electionID, Title: "Consejo 2026"},
	}}
	// C1:2 votos, C3:1 voto; C2 no aparece (cero votos se omite en esta vista).
	resultsRepo := &fakeResultsRepo{tallies: map[string][]repository.CandidateTally{
		electionID: {
			{CandidateID: "c1", CandidateName: "Ana", Party: "Verde", TotalVotes: 2},
			{CandidateID: "c3", CandidateName: "Carla", Party: "Azul", TotalVotes: 1},
		},
	}}

	uc := NewResultsUseCase(resultsRepo, elections, &fakePDFGen{})
	out, err := uc.ResultsFor(context.Background(), electionID)
	require.NoError(t, err)

	assert.Equal(t, "Consejo 2026", out.Election.Title)
	assert.Equal(t, 3, out.TotalVotes)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "c1", out.Results[0].CandidateID, "el más votado va primero")
	assert.True(t, out.Results[0].Share.Equal(decimal.RequireFromString("66.67")),
		"2/3 → 66.67%%, redondeado a dos decimales; fue %s", out.Results[0].Share)
	assert.True(t, out.Results[1].Share.Equal(decimal.RequireFromString("33.33")))
}

func TestResultsFor_SinVotos(t *testing.T) {
	electionID := uuid.New().String()
	elections := &fakeElectionRepo{elections: map[string]*entity.Election{
		electionID: {ID: electionID, Title: "Vacía"},
	}}
	uc := NewResultsUseCase(&fakeResultsRepo{}, elections, &fakePDFGen{})

	out, err := uc.ResultsFor(context.Background(), electionID)
	require.NoError(t, err)
	assert.Zero(t, out.TotalVotes)
	assert.Empty(t, out.Results)
}

func TestResultsFor_IDMalformado(t *testing.T) {
	uc := NewResultsUseCase(&fakeResultsRepo{}, &fakeElectionRepo{elections: map[string]*entity.Election{}}, &fakePDFGen{})
	_, err := uc.ResultsFor(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestResultsFor_EleccionInexistente(t *testing.T) {
	uc := NewResultsUseCase(&fakeResultsRepo{}, &fakeElectionRepo{elections: map[string]*entity.Election{}}, &fakePDFGen{})
	_, err := uc.ResultsFor(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}

func TestAllResults_IncluyeCeros(t *testing.T) {
	electionID := uuid.New().String()
	elections := &fakeElectionRepo{elections: map[string]*entity.Election{
		electionID: {ID: electionID, Title: "Con ceros"},
	}}
	resultsRepo := &fakeResultsRepo{allTallies: map[string][]repository.CandidateTally{
		electionID: {
			{CandidateID: "c1", CandidateName: "Ana", TotalVotes: 4},
			{CandidateID: "c2", CandidateName: "Beto", TotalVotes: 0},
		},
	}}

	uc := NewResultsUseCase(resultsRepo, elections, &fakePDFGen{})
	out, err := uc.AllResults(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Results, 2, "la vista de administración muestra los ceros")
	assert.Equal(t, 0, out[0].Results[1].TotalVotes)
	assert.True(t, out[0].Results[1].Share.IsZero())
	assert.True(t, out[0].Results[0].Share.Equal(decimal.RequireFromString("100")))
}

func TestResultsPDF_GeneraDesdeElReporteGlobal(t *testing.T) {
	electionID := uuid.New().String()
	elections := &fakeElectionRepo{elections: map[string]*entity.Election{
		electionID: {ID: electionID, Title: "Para PDF"},
	}}
	gen := &fakePDFGen{}
	uc := NewResultsUseCase(&fakeResultsRepo{}, elections, gen)

	pdf, err := uc.ResultsPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, gen.called)
	assert.Equal(t, 1, gen.seen)
}

func TestMonitor_TotalesYHuerfanos(t *testing.T) {
	resultsRepo := &fakeResultsRepo{
		users:     3,
		elections: 2,
		byElection: []repository.ElectionVoteCount{
			{ElectionID: "e1", ElectionTitle: "Viva", Votes: 5},
			{ElectionID: "", ElectionTitle: "Elección borrada o no disponible", Votes: 2},
		},
		activity: []repository.UserActivity{
			{
				UserID: "u1", Name: "Ana", Role: entity.RoleVoter, HasVoted: true,
				VotedElections: []repository.VotedElection{
					{ElectionID: "e1", ElectionTitle: "Viva"},
					{ElectionID: "", ElectionTitle: "Elección borrada o no disponible"},
				},
			},
			{UserID: "u2", Name: "Beto", Role: entity.RoleVoter,
				VotedElections: []repository.VotedElection{}},
		},
	}

	uc := NewResultsUseCase(resultsRepo, &fakeElectionRepo{elections: map[string]*entity.Election{}}, &fakePDFGen{})
	out, err := uc.Monitor(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalUsers)
	assert.Equal(t, 2, out.TotalElections)
	assert.Equal(t, 7, out.TotalVotes, "suma de votos por elección, huérfanos incluidos")
	require.Len(t, out.Users, 2)
	assert.True(t, out.Users[0].HasVoted)
	require.Len(t, out.Users[0].VotedElections, 2)
	assert.Empty(t, out.Users[0].VotedElections[1].ElectionID,
		"el voto huérfano conserva su etiqueta sin ID")
	assert.False(t, out.Users[1].HasVoted)
	assert.Empty(t, out.Users[1].VotedElections)
}
