package voting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del flujo de votación
// ──────────────────────────────────────────────────────────────────────────────

type fakeVoteRepo struct {
	votes []entity.Vote
	// details alimenta ListByVoter (el filtrado de candidatos borrados lo
	// hace el SQL real, acá se devuelve lo que el test carga)
	details []*repository.VoteDetail
}

func (r *fakeVoteRepo) Create(v *entity.Vote) error {
	for _, existing := range r.votes {
		if existing.VoterID == v.VoterID && existing.ElectionID == v.ElectionID {
			return domain.ErrAlreadyVoted
		}
	}
	r.votes = append(r.votes, *v)
	return nil
}

func (r *fakeVoteRepo) HasVoted(voterID, electionID string) (bool, error) {
	for _, v := range r.votes {
		if v.VoterID == voterID && v.ElectionID == electionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVoteRepo) HasVotedAny(voterID string) (bool, error) {
	for _, v := range r.votes {
		if v.VoterID == voterID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVoteRepo) ListByVoter(voterID string) ([]*repository.VoteDetail, error) {
	var out []*repository.VoteDetail
	for _, d := range r.details {
		if d.VoterID == voterID {
			out = append(out, d)
		}
	}
	return out, nil
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
func (r *fakeElectionRepo) ListActive(time.Time) ([]*entity.Election, error) {
	return nil, nil
}

type fakeCandidateRepo struct {
	candidates map[string]*entity.Candidate
}

func (r *fakeCandidateRepo) Create(c *entity.Candidate) error { r.candidates[c.ID] = c; return nil }
func (r *fakeCandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	return r.candidates[id], nil
}
func (r *fakeCandidateRepo) Update(c *entity.Candidate) error { r.candidates[c.ID] = c; return nil }
func (r *fakeCandidateRepo) Delete(id string) error           { delete(r.candidates, id); return nil }
func (r *fakeCandidateRepo) List() ([]*repository.CandidateWithElection, error) {
	return nil, nil
}
func (r *fakeCandidateRepo) ListByElection(string) ([]*repository.CandidateWithElection, error) {
	return nil, nil
}
func (r *fakeCandidateRepo) ExistsByElectionAndParty(string, string, string) (bool, error) {
	return false, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes: acá no hay
// transacción que simular, solo el contrato del puerto.
type fakeTxRunner struct {
	votes      *fakeVoteRepo
	elections  *fakeElectionRepo
	candidates *fakeCandidateRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	votes repository.VoteRepository,
	elections repository.ElectionRepository,
	candidates repository.CandidateRepository,
) error) error {
	return fn(r.votes, r.elections, r.candidates)
}

// votingFixture arma una elección activa con un candidato y el use case listo.
func votingFixture(t *testing.T) (*VotingUseCase, *fakeVoteRepo, *entity.Election, *entity.Candidate) {
	t.Helper()
	votes := &fakeVoteRepo{}
	elections := &fakeElectionRepo{elections: make(map[string]*entity.Election)}
	candidates := &fakeCandidateRepo{candidates: make(map[string]*entity.Candidate)}

	start := time.Now().Add(-time.Hour)
	e := &entity.Election{
		ID:        uuid.New().String(),
		Title:     "Consejo 2026",
		IsActive:  true,
		StartTime: &start,
	}
	require.NoError(t, elections.Create(e))

	c := &entity.Candidate{
		ID:         uuid.New().String(),
		Name:       "Ana Gómez",
		Party:      "Partido Verde",
		ElectionID: e.ID,
	}
	require.NoError(t, candidates.Create(c))

	runner := &fakeTxRunner{votes: votes, elections: elections, candidates: candidates}
	uc := NewVotingUseCase(runner, votes)
	return uc, votes, e, c
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CastVote — cadena de precondiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCastVote_Exitoso(t *testing.T) {
	uc, votes, e, c := votingFixture(t)
	voterID := uuid.New().String()

	castAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return castAt })

	out, err := uc.CastVote(context.Background(), voterID, dto.CastVoteRequest{
		CandidateID: c.ID,
		ElectionID:  e.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, voterID, out.Vote.VoterID)
	assert.Equal(t, c.ID, out.Vote.CandidateID)
	assert.True(t, out.Vote.CastAt.Equal(castAt))
	require.Len(t, votes.votes, 1, "el voto queda en el registro")
}

func TestCastVote_IDMalformado(t *testing.T) {
	uc, _, e, _ := votingFixture(t)

	_, err := uc.CastVote(context.Background(), uuid.New().String(), dto.CastVoteRequest{
		CandidateID: "no-uuid",
		ElectionID:  e.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestCastVote_EleccionInexistente(t *testing.T) {
	uc, _, _, c := votingFixture(t)

	_, err := uc.CastVote(context.Background(), uuid.New().String(), dto.CastVoteRequest{
		CandidateID: c.ID,
		ElectionID:  uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrElectionNotFound)
}

func TestCastVote_EleccionInactiva(t *testing.T) {
	uc, _, e, c := votingFixture(t)
	e.IsActive = false

	_, err := uc.CastVote(context.Background(), uuid.New().String(), dto.CastVoteRequest{
		CandidateID: c.ID,
		ElectionID:  e.ID,
	})
	assert.ErrorIs(t, err, domain.ErrElectionNotActive)
}

func TestCastVote_DobleVoto_Rechazado(t *testing.T) {
	uc, votes, e, c := votingFixture(t)
	voterID := uuid.New().String()

	_, err := uc.CastVote(context.Background(), voterID, dto.CastVoteRequest{
		CandidateID: c.ID, ElectionID: e.ID,
	})
	require.NoError(t, err)

	_, err = uc.CastVote(context.Background(), voterID, dto.CastVoteRequest{
		CandidateID: c.ID, ElectionID: e.ID,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
	assert.Len(t, votes.votes, 1, "el registro sigue con un solo voto")
}

func TestCastVote_CandidatoDeOtraEleccion_Rechazado(t *testing.T) {
	uc, _, e, _ := votingFixture(t)

	// Candidato bien formado pero inexistente en esta elección.
	_, err := uc.CastVote(context.Background(), uuid.New().String(), dto.CastVoteRequest{
		CandidateID: uuid.New().String(),
		ElectionID:  e.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)
}

// La restricción única de la tabla es el respaldo contra la carrera entre el
// chequeo y la inserción; su violación llega como el mismo error de negocio.
func TestCastVote_RespaldoDeUnicidad(t *testing.T) {
	uc, votes, e, c := votingFixture(t)
	voterID := uuid.New().String()

	// Voto colado entre el chequeo HasVoted y el insert: se simula cargando
	// el registro directo.
	votes.votes = append(votes.votes, entity.Vote{
		ID: uuid.New().String(), VoterID: voterID, ElectionID: e.ID, CandidateID: c.ID,
	})

	_, err := uc.CastVote(context.Background(), voterID, dto.CastVoteRequest{
		CandidateID: c.ID, ElectionID: e.ID,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetMyVotes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetMyVotes_ResuelveMetadatos(t *testing.T) {
	uc, votes, e, c := votingFixture(t)
	voterID := uuid.New().String()
	castAt := time.Now()

	votes.details = []*repository.VoteDetail{
		{
			Vote: entity.Vote{
				ID: uuid.New().String(), VoterID: voterID,
				CandidateID: c.ID, ElectionID: e.ID, CastAt: castAt,
			},
			CandidateName:  c.Name,
			CandidateParty: c.Party,
			ElectionTitle:  e.Title,
		},
		{
			Vote: entity.Vote{ID: uuid.New().String(), VoterID: "otro-votante"},
		},
	}

	out, err := uc.GetMyVotes(voterID)
	require.NoError(t, err)
	require.Len(t, out, 1, "solo los votos propios")
	assert.Equal(t, "Ana Gómez", out[0].CandidateName)
	assert.Equal(t, "Consejo 2026", out[0].ElectionTitle)
}

func TestGetMyVotes_SinVotos(t *testing.T) {
	uc, _, _, _ := votingFixture(t)
	out, err := uc.GetMyVotes(uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, out)
}
