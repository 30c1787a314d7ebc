package voting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// VotingUseCase el flujo de votación: emitir un voto y consultar los propios.
type VotingUseCase struct {
	txRunner TxRunner
	voteRepo repository.VoteRepository
	now      func() time.Time
}

// NewVotingUseCase construye el caso de uso de votación.
func NewVotingUseCase(txRunner TxRunner, voteRepo repository.VoteRepository) *VotingUseCase {
	return &VotingUseCase{txRunner: txRunner, voteRepo: voteRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *VotingUseCase) WithClock(now func() time.Time) *VotingUseCase {
	uc.now = now
	return uc
}

// CastVote emite el voto de voterID. Las precondiciones se evalúan en orden
// y cada una corta con su propio error:
//
//  1. candidateID y electionID son UUIDs bien formados → ErrInvalidID
//  2. la elección existe                               → ErrElectionNotFound
//  3. la elección está activa                          → ErrElectionNotActive
//  4. el votante no votó ya en esa elección            → ErrAlreadyVoted
//  5. el candidato existe y pertenece a la elección    → ErrInvalidCandidate
//
// Chequeos e inserción corren dentro de una transacción; la restricción
// única (voter_id, election_id) de la tabla es el respaldo contra el doble
// envío concurrente y también se reporta como ErrAlreadyVoted. No se escribe
// ningún flag en el usuario: "ya votó" se deriva del registro al leer.
func (uc *VotingUseCase) CastVote(ctx context.Context, voterID string, in dto.CastVoteRequest) (*dto.CastVoteResponse, error) {
	if uuid.Validate(in.CandidateID) != nil || uuid.Validate(in.ElectionID) != nil {
		return nil, domain.ErrInvalidID
	}

	vote := &entity.Vote{
		ID:          uuid.New().String(),
		VoterID:     voterID,
		CandidateID: in.CandidateID,
		ElectionID:  in.ElectionID,
		CastAt:      uc.now(),
	}

	err := uc.txRunner.Run(ctx, func(
		votes repository.VoteRepository,
		elections repository.ElectionRepository,
		candidates repository.CandidateRepository,
	) error {
		election, err := elections.GetByID(in.ElectionID)
		if err != nil {
			return err
		}
		if election == nil {
			return domain.ErrElectionNotFound
		}
		if !election.IsActive {
			return domain.ErrElectionNotActive
		}

		voted, err := votes.HasVoted(voterID, in.ElectionID)
		if err != nil {
			return err
		}
		if voted {
			return domain.ErrAlreadyVoted
		}

		candidate, err := candidates.GetByID(in.CandidateID)
		if err != nil {
			return err
		}
		if candidate == nil || candidate.ElectionID != in.ElectionID {
			return domain.ErrInvalidCandidate
		}

		return votes.Create(vote)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CastVoteResponse{
		Message: "Voto emitido correctamente",
		Vote: dto.VoteResponse{
			ID:          vote.ID,
			VoterID:     vote.VoterID,
			CandidateID: vote.CandidateID,
			ElectionID:  vote.ElectionID,
			CastAt:      vote.CastAt,
		},
	}, nil
}

// GetMyVotes devuelve los votos del votante con candidato y elección
// resueltos. Los votos cuyo candidato fue borrado no aparecen.
func (uc *VotingUseCase) GetMyVotes(voterID string) ([]dto.MyVoteResponse, error) {
	votes, err := uc.voteRepo.ListByVoter(voterID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MyVoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, dto.MyVoteResponse{
			ID:                  v.ID,
			CandidateID:         v.CandidateID,
			CandidateName:       v.CandidateName,
			CandidateParty:      v.CandidateParty,
			ElectionID:          v.ElectionID,
			ElectionTitle:       v.ElectionTitle,
			ElectionDescription: v.ElectionDescription,
			CastAt:              v.CastAt,
		})
	}
	return out, nil
}
