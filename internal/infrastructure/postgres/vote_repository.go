package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

var _ repository.VoteRepository = (*VoteRepo)(nil)

// VoteRepo implementación del puerto VoteRepository sobre PostgreSQL. La
// tabla votes es append-only y lleva la restricción única
// (voter_id, election_id) que cierra la carrera del doble voto.
type VoteRepo struct {
	db Querier
}

// NewVoteRepository construye el adaptador de persistencia del registro de votos.
func NewVoteRepository(db Querier) *VoteRepo {
	return &VoteRepo{db: db}
}

// Create inserta el voto. La violación de unicidad se reporta como
// ErrAlreadyVoted: es el mismo caso de negocio que el chequeo previo.
func (r *VoteRepo) Create(v *entity.Vote) error {
	query := `
		INSERT INTO votes (id, voter_id, candidate_id, election_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		v.ID, v.VoterID, v.CandidateID, v.ElectionID, v.CastAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintVotePerVoter {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("insert vote: %w", err)
	}
	return nil
}

// HasVoted indica si el votante ya votó en la elección dada.
func (r *VoteRepo) HasVoted(voterID, electionID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM votes WHERE voter_id = $1 AND election_id = $2)`,
		voterID, electionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has voted: %w", err)
	}
	return exists, nil
}

// HasVotedAny indica si el votante votó en alguna elección.
func (r *VoteRepo) HasVotedAny(voterID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM votes WHERE voter_id = $1)`, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has voted any: %w", err)
	}
	return exists, nil
}

// ListByVoter devuelve los votos del votante con candidato y elección
// resueltos. El JOIN con candidates es interno a propósito: los votos cuyo
// candidato fue borrado no se listan. La elección sí puede faltar (LEFT).
func (r *VoteRepo) ListByVoter(voterID string) ([]*repository.VoteDetail, error) {
	query := `
		SELECT v.id, v.voter_id, v.candidate_id, v.election_id, v.cast_at,
		       c.name, c.party,
		       COALESCE(e.title, ''), COALESCE(e.description, '')
		FROM votes v
		JOIN candidates c ON c.id = v.candidate_id
		LEFT JOIN elections e ON e.id = v.election_id
		WHERE v.voter_id = $1
		ORDER BY v.cast_at DESC`
	rows, err := r.db.Query(context.Background(), query, voterID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()
	var list []*repository.VoteDetail
	for rows.Next() {
		var v repository.VoteDetail
		if err := rows.Scan(
			&v.ID, &v.VoterID, &v.CandidateID, &v.ElectionID, &v.CastAt,
			&v.CandidateName, &v.CandidateParty,
			&v.ElectionTitle, &v.ElectionDescription,
		); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
