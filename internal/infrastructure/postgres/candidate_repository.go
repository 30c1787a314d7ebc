package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación del puerto CandidateRepository sobre
// PostgreSQL. election_id es una referencia débil: los listados resuelven el
// título con LEFT JOIN y lo dejan vacío si la elección no existe.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepository construye el adaptador de persistencia de candidatos.
func NewCandidateRepository(db Querier) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// Create persiste un candidato. La violación del índice único
// (election_id, party) se traduce a ErrDuplicateParty.
func (r *CandidateRepo) Create(c *entity.Candidate) error {
	query := `
		INSERT INTO candidates (id, name, party, photo, election_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.Name, c.Party, c.Photo, c.ElectionID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintCandidateParty {
			return domain.ErrDuplicateParty
		}
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// GetByID obtiene un candidato por ID; (nil, nil) si no existe.
func (r *CandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	var c entity.Candidate
	err := r.db.QueryRow(context.Background(), `
		SELECT id, name, party, COALESCE(photo, ''), election_id, created_at, updated_at
		FROM candidates WHERE id = $1`, id).Scan(
		&c.ID, &c.Name, &c.Party, &c.Photo, &c.ElectionID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return &c, nil
}

// Update aplica los cambios; mismas reglas de unicidad que Create.
func (r *CandidateRepo) Update(c *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET name = $2, party = $3, photo = NULLIF($4, ''), election_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.Name, c.Party, c.Photo, c.ElectionID, c.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintCandidateParty {
			return domain.ErrDuplicateParty
		}
		return fmt.Errorf("update candidate: %w", err)
	}
	return nil
}

// Delete borra el candidato (permitido en cualquier momento).
func (r *CandidateRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

// List devuelve todos los candidatos con el título de su elección.
func (r *CandidateRepo) List() ([]*repository.CandidateWithElection, error) {
	return r.list(`
		SELECT c.id, c.name, c.party, COALESCE(c.photo, ''), c.election_id,
		       c.created_at, c.updated_at, COALESCE(e.title, '')
		FROM candidates c
		LEFT JOIN elections e ON e.id = c.election_id
		ORDER BY c.created_at`)
}

// ListByElection devuelve los candidatos de una elección.
func (r *CandidateRepo) ListByElection(electionID string) ([]*repository.CandidateWithElection, error) {
	return r.list(`
		SELECT c.id, c.name, c.party, COALESCE(c.photo, ''), c.election_id,
		       c.created_at, c.updated_at, COALESCE(e.title, '')
		FROM candidates c
		LEFT JOIN elections e ON e.id = c.election_id
		WHERE c.election_id = $1
		ORDER BY c.created_at`, electionID)
}

// ExistsByElectionAndParty chequea el duplicado de partido (comparación
// exacta, sensible a mayúsculas). excludeID descarta al propio candidato.
func (r *CandidateRepo) ExistsByElectionAndParty(electionID, party, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(), `
		SELECT EXISTS(
			SELECT 1 FROM candidates
			WHERE election_id = $1 AND party = $2 AND id::text <> $3
		)`, electionID, party, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("candidate party exists: %w", err)
	}
	return exists, nil
}

func (r *CandidateRepo) list(query string, args ...any) ([]*repository.CandidateWithElection, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()
	var list []*repository.CandidateWithElection
	for rows.Next() {
		var c repository.CandidateWithElection
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Party, &c.Photo, &c.ElectionID,
			&c.CreatedAt, &c.UpdatedAt, &c.ElectionTitle,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
