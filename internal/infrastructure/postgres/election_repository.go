package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

var _ repository.ElectionRepository = (*ElectionRepo)(nil)

// ElectionRepo implementación del puerto ElectionRepository sobre PostgreSQL.
type ElectionRepo struct {
	db Querier
}

// NewElectionRepository construye el adaptador de persistencia de elecciones.
func NewElectionRepository(db Querier) *ElectionRepo {
	return &ElectionRepo{db: db}
}

const electionColumns = `id, title, COALESCE(description, ''), start_time, end_time, is_active, COALESCE(created_by::text, ''), created_at, updated_at`

// Create persiste una elección nueva.
func (r *ElectionRepo) Create(e *entity.Election) error {
	query := `
		INSERT INTO elections (id, title, description, start_time, end_time, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.Title, e.Description, e.StartTime, e.EndTime, e.IsActive, e.CreatedBy,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert election: %w", err)
	}
	return nil
}

// GetByID obtiene una elección por ID; (nil, nil) si no existe.
func (r *ElectionRepo) GetByID(id string) (*entity.Election, error) {
	var e entity.Election
	err := r.db.QueryRow(context.Background(),
		`SELECT `+electionColumns+` FROM elections WHERE id = $1`, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.IsActive,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get election: %w", err)
	}
	return &e, nil
}

// Update persiste título, descripción, ventana y estado.
func (r *ElectionRepo) Update(e *entity.Election) error {
	query := `
		UPDATE elections
		SET title = $2, description = $3, start_time = $4, end_time = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.Title, e.Description, e.StartTime, e.EndTime, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update election: %w", err)
	}
	return nil
}

// Delete borra la elección. Sin cascada: candidatos y votos conservan su
// referencia huérfana.
func (r *ElectionRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM elections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete election: %w", err)
	}
	return nil
}

// List devuelve todas las elecciones, más recientes primero.
func (r *ElectionRepo) List() ([]*entity.Election, error) {
	return r.list(`SELECT ` + electionColumns + ` FROM elections ORDER BY created_at DESC`)
}

// ListActive devuelve las elecciones abiertas para votar: activas, con
// start_time alcanzado y end_time nulo o futuro.
func (r *ElectionRepo) ListActive(now time.Time) ([]*entity.Election, error) {
	query := `
		SELECT ` + electionColumns + `
		FROM elections
		WHERE is_active = true
		  AND start_time <= $1
		  AND (end_time IS NULL OR end_time >= $1)
		ORDER BY start_time`
	return r.list(query, now)
}

func (r *ElectionRepo) list(query string, args ...any) ([]*entity.Election, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list elections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Election
	for rows.Next() {
		var e entity.Election
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.IsActive,
			&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan election: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
