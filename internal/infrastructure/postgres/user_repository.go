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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// has_voted no es una columna: se deriva con EXISTS sobre votes.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, name, email, COALESCE(password_hash, ''), role, COALESCE(access_code, ''), created_at, updated_at`

// Create persiste un nuevo usuario. Traduce las violaciones de unicidad:
// email duplicado y rol singleton ya ocupado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, access_code, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.AccessCode,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		switch uniqueViolation(err) {
		case constraintUserEmail:
			return domain.ErrEmailAlreadyExists
		case constraintSingletonRole:
			return domain.ErrRoleAlreadyTaken
		case constraintUserAccessCode:
			return domain.ErrAccessCodeTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByAccessCode obtiene un votante por su código (match exacto).
func (r *UserRepo) GetByAccessCode(code string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE access_code = $1 LIMIT 1`, code)
}

// RoleExists indica si ya hay un usuario con ese rol.
func (r *UserRepo) RoleExists(role string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return exists, nil
}

// List devuelve todos los usuarios con su estado de voto derivado del
// registro de votos.
func (r *UserRepo) List() ([]*repository.UserWithVoteStatus, error) {
	query := `
		SELECT ` + userColumns + `,
		       EXISTS(SELECT 1 FROM votes v WHERE v.voter_id = users.id) AS has_voted
		FROM users
		ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*repository.UserWithVoteStatus
	for rows.Next() {
		var u repository.UserWithVoteStatus
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.AccessCode,
			&u.CreatedAt, &u.UpdatedAt, &u.HasVoted,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListByRoles devuelve los usuarios con alguno de los roles dados.
func (r *UserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = ANY($1) ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, roles)
	if err != nil {
		return nil, fmt.Errorf("list users by roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza nombre, email, password y rol de un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, password_hash = NULLIF($4, ''), role = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintUserEmail {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetAccessCode asigna el código de acceso de un votante.
func (r *UserRepo) SetAccessCode(id, code string) error {
	query := `UPDATE users SET access_code = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, code)
	if err != nil {
		if uniqueViolation(err) == constraintUserAccessCode {
			return domain.ErrAccessCodeTaken
		}
		return fmt.Errorf("set access code: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID. Sus votos quedan en el registro.
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.AccessCode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func scanUser(rows pgx.Rows) (*entity.User, error) {
	var u entity.User
	if err := rows.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.AccessCode,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
