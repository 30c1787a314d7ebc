package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el subconjunto de pgx que usan los repositorios. Lo satisfacen
// tanto *pgxpool.Pool como pgx.Tx, así el TxRunner puede atar los mismos
// repos a una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Nombres de las restricciones únicas del esquema (migrations/001_init.sql).
// Se usan para traducir violaciones 23505 al error de dominio correcto.
const (
	constraintUserEmail      = "users_email_key"
	constraintUserAccessCode = "users_access_code_key"
	constraintSingletonRole  = "users_singleton_role_idx"
	constraintCandidateParty = "candidates_election_party_key"
	constraintVotePerVoter   = "votes_voter_election_key"
)

// uniqueViolation devuelve el nombre de la restricción violada si err es una
// violación de constraint único (23505); cadena vacía en cualquier otro caso.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}
