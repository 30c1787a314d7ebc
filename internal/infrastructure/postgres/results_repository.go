package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/election-api/internal/domain/repository"
)

var _ repository.ResultsRepository = (*ResultsRepo)(nil)

// ResultsRepo consultas de solo lectura sobre el registro de votos para
// escrutinio y monitoreo.
type ResultsRepo struct {
	db Querier
}

// NewResultsRepository construye el adaptador de agregación.
func NewResultsRepository(db Querier) *ResultsRepo {
	return &ResultsRepo{db: db}
}

// TallyForElection agrupa los votos de la elección por candidato, resuelve
// metadatos y ordena descendente por conteo. Los candidatos sin votos no
// aparecen: el JOIN parte de votes. El orden entre empatados queda al
// arbitrio del planificador.
func (r *ResultsRepo) TallyForElection(ctx context.Context, electionID string) ([]repository.CandidateTally, error) {
	const query = `
	SELECT c.id, c.name, c.party, COUNT(*) AS total_votes
	FROM votes v
	JOIN candidates c ON c.id = v.candidate_id
	WHERE v.election_id = $1
	GROUP BY c.id, c.name, c.party
	ORDER BY total_votes DESC`
	return r.tally(ctx, query, electionID)
}

// TallyAllCandidates devuelve todos los candidatos de la elección con su
// conteo, incluidos los ceros: aquí el JOIN parte de candidates.
func (r *ResultsRepo) TallyAllCandidates(ctx context.Context, electionID string) ([]repository.CandidateTally, error) {
	const query = `
	SELECT c.id, c.name, c.party, COUNT(v.id) AS total_votes
	FROM candidates c
	LEFT JOIN votes v ON v.candidate_id = c.id AND v.election_id = c.election_id
	WHERE c.election_id = $1
	GROUP BY c.id, c.name, c.party
	ORDER BY total_votes DESC, c.created_at`
	return r.tally(ctx, query, electionID)
}

// CountUsers total de usuarios registrados.
func (r *ResultsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountElections total de elecciones.
func (r *ResultsRepo) CountElections(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM elections`)
}

// VotesByElection votos emitidos por elección. Los votos de elecciones
// borradas se consolidan bajo una entrada sin ID con etiqueta fija.
func (r *ResultsRepo) VotesByElection(ctx context.Context) ([]repository.ElectionVoteCount, error) {
	const query = `
	SELECT COALESCE(e.id::text, ''),
	       COALESCE(e.title, 'Elección borrada o no disponible'),
	       COUNT(*) AS votes
	FROM votes v
	LEFT JOIN elections e ON e.id = v.election_id
	GROUP BY e.id, e.title
	ORDER BY votes DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("results.VotesByElection: %w", err)
	}
	defer rows.Close()
	var out []repository.ElectionVoteCount
	for rows.Next() {
		var row repository.ElectionVoteCount
		if err := rows.Scan(&row.ElectionID, &row.ElectionTitle, &row.Votes); err != nil {
			return nil, fmt.Errorf("results.VotesByElection scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// UserActivity devuelve cada usuario con las elecciones en las que votó.
// Dos pasadas: usuarios y votos con título resuelto, unidos en memoria (el
// volumen es el de un padrón institucional, no hace falta nada más listo).
func (r *ResultsRepo) UserActivity(ctx context.Context) ([]repository.UserActivity, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, role FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("results.UserActivity users: %w", err)
	}
	defer rows.Close()

	var users []repository.UserActivity
	index := make(map[string]int)
	for rows.Next() {
		var u repository.UserActivity
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("results.UserActivity scan user: %w", err)
		}
		u.VotedElections = []repository.VotedElection{}
		index[u.UserID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	voteRows, err := r.db.Query(ctx, `
		SELECT v.voter_id, COALESCE(e.id::text, ''),
		       COALESCE(e.title, 'Elección borrada o no disponible')
		FROM votes v
		LEFT JOIN elections e ON e.id = v.election_id
		ORDER BY v.cast_at`)
	if err != nil {
		return nil, fmt.Errorf("results.UserActivity votes: %w", err)
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var voterID string
		var ve repository.VotedElection
		if err := voteRows.Scan(&voterID, &ve.ElectionID, &ve.ElectionTitle); err != nil {
			return nil, fmt.Errorf("results.UserActivity scan vote: %w", err)
		}
		// Votos de usuarios borrados: se descartan, igual que el panel original.
		if i, ok := index[voterID]; ok {
			users[i].HasVoted = true
			users[i].VotedElections = append(users[i].VotedElections, ve)
		}
	}
	return users, voteRows.Err()
}

func (r *ResultsRepo) tally(ctx context.Context, query, electionID string) ([]repository.CandidateTally, error) {
	rows, err := r.db.Query(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("results.tally: %w", err)
	}
	defer rows.Close()
	var out []repository.CandidateTally
	for rows.Next() {
		var row repository.CandidateTally
		if err := rows.Scan(&row.CandidateID, &row.CandidateName, &row.Party, &row.TotalVotes); err != nil {
			return nil, fmt.Errorf("results.tally scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ResultsRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("results.count: %w", err)
	}
	return n, nil
}
