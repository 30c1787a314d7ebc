package voting

import (
	"context"

	"github.com/jhoicas/election-api/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// CastVote lo usa para que la cadena de precondiciones y la inserción del
// voto sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		votes repository.VoteRepository,
		elections repository.ElectionRepository,
		candidates repository.CandidateRepository,
	) error) error
}
