package results

import (
	"context"
	"time"

	"github.com/jhoicas/election-api/internal/application/dto"
)

// ReportPDFGenerator puerto para la representación en PDF del reporte de
// resultados (lo implementa la infraestructura con Maroto).
type ReportPDFGenerator interface {
	GenerateResultsPDF(ctx context.Context, elections []dto.AllResultsElection, generatedAt time.Time) ([]byte, error)
}
