// Package pdf implementa la generación del reporte de resultados electorales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Resultados + fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada elección:                                          │
//	│    Título + estado + total de votos                          │
//	│    TABLA: Candidato | Partido | Votos | %                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de documento informativo                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/results"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ results.ReportPDFGenerator = (*MarotoResultsGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoResultsGenerator implementa results.ReportPDFGenerator usando Maroto v2.
type MarotoResultsGenerator struct{}

// NewMarotoResultsGenerator construye el generador.
func NewMarotoResultsGenerator() *MarotoResultsGenerator { return &MarotoResultsGenerator{} }

// GenerateResultsPDF genera el reporte y devuelve sus bytes.
func (g *MarotoResultsGenerator) GenerateResultsPDF(
	_ context.Context,
	elections []dto.AllResultsElection,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Resultados Electorales", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(elections) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay elecciones registradas.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	for _, e := range elections {
		m.AddRows(electionTitleRow(e))
		m.AddRows(tableHeaderRow())
		for _, r := range tableResultRows(e.Results) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE RESULTADOS ELECTORALES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// electionTitleRow: nombre de la elección con su estado y total de votos.
func electionTitleRow(e dto.AllResultsElection) core.Row {
	status := "Inactiva"
	if e.IsActive {
		status = "Activa"
	}
	total := 0
	for _, r := range e.Results {
		total += r.TotalVotes
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(e.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%s   |   %d votos", status, total), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de escrutinio.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Candidato", 5, align.Left),
		h("Partido", 4, align.Left),
		h("Votos", 1, align.Right),
		h("%", 2, align.Right),
	)
}

// tableResultRows: una fila por candidato.
func tableResultRows(results []dto.CandidateResultResponse) []core.Row {
	if len(results) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin candidatos", props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			}),
		))}
	}
	out := make([]core.Row, 0, len(results))
	for _, r := range results {
		out = append(out, row.New(7).Add(
			col.New(5).Add(text.New(
				r.CandidateName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				r.Party,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.TotalVotes),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.Share.StringFixed(2)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return out
}

// footerRow: leyenda final.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento informativo generado por el sistema electoral. "+
				"Los porcentajes se calculan sobre el total de votos de cada elección.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
