package bilan

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
)

// renderPDF produces the printable bilan. Core fonts are latin-1, so all
// French text goes through the cp1252 translator.
func renderPDF(b *repo.Bilan) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Bilan de dépistage développemental (IDE)"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Version %d — générée le %s", b.Version, b.GeneratedAt.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	risk := ide.RiskLevel(b.GlobalRisk)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Synthèse"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"Score DG : %d. Niveau de risque global : %s. Âge développemental estimé : %s.",
		b.DgScore, risk.Name(), ide.FormatAgeMonths(b.DevelopmentalAgeMonths),
	)), "", "L", false)
	pdf.Ln(3)

	if len(b.GraphicProfile) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Profil par domaine"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(70, 6, tr("Domaine"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, tr("Score"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, tr("Seuil HR"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, tr("Seuil THR"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, tr("Risque"), "1", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, entry := range b.GraphicProfile {
			pdf.CellFormat(70, 6, tr(entry.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%d", entry.Score), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%d", entry.HighRiskThreshold), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 6, fmt.Sprintf("%d", entry.VeryHighRiskThreshold), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 6, tr(entry.Risk.Name()), "1", 1, "C", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Interprétation"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(b.Interpretation), "", "L", false)
	pdf.Ln(3)

	if b.Recommendations != nil && *b.Recommendations != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Recommandations"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(*b.Recommendations), "", "L", false)
		pdf.Ln(3)
	}

	if b.PractitionerComments != nil && *b.PractitionerComments != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr("Commentaires du praticien"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(*b.PractitionerComments), "", "L", false)
	}

	if b.ValidatedAt != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Validé le %s", b.ValidatedAt.Format("02/01/2006"))), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
