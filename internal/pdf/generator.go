package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/cimar/ecare-legends/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(export model.LegendExport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Liste des legends"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	subtitle := fmt.Sprintf("Exporté le %s (%d legends)", formatTime(export.GeneratedAt), len(export.Items))
	pdf.CellFormat(0, 6, tr(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	headers := []string{"Id", "Client", "Matricule", "Chauffeur", "Carte RFID", "Entrée parking"}
	widths := []float64{20, 70, 40, 60, 40, 37}

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 7, tr(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	drawHeader()

	for _, item := range export.Items {
		// A4 landscape is 210mm tall; break before running into the margin.
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawHeader()
		}
		row := []string{
			strconv.FormatInt(item.ID, 10),
			derefString(item.ClientName),
			item.Matricule,
			item.ChauffeurName,
			derefString(item.RFIDCard),
			formatTimePtr(item.ParkingAt),
		}
		for i, value := range row {
			pdf.CellFormat(widths[i], 6, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
