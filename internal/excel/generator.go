package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cimar/ecare-legends/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(export model.LegendExport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Legends"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Exporté le")
	set("B1", formatTime(export.GeneratedAt))
	set("A2", "Nombre de legends")
	set("B2", len(export.Items))

	const tableRow = 4
	headers := []string{"Id", "Client", "Matricule", "Chauffeur", "Carte RFID", "Entrée parking"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, tableRow)
		if err != nil {
			return nil, err
		}
		set(cell, header)
	}

	for i, item := range export.Items {
		values := []interface{}{
			item.ID,
			derefString(item.ClientName),
			item.Matricule,
			item.ChauffeurName,
			derefString(item.RFIDCard),
			formatTimePtr(item.ParkingAt),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, tableRow+1+i)
			if err != nil {
				return nil, err
			}
			set(cell, value)
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
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
