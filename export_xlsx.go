package sharetelemetry

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const protocolSheetName = "Results"

// WriteXLSX writes the matrix as a single-sheet protocol workbook with a
// styled header row, mirroring the CSV layout.
func (m *SessionMatrix) WriteXLSX(w io.Writer) error {
	protocol := excelize.NewFile()
	defer protocol.Close()

	if _, err := protocol.NewSheet(protocolSheetName); err != nil {
		return err
	}

	headerStyle, err := protocol.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"1c399e"},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Size:  14,
			Color: "ffffff",
			Bold:  true,
		},
	})

	if err != nil {
		return err
	}

	for col, label := range m.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)

		if err != nil {
			return err
		}

		if err := protocol.SetCellValue(protocolSheetName, cell, label); err != nil {
			return err
		}

		if err := protocol.SetCellStyle(protocolSheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIndex, row := range m.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIndex+2)

			if err != nil {
				return err
			}

			if err := protocol.SetCellValue(protocolSheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := protocol.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return protocol.Write(w)
}
