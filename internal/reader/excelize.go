package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// excelizeEngine reads OOXML workbooks (.xlsx and the macro-enabled .xlsm
// variant the OEM desk still sends).
type excelizeEngine struct{}

func (e *excelizeEngine) Name() string { return EngineExcelize }

func (e *excelizeEngine) Read(path, sheet string) ([][]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	grid := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			// GetRows renders blanks as empty strings; the frame wants
			// them as missing cells.
			if cell != "" {
				cells[j] = cell
			}
		}
		grid[i] = cells
	}
	return grid, nil
}
