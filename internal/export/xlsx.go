package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Indicators"

// XLSXExporter writes rows to a single worksheet; undefined values are blank.
type XLSXExporter struct{}

func (XLSXExporter) Extension() string { return "xlsx" }

func (XLSXExporter) Export(rows []Row, path string) error {
	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	headStyle, _ := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := fx.SetCellValue(xlsxSheet, cell, h); err != nil {
			return err
		}
		fx.SetCellStyle(xlsxSheet, cell, cell, headStyle)
	}
	for r, row := range rows {
		for c, v := range row.cells() {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := fx.SetCellValue(xlsxSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return fx.SaveAs(path)
}
