package xlsx

import (
	"github.com/xuri/excelize/v2"

	"github.com/midbel/cells/formula"
	"github.com/midbel/cells/table"
)

const defaultSheet = "Sheet1"

// Export writes the evaluated table into a fresh workbook, computed
// numbers as numeric cells and everything else as text.
func Export(t *table.Table, file string) error {
	f := excelize.NewFile()
	defer f.Close()
	for _, pos := range t.Positions() {
		cell, err := excelize.CoordinatesToCellName(int(pos.Column-'A')+1, pos.Row)
		if err != nil {
			return err
		}
		var value any = t.Display(pos)
		if expr, ok := t.Computed(pos); ok {
			if num, ok := formula.Number(expr); ok {
				value = num
			}
		}
		if err := f.SetCellValue(defaultSheet, cell, value); err != nil {
			return err
		}
	}
	return f.SaveAs(file)
}
