package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rfpdocs/internal/domain"
)

const overviewSheet = "Overview"

// Excel caps sheet names at 31 characters.
const maxSheetName = 31

// BuildWorkbook renders an extraction as an XLSX workbook: an overview sheet
// with the advisory counters, a key-values sheet, and one sheet per
// extracted table. The counters are copied verbatim, never recomputed.
func BuildWorkbook(ex *domain.Extraction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return nil, err
	}

	if err := writeOverview(f, ex); err != nil {
		return nil, err
	}

	pairs := domain.ParseKeyValues(ex.KeyValuesJSON)
	if len(pairs) > 0 {
		if err := writeKeyValuesSheet(f, pairs); err != nil {
			return nil, err
		}
	}

	used := map[string]bool{strings.ToLower(overviewSheet): true, "key values": true}
	for i, t := range ex.Tables() {
		name := sheetName(t.Name, i, used)
		if err := writeTableSheet(f, name, t); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeOverview(f *excelize.File, ex *domain.Extraction) error {
	rows := [][2]interface{}{
		{"Document ID", ex.DocumentID.String()},
		{"Status", string(ex.Status)},
	}
	if ex.ExtractedAt != nil {
		rows = append(rows, [2]interface{}{"Extracted At", ex.ExtractedAt.Format(time.RFC3339)})
	}
	if ex.PageCount != nil {
		rows = append(rows, [2]interface{}{"Pages", *ex.PageCount})
	}
	if ex.SheetCount != nil {
		rows = append(rows, [2]interface{}{"Sheets", *ex.SheetCount})
	}
	if ex.CharacterCount != nil {
		rows = append(rows, [2]interface{}{"Characters", *ex.CharacterCount})
	}
	if ex.TableCount != nil {
		rows = append(rows, [2]interface{}{"Tables", *ex.TableCount})
	}
	for i, row := range rows {
		if err := f.SetCellValue(overviewSheet, cell(1, i+1), row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(overviewSheet, cell(2, i+1), row[1]); err != nil {
			return err
		}
	}
	return nil
}

func writeKeyValuesSheet(f *excelize.File, pairs []domain.KeyValuePair) error {
	const sheet = "Key Values"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", "Key"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	for i, p := range pairs {
		if err := f.SetCellValue(sheet, cell(1, i+2), p.Key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell(2, i+2), p.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeTableSheet(f *excelize.File, sheet string, t domain.ExtractedTable) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for r, row := range t.Rows {
		for c, val := range row {
			if err := f.SetCellValue(sheet, cell(c+1, r+1), val); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetName derives a unique, Excel-legal sheet name from a table name.
func sheetName(name string, index int, used map[string]bool) string {
	s := strings.TrimSpace(name)
	if s == "" {
		s = fmt.Sprintf("Table %d", index+1)
	}
	// Characters Excel forbids in sheet names.
	s = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_").Replace(s)
	if len(s) > maxSheetName {
		s = s[:maxSheetName]
	}
	base := s
	for n := 2; used[strings.ToLower(s)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trim := base
		if len(trim)+len(suffix) > maxSheetName {
			trim = trim[:maxSheetName-len(suffix)]
		}
		s = trim + suffix
	}
	used[strings.ToLower(s)] = true
	return s
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
