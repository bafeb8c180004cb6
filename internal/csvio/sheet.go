package csvio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	xls "github.com/extrame/xls"
	excelize "github.com/xuri/excelize/v2"
)

// ReadSheet reads an uploaded catalog snapshot and returns its cells.
// The parser is picked by extension: .xlsx, legacy .xls, or .csv.
func ReadSheet(r io.Reader, filename string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		b, err := io.ReadAll(DecodeUTF8(r))
		if err != nil {
			return nil, err
		}
		return Rows(string(b)), nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

func readXLSX(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

// readXLS fixes the table width itself and reads every cell up to it; the
// library's per-row LastCol is unreliable on sparse sheets.
func readXLS(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// legacy exports are usually windows-1252, sometimes plain UTF-8
	var wb *xls.WorkBook
	var lastErr error
	for _, cs := range []string{"windows-1252", "utf-8"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), cs)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	maxCols := xlsMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cells := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cells[j] = strings.TrimSpace(row.Col(j))
			}
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func xlsMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 256
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}
