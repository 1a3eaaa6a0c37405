package infra

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const maxAnchoColumna = 50

// ErrHojaVacia is returned when an uploaded workbook has no rows to read.
var ErrHojaVacia = errors.New("excel: el archivo no tiene filas")

// EscribirReporte writes a single-sheet workbook with a header row followed by
// filas. Each column is as wide as its longest value plus two, capped at 50.
func EscribirReporte(path, hoja string, columnas []string, filas [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return fmt.Errorf("excel: rename sheet: %w", err)
	}

	anchos := make([]int, len(columnas))
	for i, col := range columnas {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, celda, col); err != nil {
			return fmt.Errorf("excel: header: %w", err)
		}
		anchos[i] = utf8.RuneCountInString(col)
	}

	for r, fila := range filas {
		for c, v := range fila {
			if c >= len(columnas) {
				break
			}
			celda, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(hoja, celda, v); err != nil {
				return fmt.Errorf("excel: row %d: %w", r+1, err)
			}
			if v == nil {
				continue
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > anchos[c] {
				anchos[c] = n
			}
		}
	}

	for i, w := range anchos {
		col, _ := excelize.ColumnNumberToName(i + 1)
		ancho := w + 2
		if ancho > maxAnchoColumna {
			ancho = maxAnchoColumna
		}
		if err := f.SetColWidth(hoja, col, col, float64(ancho)); err != nil {
			return fmt.Errorf("excel: column width: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("excel: create storage dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: save: %w", err)
	}
	return nil
}

// LeerPrimeraHoja returns every row of the first sheet of the workbook in r.
func LeerPrimeraHoja(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: open: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, ErrHojaVacia
	}
	rows, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("excel: read sheet %q: %w", hojas[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrHojaVacia
	}
	return rows, nil
}
