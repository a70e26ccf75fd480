package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrNoWorksheet   = errors.New("file tidak memiliki worksheet yang bisa dibaca")
	ErrNoDataRows    = errors.New("worksheet tidak memiliki baris data")
	ErrMissingHeader = errors.New("header wajib tidak ditemukan: minimal kolom name dan program")
)

// ReadRows membaca sheet pertama file .xlsx/.xls menjadi map header -> cell
// per baris. Header dinormalisasi lowercase; baris header wajib memuat
// minimal kolom name dan program.
func ReadRows(data []byte, filename string) ([]map[string]string, error) {
	rows, err := readRawRows(data, filename)
	if err != nil {
		return nil, err
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	hasName, hasProgram := false, false
	for _, h := range headers {
		switch h {
		case "name":
			hasName = true
		case "program":
			hasProgram = true
		}
	}
	if !hasName || !hasProgram {
		return nil, ErrMissingHeader
	}

	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = strings.TrimSpace(row[i])
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}

	return out, nil
}

func readRawRows(data []byte, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoWorksheet, err)
		}
		if workbook.NumSheets() == 0 {
			return nil, ErrNoWorksheet
		}
		rows := workbook.ReadAllCells(65536)
		if len(rows) == 0 {
			return nil, ErrNoDataRows
		}
		return rows, nil

	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoWorksheet, err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, ErrNoWorksheet
		}

		rows, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoWorksheet, err)
		}
		if len(rows) == 0 {
			return nil, ErrNoDataRows
		}
		return rows, nil
	}
}
