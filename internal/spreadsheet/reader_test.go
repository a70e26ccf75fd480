package spreadsheet

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildXLSX merakit file xlsx di memori lewat excelize
func buildXLSX(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, r := range rows {
		for j, v := range r {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func TestReadRows(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"Name", "Program", "Meetings"},
		{"Jane", "AI Lab", "12"},
		{"Budi", "Informatika", ""},
	})

	rows, err := ReadRows(data, "peserta.xlsx")
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d, want 2", len(rows))
	}
	if rows[0]["name"] != "Jane" || rows[0]["program"] != "AI Lab" || rows[0]["meetings"] != "12" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1]["meetings"] != "" {
		t.Errorf("cell kosong harus jadi string kosong, dapat %q", rows[1]["meetings"])
	}
}

func TestReadRowsHeaderOnly(t *testing.T) {
	// Hanya header tanpa baris data: error level file, nol record
	data := buildXLSX(t, [][]string{{"name", "program"}})

	_, err := ReadRows(data, "kosong.xlsx")
	if !errors.Is(err, ErrNoDataRows) {
		t.Errorf("ReadRows() error = %v, want ErrNoDataRows", err)
	}
}

func TestReadRowsMissingRequiredHeader(t *testing.T) {
	data := buildXLSX(t, [][]string{
		{"nama_lengkap", "jurusan"},
		{"Jane", "AI"},
	})

	_, err := ReadRows(data, "salah.xlsx")
	if !errors.Is(err, ErrMissingHeader) {
		t.Errorf("ReadRows() error = %v, want ErrMissingHeader", err)
	}
}

func TestReadRowsUnreadableBinary(t *testing.T) {
	_, err := ReadRows([]byte("bukan spreadsheet"), "rusak.xlsx")
	if !errors.Is(err, ErrNoWorksheet) {
		t.Errorf("ReadRows() error = %v, want ErrNoWorksheet", err)
	}
}

func TestReadRowsShortRow(t *testing.T) {
	// Baris lebih pendek dari header tetap menghasilkan map lengkap
	data := buildXLSX(t, [][]string{
		{"name", "program", "subtitle"},
		{"Jane"},
	})

	rows, err := ReadRows(data, "pendek.xlsx")
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if rows[0]["subtitle"] != "" {
		t.Errorf("kolom hilang harus string kosong, dapat %q", rows[0]["subtitle"])
	}
}
