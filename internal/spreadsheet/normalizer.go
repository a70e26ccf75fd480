package spreadsheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/devnolife/sakti-certify/internal/model"
)

// Nama kolom input. Lookup dilakukan lowercase, tapi pesan warning memakai
// bentuk kanonik ini supaya cocok dengan header file contoh.
const (
	colCertificateTitle = "certificateTitle"
	colName             = "name"
	colProgram          = "program"
	colSubtitle         = "subtitle"
	colMeetings         = "meetings"
	colTotalScore       = "totalScore"
	colMaterials        = "materials"
	colAttendance       = "attendance"
	colAssignments      = "assignments"
	colParticipation    = "participation"
	colGradesBreakdown  = "gradesBreakdown"
	colCompetencies     = "competencies"
	colWeeklyData       = "weeklyData"
	colTechnologies     = "technologies"
	colRecommendations  = "futureRecommendations"
	colFeedback         = "instructorFeedback"
)

// Default untuk field string yang kosong
const (
	DefaultCertificateTitle = "Sertifikat Kompetensi"
	DefaultName             = "Peserta"
	DefaultProgram          = "Program Umum"
	DefaultSubtitle         = "Telah menyelesaikan program dengan baik"
	DefaultFeedback         = "Peserta menunjukkan perkembangan yang baik selama program berlangsung."
)

// DefaultGrades rincian nilai bawaan saat kolom JSON rusak atau kosong
var DefaultGrades = []model.GradeItem{
	{Subject: "Materi Inti", Grade: "A", Score: 90},
	{Subject: "Praktikum", Grade: "A", Score: 88},
	{Subject: "Proyek Akhir", Grade: "A-", Score: 85},
}

// DefaultCompetencies daftar kompetensi bawaan
var DefaultCompetencies = []model.Competency{
	{Name: "Pemahaman Materi", Value: 85, ColorFrom: "#6366f1", ColorTo: "#8b5cf6", Level: "Mahir"},
	{Name: "Keterampilan Praktik", Value: 80, ColorFrom: "#06b6d4", ColorTo: "#3b82f6", Level: "Mahir"},
	{Name: "Kolaborasi", Value: 88, ColorFrom: "#10b981", ColorTo: "#14b8a6", Level: "Sangat Mahir"},
}

// DefaultWeeklyData deret aktivitas mingguan bawaan
var DefaultWeeklyData = []float64{60, 65, 70, 75, 80, 85, 88, 90}

// DefaultTechnologies dan DefaultRecommendations untuk kolom daftar
var (
	DefaultTechnologies    = []string{"Umum"}
	DefaultRecommendations = []string{"Lanjutkan ke program tingkat berikutnya"}
)

// Normalize mengubah baris mentah spreadsheet menjadi CertificateRecord.
// Tiap field diproses independen: kolom rusak diganti default dan dicatat
// sebagai warning, tidak pernah menggagalkan baris lain. Urutan output
// sama dengan input dan tidak ada baris yang dibuang.
//
// issueDate dan verificationId SELALU dari sistem; kolom sejenis di input
// diabaikan diam-diam.
func Normalize(rows []map[string]string, gen *Generator) ([]model.CertificateRecord, []string) {
	records := make([]model.CertificateRecord, 0, len(rows))
	var warnings []string

	// Satu tanggal terbit untuk seluruh pass normalisasi
	issueDate := gen.IssueDate()

	for i, row := range rows {
		rec := model.CertificateRecord{
			CertificateTitle: stringField(row, colCertificateTitle, DefaultCertificateTitle),
			Name:             stringField(row, colName, DefaultName),
			Program:          stringField(row, colProgram, DefaultProgram),
			Subtitle:         stringField(row, colSubtitle, DefaultSubtitle),

			Meetings:      int(numberField(row, colMeetings, 0)),
			TotalScore:    numberField(row, colTotalScore, 0),
			Materials:     int(numberField(row, colMaterials, 0)),
			Attendance:    numberField(row, colAttendance, 0),
			Assignments:   numberField(row, colAssignments, 0),
			Participation: numberField(row, colParticipation, 0),

			Technologies:          listField(row, colTechnologies, DefaultTechnologies),
			FutureRecommendations: listField(row, colRecommendations, DefaultRecommendations),
			InstructorFeedback:    stringField(row, colFeedback, DefaultFeedback),
		}

		rec.IssueDate = issueDate
		rec.VerificationID = gen.VerificationID(rec.Program)

		rec.Grades = jsonField(row, i, colGradesBreakdown, DefaultGrades, &warnings)
		rec.Competencies = jsonField(row, i, colCompetencies, DefaultCompetencies, &warnings)
		rec.WeeklyData = jsonField(row, i, colWeeklyData, DefaultWeeklyData, &warnings)

		records = append(records, rec)
	}

	return records, warnings
}

func cell(row map[string]string, col string) string {
	return strings.TrimSpace(row[strings.ToLower(col)])
}

func stringField(row map[string]string, col, fallback string) string {
	if v := cell(row, col); v != "" {
		return v
	}
	return fallback
}

// numberField kebijakan toNumber: parse gagal atau kosong -> default
func numberField(row map[string]string, col string, fallback float64) float64 {
	v := cell(row, col)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return fallback
	}
	return n
}

func listField(row map[string]string, col string, fallback []string) []string {
	v := cell(row, col)
	if v == "" {
		return append([]string(nil), fallback...)
	}

	parts := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}

// jsonField decode satu kolom JSON secara independen. Gagal parse berarti
// warning + nilai default, tidak pernah error.
func jsonField[T any](row map[string]string, rowIdx int, col string, fallback T, warnings *[]string) T {
	v := cell(row, col)
	if v == "" {
		return cloneDefault(fallback)
	}

	var parsed T
	if err := json.Unmarshal([]byte(v), &parsed); err != nil {
		*warnings = append(*warnings,
			fmt.Sprintf("Baris %d: kolom %q bukan JSON yang valid", rowIdx+1, col))
		return cloneDefault(fallback)
	}
	return parsed
}

// cloneDefault menyalin slice default supaya record tidak berbagi backing array
func cloneDefault[T any](v T) T {
	switch s := any(v).(type) {
	case []model.GradeItem:
		return any(append([]model.GradeItem(nil), s...)).(T)
	case []model.Competency:
		return any(append([]model.Competency(nil), s...)).(T)
	case []float64:
		return any(append([]float64(nil), s...)).(T)
	}
	return v
}
