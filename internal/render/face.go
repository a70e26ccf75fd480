// Package render membangun layout dua sisi sertifikat dan merakit hasilnya
// menjadi stream PDF siap cetak. Pembangunan face murni terhadap inputnya;
// satu-satunya bagian acak adalah warna dekoratif yang sumber randomnya
// bisa di-seed (lihat Theme).
package render

import (
	"fmt"
	"strconv"

	"github.com/devnolife/sakti-certify/internal/config"
	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/token"
)

type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

type Mode string

const (
	ModePreview Mode = "preview"
	ModeBatch   Mode = "batch"
)

// Geometri halaman: rasio tetap 297:210 (A4 landscape), lepas dari container
const (
	PageWidthMM  = 297.0
	PageHeightMM = 210.0
	FrameInsetMM = 8.0

	// Lebar halaman preview dalam piksel (A4 landscape pada 96 dpi)
	PageWidthPx  = 1123.0
	FitPaddingPx = 24.0
)

type QRCode struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Bar satu bar kompetensi. Value nilai mentah record; WidthPct lebar bar
// yang dipakai painter, sama dengan Value kecuali clamp diaktifkan.
type Bar struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	WidthPct  float64 `json:"width_pct"`
	ColorFrom string  `json:"color_from"`
	ColorTo   string  `json:"color_to"`
	Level     string  `json:"level"`
}

type ChartPoint struct {
	Week  int     `json:"week"`
	Value float64 `json:"value"`
}

// Badge region logo dengan warna dekoratif dan grid noise statis
type Badge struct {
	Color string   `json:"color"`
	Noise [][]bool `json:"noise"`
}

// Spacing jarak vertikal antar blok; satu-satunya yang dibedakan antar mode
type Spacing struct {
	SectionGapMM float64 `json:"section_gap_mm"`
	BlockGapMM   float64 `json:"block_gap_mm"`
}

// Face satu sisi sertifikat yang sudah terikat ke satu record dan satu
// template. Field depan dan belakang dipisah; painter memilih berdasarkan Side.
type Face struct {
	Side         Side   `json:"side"`
	TemplateID   string `json:"template_id"`
	FrameInsetMM float64 `json:"frame_inset_mm"`
	Badge        Badge   `json:"badge"`
	Spacing      Spacing `json:"spacing"`

	SignatureQR QRCode `json:"signature_qr"`
	VerifyQR    QRCode `json:"verify_qr"`

	// Sisi depan
	Title          string `json:"title,omitempty"`
	Recipient      string `json:"recipient,omitempty"`
	Subtitle       string `json:"subtitle,omitempty"`
	Program        string `json:"program,omitempty"`
	IssueDate      string `json:"issue_date,omitempty"`
	VerificationID string `json:"verification_id,omitempty"`

	// Sisi belakang
	Stats           []Stat            `json:"stats,omitempty"`
	Bars            []Bar             `json:"bars,omitempty"`
	Grades          []model.GradeItem `json:"grades,omitempty"`
	Weekly          []ChartPoint      `json:"weekly,omitempty"`
	Technologies    []string          `json:"technologies,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Feedback        string            `json:"feedback,omitempty"`
}

type Renderer struct {
	cfg     config.RenderConfig
	baseURL string
	cipher  *token.Cipher
	theme   *Theme
}

func NewRenderer(cfg config.RenderConfig, baseURL string, cipher *token.Cipher, theme *Theme) *Renderer {
	return &Renderer{cfg: cfg, baseURL: baseURL, cipher: cipher, theme: theme}
}

// BuildFront membangun sisi depan: frame border, badge, blok judul/penerima
func (r *Renderer) BuildFront(rec model.CertificateRecord, templateID string, mode Mode) (*Face, error) {
	sigQR, verQR, err := r.qrPair(rec)
	if err != nil {
		return nil, err
	}

	return &Face{
		Side:         SideFront,
		TemplateID:   templateID,
		FrameInsetMM: FrameInsetMM,
		Badge:        r.theme.NewBadge(),
		Spacing:      spacingFor(mode),
		SignatureQR:  sigQR,
		VerifyQR:     verQR,

		Title:          rec.CertificateTitle,
		Recipient:      rec.Name,
		Subtitle:       rec.Subtitle,
		Program:        rec.Program,
		IssueDate:      rec.IssueDate,
		VerificationID: rec.VerificationID,
	}, nil
}

// BuildBack membangun sisi belakang: grid statistik, bar kompetensi,
// rincian nilai, panel analitik mingguan, dan catatan instruktur
func (r *Renderer) BuildBack(rec model.CertificateRecord, templateID string, mode Mode) (*Face, error) {
	sigQR, verQR, err := r.qrPair(rec)
	if err != nil {
		return nil, err
	}

	bars := make([]Bar, 0, len(rec.Competencies))
	for _, c := range rec.Competencies {
		width := c.Value
		if r.cfg.ClampCompetency {
			width = min(100, max(0, width))
		}
		bars = append(bars, Bar{
			Name:      c.Name,
			Value:     c.Value,
			WidthPct:  width,
			ColorFrom: c.ColorFrom,
			ColorTo:   c.ColorTo,
			Level:     c.Level,
		})
	}

	weekly := make([]ChartPoint, 0, len(rec.WeeklyData))
	for i, v := range rec.WeeklyData {
		weekly = append(weekly, ChartPoint{Week: i + 1, Value: v})
	}

	return &Face{
		Side:         SideBack,
		TemplateID:   templateID,
		FrameInsetMM: FrameInsetMM,
		Badge:        r.theme.NewBadge(),
		Spacing:      spacingFor(mode),
		SignatureQR:  sigQR,
		VerifyQR:     verQR,

		Stats: []Stat{
			{Label: "Pertemuan", Value: strconv.Itoa(rec.Meetings)},
			{Label: "Total Nilai", Value: formatNumber(rec.TotalScore)},
			{Label: "Materi", Value: strconv.Itoa(rec.Materials)},
			{Label: "Kehadiran", Value: formatNumber(rec.Attendance) + "%"},
			{Label: "Tugas", Value: formatNumber(rec.Assignments) + "%"},
			{Label: "Partisipasi", Value: formatNumber(rec.Participation) + "%"},
		},
		Bars:            bars,
		Grades:          rec.Grades,
		Weekly:          weekly,
		Technologies:    rec.Technologies,
		Recommendations: rec.FutureRecommendations,
		Feedback:        rec.InstructorFeedback,
	}, nil
}

// qrPair mengenkripsi payload verifikasi dan membangun dua URL QR yang
// hanya berbeda path segment
func (r *Renderer) qrPair(rec model.CertificateRecord) (QRCode, QRCode, error) {
	tok, err := r.cipher.Encrypt(token.Payload{
		Name:             rec.Name,
		OrganizationName: r.cfg.OrganizationName,
		CertificateID:    rec.VerificationID,
	})
	if err != nil {
		return QRCode{}, QRCode{}, fmt.Errorf("gagal membuat token QR: %w", err)
	}

	sig := QRCode{
		Label: "Tanda Tangan Digital",
		URL:   fmt.Sprintf("%s/verify/signature/%s", r.baseURL, tok),
	}
	ver := QRCode{
		Label: "Verifikasi Sertifikat",
		URL:   fmt.Sprintf("%s/verify/%s", r.baseURL, tok),
	}
	return sig, ver, nil
}

// spacingFor: mode hanya boleh menggeser jarak vertikal, bukan konten
func spacingFor(mode Mode) Spacing {
	if mode == ModeBatch {
		return Spacing{SectionGapMM: 4, BlockGapMM: 2}
	}
	return Spacing{SectionGapMM: 6, BlockGapMM: 3}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
