package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/render"
	"github.com/devnolife/sakti-certify/internal/spreadsheet"
	"github.com/devnolife/sakti-certify/internal/token"
)

var (
	ErrEmptyBatch       = errors.New("belum ada batch sertifikat, unggah spreadsheet terlebih dahulu")
	ErrInvalidAction    = errors.New("aksi navigasi tidak dikenal")
	ErrSpreadsheetRead  = errors.New("spreadsheet tidak bisa dibaca")
	ErrUploadSuperseded = errors.New("unggahan dibatalkan oleh unggahan yang lebih baru")
)

// Batas zoom manual preview
const (
	MinZoom = 0.25
	MaxZoom = 3.0
)

type CertificateService interface {
	UploadBatch(ctx context.Context, fileData []byte, filename string) (*model.BatchResult, error)
	CurrentBatch(ctx context.Context) (*model.BatchResult, error)
	Pages(ctx context.Context) ([]render.Page, error)
	Navigate(ctx context.Context, req model.NavigateRequest) (*model.ViewState, error)
	PreviewFace(ctx context.Context, templateID string) (*render.Face, error)
	BuildPrintPDF(ctx context.Context, templateID string) ([]byte, error)
	Verify(ctx context.Context, tok string) *model.VerifyResult
}

// certificateService memegang satu batch aktif di memori. Batch bukan data
// persisten; sekali proses cetak selesai, unggahan berikutnya menggantikannya.
type certificateService struct {
	renderer *render.Renderer
	cipher   *token.Cipher

	// decode bisa ditukar di pengujian untuk mengatur urutan selesainya
	// dua unggahan yang bersaing
	decode func(fileData []byte, filename string) ([]model.CertificateRecord, []string, error)

	mu         sync.Mutex
	generation uint64
	records    []model.CertificateRecord
	warnings   []string
	index      int
	face       render.Side
	zoom       float64
}

func NewCertificateService(renderer *render.Renderer, cipher *token.Cipher) CertificateService {
	return &certificateService{
		renderer: renderer,
		cipher:   cipher,
		decode:   decodeSpreadsheet,
		face:     render.SideFront,
		zoom:     1.0,
	}
}

func decodeSpreadsheet(fileData []byte, filename string) ([]model.CertificateRecord, []string, error) {
	rows, err := spreadsheet.ReadRows(fileData, filename)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSpreadsheetRead, err)
	}
	records, warnings := spreadsheet.Normalize(rows, spreadsheet.NewGenerator())
	return records, warnings, nil
}

// UploadBatch membaca spreadsheet, menormalkan barisnya, lalu menggantikan
// batch aktif. Decode berjalan di luar lock; hasil dari unggahan yang sudah
// disusul unggahan lebih baru dibuang, dan unggahan gagal tidak menyentuh
// batch yang sedang tampil.
func (s *certificateService) UploadBatch(ctx context.Context, fileData []byte, filename string) (*model.BatchResult, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	records, warnings, err := s.decode(fileData, filename)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// Sudah ada unggahan lebih baru selama decode berlangsung
		return nil, ErrUploadSuperseded
	}

	s.records = records
	s.warnings = warnings
	s.index = 0
	s.face = render.SideFront
	s.zoom = 1.0

	return &model.BatchResult{Records: records, Warnings: warnings}, nil
}

func (s *certificateService) CurrentBatch(ctx context.Context) (*model.BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return nil, ErrEmptyBatch
	}
	return &model.BatchResult{Records: s.records, Warnings: s.warnings}, nil
}

func (s *certificateService) Pages(ctx context.Context) ([]render.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return nil, ErrEmptyBatch
	}
	return render.Paginate(len(s.records)), nil
}

// Navigate memproses aksi preview dan mengembalikan posisi terbaru.
// Index dan sisi halaman dijepit, tidak pernah keluar rentang batch.
func (s *certificateService) Navigate(ctx context.Context, req model.NavigateRequest) (*model.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return nil, ErrEmptyBatch
	}

	switch req.Action {
	case "next":
		if s.face == render.SideFront {
			s.face = render.SideBack
		} else if s.index < len(s.records)-1 {
			s.index++
			s.face = render.SideFront
		}
	case "prev":
		if s.face == render.SideBack {
			s.face = render.SideFront
		} else if s.index > 0 {
			s.index--
			s.face = render.SideBack
		}
	case "toggle":
		if s.face == render.SideFront {
			s.face = render.SideBack
		} else {
			s.face = render.SideFront
		}
	case "zoom":
		z := req.Zoom
		if z < MinZoom {
			z = MinZoom
		}
		if z > MaxZoom {
			z = MaxZoom
		}
		s.zoom = z
	case "fit":
		s.zoom = render.FitZoom(req.ContainerWidth, render.FitPaddingPx, render.PageWidthPx)
	default:
		return nil, ErrInvalidAction
	}

	return &model.ViewState{
		Index: s.index,
		Total: len(s.records),
		Face:  string(s.face),
		Zoom:  s.zoom,
	}, nil
}

// PreviewFace merender sisi yang sedang tampil untuk record aktif
func (s *certificateService) PreviewFace(ctx context.Context, templateID string) (*render.Face, error) {
	s.mu.Lock()
	if len(s.records) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyBatch
	}
	rec := s.records[s.index]
	side := s.face
	s.mu.Unlock()

	if side == render.SideBack {
		return s.renderer.BuildBack(rec, templateID, render.ModePreview)
	}
	return s.renderer.BuildFront(rec, templateID, render.ModePreview)
}

// BuildPrintPDF merakit seluruh batch menjadi satu PDF, depan lalu belakang
// per record, urutan sama dengan baris spreadsheet
func (s *certificateService) BuildPrintPDF(ctx context.Context, templateID string) ([]byte, error) {
	s.mu.Lock()
	records := s.records
	s.mu.Unlock()
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}

	faces := make([]*render.Face, 0, len(records)*2)
	for _, rec := range records {
		front, err := s.renderer.BuildFront(rec, templateID, render.ModeBatch)
		if err != nil {
			return nil, err
		}
		back, err := s.renderer.BuildBack(rec, templateID, render.ModeBatch)
		if err != nil {
			return nil, err
		}
		faces = append(faces, front, back)
	}

	return render.WritePDF(faces)
}

// Verify mendekripsi token QR. Token rusak bukan error internal, hasilnya
// respons tidak valid dengan pesan untuk pemindai.
func (s *certificateService) Verify(ctx context.Context, tok string) *model.VerifyResult {
	payload, err := s.cipher.Decrypt(tok)
	if err != nil {
		return &model.VerifyResult{
			IsValid: false,
			Message: "Token verifikasi tidak valid atau sudah rusak",
		}
	}

	return &model.VerifyResult{
		IsValid:          true,
		Name:             payload.Name,
		OrganizationName: payload.OrganizationName,
		CertificateID:    payload.CertificateID,
		Message:          "Sertifikat terverifikasi dan diterbitkan oleh " + payload.OrganizationName,
	}
}
