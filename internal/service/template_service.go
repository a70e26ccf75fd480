package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/devnolife/sakti-certify/internal/docx"
	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/devnolife/sakti-certify/internal/repository"
	"github.com/devnolife/sakti-certify/internal/utils"
	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound = errors.New("template tidak ditemukan")
	ErrMappingConflict  = errors.New("mapping sudah diubah editor lain, muat ulang sebelum menyimpan")
	ErrInvalidCategory  = errors.New("kategori harus salah satu dari: surat, sertifikat, laporan")
)

type TemplateService interface {
	Upload(ctx context.Context, req model.UploadTemplateRequest, fileData []byte) (*model.Template, error)
	GetAll(ctx context.Context) ([]*model.Template, error)
	GetByID(ctx context.Context, id string) (*model.Template, error)
	GetMapping(ctx context.Context, id string) (*model.MappingResponse, error)
	SaveMapping(ctx context.Context, id string, req model.SaveMappingRequest) (int64, error)
	Download(ctx context.Context, id string) ([]byte, string, error)
	ExportHTML(ctx context.Context, id string) ([]byte, string, error)
	ExportJSON(ctx context.Context, id string) (*model.TemplateExport, error)
}

type templateService struct {
	repo    repository.TemplateRepository
	storage *utils.StorageService
}

func NewTemplateService(repo repository.TemplateRepository, storage *utils.StorageService) TemplateService {
	return &templateService{repo: repo, storage: storage}
}

// Upload menyimpan binary template, mengekstrak teks untuk preview, dan
// menanam mapping awal dari placeholder yang ditemukan (value masih kosong).
func (s *templateService) Upload(ctx context.Context, req model.UploadTemplateRequest, fileData []byte) (*model.Template, error) {
	category := model.TemplateCategory(req.Category)
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	rawText, err := docx.ExtractText(fileData)
	if err != nil {
		return nil, fmt.Errorf("file template tidak bisa dibaca: %w", err)
	}

	objectKey, err := s.storage.UploadTemplate(ctx, req.Name, fileData)
	if err != nil {
		return nil, err
	}

	tpl := &model.Template{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		IsGlobal:    req.IsGlobal,
		ObjectKey:   objectKey,
		RawText:     rawText,
	}

	keys := docx.DiscoverPlaceholders(rawText)
	vars := make([]model.TemplateVariable, 0, len(keys))
	for i, key := range keys {
		vars = append(vars, model.TemplateVariable{
			TemplateID: tpl.ID,
			Position:   i,
			Key:        key,
			Label:      key,
		})
	}

	if err := s.repo.Create(ctx, tpl, vars); err != nil {
		// Binary sudah terlanjur naik; jangan tinggalkan object yatim
		_ = s.storage.DeleteObject(ctx, objectKey)
		return nil, err
	}

	tpl.Variables = vars
	return tpl, nil
}

func (s *templateService) GetAll(ctx context.Context) ([]*model.Template, error) {
	return s.repo.FindAll(ctx)
}

func (s *templateService) GetByID(ctx context.Context, id string) (*model.Template, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("ID tidak valid")
	}

	tpl, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}
	return tpl, nil
}

func (s *templateService) GetMapping(ctx context.Context, id string) (*model.MappingResponse, error) {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.MappingResponse{
		TemplateID: tpl.ID,
		Version:    tpl.MappingVersion,
		Variables:  tpl.Variables,
	}, nil
}

// SaveMapping full replace, last-write-wins dijaga lewat versi monoton:
// save dengan versi basi ditolak eksplisit, bukan diam-diam menimpa.
func (s *templateService) SaveMapping(ctx context.Context, id string, req model.SaveMappingRequest) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, errors.New("ID tidak valid")
	}

	seen := make(map[string]bool, len(req.Variables))
	for _, v := range req.Variables {
		if v.Key == "" {
			return 0, errors.New("key variabel tidak boleh kosong")
		}
		if seen[v.Key] {
			return 0, fmt.Errorf("key variabel duplikat: %s", v.Key)
		}
		seen[v.Key] = true
	}

	version, err := s.repo.SaveMapping(ctx, uid, req.Variables, req.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, ErrTemplateNotFound
		case errors.Is(err, repository.ErrVersionConflict):
			return 0, ErrMappingConflict
		}
		return 0, err
	}
	return version, nil
}

// Download mengembalikan binary template. Jika mapping punya nilai terisi,
// hasilnya binary yang sudah ditulis ulang dengan sufiks nama _with_variables;
// mapping kosong bukan error, cukup kembalikan binary asli.
func (s *templateService) Download(ctx context.Context, id string) ([]byte, string, error) {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := s.storage.DownloadObject(ctx, tpl.ObjectKey)
	if err != nil {
		return nil, "", err
	}

	mapping := make(map[string]string)
	for _, v := range tpl.Variables {
		if v.Value != "" {
			mapping[v.Key] = v.Value
		}
	}

	baseName := strings.ReplaceAll(tpl.Name, " ", "-")
	if len(mapping) == 0 {
		return data, baseName + ".docx", nil
	}

	rewritten, err := docx.Rewrite(data, mapping)
	if err != nil {
		return nil, "", fmt.Errorf("gagal menulis ulang template: %w", err)
	}
	return rewritten, baseName + "_with_variables.docx", nil
}

// ExportHTML dokumen standalone berisi markup teks template plus dump mapping
func (s *templateService) ExportHTML(ctx context.Context, id string) ([]byte, string, error) {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"id\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(tpl.Name) + "</title>\n")
	b.WriteString("<style>body{font-family:serif;max-width:48rem;margin:2rem auto}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.3rem .6rem}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>" + html.EscapeString(tpl.Name) + "</h1>\n")

	b.WriteString("<section>\n")
	for _, line := range strings.Split(tpl.RawText, "\n") {
		b.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
	}
	b.WriteString("</section>\n")

	b.WriteString("<h2>Variabel</h2>\n<table>\n<tr><th>Key</th><th>Label</th><th>Nilai</th></tr>\n")
	for _, v := range tpl.Variables {
		b.WriteString("<tr><td>" + html.EscapeString(v.Key) + "</td><td>" +
			html.EscapeString(v.Label) + "</td><td>" + html.EscapeString(v.Value) + "</td></tr>\n")
	}
	b.WriteString("</table>\n</body>\n</html>\n")

	baseName := strings.ReplaceAll(tpl.Name, " ", "-")
	return []byte(b.String()), baseName + ".html", nil
}

func (s *templateService) ExportJSON(ctx context.Context, id string) (*model.TemplateExport, error) {
	tpl, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string, len(tpl.Variables))
	for _, v := range tpl.Variables {
		mapping[v.Key] = v.Value
	}

	return &model.TemplateExport{
		Name:            tpl.Name,
		VariableMapping: mapping,
		Metadata: model.ExportMetadata{
			VariableCount: len(tpl.Variables),
			CreatedAt:     tpl.CreatedAt,
			TemplateID:    tpl.ID,
		},
	}, nil
}
