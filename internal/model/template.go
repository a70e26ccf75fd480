package model

import (
	"time"

	"github.com/google/uuid"
)

type TemplateCategory string

const (
	CategorySurat      TemplateCategory = "surat"
	CategorySertifikat TemplateCategory = "sertifikat"
	CategoryLaporan    TemplateCategory = "laporan"
)

func (c TemplateCategory) IsValid() bool {
	switch c {
	case CategorySurat, CategorySertifikat, CategoryLaporan:
		return true
	}
	return false
}

type Template struct {
	ID             uuid.UUID        `db:"id"              json:"id"`
	Name           string           `db:"name"            json:"name"`
	Description    string           `db:"description"     json:"description"`
	Category       TemplateCategory `db:"category"        json:"category"`
	IsGlobal       bool             `db:"is_global"       json:"is_global"`
	ObjectKey      string           `db:"object_key"      json:"-"`
	RawText        string           `db:"raw_text"        json:"raw_text"`
	MappingVersion int64            `db:"mapping_version" json:"mapping_version"`
	CreatedAt      time.Time        `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"      json:"updated_at"`

	// Diisi saat template dibaca lengkap
	Variables []TemplateVariable `db:"-" json:"variables,omitempty"`
}

// TemplateVariable satu entri mapping placeholder -> nilai.
// Urutan posisi dipertahankan untuk tampilan editor.
type TemplateVariable struct {
	TemplateID uuid.UUID `db:"template_id" json:"-"`
	Position   int       `db:"position"    json:"position"`
	Key        string    `db:"var_key"     json:"key"`
	Value      string    `db:"var_value"   json:"value"`
	Label      string    `db:"label"       json:"label"`
	FormatHint string    `db:"format_hint" json:"format_hint,omitempty"`
}

type UploadTemplateRequest struct {
	Name        string
	Description string
	Category    string
	IsGlobal    bool
}

type SaveMappingRequest struct {
	Version   int64              `json:"version"`
	Variables []TemplateVariable `json:"variables"`
}

// MappingResponse hasil GetMapping: entri terurut + versi tersimpan
type MappingResponse struct {
	TemplateID uuid.UUID          `json:"template_id"`
	Version    int64              `json:"version"`
	Variables  []TemplateVariable `json:"variables"`
}

// TemplateExport bentuk export JSON satu template
type TemplateExport struct {
	Name            string            `json:"name"`
	VariableMapping map[string]string `json:"variableMapping"`
	Metadata        ExportMetadata    `json:"metadata"`
}

type ExportMetadata struct {
	VariableCount int       `json:"variableCount"`
	CreatedAt     time.Time `json:"createdAt"`
	TemplateID    uuid.UUID `json:"templateId"`
}
