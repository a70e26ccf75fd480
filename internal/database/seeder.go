package database

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Seeder struct {
	db *sqlx.DB
}

func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedDefaultTemplate membuat template sertifikat bawaan jika tabel masih kosong.
// Template ini tidak punya binary di storage, hanya raw text untuk editor variabel.
func (s *Seeder) SeedDefaultTemplate(ctx context.Context) error {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM templates").Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Templates already seeded, skipping")
		return nil
	}

	rawText := "SERTIFIKAT\n" +
		"Diberikan kepada {{nama}}\n" +
		"atas partisipasinya dalam program {{program}}\n" +
		"yang diselenggarakan oleh {{penyelenggara}}\n" +
		"Diterbitkan pada {{tanggal}}"

	templateID := uuid.New()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, description, category, is_global, object_key, raw_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, '', $6, NOW(), NOW())
	`,
		templateID,
		"Sertifikat Laboratorium",
		"Template sertifikat bawaan untuk asisten laboratorium",
		"sertifikat",
		true,
		rawText,
	)
	if err != nil {
		return err
	}

	// Mapping awal: key ditemukan dari raw text, value masih kosong
	keys := []string{"nama", "program", "penyelenggara", "tanggal"}
	for i, key := range keys {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO template_variables (template_id, position, var_key, var_value, label, format_hint)
			VALUES ($1, $2, $3, '', $4, '')
		`, templateID, i, key, key)
		if err != nil {
			return err
		}
	}

	log.Println("Default certificate template seeded")
	return nil
}
