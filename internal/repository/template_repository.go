package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devnolife/sakti-certify/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrVersionConflict save mapping kalah cepat: versi yang dibawa caller
// sudah tidak sama dengan versi tersimpan
var ErrVersionConflict = errors.New("versi mapping sudah berubah sejak terakhir dibaca")

type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template, vars []model.TemplateVariable) error
	FindAll(ctx context.Context) ([]*model.Template, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Template, error)
	GetMapping(ctx context.Context, id uuid.UUID) ([]model.TemplateVariable, int64, error)
	SaveMapping(ctx context.Context, id uuid.UUID, vars []model.TemplateVariable, lastSeen int64) (int64, error)
}

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, tpl *model.Template, vars []model.TemplateVariable) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates (id, name, description, category, is_global, object_key, raw_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`, tpl.ID, tpl.Name, tpl.Description, tpl.Category, tpl.IsGlobal, tpl.ObjectKey, tpl.RawText)
	if err != nil {
		return err
	}

	for i, v := range vars {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO template_variables (template_id, position, var_key, var_value, label, format_hint)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, tpl.ID, i, v.Key, v.Value, v.Label, v.FormatHint)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *templateRepository) FindAll(ctx context.Context) ([]*model.Template, error) {
	var templates []*model.Template
	err := r.db.SelectContext(ctx, &templates, `
		SELECT id, name, description, category, is_global, object_key, raw_text,
		       mapping_version, created_at, updated_at
		FROM templates
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Template, error) {
	var tpl model.Template
	err := r.db.GetContext(ctx, &tpl, `
		SELECT id, name, description, category, is_global, object_key, raw_text,
		       mapping_version, created_at, updated_at
		FROM templates
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	vars, _, err := r.GetMapping(ctx, id)
	if err != nil {
		return nil, err
	}
	tpl.Variables = vars

	return &tpl, nil
}

func (r *templateRepository) GetMapping(ctx context.Context, id uuid.UUID) ([]model.TemplateVariable, int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx,
		"SELECT mapping_version FROM templates WHERE id = $1", id,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var vars []model.TemplateVariable
	err = r.db.SelectContext(ctx, &vars, `
		SELECT template_id, position, var_key, var_value, label, format_hint
		FROM template_variables
		WHERE template_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, 0, err
	}

	return vars, version, nil
}

// SaveMapping full replace mapping satu template. lastSeen adalah versi yang
// terakhir dibaca caller; nilai 0 melewati pemeriksaan (editor baru tanpa
// versi). Versi tersimpan naik monoton tiap save yang berhasil.
func (r *templateRepository) SaveMapping(ctx context.Context, id uuid.UUID, vars []model.TemplateVariable, lastSeen int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRowContext(ctx,
		"SELECT mapping_version FROM templates WHERE id = $1 FOR UPDATE", id,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sql.ErrNoRows
		}
		return 0, err
	}

	if lastSeen != 0 && lastSeen != current {
		return 0, ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM template_variables WHERE template_id = $1", id,
	); err != nil {
		return 0, err
	}

	for i, v := range vars {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO template_variables (template_id, position, var_key, var_value, label, format_hint)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, i, v.Key, v.Value, v.Label, v.FormatHint)
		if err != nil {
			return 0, err
		}
	}

	newVersion := current + 1
	if _, err := tx.ExecContext(ctx,
		"UPDATE templates SET mapping_version = $1, updated_at = NOW() WHERE id = $2",
		newVersion, id,
	); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newVersion, nil
}
