package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-resume-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// rowSpec binds one resource to its table layout. The generic store walks
// this table the same way the manager walks the registry definitions.
type rowSpec struct {
	table   string
	columns []string
	scoped  bool
	args    func(e domain.Entity) []any
	scan    func(row pgx.Row) (domain.Entity, error)
}

type resumeStore struct {
	db    *pgxpool.Pool
	specs map[domain.ResourceName]rowSpec
}

// NewResumeStore returns the pgx-backed ResourceStore covering every
// resume resource table.
func NewResumeStore(db *pgxpool.Pool) domain.ResourceStore {
	return &resumeStore{db: db, specs: buildRowSpecs()}
}

func buildRowSpecs() map[domain.ResourceName]rowSpec {
	return map[domain.ResourceName]rowSpec{
		domain.ResourceSkills: {
			table:   "resume_skill",
			columns: []string{"name", "type", "level", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				s := e.(*domain.Skill)
				return []any{s.Name, s.Type, s.Level, s.UserID, s.CreatedAt, s.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var s domain.Skill
				err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Level, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
				return &s, err
			},
		},
		domain.ResourceLanguages: {
			table:   "resume_language",
			columns: []string{"name", "level", "flag", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				l := e.(*domain.Language)
				return []any{l.Name, l.Level, l.Flag, l.UserID, l.CreatedAt, l.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var l domain.Language
				err := row.Scan(&l.ID, &l.Name, &l.Level, &l.Flag, &l.UserID, &l.CreatedAt, &l.UpdatedAt)
				return &l, err
			},
		},
		domain.ResourceHobbies: {
			table:   "resume_hobby",
			columns: []string{"name", "icon", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				h := e.(*domain.Hobby)
				return []any{h.Name, h.Icon, h.UserID, h.CreatedAt, h.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var h domain.Hobby
				err := row.Scan(&h.ID, &h.Name, &h.Icon, &h.UserID, &h.CreatedAt, &h.UpdatedAt)
				return &h, err
			},
		},
		domain.ResourceExperiences: {
			table:   "resume_experience",
			columns: []string{"title", "description", "company", "started_at", "ended_at", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				x := e.(*domain.Experience)
				return []any{x.Title, x.Description, x.Company, x.StartedAt, x.EndedAt, x.UserID, x.CreatedAt, x.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var x domain.Experience
				err := row.Scan(&x.ID, &x.Title, &x.Description, &x.Company, &x.StartedAt, &x.EndedAt, &x.UserID, &x.CreatedAt, &x.UpdatedAt)
				return &x, err
			},
		},
		domain.ResourceEducations: {
			table:   "resume_formation",
			columns: []string{"name", "school", "grade_level", "description", "started_at", "ended_at", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				ed := e.(*domain.Education)
				return []any{ed.Name, ed.School, ed.GradeLevel, ed.Description, ed.StartedAt, ed.EndedAt, ed.UserID, ed.CreatedAt, ed.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var ed domain.Education
				err := row.Scan(&ed.ID, &ed.Name, &ed.School, &ed.GradeLevel, &ed.Description, &ed.StartedAt, &ed.EndedAt, &ed.UserID, &ed.CreatedAt, &ed.UpdatedAt)
				return &ed, err
			},
		},
		domain.ResourceReferences: {
			table:   "resume_reference",
			columns: []string{"title", "company", "description", "started_at", "ended_at", "user_id", "created_at", "updated_at"},
			scoped:  true,
			args: func(e domain.Entity) []any {
				r := e.(*domain.Reference)
				return []any{r.Title, r.Company, r.Description, r.StartedAt, r.EndedAt, r.UserID, r.CreatedAt, r.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var r domain.Reference
				err := row.Scan(&r.ID, &r.Title, &r.Company, &r.Description, &r.StartedAt, &r.EndedAt, &r.UserID, &r.CreatedAt, &r.UpdatedAt)
				return &r, err
			},
		},
		domain.ResourceProjects: {
			table:   "resume_project",
			columns: []string{"name", "description", "git_link", "created_at", "updated_at"},
			scoped:  false,
			args: func(e domain.Entity) []any {
				p := e.(*domain.Project)
				return []any{p.Name, p.Description, p.GitLink, p.CreatedAt, p.UpdatedAt}
			},
			scan: func(row pgx.Row) (domain.Entity, error) {
				var p domain.Project
				err := row.Scan(&p.ID, &p.Name, &p.Description, &p.GitLink, &p.CreatedAt, &p.UpdatedAt)
				return &p, err
			},
		},
	}
}

func (s *resumeStore) spec(res domain.ResourceName) (rowSpec, error) {
	spec, ok := s.specs[res]
	if !ok {
		return rowSpec{}, &domain.UnknownResourceError{Resource: string(res)}
	}
	return spec, nil
}

func (s *resumeStore) Insert(ctx context.Context, res domain.ResourceName, e domain.Entity) error {
	spec, err := s.spec(res)
	if err != nil {
		return err
	}

	placeholders := make([]string, 0, len(spec.columns)+1)
	for i := 0; i <= len(spec.columns); i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (id, %s) VALUES (%s)",
		spec.table, strings.Join(spec.columns, ", "), strings.Join(placeholders, ", "),
	)
	args := append([]any{e.GetID()}, spec.args(e)...)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return err
	}
	if ref, ok := e.(*domain.Reference); ok {
		if err := replaceMediaRows(ctx, tx, ref); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *resumeStore) FindByID(ctx context.Context, res domain.ResourceName, id uuid.UUID, owner *uuid.UUID) (domain.Entity, error) {
	spec, err := s.spec(res)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1", strings.Join(spec.columns, ", "), spec.table)
	args := []any{id}
	if spec.scoped && owner != nil {
		query += " AND user_id = $2"
		args = append(args, *owner)
	}

	entity, err := spec.scan(s.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if ref, ok := entity.(*domain.Reference); ok {
		if err := s.loadMedias(ctx, ref); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

func (s *resumeStore) FindAll(ctx context.Context, res domain.ResourceName, owner *uuid.UUID) ([]domain.Entity, error) {
	spec, err := s.spec(res)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(spec.columns, ", "), spec.table)
	var args []any
	if spec.scoped && owner != nil {
		query += " WHERE user_id = $1"
		args = append(args, *owner)
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entity
	for rows.Next() {
		entity, err := spec.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if res == domain.ResourceReferences {
		for _, e := range out {
			if err := s.loadMedias(ctx, e.(*domain.Reference)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (s *resumeStore) Update(ctx context.Context, res domain.ResourceName, e domain.Entity) error {
	spec, err := s.spec(res)
	if err != nil {
		return err
	}

	sets := make([]string, 0, len(spec.columns))
	for i, col := range spec.columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", spec.table, strings.Join(sets, ", "))
	args := append([]any{e.GetID()}, spec.args(e)...)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if ref, ok := e.(*domain.Reference); ok {
		if err := replaceMediaRows(ctx, tx, ref); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *resumeStore) Delete(ctx context.Context, res domain.ResourceName, id uuid.UUID, owner *uuid.UUID) error {
	spec, err := s.spec(res)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", spec.table)
	args := []any{id}
	if spec.scoped && owner != nil {
		query += " AND user_id = $2"
		args = append(args, *owner)
	}

	result, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// replaceMediaRows implements the wholesale media replacement: every
// existing row is deleted, then the current collection is inserted in
// order. Runs inside the reference's own transaction.
func replaceMediaRows(ctx context.Context, tx pgx.Tx, ref *domain.Reference) error {
	if _, err := tx.Exec(ctx, "DELETE FROM resume_reference_media WHERE reference_id = $1", ref.ID); err != nil {
		return err
	}
	for pos, media := range ref.MediaItems {
		_, err := tx.Exec(ctx,
			"INSERT INTO resume_reference_media (id, reference_id, path, position) VALUES ($1, $2, $3, $4)",
			media.ID, ref.ID, media.Path, pos,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *resumeStore) loadMedias(ctx context.Context, ref *domain.Reference) error {
	rows, err := s.db.Query(ctx,
		"SELECT id, reference_id, path FROM resume_reference_media WHERE reference_id = $1 ORDER BY position",
		ref.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var medias []domain.Media
	for rows.Next() {
		var m domain.Media
		if err := rows.Scan(&m.ID, &m.ReferenceID, &m.Path); err != nil {
			return err
		}
		medias = append(medias, m)
	}
	ref.MediaItems = medias
	return rows.Err()
}
