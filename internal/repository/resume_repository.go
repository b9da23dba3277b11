package repository

import (
	"context"
	"encoding/json"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeRepository interface {
	Create(ctx context.Context, r resume.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (resume.Resume, error)
	List(ctx context.Context, limit, offset int) ([]resume.Resume, error)
	SearchBySkill(ctx context.Context, skills []string, limit, offset int) ([]resume.Resume, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]resume.Resume, error)
	Update(ctx context.Context, r resume.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetRecommendations(ctx context.Context, id uuid.UUID, entries []recommendation.Entry) error
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const resumeColumns = `id, owner_id, document, file_url, recommendations, created_at, updated_at`

func (r *PostgresResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	doc, err := json.Marshal(res.Document)
	if err != nil {
		return err
	}
	recs, err := encodeEntries(res.Recommendations)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes (id, owner_id, document, file_url, recommendations)
		 VALUES ($1, $2, $3::jsonb, $4, $5::jsonb)`,
		res.ID, res.OwnerID, string(doc), res.FileURL, recs,
	)
	return err
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	return scanResume(r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id))
}

// GetByOwner returns the owner's most recently created résumé.
func (r *PostgresResumeRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (resume.Resume, error) {
	return scanResume(r.db.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE owner_id = $1 ORDER BY created_at DESC LIMIT 1`,
		ownerID,
	))
}

func (r *PostgresResumeRepository) List(ctx context.Context, limit, offset int) ([]resume.Resume, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

// SearchBySkill matches résumés having a skill whose name contains any of
// skills, case-insensitively.
func (r *PostgresResumeRepository) SearchBySkill(ctx context.Context, skills []string, limit, offset int) ([]resume.Resume, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	patterns := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			patterns = append(patterns, "%"+likeEscaper.Replace(s)+"%")
		}
	}
	if len(patterns) == 0 {
		return []resume.Resume{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+resumeColumns+`
		 FROM resumes r
		 WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements(COALESCE(r.document->'skills', '[]'::jsonb)) s
			WHERE s->>'name' ILIKE ANY($1::text[])
		 )
		 ORDER BY r.created_at DESC
		 LIMIT $2 OFFSET $3`,
		patterns, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

func (r *PostgresResumeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]resume.Resume, error) {
	if len(ids) == 0 {
		return []resume.Resume{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = ANY($1::uuid[])`,
		uuidStrings(ids),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResumes(rows)
}

func (r *PostgresResumeRepository) Update(ctx context.Context, res resume.Resume) error {
	doc, err := json.Marshal(res.Document)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE resumes SET document = $2::jsonb, file_url = $3, updated_at = now() WHERE id = $1`,
		res.ID, string(doc), res.FileURL,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) SetRecommendations(ctx context.Context, id uuid.UUID, entries []recommendation.Entry) error {
	recs, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx, `UPDATE resumes SET recommendations = $2::jsonb, updated_at = now() WHERE id = $1`, id, recs)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrResumeNotFound
	}
	return nil
}

func collectResumes(rows database.Rows) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var res resume.Resume
	var doc, recs []byte
	if err := row.Scan(&res.ID, &res.OwnerID, &doc, &res.FileURL, &recs, &res.CreatedAt, &res.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &res.Document); err != nil {
			return resume.Resume{}, err
		}
	}
	entries, err := decodeEntries(recs)
	if err != nil {
		return resume.Resume{}, err
	}
	res.Recommendations = entries
	return res, nil
}
