package repository

import (
	"context"
	"encoding/json"

	"jobboard/internal/database"
	"jobboard/internal/domain/quiz"

	"github.com/google/uuid"
)

type QuizRepository interface {
	Create(ctx context.Context, q quiz.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (quiz.Quiz, error)
	List(ctx context.Context, limit, offset int) ([]quiz.Quiz, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]quiz.Quiz, error)
	Update(ctx context.Context, q quiz.Quiz) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateResponse(ctx context.Context, r quiz.Response) error
	GetResponse(ctx context.Context, quizID, candidateID uuid.UUID) (quiz.Response, error)
}

type PostgresQuizRepository struct {
	db database.DB
}

func NewPostgresQuizRepository(db database.DB) *PostgresQuizRepository {
	return &PostgresQuizRepository{db: db}
}

const quizColumns = `id, job_id, title, description, duration_minutes, questions, created_by, created_at, updated_at`

func (r *PostgresQuizRepository) Create(ctx context.Context, q quiz.Quiz) error {
	questions, err := encodeQuestions(q.Questions)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO quizzes (id, job_id, title, description, duration_minutes, questions, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)`,
		q.ID, q.JobID, q.Title, q.Description, q.DurationMinutes, questions, q.CreatedBy,
	)
	if err != nil && database.IsForeignKeyViolation(err) {
		return ErrJobNotFound
	}
	return err
}

func (r *PostgresQuizRepository) GetByID(ctx context.Context, id uuid.UUID) (quiz.Quiz, error) {
	return scanQuiz(r.db.QueryRow(ctx, `SELECT `+quizColumns+` FROM quizzes WHERE id = $1`, id))
}

func (r *PostgresQuizRepository) List(ctx context.Context, limit, offset int) ([]quiz.Quiz, error) {
	limit, offset = clampPage(limit, offset, 20, 100)
	rows, err := r.db.Query(ctx,
		`SELECT `+quizColumns+` FROM quizzes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuizzes(rows)
}

func (r *PostgresQuizRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]quiz.Quiz, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectQuizzes(rows)
}

func (r *PostgresQuizRepository) Update(ctx context.Context, q quiz.Quiz) error {
	questions, err := encodeQuestions(q.Questions)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE quizzes SET title = $2, description = $3, duration_minutes = $4, questions = $5::jsonb,
			updated_at = now()
		 WHERE id = $1`,
		q.ID, q.Title, q.Description, q.DurationMinutes, questions,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (r *PostgresQuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (r *PostgresQuizRepository) CreateResponse(ctx context.Context, resp quiz.Response) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO quiz_responses (id, quiz_id, candidate_id, score, time_taken_seconds, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		resp.ID, resp.QuizID, resp.CandidateID, resp.Score, resp.TimeTakenSeconds, resp.SubmittedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		if database.IsForeignKeyViolation(err) {
			return ErrQuizNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresQuizRepository) GetResponse(ctx context.Context, quizID, candidateID uuid.UUID) (quiz.Response, error) {
	var resp quiz.Response
	err := r.db.QueryRow(ctx,
		`SELECT id, quiz_id, candidate_id, score, time_taken_seconds, submitted_at
		 FROM quiz_responses
		 WHERE quiz_id = $1 AND candidate_id = $2`,
		quizID, candidateID,
	).Scan(&resp.ID, &resp.QuizID, &resp.CandidateID, &resp.Score, &resp.TimeTakenSeconds, &resp.SubmittedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return quiz.Response{}, ErrQuizResponseNotFound
		}
		return quiz.Response{}, err
	}
	return resp, nil
}

func encodeQuestions(qs []quiz.Question) (string, error) {
	if qs == nil {
		qs = []quiz.Question{}
	}
	b, err := json.Marshal(qs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func collectQuizzes(rows database.Rows) ([]quiz.Quiz, error) {
	out := make([]quiz.Quiz, 0)
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanQuiz(row database.Row) (quiz.Quiz, error) {
	var q quiz.Quiz
	var questions []byte
	err := row.Scan(&q.ID, &q.JobID, &q.Title, &q.Description, &q.DurationMinutes, &questions,
		&q.CreatedBy, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	q.Questions = []quiz.Question{}
	if len(questions) > 0 {
		if err := json.Unmarshal(questions, &q.Questions); err != nil {
			return quiz.Quiz{}, err
		}
	}
	return q, nil
}
