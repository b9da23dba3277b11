package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/quiz"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultQuizDurationMinutes = 30

type QuizInput struct {
	JobID           string
	Title           string
	Description     string
	DurationMinutes int
	Questions       []quiz.Question
}

type SubmitQuizInput struct {
	Answers          []string
	TimeTakenSeconds int
}

type QuizUsecase interface {
	Create(ctx context.Context, actor Actor, in QuizInput) (quiz.Quiz, error)
	Get(ctx context.Context, id string) (quiz.Quiz, error)
	List(ctx context.Context, limit, offset int) ([]quiz.Quiz, error)
	ListByJob(ctx context.Context, jobID string) ([]quiz.Quiz, error)
	Update(ctx context.Context, actor Actor, id string, in QuizInput) (quiz.Quiz, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Submit(ctx context.Context, candidateID uuid.UUID, quizID string, in SubmitQuizInput) (quiz.Response, error)
	GetScore(ctx context.Context, actor Actor, quizID, candidateID string) (quiz.Response, error)
}

type Quizzes struct {
	quizzes  repository.QuizRepository
	jobs     repository.JobRepository
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewQuizUsecase(quizzes repository.QuizRepository, jobs repository.JobRepository, notifier Notifier, logger *zap.Logger) *Quizzes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Quizzes{quizzes: quizzes, jobs: jobs, notifier: notifier, logger: logger, now: time.Now}
}

func (u *Quizzes) Create(ctx context.Context, actor Actor, in QuizInput) (quiz.Quiz, error) {
	if actor.UserID == uuid.Nil {
		return quiz.Quiz{}, ErrUnauthorized
	}
	jid, err := parseID(in.JobID)
	if err != nil {
		return quiz.Quiz{}, err
	}
	j, err := u.jobs.GetByID(ctx, jid)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return quiz.Quiz{}, ErrJobNotFound
		}
		return quiz.Quiz{}, ErrInternal
	}
	if !actor.CanManage(j.Company.OwnerID) {
		return quiz.Quiz{}, ErrForbidden
	}

	q, err := applyQuizInput(quiz.Quiz{ID: uuid.New(), JobID: jid, CreatedBy: actor.UserID}, in)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if err := u.quizzes.Create(ctx, q); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return quiz.Quiz{}, ErrJobNotFound
		}
		return quiz.Quiz{}, ErrInternal
	}
	return u.load(ctx, q.ID)
}

func (u *Quizzes) Get(ctx context.Context, id string) (quiz.Quiz, error) {
	qid, err := parseID(id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return u.load(ctx, qid)
}

func (u *Quizzes) List(ctx context.Context, limit, offset int) ([]quiz.Quiz, error) {
	out, err := u.quizzes.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Quizzes) ListByJob(ctx context.Context, jobID string) ([]quiz.Quiz, error) {
	jid, err := parseID(jobID)
	if err != nil {
		return nil, err
	}
	out, err := u.quizzes.ListByJob(ctx, jid)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Quizzes) Update(ctx context.Context, actor Actor, id string, in QuizInput) (quiz.Quiz, error) {
	qid, err := parseID(id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	existing, err := u.load(ctx, qid)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if !actor.CanManage(existing.CreatedBy) {
		return quiz.Quiz{}, ErrForbidden
	}

	in.JobID = ""
	updated, err := applyQuizInput(existing, in)
	if err != nil {
		return quiz.Quiz{}, err
	}
	if err := u.quizzes.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, ErrInternal
	}
	return u.load(ctx, qid)
}

func (u *Quizzes) Delete(ctx context.Context, actor Actor, id string) error {
	qid, err := parseID(id)
	if err != nil {
		return err
	}
	existing, err := u.load(ctx, qid)
	if err != nil {
		return err
	}
	if !actor.CanManage(existing.CreatedBy) {
		return ErrForbidden
	}
	if err := u.quizzes.Delete(ctx, qid); err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return ErrQuizNotFound
		}
		return ErrInternal
	}
	return nil
}

// Submit records the candidate's single attempt at a quiz and tells the
// quiz author about it.
func (u *Quizzes) Submit(ctx context.Context, candidateID uuid.UUID, quizID string, in SubmitQuizInput) (quiz.Response, error) {
	if candidateID == uuid.Nil {
		return quiz.Response{}, ErrUnauthorized
	}
	qid, err := parseID(quizID)
	if err != nil {
		return quiz.Response{}, err
	}
	if in.TimeTakenSeconds < 0 {
		return quiz.Response{}, ErrInvalidInput
	}
	q, err := u.load(ctx, qid)
	if err != nil {
		return quiz.Response{}, err
	}

	resp := quiz.Response{
		ID:               uuid.New(),
		QuizID:           qid,
		CandidateID:      candidateID,
		Score:            Grade(q.Questions, in.Answers),
		TimeTakenSeconds: in.TimeTakenSeconds,
		SubmittedAt:      u.now().UTC(),
	}
	if err := u.quizzes.CreateResponse(ctx, resp); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return quiz.Response{}, ErrQuizAlreadySubmitted
		case errors.Is(err, repository.ErrQuizNotFound):
			return quiz.Response{}, ErrQuizNotFound
		default:
			return quiz.Response{}, ErrInternal
		}
	}

	if u.notifier != nil {
		err := u.notifier.Notify(ctx, NotifyInput{
			RecipientID: q.CreatedBy,
			Message:     fmt.Sprintf("A candidate submitted %s", strings.TrimSpace(q.Title)),
			Link:        "/quizzes/" + qid.String() + "/responses/" + candidateID.String(),
			Type:        notification.TypeQuizSubmitted,
		})
		if err != nil {
			u.logger.Warn("quiz notification failed", zap.String("quiz_id", qid.String()), zap.Error(err))
		}
	}

	return resp, nil
}

func (u *Quizzes) GetScore(ctx context.Context, actor Actor, quizID, candidateID string) (quiz.Response, error) {
	qid, err := parseID(quizID)
	if err != nil {
		return quiz.Response{}, err
	}
	cid, err := parseID(candidateID)
	if err != nil {
		return quiz.Response{}, err
	}
	q, err := u.load(ctx, qid)
	if err != nil {
		return quiz.Response{}, err
	}
	if actor.UserID != cid && !actor.CanManage(q.CreatedBy) {
		return quiz.Response{}, ErrForbidden
	}

	resp, err := u.quizzes.GetResponse(ctx, qid, cid)
	if err != nil {
		if errors.Is(err, repository.ErrQuizResponseNotFound) {
			return quiz.Response{}, ErrQuizResponseNotFound
		}
		return quiz.Response{}, ErrInternal
	}
	return resp, nil
}

func (u *Quizzes) load(ctx context.Context, id uuid.UUID) (quiz.Quiz, error) {
	q, err := u.quizzes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuizNotFound) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, ErrInternal
	}
	return q, nil
}

// Grade sums the points of questions answered correctly. Answers are matched
// to questions by position and compared case-insensitively. A question
// without points is worth one.
func Grade(questions []quiz.Question, answers []string) float64 {
	var score float64
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(answers[i]), strings.TrimSpace(q.CorrectAnswer)) {
			continue
		}
		pts := q.Points
		if pts <= 0 {
			pts = 1
		}
		score += float64(pts)
	}
	return score
}

func applyQuizInput(q quiz.Quiz, in QuizInput) (quiz.Quiz, error) {
	if t := strings.TrimSpace(in.Title); t != "" {
		q.Title = t
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		q.Description = d
	}
	if in.DurationMinutes < 0 {
		return quiz.Quiz{}, ErrInvalidInput
	}
	if in.DurationMinutes > 0 {
		q.DurationMinutes = in.DurationMinutes
	}
	if q.DurationMinutes == 0 {
		q.DurationMinutes = defaultQuizDurationMinutes
	}
	if in.Questions != nil {
		q.Questions = in.Questions
	}
	if q.Title == "" {
		return quiz.Quiz{}, ErrInvalidInput
	}
	for _, question := range q.Questions {
		if strings.TrimSpace(question.Text) == "" {
			return quiz.Quiz{}, ErrInvalidInput
		}
		if question.Type == quiz.QuestionMultipleChoice && len(question.Options) < 2 {
			return quiz.Quiz{}, ErrInvalidInput
		}
	}
	return q, nil
}
