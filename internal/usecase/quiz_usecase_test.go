package usecase

import (
	"context"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/quiz"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{Text: "Is Go statically typed?", Type: quiz.QuestionTrueFalse, Options: []string{"true", "false"}, CorrectAnswer: "true", Points: 2},
		{Text: "Keyword to start a goroutine?", Type: quiz.QuestionMultipleChoice, Options: []string{"go", "async", "spawn"}, CorrectAnswer: "go"},
		{Text: "Zero value of a map?", Type: quiz.QuestionMultipleChoice, Options: []string{"nil", "{}"}, CorrectAnswer: "nil", Points: 3},
	}
}

func TestGrade(t *testing.T) {
	qs := sampleQuestions()
	require.Equal(t, 6.0, Grade(qs, []string{"TRUE", " go ", "nil"}))
	require.Equal(t, 3.0, Grade(qs, []string{"true", "go"}))
	require.Equal(t, 0.0, Grade(qs, nil))
	require.Equal(t, 1.0, Grade(qs, []string{"false", "go", "{}", "extra"}))
}

func TestQuiz_CreateAndSubmit(t *testing.T) {
	recruiter := uuid.New()
	j := job.WithCompany{
		Job:     job.Job{ID: uuid.New(), Title: "Go Developer", Status: job.StatusActive},
		Company: job.CompanySummary{OwnerID: recruiter},
	}
	quizzes := newFakeQuizRepo()
	notifier := &fakeNotifier{}
	uc := NewQuizUsecase(quizzes, newFakeJobRepo(j), notifier, nil)
	ctx := context.Background()

	q, err := uc.Create(ctx, Actor{UserID: recruiter, Role: user.RoleRecruiter}, QuizInput{
		JobID:     j.ID.String(),
		Title:     "Go basics",
		Questions: sampleQuestions(),
	})
	require.NoError(t, err)
	require.Equal(t, recruiter, q.CreatedBy)
	require.Equal(t, defaultQuizDurationMinutes, q.DurationMinutes)

	candidate := uuid.New()
	resp, err := uc.Submit(ctx, candidate, q.ID.String(), SubmitQuizInput{Answers: []string{"true", "go", "{}"}, TimeTakenSeconds: 120})
	require.NoError(t, err)
	require.Equal(t, 3.0, resp.Score)
	require.Equal(t, 120, resp.TimeTakenSeconds)

	require.Len(t, notifier.calls, 1)
	require.Equal(t, recruiter, notifier.calls[0].RecipientID)
	require.Equal(t, notification.TypeQuizSubmitted, notifier.calls[0].Type)

	_, err = uc.Submit(ctx, candidate, q.ID.String(), SubmitQuizInput{Answers: []string{"true"}})
	require.ErrorIs(t, err, ErrQuizAlreadySubmitted)

	got, err := uc.GetScore(ctx, Actor{UserID: candidate, Role: user.RoleCandidate}, q.ID.String(), candidate.String())
	require.NoError(t, err)
	require.Equal(t, 3.0, got.Score)

	got, err = uc.GetScore(ctx, Actor{UserID: recruiter, Role: user.RoleRecruiter}, q.ID.String(), candidate.String())
	require.NoError(t, err)
	require.Equal(t, resp.ID, got.ID)

	_, err = uc.GetScore(ctx, Actor{UserID: uuid.New(), Role: user.RoleCandidate}, q.ID.String(), candidate.String())
	require.ErrorIs(t, err, ErrForbidden)

	other := uuid.New()
	_, err = uc.GetScore(ctx, Actor{UserID: other, Role: user.RoleCandidate}, q.ID.String(), other.String())
	require.ErrorIs(t, err, ErrQuizResponseNotFound)
}

func TestQuiz_CreateRequiresJobOwner(t *testing.T) {
	j := job.WithCompany{Job: job.Job{ID: uuid.New(), Title: "Go"}, Company: job.CompanySummary{OwnerID: uuid.New()}}
	uc := NewQuizUsecase(newFakeQuizRepo(), newFakeJobRepo(j), nil, nil)
	ctx := context.Background()
	in := QuizInput{JobID: j.ID.String(), Title: "Quiz"}

	_, err := uc.Create(ctx, Actor{UserID: uuid.New(), Role: user.RoleRecruiter}, in)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = uc.Create(ctx, Actor{UserID: uuid.New(), Role: user.RoleAdmin}, in)
	require.NoError(t, err)

	in.JobID = uuid.NewString()
	_, err = uc.Create(ctx, Actor{UserID: uuid.New(), Role: user.RoleAdmin}, in)
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestQuiz_CreateValidatesQuestions(t *testing.T) {
	owner := uuid.New()
	j := job.WithCompany{Job: job.Job{ID: uuid.New(), Title: "Go"}, Company: job.CompanySummary{OwnerID: owner}}
	uc := NewQuizUsecase(newFakeQuizRepo(), newFakeJobRepo(j), nil, nil)
	actor := Actor{UserID: owner, Role: user.RoleRecruiter}

	_, err := uc.Create(context.Background(), actor, QuizInput{JobID: j.ID.String()})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Create(context.Background(), actor, QuizInput{
		JobID:     j.ID.String(),
		Title:     "Quiz",
		Questions: []quiz.Question{{Text: "pick", Type: quiz.QuestionMultipleChoice, Options: []string{"only"}}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestQuiz_SubmitUnknownQuiz(t *testing.T) {
	uc := NewQuizUsecase(newFakeQuizRepo(), newFakeJobRepo(), nil, nil)
	_, err := uc.Submit(context.Background(), uuid.New(), uuid.NewString(), SubmitQuizInput{})
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func TestQuiz_UpdateAndDeleteByCreator(t *testing.T) {
	creator := uuid.New()
	q := quiz.Quiz{ID: uuid.New(), JobID: uuid.New(), Title: "Old", DurationMinutes: 10, CreatedBy: creator}
	repo := newFakeQuizRepo(q)
	uc := NewQuizUsecase(repo, newFakeJobRepo(), nil, nil)
	ctx := context.Background()

	_, err := uc.Update(ctx, Actor{UserID: uuid.New(), Role: user.RoleRecruiter}, q.ID.String(), QuizInput{Title: "New"})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := uc.Update(ctx, Actor{UserID: creator, Role: user.RoleRecruiter}, q.ID.String(), QuizInput{Title: "New"})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.Equal(t, 10, updated.DurationMinutes)
	require.Equal(t, q.JobID, updated.JobID)

	require.NoError(t, uc.Delete(ctx, Actor{UserID: creator, Role: user.RoleRecruiter}, q.ID.String()))
	_, err = uc.Get(ctx, q.ID.String())
	require.ErrorIs(t, err, ErrQuizNotFound)
}
