package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"jobboard/internal/domain/candidacy"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/quiz"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/domain/resume"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store down")

type fakeNotificationRepo struct {
	mu        sync.Mutex
	created   []notification.Notification
	createErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID, _, _ int) ([]notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notification.Notification
	for _, n := range f.created {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, recipientID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.created {
		if it.RecipientID == recipientID && !it.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, recipientID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.created {
		if it.ID == id && it.RecipientID == recipientID {
			f.created[i].Read = true
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i, it := range f.created {
		if it.RecipientID == recipientID && !it.Read {
			f.created[i].Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, recipientID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.created {
		if it.ID == id && it.RecipientID == recipientID {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) DeleteReadBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type fakeConn struct {
	events []notification.Event
	err    error
}

func (c *fakeConn) Push(evt notification.Event) error {
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, evt)
	return nil
}

type fakePresence map[uuid.UUID]notification.Connection

func (p fakePresence) Lookup(userID uuid.UUID) (notification.Connection, bool) {
	c, ok := p[userID]
	return c, ok
}

type fakeNotifier struct {
	calls []NotifyInput
	err   error
}

func (f *fakeNotifier) Notify(_ context.Context, in NotifyInput) error {
	f.calls = append(f.calls, in)
	return f.err
}

type fakeJobRepo struct {
	jobs      map[uuid.UUID]job.WithCompany
	order     []uuid.UUID
	summaries map[uuid.UUID]job.CompanySummary
	err       error
	findCalls int
}

func newFakeJobRepo(items ...job.WithCompany) *fakeJobRepo {
	f := &fakeJobRepo{jobs: map[uuid.UUID]job.WithCompany{}}
	for _, j := range items {
		f.jobs[j.ID] = j
		f.order = append(f.order, j.ID)
	}
	return f
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	if f.err != nil {
		return f.err
	}
	summary, ok := f.summaries[j.CompanyID]
	if !ok {
		summary = job.CompanySummary{ID: j.CompanyID}
	}
	f.jobs[j.ID] = job.WithCompany{Job: j, Company: summary}
	f.order = append(f.order, j.ID)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.WithCompany, error) {
	if f.err != nil {
		return job.WithCompany{}, f.err
	}
	j, ok := f.jobs[id]
	if !ok {
		return job.WithCompany{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) List(context.Context, repository.JobListParams) ([]job.WithCompany, error) {
	out := make([]job.WithCompany, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.jobs[id])
	}
	return out, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]job.Job, error) {
	var out []job.Job
	for _, id := range f.order {
		if j := f.jobs[id]; j.CompanyID == companyID {
			out = append(out, j.Job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]job.WithCompany, error) {
	f.findCalls++
	var out []job.WithCompany
	for _, id := range ids {
		if j, ok := f.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) error {
	cur, ok := f.jobs[j.ID]
	if !ok {
		return repository.ErrJobNotFound
	}
	cur.Job = j
	f.jobs[j.ID] = cur
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) SetRecommendations(_ context.Context, id uuid.UUID, entries []recommendation.Entry) error {
	cur, ok := f.jobs[id]
	if !ok {
		return repository.ErrJobNotFound
	}
	cur.Recommendations = entries
	f.jobs[id] = cur
	return nil
}

type fakeResumeRepo struct {
	resumes  map[uuid.UUID]resume.Resume
	searched []string
}

func newFakeResumeRepo(items ...resume.Resume) *fakeResumeRepo {
	f := &fakeResumeRepo{resumes: map[uuid.UUID]resume.Resume{}}
	for _, r := range items {
		f.resumes[r.ID] = r
	}
	return f
}

func (f *fakeResumeRepo) Create(_ context.Context, r resume.Resume) error {
	f.resumes[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	r, ok := f.resumes[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (f *fakeResumeRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (resume.Resume, error) {
	for _, r := range f.resumes {
		if r.OwnerID == ownerID {
			return r, nil
		}
	}
	return resume.Resume{}, repository.ErrResumeNotFound
}

func (f *fakeResumeRepo) List(context.Context, int, int) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0, len(f.resumes))
	for _, r := range f.resumes {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResumeRepo) SearchBySkill(_ context.Context, skills []string, _, _ int) ([]resume.Resume, error) {
	f.searched = append(f.searched, skills...)
	return []resume.Resume{}, nil
}

func (f *fakeResumeRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]resume.Resume, error) {
	var out []resume.Resume
	for _, id := range ids {
		if r, ok := f.resumes[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResumeRepo) Update(_ context.Context, r resume.Resume) error {
	if _, ok := f.resumes[r.ID]; !ok {
		return repository.ErrResumeNotFound
	}
	f.resumes[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.resumes[id]; !ok {
		return repository.ErrResumeNotFound
	}
	delete(f.resumes, id)
	return nil
}

func (f *fakeResumeRepo) SetRecommendations(_ context.Context, id uuid.UUID, entries []recommendation.Entry) error {
	r, ok := f.resumes[id]
	if !ok {
		return repository.ErrResumeNotFound
	}
	r.Recommendations = entries
	f.resumes[id] = r
	return nil
}

type fakeCompanyRepo struct {
	companies map[uuid.UUID]company.Company
}

func newFakeCompanyRepo(items ...company.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{companies: map[uuid.UUID]company.Company{}}
	for _, c := range items {
		f.companies[c.ID] = c
	}
	return f
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	for _, it := range f.companies {
		if it.OwnerID == c.OwnerID {
			return repository.ErrDuplicate
		}
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByOwner(_ context.Context, ownerID uuid.UUID) (company.Company, error) {
	for _, c := range f.companies {
		if c.OwnerID == ownerID {
			return c, nil
		}
	}
	return company.Company{}, repository.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) List(context.Context, int, int) ([]company.Company, error) {
	out := make([]company.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c company.Company) error {
	if _, ok := f.companies[c.ID]; !ok {
		return repository.ErrCompanyNotFound
	}
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.companies[id]; !ok {
		return repository.ErrCompanyNotFound
	}
	delete(f.companies, id)
	return nil
}

type fakeCandidacyRepo struct {
	items     map[uuid.UUID]candidacy.WithJob
	createErr error
}

func newFakeCandidacyRepo() *fakeCandidacyRepo {
	return &fakeCandidacyRepo{items: map[uuid.UUID]candidacy.WithJob{}}
}

func (f *fakeCandidacyRepo) Create(_ context.Context, c candidacy.Candidacy) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, it := range f.items {
		if it.JobID == c.JobID && it.CandidateID == c.CandidateID {
			return repository.ErrDuplicate
		}
	}
	f.items[c.ID] = candidacy.WithJob{Candidacy: c}
	return nil
}

func (f *fakeCandidacyRepo) GetByID(_ context.Context, id uuid.UUID) (candidacy.WithJob, error) {
	c, ok := f.items[id]
	if !ok {
		return candidacy.WithJob{}, repository.ErrCandidacyNotFound
	}
	return c, nil
}

func (f *fakeCandidacyRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]candidacy.WithJob, error) {
	var out []candidacy.WithJob
	for _, c := range f.items {
		if c.CandidateID == candidateID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidacyRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]candidacy.WithJob, error) {
	var out []candidacy.WithJob
	for _, c := range f.items {
		if c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCandidacyRepo) UpdateStatus(_ context.Context, id uuid.UUID, status candidacy.Status) error {
	c, ok := f.items[id]
	if !ok {
		return repository.ErrCandidacyNotFound
	}
	c.Status = status
	f.items[id] = c
	return nil
}

func (f *fakeCandidacyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrCandidacyNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeQuizRepo struct {
	quizzes   map[uuid.UUID]quiz.Quiz
	responses []quiz.Response
}

func newFakeQuizRepo(items ...quiz.Quiz) *fakeQuizRepo {
	f := &fakeQuizRepo{quizzes: map[uuid.UUID]quiz.Quiz{}}
	for _, q := range items {
		f.quizzes[q.ID] = q
	}
	return f
}

func (f *fakeQuizRepo) Create(_ context.Context, q quiz.Quiz) error {
	f.quizzes[q.ID] = q
	return nil
}

func (f *fakeQuizRepo) GetByID(_ context.Context, id uuid.UUID) (quiz.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return quiz.Quiz{}, repository.ErrQuizNotFound
	}
	return q, nil
}

func (f *fakeQuizRepo) List(context.Context, int, int) ([]quiz.Quiz, error) {
	out := make([]quiz.Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuizRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]quiz.Quiz, error) {
	var out []quiz.Quiz
	for _, q := range f.quizzes {
		if q.JobID == jobID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) Update(_ context.Context, q quiz.Quiz) error {
	if _, ok := f.quizzes[q.ID]; !ok {
		return repository.ErrQuizNotFound
	}
	f.quizzes[q.ID] = q
	return nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.quizzes[id]; !ok {
		return repository.ErrQuizNotFound
	}
	delete(f.quizzes, id)
	return nil
}

func (f *fakeQuizRepo) CreateResponse(_ context.Context, r quiz.Response) error {
	for _, it := range f.responses {
		if it.QuizID == r.QuizID && it.CandidateID == r.CandidateID {
			return repository.ErrDuplicate
		}
	}
	f.responses = append(f.responses, r)
	return nil
}

func (f *fakeQuizRepo) GetResponse(_ context.Context, quizID, candidateID uuid.UUID) (quiz.Response, error) {
	for _, it := range f.responses {
		if it.QuizID == quizID && it.CandidateID == candidateID {
			return it, nil
		}
	}
	return quiz.Response{}, repository.ErrQuizResponseNotFound
}

type fakeCache struct {
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	c.data = map[string][]byte{}
	return nil
}
