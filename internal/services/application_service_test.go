package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"jobtracker_backend/internal/generator"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/testutil"
	"jobtracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(jobID string) *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		JobID:              jobID,
		ResumeContent:      "Alice - Go developer",
		CoverLetterContent: "I would love to join",
	}
}

func TestApplicationService_Submit(t *testing.T) {
	db := testutil.NewTestDB(t)
	notifier := &recordingNotifier{}
	s := newTestApplicationService(nil, notifier)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")
	job := testutil.CreateJob(t, db, acme.ID)

	app, err := s.Submit(db, identityOf(alice), submitRequest(job.ID))
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, alice.ID, app.ApplicantID)
	assert.WithinDuration(t, time.Now(), app.AppliedAt, time.Minute)
	assert.Equal(t, 1, notifier.count())

	_, err = s.Submit(db, identityOf(alice), submitRequest(job.ID))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
	assert.Equal(t, 1, notifier.count(), "неудачный отклик не уведомляет работодателя")
}

func TestApplicationService_SubmitCheckOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestApplicationService(nil, nil)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")
	active := testutil.CreateJob(t, db, acme.ID)
	closed := testutil.CreateJob(t, db, acme.ID, func(j *models.Job) { j.IsActive = false })

	empty := &dto.SubmitApplicationRequest{JobID: active.ID, ResumeContent: "  ", CoverLetterContent: "\n"}

	_, err := s.Submit(db, identityOf(acme), empty)
	assert.ErrorIs(t, err, apperrors.ErrNotJobSeeker, "роль проверяется первой")

	_, err = s.Submit(db, identityOf(alice), &dto.SubmitApplicationRequest{JobID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	_, err = s.Submit(db, identityOf(alice), &dto.SubmitApplicationRequest{JobID: closed.ID})
	assert.ErrorIs(t, err, apperrors.ErrJobInactive, "закрытая вакансия раньше проверки содержимого")

	_, err = s.Submit(db, identityOf(alice), empty)
	require.ErrorIs(t, err, apperrors.ErrIncompleteContent)
	appErr, _ := apperrors.AsAppError(err)
	assert.Contains(t, appErr.Details, "resume_content")
	assert.Contains(t, appErr.Details, "cover_letter_content")

	_, err = s.Submit(db, identityOf(alice), submitRequest(active.ID))
	require.NoError(t, err)

	_, err = s.Submit(db, identityOf(alice), empty)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication, "дубль раньше проверки содержимого")

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplicationService_ConcurrentSubmitCreatesOne(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestApplicationService(nil, nil)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")
	job := testutil.CreateJob(t, db, acme.ID)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		errs      []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Submit(db, identityOf(alice), submitRequest(job.ID))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else {
				errs = append(errs, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	for _, err := range errs {
		assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
	}

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplicationService_Listings(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestApplicationService(nil, nil)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	globex := testutil.CreateEmployer(t, db, "hr@globex.io", "Globex")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice", "Go", "SQL")
	first := testutil.CreateJob(t, db, acme.ID, func(j *models.Job) { j.Title = "First" })
	second := testutil.CreateJob(t, db, acme.ID, func(j *models.Job) { j.Title = "Second" })

	base := time.Now().Add(-time.Hour)
	s.now = func() time.Time { return base }
	_, err := s.Submit(db, identityOf(alice), submitRequest(first.ID))
	require.NoError(t, err)
	s.now = func() time.Time { return base.Add(time.Minute) }
	_, err = s.Submit(db, identityOf(alice), submitRequest(second.ID))
	require.NoError(t, err)

	mine, err := s.ListMine(db, identityOf(alice))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Second", mine[0].Job.Title, "новые первыми")
	assert.Equal(t, "Acme", mine[1].Job.Company)

	_, err = s.ListMine(db, identityOf(acme))
	assert.ErrorIs(t, err, apperrors.ErrNotJobSeeker)

	forJob, err := s.ListForJob(db, identityOf(acme), first.ID)
	require.NoError(t, err)
	require.Len(t, forJob, 1)
	require.NotNil(t, forJob[0].Applicant)
	assert.Equal(t, "Alice", forJob[0].Applicant.FullName)
	assert.Equal(t, "alice@mail.io", forJob[0].Applicant.Email)
	assert.Equal(t, []string{"Go", "SQL"}, forJob[0].Applicant.Skills)
	assert.InDelta(t, 100.0, forJob[0].SkillMatch.Score, 0.001, "требования вакансии: Go, SQL")
	assert.Equal(t, []string{"Go", "SQL"}, forJob[0].SkillMatch.Matched)

	_, err = s.ListForJob(db, identityOf(globex), first.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = s.ListForJob(db, identityOf(acme), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = s.ListForJob(db, identityOf(alice), first.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotEmployer)
}

func TestApplicationService_GenerateDocument(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestApplicationService(nil, nil)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice Smith", "Go")
	job := testutil.CreateJob(t, db, acme.ID)
	closed := testutil.CreateJob(t, db, acme.ID, func(j *models.Job) { j.IsActive = false })

	doc, err := s.RequestGeneratedContent(db, identityOf(alice), &dto.GenerateDocumentRequest{
		JobID: job.ID, DocumentType: models.DocumentKindCoverLetter,
	})
	require.NoError(t, err)
	assert.Contains(t, doc.Content, "Alice Smith")
	assert.Contains(t, doc.Content, "Acme")
	assert.Equal(t, models.DocumentKindCoverLetter, doc.DocumentType)

	_, err = s.RequestGeneratedContent(db, identityOf(acme), &dto.GenerateDocumentRequest{
		JobID: job.ID, DocumentType: models.DocumentKindResume,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotJobSeeker)

	_, err = s.RequestGeneratedContent(db, identityOf(alice), &dto.GenerateDocumentRequest{
		JobID: closed.ID, DocumentType: models.DocumentKindResume,
	})
	assert.ErrorIs(t, err, apperrors.ErrJobInactive)

	_, err = s.RequestGeneratedContent(db, identityOf(alice), &dto.GenerateDocumentRequest{
		JobID: job.ID, DocumentType: "poem",
	})
	requireCode(t, err, apperrors.CodeValidationFailed)
}

func TestApplicationService_GeneratorTimeoutHasNoSideEffects(t *testing.T) {
	db := testutil.NewTestDB(t)
	stuck := generator.GeneratorFunc(func(ctx context.Context, req generator.Request) (string, error) {
		time.Sleep(time.Second)
		return "too late", nil
	})
	s := newTestApplicationService(generator.NewAdapter(stuck, generator.WithTimeout(20*time.Millisecond)), nil)
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	alice := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")
	job := testutil.CreateJob(t, db, acme.ID)

	_, err := s.RequestGeneratedContent(db, identityOf(alice), &dto.GenerateDocumentRequest{
		JobID: job.ID, DocumentType: models.DocumentKindResume,
	})
	require.ErrorIs(t, err, apperrors.ErrGeneratorTimeout)
	appErr, _ := apperrors.AsAppError(err)
	assert.True(t, appErr.Retryable)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGeneratorErrorMapping(t *testing.T) {
	assert.ErrorIs(t, generatorError(generator.ErrRateLimited), apperrors.ErrGeneratorRateLimited)
	assert.ErrorIs(t, generatorError(generator.ErrRejected), apperrors.ErrGeneratorRejected)
	assert.ErrorIs(t, generatorError(generator.ErrUnavailable), apperrors.ErrGeneratorUnavailable)
	assert.ErrorIs(t, generatorError(context.Canceled), context.Canceled)
}

// Сценарий целиком: работодатель публикует вакансию, соискатель находит ее,
// генерирует письмо и откликается, работодатель видит отклик.
func TestApplicationWorkflow_EndToEnd(t *testing.T) {
	db := testutil.NewTestDB(t)
	authService := newTestAuthService()
	jobService := newTestJobService()
	notifier := &recordingNotifier{}
	appService := newTestApplicationService(nil, notifier)

	employer, err := authService.Register(db, &dto.RegisterRequest{
		Email: "hr@acme.io", Password: "password123", Role: models.UserRoleEmployer,
		FullName: "Acme HR", CompanyName: "Acme",
	})
	require.NoError(t, err)
	employerID, err := authService.Resolve(db, employer.AccessToken)
	require.NoError(t, err)

	job, err := jobService.Create(db, employerID, validJobRequest())
	require.NoError(t, err)

	seeker, err := authService.Register(db, &dto.RegisterRequest{
		Email: "alice@mail.io", Password: "password123", Role: models.UserRoleJobSeeker,
		FullName: "Alice", Skills: []string{"Go"},
	})
	require.NoError(t, err)
	seekerID, err := authService.Resolve(db, seeker.AccessToken)
	require.NoError(t, err)

	found, err := jobService.List(db, &dto.JobSearchQuery{Search: "ACME"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, job.ID, found[0].ID)

	letter, err := appService.RequestGeneratedContent(db, seekerID, &dto.GenerateDocumentRequest{
		JobID: job.ID, DocumentType: models.DocumentKindCoverLetter,
	})
	require.NoError(t, err)

	_, err = appService.Submit(db, seekerID, &dto.SubmitApplicationRequest{
		JobID: job.ID, ResumeContent: "My resume", CoverLetterContent: letter.Content,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.count())

	applications, err := appService.ListForJob(db, employerID, job.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "Alice", applications[0].Applicant.FullName)
	assert.Equal(t, letter.Content, applications[0].CoverLetterContent)
}
