package services

import (
	"testing"
	"time"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/internal/testutil"
	"jobtracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobRequest() *dto.CreateJobRequest {
	salary := "$120k"
	return &dto.CreateJobRequest{
		Title:        "Go Developer",
		Company:      "Acme",
		Description:  "Build services",
		Requirements: "3+ years of Go",
		Location:     "Berlin",
		JobType:      models.JobTypeFullTime,
		Salary:       &salary,
	}
}

func TestJobService_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestJobService()
	employer := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	seeker := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")

	job, err := s.Create(db, identityOf(employer), validJobRequest())
	require.NoError(t, err)
	assert.True(t, job.IsActive)
	assert.Equal(t, employer.ID, job.EmployerID)
	require.NotNil(t, job.Salary)
	assert.Equal(t, "$120k", *job.Salary)

	_, err = s.Create(db, identityOf(seeker), validJobRequest())
	assert.ErrorIs(t, err, apperrors.ErrNotEmployer)

	_, err = s.Create(db, nil, validJobRequest())
	requireCode(t, err, apperrors.CodeUnauthorized)

	bad := validJobRequest()
	bad.JobType = "freelance"
	bad.Title = "   "
	_, err = s.Create(db, identityOf(employer), bad)
	requireCode(t, err, apperrors.CodeValidationFailed)
	appErr, _ := apperrors.AsAppError(err)
	assert.Contains(t, appErr.Details, "job_type")
	assert.Contains(t, appErr.Details, "title")
}

func TestJobService_ListSearchAndOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestJobService()
	employer := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")

	base := time.Now().Add(-time.Hour)
	older := testutil.CreateJob(t, db, employer.ID, func(j *models.Job) {
		j.Title = "Senior GOLANG Engineer"
		j.CreatedAt = base
	})
	newer := testutil.CreateJob(t, db, employer.ID, func(j *models.Job) {
		j.Title = "Designer"
		j.Company = "Golden Gate Studio"
		j.JobType = models.JobTypeContract
		j.CreatedAt = base.Add(time.Minute)
	})
	newest := testutil.CreateJob(t, db, employer.ID, func(j *models.Job) {
		j.Title = "Accountant"
		j.Company = "Numbers Inc"
		j.Location = "Lisbon"
		j.IsActive = false
		j.CreatedAt = base.Add(2 * time.Minute)
	})

	all, err := s.List(db, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{newest.ID, newer.ID, older.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.False(t, all[0].IsActive, "каталог не фильтрует по is_active")

	found, err := s.List(db, &dto.JobSearchQuery{Search: "gol"})
	require.NoError(t, err)
	require.Len(t, found, 2, "поиск по названию и компании без учета регистра")
	assert.Equal(t, newer.ID, found[0].ID)

	byLocation, err := s.List(db, &dto.JobSearchQuery{Search: "LISBON"})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)
	assert.Equal(t, newest.ID, byLocation[0].ID)

	contracts, err := s.List(db, &dto.JobSearchQuery{Search: "gol", JobType: "contract"})
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, newer.ID, contracts[0].ID)

	limited, err := s.List(db, &dto.JobSearchQuery{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newest.ID, limited[0].ID)

	wildcard, err := s.List(db, &dto.JobSearchQuery{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, wildcard, "спецсимволы LIKE ищутся буквально")

	_, err = s.List(db, &dto.JobSearchQuery{JobType: "temporary"})
	requireCode(t, err, apperrors.CodeValidationFailed)
}

func TestJobService_GetAndListByOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestJobService()
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	globex := testutil.CreateEmployer(t, db, "hr@globex.io", "Globex")
	job := testutil.CreateJob(t, db, acme.ID)
	testutil.CreateJob(t, db, globex.ID)

	got, err := s.Get(db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Title, got.Title)

	_, err = s.Get(db, "missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)

	mine, err := s.ListByOwner(db, identityOf(acme))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].ID)
}

func TestJobService_UpdateOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := newTestJobService()
	acme := testutil.CreateEmployer(t, db, "hr@acme.io", "Acme")
	globex := testutil.CreateEmployer(t, db, "hr@globex.io", "Globex")
	seeker := testutil.CreateJobSeeker(t, db, "alice@mail.io", "Alice")
	job := testutil.CreateJob(t, db, acme.ID)

	inactive := false
	title := "Staff Engineer"
	patch := &dto.UpdateJobRequest{Title: &title, IsActive: &inactive}

	_, err := s.Update(db, identityOf(globex), job.ID, patch)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = s.Update(db, identityOf(acme), "missing", patch)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner, "несуществующая вакансия не раскрывается")

	_, err = s.Update(db, identityOf(seeker), job.ID, patch)
	assert.ErrorIs(t, err, apperrors.ErrNotEmployer)

	updated, err := s.Update(db, identityOf(acme), job.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.False(t, updated.IsActive)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "staff engineer", stored.TitleFolded)
	assert.Equal(t, acme.ID, stored.EmployerID)

	blank := "  "
	_, err = s.Update(db, identityOf(acme), job.ID, &dto.UpdateJobRequest{Title: &blank})
	requireCode(t, err, apperrors.CodeValidationFailed)
}
