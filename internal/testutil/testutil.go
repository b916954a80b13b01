// Package testutil - общие помощники для тестов: изолированная SQLite в памяти
// и фикстуры пользователей и вакансий.
package testutil

import (
	"fmt"
	"testing"

	"jobtracker_backend/database"
	"jobtracker_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB создает отдельную базу в памяти на каждый тест
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open("sqlite", dsn, false)
	require.NoError(t, err, "Не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "Не удалось выполнить миграции")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateEmployer создает работодателя напрямую в БД, без пароля
func CreateEmployer(t testing.TB, db *gorm.DB, email, company string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		FullName:     company + " HR",
		PasswordHash: "not-a-real-hash",
		Role:         models.UserRoleEmployer,
		EmployerProfile: &models.EmployerProfile{
			CompanyName: company,
		},
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать работодателя")
	return user
}

// CreateJobSeeker создает соискателя с профилем
func CreateJobSeeker(t testing.TB, db *gorm.DB, email, fullName string, skills ...string) *models.User {
	t.Helper()

	profile := &models.JobSeekerProfile{Experience: "5 years", Education: "BSc"}
	require.NoError(t, profile.SetSkills(skills))

	user := &models.User{
		Email:            email,
		FullName:         fullName,
		PasswordHash:     "not-a-real-hash",
		Role:             models.UserRoleJobSeeker,
		JobSeekerProfile: profile,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать соискателя")
	return user
}

// CreateJob создает активную вакансию. mutate позволяет поменять поля до сохранения.
func CreateJob(t testing.TB, db *gorm.DB, employerID string, mutate ...func(*models.Job)) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Description:  "Build APIs",
		Requirements: "Go, SQL",
		Location:     "Remote",
		JobType:      models.JobTypeFullTime,
		EmployerID:   employerID,
		IsActive:     true,
	}
	for _, m := range mutate {
		m(job)
	}
	require.NoError(t, db.Omit("Employer").Create(job).Error, "Не удалось создать вакансию")
	return job
}
