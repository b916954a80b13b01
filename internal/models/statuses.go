package models

type UserRole string
type JobType string
type ApplicationStatus string
type DocumentKind string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"

	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"

	// Единственный статус: переходы (accepted/rejected/withdrawn) не поддерживаются
	ApplicationStatusSubmitted ApplicationStatus = "submitted"

	DocumentKindResume      DocumentKind = "resume"
	DocumentKindCoverLetter DocumentKind = "cover_letter"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleJobSeeker || r == UserRoleEmployer
}

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

func (k DocumentKind) IsValid() bool {
	return k == DocumentKindResume || k == DocumentKindCoverLetter
}
