package generator

import (
	"fmt"
	"strings"

	"jobtracker_backend/internal/models"
)

// BuildPrompt собирает промпт для LLM по типу документа
func BuildPrompt(req Request) (string, error) {
	var b strings.Builder

	switch req.Kind {
	case models.DocumentKindResume:
		b.WriteString("You are an expert resume writer. Write a concise, ATS-friendly resume in plain text ")
		b.WriteString("for the candidate below, tailored to the target job. ")
		b.WriteString("Use the sections PROFESSIONAL SUMMARY, EDUCATION, TECHNICAL SKILLS, EXPERIENCE. ")
		b.WriteString("Do not invent employers, degrees or dates that are not in the profile.\n\n")
	case models.DocumentKindCoverLetter:
		b.WriteString("You are an expert career coach. Write a professional cover letter in plain text ")
		b.WriteString("from the candidate below for the target job. Keep it under 350 words, ")
		b.WriteString("address it to the hiring manager and sign it with the candidate's name.\n\n")
	default:
		return "", fmt.Errorf("%w: unknown document kind %q", ErrRejected, req.Kind)
	}

	a := req.Applicant
	b.WriteString("CANDIDATE\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", a.FullName, a.Email)
	if a.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", a.Phone)
	}
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(a.Skills, ", "))
	fmt.Fprintf(&b, "Experience: %s\n", a.Experience)
	fmt.Fprintf(&b, "Education: %s\n\n", a.Education)

	j := req.Job
	b.WriteString("TARGET JOB\n")
	fmt.Fprintf(&b, "Title: %s\nCompany: %s\nLocation: %s\n", j.Title, j.Company, j.Location)
	fmt.Fprintf(&b, "Description: %s\nRequirements: %s\n", j.Description, j.Requirements)

	return b.String(), nil
}
