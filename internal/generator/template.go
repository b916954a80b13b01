package generator

import (
	"context"
	"fmt"
	"strings"

	"jobtracker_backend/internal/models"
)

// TemplateGenerator - офлайн-генератор по шаблону. Детерминирован,
// используется по умолчанию и в окружениях без ключа LLM.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch req.Kind {
	case models.DocumentKindResume:
		return resumeText(req.Applicant), nil
	case models.DocumentKindCoverLetter:
		return coverLetterText(req.Applicant, req.Job), nil
	default:
		return "", fmt.Errorf("%w: unknown document kind %q", ErrRejected, req.Kind)
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinSkills(skills []string, max int, fallback string) string {
	if len(skills) == 0 {
		return fallback
	}
	if max > 0 && len(skills) > max {
		skills = skills[:max]
	}
	return strings.Join(skills, ", ")
}

func resumeText(a Applicant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.FullName)
	fmt.Fprintf(&b, "Email: %s | Phone: %s\n\n", a.Email, orDefault(a.Phone, "Not provided"))

	b.WriteString("PROFESSIONAL SUMMARY\n")
	fmt.Fprintf(&b, "Experienced professional with strong background in %s.\n",
		joinSkills(a.Skills, 0, "various technologies"))
	fmt.Fprintf(&b, "%s\n\n", orDefault(a.Experience, "Seeking new opportunities to contribute and grow."))

	b.WriteString("EDUCATION\n")
	fmt.Fprintf(&b, "%s\n\n", orDefault(a.Education, "Educational background as provided in profile"))

	b.WriteString("TECHNICAL SKILLS\n")
	fmt.Fprintf(&b, "%s\n\n", joinSkills(a.Skills, 0, "Problem solving, Communication, Team collaboration"))

	b.WriteString("EXPERIENCE\n")
	fmt.Fprintf(&b, "%s\n", orDefault(a.Experience, "Professional experience as outlined in profile"))
	return b.String()
}

func coverLetterText(a Applicant, j JobSnapshot) string {
	var b strings.Builder
	b.WriteString("Dear Hiring Manager,\n\n")
	fmt.Fprintf(&b, "I am writing to express my strong interest in the %s position at %s.\n\n", j.Title, j.Company)
	fmt.Fprintf(&b, "With my background in %s, I am confident I would be a valuable addition to your team. ",
		joinSkills(a.Skills, 0, "relevant technologies"))
	fmt.Fprintf(&b, "My experience includes %s.\n\n", orDefault(a.Experience, "various professional experiences"))
	fmt.Fprintf(&b, "Based on the job requirements, I believe my skills in %s align well with what you're looking for.\n\n",
		joinSkills(a.Skills, 3, "key areas"))
	fmt.Fprintf(&b, "I am eager to bring my expertise to %s and contribute to your continued success. ", j.Company)
	b.WriteString("Thank you for considering my application.\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s\n", a.FullName)
	return b.String()
}
