package algorithms

import (
	"strings"
	"unicode"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/utils"
)

// SkillMatch - насколько навыки соискателя покрывают текст вакансии
type SkillMatch struct {
	Score   float64  `json:"score"` // 0-100
	Matched []string `json:"matched_skills"`
}

// CalculateSkillMatch считает долю навыков соискателя, упомянутых в
// названии, описании или требованиях вакансии. Сравнение по целым
// словам без учета регистра, поэтому "Go" не совпадает с "Google".
func CalculateSkillMatch(job *models.Job, skills []string) SkillMatch {
	match := SkillMatch{Matched: []string{}}
	if job == nil || len(skills) == 0 {
		return match
	}

	haystack := " " + strings.Join(tokenize(job.Title+"\n"+job.Description+"\n"+job.Requirements), " ") + " "

	considered := 0
	for _, skill := range skills {
		words := tokenize(skill)
		if len(words) == 0 {
			continue
		}
		considered++
		if strings.Contains(haystack, " "+strings.Join(words, " ")+" ") {
			match.Matched = append(match.Matched, skill)
		}
	}
	if considered == 0 {
		return match
	}

	match.Score = float64(len(match.Matched)) / float64(considered) * 100.0
	return match
}

// tokenize режет свернутый текст на слова. Символы вроде '+', '#' и
// внутренняя точка остаются частью слова: "C++", "C#", "Node.js".
func tokenize(s string) []string {
	fields := strings.FieldsFunc(utils.Fold(s), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.')
	})

	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}
