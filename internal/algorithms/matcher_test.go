package algorithms

import (
	"testing"

	"jobtracker_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSkillMatch(t *testing.T) {
	job := &models.Job{
		Title:        "Backend Engineer",
		Description:  "We build APIs at Google scale.",
		Requirements: "Strong Go, PostgreSQL; some C++ or Node.js. Machine learning is a plus.",
	}

	tests := []struct {
		name        string
		skills      []string
		wantScore   float64
		wantMatched []string
	}{
		{"без навыков", nil, 0, []string{}},
		{"все навыки найдены", []string{"go", "POSTGRESQL"}, 100, []string{"go", "POSTGRESQL"}},
		{"частичное совпадение", []string{"Go", "Rust", "C++", "Kafka"}, 50, []string{"Go", "C++"}},
		{"многословный навык и точка", []string{"Machine Learning", "node.js"}, 100, []string{"Machine Learning", "node.js"}},
		{"подстрока не считается", []string{"Goo", "Post"}, 0, []string{}},
		{"пустые навыки пропускаются", []string{" ", "Go"}, 100, []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSkillMatch(job, tt.skills)
			assert.InDelta(t, tt.wantScore, got.Score, 0.001)
			assert.Equal(t, tt.wantMatched, got.Matched)
		})
	}
}
