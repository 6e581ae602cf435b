package match

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/talentbridge/backend/models"
)

// skillVocabulary is the fixed term list scanned for in job descriptions.
// Read-only; shared across concurrent requests.
var skillVocabulary = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "golang",
	"ruby", "php", "react", "angular", "vue", "node", "sql", "mongodb",
	"postgresql", "aws", "azure", "docker", "kubernetes", "git", "agile",
	"communication", "leadership", "teamwork",
}

// requiredYearsPattern matches phrases like "3+ years of experience".
var requiredYearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?\s+(?:of\s+)?experience`)

// ExtractRequirements parses a free-text job description into a structured
// requirement set. Skill detection is a case-insensitive substring scan
// against the fixed vocabulary; the experience figure is the first
// "N years experience" match, defaulting to 0. Safe on empty input.
func ExtractRequirements(description string) models.JobRequirements {
	desc := strings.ToLower(description)

	req := models.JobRequirements{Skills: []string{}}
	for _, term := range skillVocabulary {
		if strings.Contains(desc, term) {
			req.Skills = append(req.Skills, term)
		}
	}

	if m := requiredYearsPattern.FindStringSubmatch(desc); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			req.ExperienceYears = years
		}
	}

	return req
}
