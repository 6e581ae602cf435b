package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/talentbridge/backend/models"
)

// amountPattern captures a numeric group in a salary range, commas allowed.
var amountPattern = regexp.MustCompile(`\d[\d,]*`)

// SkillsMatch scores how many required skills the candidate covers.
// An empty requirement set means no constraint, which scores 100.
func SkillsMatch(required, candidate []string) int {
	if len(required) == 0 {
		return 100
	}
	matched := 0
	for _, skill := range required {
		if hasSkill(skill, candidate) {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}

// hasSkill reports whether any candidate skill matches the required one,
// case-insensitive, substring in either direction.
func hasSkill(required string, candidate []string) bool {
	req := strings.ToLower(required)
	for _, skill := range candidate {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}

// ExperienceMatch scores candidate years against the required figure.
// No stated requirement scores 100; surplus experience is capped at 100.
func ExperienceMatch(requiredYears, candidateYears int) int {
	if requiredYears <= 0 {
		return 100
	}
	if candidateYears < 0 {
		candidateYears = 0
	}
	score := int(math.Round(float64(candidateYears) / float64(requiredYears) * 100))
	if score > 100 {
		return 100
	}
	return score
}

// LocationMatch scores the job location against the candidate's preferred
// locations. No preference is neutral (50). A substring hit in either
// direction, or a shared "remote" mention, is a full match. Location is a
// soft constraint, so a miss scores 30 rather than 0.
func LocationMatch(jobLocation string, preferred []string) int {
	if len(preferred) == 0 {
		return 50
	}
	job := strings.ToLower(strings.TrimSpace(jobLocation))
	if job == "" {
		return 50
	}
	for _, p := range preferred {
		pref := strings.ToLower(strings.TrimSpace(p))
		if pref == "" {
			continue
		}
		if strings.Contains(job, pref) || strings.Contains(pref, job) {
			return 100
		}
	}
	if strings.Contains(job, "remote") {
		for _, p := range preferred {
			if strings.Contains(strings.ToLower(p), "remote") {
				return 100
			}
		}
	}
	return 30
}

// SalaryMatch scores the job's advertised salary range against the
// candidate's preferred interval. No stated preference, or a range text
// without two parseable figures, is neutral (50). Overlapping intervals
// score by how much of the preferred range the overlap covers; disjoint
// intervals degrade the neutral score by the relative gap, never below 0.
func SalaryMatch(rangeText string, pref models.SalaryPreference) int {
	if !pref.Stated() {
		return 50
	}
	amounts := amountPattern.FindAllString(rangeText, 2)
	if len(amounts) < 2 {
		return 50
	}
	jobMin := parseAmount(amounts[0])
	jobMax := parseAmount(amounts[1])

	prefWidth := pref.Max - pref.Min
	if prefWidth <= 0 {
		prefWidth = 1
	}

	overlapLow := max(jobMin, pref.Min)
	overlapHigh := min(jobMax, pref.Max)
	if overlapHigh >= overlapLow {
		score := int(math.Round(float64(overlapHigh-overlapLow) / float64(prefWidth) * 100))
		return clampScore(score)
	}

	gap := overlapLow - overlapHigh
	midpoint := float64(pref.Min+pref.Max) / 2
	if midpoint <= 0 {
		return 0
	}
	gapPct := int(math.Round(float64(gap) / midpoint * 100))
	if gapPct > 50 {
		return 0
	}
	return 50 - gapPct
}

func parseAmount(s string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	return n
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
