package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/talentbridge/backend/models"
	"github.com/talentbridge/backend/utils"
)

// Factor weights. Technical fit dominates the decision.
const (
	weightSkills     = 0.5
	weightExperience = 0.3
	weightLocation   = 0.1
	weightSalary     = 0.1
)

// NoWeaknessesSentinel is returned as the sole weakness when no weakness
// condition triggers, so the list is never empty.
const NoWeaknessesSentinel = "No significant weaknesses identified"

// Analyze scores how well a candidate profile fits a job posting. It is a
// pure function of its inputs: requirements are re-extracted on every call,
// nothing is cached, and neither argument is mutated.
func Analyze(job *models.JobPosting, candidate *models.CandidateProfile) *models.MatchResult {
	requirements := ExtractRequirements(job.Description)
	candidateYears := EstimateExperienceYears(candidate.Experience)

	detail := models.DetailedAnalysis{
		SkillsMatch:     SkillsMatch(requirements.Skills, candidate.Skills),
		ExperienceMatch: ExperienceMatch(requirements.ExperienceYears, candidateYears),
		LocationMatch:   LocationMatch(job.Location, candidate.Preferences.Locations),
		SalaryMatch:     SalaryMatch(job.SalaryRange, candidate.Preferences.Salary),
	}

	score := clampScore(int(math.Round(
		float64(detail.SkillsMatch)*weightSkills +
			float64(detail.ExperienceMatch)*weightExperience +
			float64(detail.LocationMatch)*weightLocation +
			float64(detail.SalaryMatch)*weightSalary)))

	return &models.MatchResult{
		Score:            score,
		Strengths:        buildStrengths(requirements, candidate, candidateYears, detail),
		Weaknesses:       buildWeaknesses(requirements, candidate, candidateYears),
		Recommendation:   Recommend(score),
		DetailedAnalysis: detail,
	}
}

// buildStrengths derives qualitative findings in priority order: skill
// overlap quality, experience surplus, then location preference hit. The
// list may legitimately come back empty.
func buildStrengths(req models.JobRequirements, candidate *models.CandidateProfile, candidateYears int, detail models.DetailedAnalysis) []string {
	strengths := []string{}

	if len(req.Skills) > 0 {
		overlap := overlappingSkills(req.Skills, candidate.Skills)
		ratio := float64(len(overlap)) / float64(len(req.Skills))
		switch {
		case ratio == 1:
			strengths = append(strengths, "You have all the skills required for this role")
		case ratio >= 0.7:
			strengths = append(strengths, "Strong overlap with the required skills")
		case ratio >= 0.5:
			strengths = append(strengths, "Good coverage of the required skills")
		case len(overlap) > 0:
			strengths = append(strengths, "Relevant skills: "+strings.Join(overlap, ", "))
		}
	}

	if req.ExperienceYears > 0 && candidateYears >= req.ExperienceYears {
		surplus := candidateYears - req.ExperienceYears
		if surplus > 0 {
			strengths = append(strengths, fmt.Sprintf("%d %s of experience, %d more than required",
				candidateYears, utils.Pluralize(candidateYears, "year"), surplus))
		} else {
			strengths = append(strengths, fmt.Sprintf("Meets the %d %s of experience requirement",
				req.ExperienceYears, utils.Pluralize(req.ExperienceYears, "year")))
		}
	}

	if len(candidate.Preferences.Locations) > 0 && detail.LocationMatch == 100 {
		strengths = append(strengths, "Job location matches your preferences")
	}

	return strengths
}

// buildWeaknesses names every uncovered required skill, states any
// experience shortfall, and adds a salary caveat whenever the candidate
// stated any preference at all. The caveat fires regardless of whether the
// stated range actually conflicts with the posting.
func buildWeaknesses(req models.JobRequirements, candidate *models.CandidateProfile, candidateYears int) []string {
	weaknesses := []string{}

	for _, skill := range req.Skills {
		if !hasSkill(skill, candidate.Skills) {
			weaknesses = append(weaknesses, "Missing required skill: "+skill)
		}
	}

	if req.ExperienceYears > candidateYears {
		shortfall := req.ExperienceYears - candidateYears
		weaknesses = append(weaknesses, fmt.Sprintf("Needs %d more %s of experience",
			shortfall, utils.Pluralize(shortfall, "year")))
	}

	if candidate.Preferences.Salary.Stated() {
		weaknesses = append(weaknesses, "Salary expectations may need to be aligned with the offered range")
	}

	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, NoWeaknessesSentinel)
	}
	return weaknesses
}

// overlappingSkills returns the required skills the candidate covers, in
// requirement order.
func overlappingSkills(required, candidate []string) []string {
	overlap := []string{}
	for _, skill := range required {
		if hasSkill(skill, candidate) {
			overlap = append(overlap, skill)
		}
	}
	return overlap
}

// Recommend maps a compatibility score to an application recommendation.
func Recommend(score int) string {
	switch {
	case score >= 90:
		return "Excellent match - apply immediately with a customized application"
	case score >= 75:
		return "Good match - apply with a strong tailored cover letter"
	case score >= 60:
		return "Fair match - address the weaknesses and emphasize your strengths"
	default:
		return "Weak match - consider improving relevant skills before applying"
	}
}
