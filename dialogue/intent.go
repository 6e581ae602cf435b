package dialogue

import "strings"

// Intent is the category assigned to an interviewer question.
type Intent string

const (
	IntentExperience        Intent = "experience"
	IntentSkills            Intent = "skills"
	IntentSalary            Intent = "salary"
	IntentWeakness          Intent = "weakness"
	IntentStrength          Intent = "strength"
	IntentWhyInterested     Intent = "why_interested"
	IntentTeamwork          Intent = "teamwork"
	IntentProject           Intent = "project"
	IntentAvailability      Intent = "availability"
	IntentCandidateQuestion Intent = "candidate_question"
	IntentGeneric           Intent = "generic"
)

// intentRules is the keyword table driving classification. Order is the
// fixed priority: the first group with any keyword hit wins, so a question
// mentioning both salary and teamwork classifies as salary.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentExperience, []string{"experience", "background", "worked on", "career"}},
	{IntentSkills, []string{"skill", "technolog", "stack", "proficien"}},
	{IntentSalary, []string{"salary", "compensation", "pay"}},
	{IntentWeakness, []string{"weakness", "challenge", "improve"}},
	{IntentStrength, []string{"strength", "excel", "best at"}},
	{IntentWhyInterested, []string{"why", "interested", "motivat"}},
	{IntentTeamwork, []string{"team", "collaborat"}},
	{IntentProject, []string{"project", "achievement", "accomplish"}},
	{IntentAvailability, []string{"start", "availab", "notice period"}},
	{IntentCandidateQuestion, []string{"question", "ask"}},
}

// ClassifyIntent assigns a question to one of the fixed intent categories
// by case-insensitive keyword matching. Classification is deterministic and
// independent of conversation history; unmatched questions are generic.
func ClassifyIntent(question string) Intent {
	q := strings.ToLower(question)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(q, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneric
}
