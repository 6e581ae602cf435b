package models

// DetailedAnalysis breaks the compatibility score down per factor.
// Every field is in [0,100].
type DetailedAnalysis struct {
	SkillsMatch     int `json:"skillsMatch"`
	ExperienceMatch int `json:"experienceMatch"`
	LocationMatch   int `json:"locationMatch"`
	SalaryMatch     int `json:"salaryMatch"`
}

// MatchResult is the outcome of one compatibility analysis. Produced once
// per request; caching or persisting it is the caller's decision.
type MatchResult struct {
	Score            int              `json:"score"` // 0-100
	Strengths        []string         `json:"strengths"`
	Weaknesses       []string         `json:"weaknesses"` // never empty; sentinel when nothing found
	Recommendation   string           `json:"recommendation"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single message in the interview transcript. The
// transcript lives entirely with the caller; the engine only reads it.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
