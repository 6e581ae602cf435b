package models

// AnalyzeMatchRequest represents the API request for compatibility analysis
// @Description Compatibility analysis request with job and candidate data
type AnalyzeMatchRequest struct {
	JobData     *JobPosting       `json:"jobData"`
	PersonaData *CandidateProfile `json:"personaData"`
}

// GenerateReplyRequest represents the API request for a dialogue turn
// @Description Dialogue turn request with job, candidate, question and prior transcript
type GenerateReplyRequest struct {
	JobData             *JobPosting        `json:"jobData"`
	PersonaData         *CandidateProfile  `json:"personaData"`
	Question            string             `json:"question" example:"Tell me about your experience"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty"`
}

// GenerateReplyResponse represents the API response for a dialogue turn
// @Description Generated interview-style answer
type GenerateReplyResponse struct {
	Response string `json:"response" example:"I have four years of hands-on experience..."`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"jobData is required"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"request body must include jobData"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
