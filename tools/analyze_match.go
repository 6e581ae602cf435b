package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentbridge/backend/match"
	"github.com/talentbridge/backend/models"
)

// AnalyzeMatchTool scores candidate-job compatibility.
type AnalyzeMatchTool struct{}

// NewAnalyzeMatchTool creates a new compatibility analysis tool
func NewAnalyzeMatchTool() *AnalyzeMatchTool {
	return &AnalyzeMatchTool{}
}

func (t *AnalyzeMatchTool) Name() string {
	return "analyze_match"
}

func (t *AnalyzeMatchTool) Description() string {
	return `Score how well a job posting matches a candidate profile.
Input must include the job posting (jobData) and the candidate profile (personaData).
Returns a 0-100 score, strengths, weaknesses, a recommendation and the per-factor breakdown.`
}

func (t *AnalyzeMatchTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobData": map[string]interface{}{
				"type":        "object",
				"description": "Job posting with title, company, description, location and salary range",
			},
			"personaData": map[string]interface{}{
				"type":        "object",
				"description": "Candidate profile with skills, experience entries and preferences",
			},
		},
		"required": []string{"jobData", "personaData"},
	}
}

// Execute runs the analysis. The context is accepted for interface
// conformance; the computation is synchronous and does not block.
func (t *AnalyzeMatchTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.AnalyzeMatchRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if req.JobData == nil {
		return NewErrorResult("jobData is required")
	}
	if req.PersonaData == nil {
		return NewErrorResult("personaData is required")
	}

	return NewSuccessResult(match.Analyze(req.JobData, req.PersonaData))
}
