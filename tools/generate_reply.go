package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talentbridge/backend/dialogue"
	"github.com/talentbridge/backend/models"
)

// GenerateReplyTool produces an interview-style answer for a question.
type GenerateReplyTool struct {
	generator *dialogue.Generator
}

// NewGenerateReplyTool creates a new reply generation tool
func NewGenerateReplyTool(generator *dialogue.Generator) *GenerateReplyTool {
	return &GenerateReplyTool{
		generator: generator,
	}
}

func (t *GenerateReplyTool) Name() string {
	return "generate_reply"
}

func (t *GenerateReplyTool) Description() string {
	return `Generate a plausible interview-style answer to a question.
Input must include the job posting (jobData), the candidate profile (personaData) and the question.
The optional conversationHistory is accepted but does not change the answer.`
}

func (t *GenerateReplyTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"jobData": map[string]interface{}{
				"type":        "object",
				"description": "Job posting the interview is about",
			},
			"personaData": map[string]interface{}{
				"type":        "object",
				"description": "Candidate profile answering the question",
			},
			"question": map[string]interface{}{
				"type":        "string",
				"description": "Interviewer question to answer",
			},
			"conversationHistory": map[string]interface{}{
				"type":        "array",
				"description": "Prior transcript turns, owned by the caller",
			},
		},
		"required": []string{"jobData", "personaData", "question"},
	}
}

// Execute classifies the question and generates a reply.
func (t *GenerateReplyTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.GenerateReplyRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	if req.JobData == nil {
		return NewErrorResult("jobData is required")
	}
	if req.PersonaData == nil {
		return NewErrorResult("personaData is required")
	}
	if strings.TrimSpace(req.Question) == "" {
		return NewErrorResult("question is required")
	}

	intent := dialogue.ClassifyIntent(req.Question)
	reply := t.generator.Generate(intent, req.JobData, req.PersonaData, req.ConversationHistory)

	return NewSuccessResult(models.GenerateReplyResponse{Response: reply})
}
