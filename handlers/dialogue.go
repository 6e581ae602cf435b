package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/backend/dialogue"
	"github.com/talentbridge/backend/models"
)

// DialogueHandler handles interview dialogue requests.
type DialogueHandler struct {
	generator *dialogue.Generator
}

// NewDialogueHandler creates a new dialogue handler
func NewDialogueHandler(generator *dialogue.Generator) *DialogueHandler {
	return &DialogueHandler{
		generator: generator,
	}
}

// GenerateReply answers one interviewer question
// @Summary Generate an interview-style reply
// @Description Classify the question's intent and produce a templated answer from the job posting and candidate profile. The conversation history is accepted for interface parity but does not influence the reply; the caller owns the transcript and appends to it.
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param request body models.GenerateReplyRequest true "Job, candidate, question and prior transcript"
// @Success 200 {object} models.GenerateReplyResponse "Generated reply"
// @Failure 400 {object} models.ErrorResponse "Missing or malformed input"
// @Router /generate-response [post]
func (h *DialogueHandler) GenerateReply(c *gin.Context) {
	var req models.GenerateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if req.JobData == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "jobData is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if req.PersonaData == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "personaData is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "question is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	intent := dialogue.ClassifyIntent(req.Question)
	reply := h.generator.Generate(intent, req.JobData, req.PersonaData, req.ConversationHistory)

	log.Printf("[Handler] GenerateReply: intent=%s question=%q", intent, req.Question)

	c.JSON(http.StatusOK, models.GenerateReplyResponse{Response: reply})
}
