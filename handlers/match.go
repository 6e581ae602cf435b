package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentbridge/backend/match"
	"github.com/talentbridge/backend/models"
)

// MatchHandler handles compatibility analysis requests.
type MatchHandler struct{}

// NewMatchHandler creates a new match handler
func NewMatchHandler() *MatchHandler {
	return &MatchHandler{}
}

// AnalyzeMatch scores a candidate profile against a job posting
// @Summary Analyze candidate-job compatibility
// @Description Score how well a candidate profile matches a job posting. Returns the weighted score, strengths, weaknesses, a recommendation tier and the per-factor breakdown. Both jobData and personaData are required; parsing ambiguities inside them degrade to neutral sub-scores instead of failing.
// @Tags Match
// @Accept json
// @Produce json
// @Param request body models.AnalyzeMatchRequest true "Job posting and candidate profile"
// @Success 200 {object} models.MatchResult "Compatibility analysis"
// @Failure 400 {object} models.ErrorResponse "Missing or malformed input"
// @Router /analyze-match [post]
func (h *MatchHandler) AnalyzeMatch(c *gin.Context) {
	var req models.AnalyzeMatchRequest
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

	result := match.Analyze(req.JobData, req.PersonaData)

	log.Printf("[Handler] AnalyzeMatch: job=%q score=%d recommendation=%q",
		req.JobData.Title, result.Score, result.Recommendation)

	c.JSON(http.StatusOK, result)
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
