package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/backend/dialogue"
	"github.com/talentbridge/backend/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", HealthCheck)

	generator := dialogue.NewGenerator(rand.New(rand.NewSource(1)))

	api := router.Group("/api")
	api.POST("/analyze-match", NewMatchHandler().AnalyzeMatch)
	api.POST("/generate-response", NewDialogueHandler(generator).GenerateReply)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAnalyzeMatchSuccess(t *testing.T) {
	router := setupRouter()

	recorder := postJSON(t, router, "/api/analyze-match", models.AnalyzeMatchRequest{
		JobData: &models.JobPosting{
			Title:       "Frontend Developer",
			Description: "Looking for a React developer with 3+ years experience",
		},
		PersonaData: &models.CandidateProfile{
			Skills:     models.FlexibleStringSlice{"React", "CSS"},
			Experience: models.FlexibleStringSlice{"Frontend Dev (2019-2023)"},
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var result models.MatchResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))

	assert.Equal(t, 90, result.Score)
	assert.Contains(t, result.Recommendation, "Excellent match")
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Weaknesses)
}

func TestAnalyzeMatchMissingJobData(t *testing.T) {
	router := setupRouter()

	recorder := postJSON(t, router, "/api/analyze-match", models.AnalyzeMatchRequest{
		PersonaData: &models.CandidateProfile{},
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "jobData is required", errResp.Error)
	assert.Equal(t, http.StatusBadRequest, errResp.Code)
}

func TestAnalyzeMatchMissingPersonaData(t *testing.T) {
	router := setupRouter()

	recorder := postJSON(t, router, "/api/analyze-match", models.AnalyzeMatchRequest{
		JobData: &models.JobPosting{Title: "Frontend Developer"},
	})

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
	assert.Equal(t, "personaData is required", errResp.Error)
}

func TestAnalyzeMatchMalformedBody(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-match", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
}
