package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/types"
)

func newTestServer(jobs []types.JobPosting) *Server {
	return New(Config{Port: 0}, catalog.NewMemoryStore(jobs), zerolog.Nop())
}

func sampleJobs() []types.JobPosting {
	return []types.JobPosting{
		{
			Title:           "Senior Python Developer",
			Company:         "TechCorp Inc.",
			Location:        "San Francisco, CA",
			RequiredSkills:  []string{"Python", "Django", "AWS"},
			Industry:        "Technology",
			ExperienceLevel: "Senior",
			IsActive:        true,
		},
		{
			Title:           "Frontend Developer",
			Company:         "WebCraft Studios",
			RequiredSkills:  []string{"React", "JavaScript"},
			Industry:        "Technology",
			ExperienceLevel: "Mid-Level",
			RemoteWork:      true,
			IsActive:        true,
		},
	}
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","jobs":0}`, rec.Body.String())
}

func TestHandleAnalyze(t *testing.T) {
	s := newTestServer(nil)
	body := `{"resume_text": "Python developer with 5 years experience. Bachelor of Science from MIT university."}`

	rec := doRequest(t, s, http.MethodPost, "/api/analyze", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Profile struct {
			ExperienceYears float64 `json:"experience_years"`
		} `json:"profile"`
		Scores struct {
			Overall float64 `json:"overall_score"`
		} `json:"scores"`
		EducationLevel string   `json:"education_level"`
		Suggestions    []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.InDelta(t, 5.0, result.Profile.ExperienceYears, 0.001)
	assert.Greater(t, result.Scores.Overall, 0.0)
	assert.Equal(t, "Bachelor", result.EducationLevel)
	assert.NotEmpty(t, result.Suggestions)
}

func TestHandleAnalyze_MissingText(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodPost, "/api/analyze", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume_text")
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodPost, "/api/analyze", `{"resume_text":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch(t *testing.T) {
	s := newTestServer(sampleJobs())
	body := `{"resume_text": "Senior Python developer with 6 years experience in Python, Django and AWS."}`

	rec := doRequest(t, s, http.MethodPost, "/api/match", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, len(resp.Matches), resp.Total)
	assert.Equal(t, "Senior Python Developer", resp.Matches[0].Job.Title)
	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].MatchScore, resp.Matches[i].MatchScore)
	}
}

func TestHandleMatch_RespectsLimit(t *testing.T) {
	s := newTestServer(sampleJobs())
	body := `{"resume_text": "Python and JavaScript developer with React and Django skills and 5 years experience.", "limit": 1}`

	rec := doRequest(t, s, http.MethodPost, "/api/match", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.Matches), 1)
}

func TestHandleListJobs(t *testing.T) {
	s := newTestServer(sampleJobs())

	rec := doRequest(t, s, http.MethodGet, "/api/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp JobsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestHandleListJobs_EmptyCatalog(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodGet, "/api/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[],"total":0}`, rec.Body.String())
}

func TestHandleCreateJob(t *testing.T) {
	s := newTestServer(nil)
	body := `{
		"title": "DevOps Engineer",
		"company": "CloudScale Technologies",
		"required_skills": ["AWS", "Docker", "Kubernetes"]
	}`

	rec := doRequest(t, s, http.MethodPost, "/api/jobs", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.JobPosting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "DevOps Engineer", created.Title)
	assert.True(t, created.IsActive)
	assert.False(t, created.PostedDate.IsZero())
	assert.NotEmpty(t, created.ID)

	list := doRequest(t, s, http.MethodGet, "/api/jobs", "")
	var resp JobsResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestHandleCreateJob_MissingRequiredFields(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodPost, "/api/jobs", `{"title": "Engineer"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, strings.ToLower(rec.Body.String()), "invalid job posting")
}

func TestHandleTrends(t *testing.T) {
	s := newTestServer(sampleJobs())

	rec := doRequest(t, s, http.MethodGet, "/api/trends", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var report types.TrendsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.TotalJobs)
	assert.InDelta(t, 50.0, report.RemoteWorkPercentage, 0.001)
	assert.NotEmpty(t, report.TopSkills)
}

func TestHandleTrends_EmptyCatalog(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodGet, "/api/trends", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(nil)

	rec := doRequest(t, s, http.MethodOptions, "/api/jobs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
