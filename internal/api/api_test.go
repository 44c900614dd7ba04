package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"talentdesk/internal/events"
	"talentdesk/internal/models"
	"talentdesk/internal/repository"
	"talentdesk/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "store.json"), zap.NewNop())
	pub := events.NoopPublisher{}
	logger := zap.NewNop()
	jobs := repository.NewJobs(st, pub, logger)
	candidates := repository.NewCandidates(st, pub, logger)
	return New(jobs, candidates, nil, logger), st
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (json.RawMessage, json.RawMessage) {
	t.Helper()
	var env struct {
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data, env.Error
}

func newJobBody() map[string]any {
	return map[string]any{
		"title":       "Backend Engineer",
		"department":  "Eng",
		"location":    "Remote",
		"salary":      "$100k",
		"description": "...",
		"skills":      []string{"Go"},
		"status":      "Open",
		"deadline":    "2025-12-01T00:00:00Z",
	}
}

func TestCreateJobScenario(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server.Handler(), http.MethodPost, "/jobs", newJobBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	data, _ := decodeEnvelope(t, rec)
	var job models.JobPosting
	require.NoError(t, json.Unmarshal(data, &job))
	assert.True(t, strings.HasPrefix(job.ID, "JOB-"))
	assert.Equal(t, 0, job.Applications)
	assert.False(t, job.PostedDate.IsZero())
}

func TestCreateJobValidationFailure(t *testing.T) {
	server, st := newTestServer(t)

	body := newJobBody()
	delete(body, "title")
	body["skills"] = []string{}

	rec := doJSON(t, server.Handler(), http.MethodPost, "/jobs", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, errBody := decodeEnvelope(t, rec)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(errBody, &fields))
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "skills")

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Jobs, "nothing persisted on validation failure")
}

func TestListJobsWithFilters(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	require.Equal(t, http.StatusCreated, doJSON(t, handler, http.MethodPost, "/jobs", newJobBody()).Code)

	second := newJobBody()
	second["status"] = "Closed"
	second["skills"] = []string{"React", "Node"}
	require.Equal(t, http.StatusCreated, doJSON(t, handler, http.MethodPost, "/jobs", second).Code)

	rec := doJSON(t, handler, http.MethodGet, "/jobs?status=open", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var jobs []models.JobPosting
	require.NoError(t, json.Unmarshal(data, &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, models.JobStatusOpen, jobs[0].Status)

	rec = doJSON(t, handler, http.MethodGet, "/jobs?skills=react,node", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(data, &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, models.JobStatusClosed, jobs[0].Status)
}

func TestUpdateJobNotFound(t *testing.T) {
	server, st := newTestServer(t)
	handler := server.Handler()

	require.Equal(t, http.StatusCreated, doJSON(t, handler, http.MethodPost, "/jobs", newJobBody()).Code)

	rec := doJSON(t, handler, http.MethodPut, "/jobs/JOB-missing", map[string]any{"title": "X"})
	require.Equal(t, http.StatusNotFound, rec.Code)

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Jobs, 1)
	assert.Equal(t, "Backend Engineer", doc.Jobs[0].Title, "store untouched by failed update")
}

func TestDeleteJob(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/jobs", newJobBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var job models.JobPosting
	require.NoError(t, json.Unmarshal(data, &job))

	rec = doJSON(t, handler, http.MethodDelete, "/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())

	rec = doJSON(t, handler, http.MethodGet, "/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodDelete, "/jobs/"+job.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCandidateLifecycle(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	rec := doJSON(t, handler, http.MethodPost, "/jobs", newJobBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	data, _ := decodeEnvelope(t, rec)
	var job models.JobPosting
	require.NoError(t, json.Unmarshal(data, &job))

	rec = doJSON(t, handler, http.MethodPost, "/candidates", map[string]any{
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"jobId":  job.ID,
		"skills": []string{"Go"},
		"stage":  "Hired",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	data, _ = decodeEnvelope(t, rec)
	var candidate models.Candidate
	require.NoError(t, json.Unmarshal(data, &candidate))
	assert.Equal(t, models.StageApplied, candidate.Stage, "stage is fixed to Applied at creation")
	assert.Equal(t, []models.Interaction{}, candidate.Interactions)

	rec = doJSON(t, handler, http.MethodPut, "/candidates/"+candidate.ID, map[string]any{"stage": "Interview"})
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decodeEnvelope(t, rec)
	var updated models.Candidate
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, models.StageInterview, updated.Stage)
	assert.Equal(t, candidate.Name, updated.Name)
	assert.Equal(t, candidate.Email, updated.Email)
}

func TestCreateCandidateInvalidEmail(t *testing.T) {
	server, st := newTestServer(t)

	rec := doJSON(t, server.Handler(), http.MethodPost, "/candidates", map[string]any{
		"name":   "Ada Lovelace",
		"email":  "nope",
		"jobId":  "JOB-1",
		"skills": []string{"Go"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, errBody := decodeEnvelope(t, rec)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(errBody, &fields))
	assert.Contains(t, fields, "email")

	doc, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Candidates, "no record persisted")
}

func TestExtractUnavailableWithoutExtractor(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server.Handler(), http.MethodPost, "/extract", map[string]any{
		"document": "aGVsbG8=",
		"mimeType": "text/plain",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)
	rec := doJSON(t, server.Handler(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
