package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	records []store.AnalysisRecord
	saveErr error
	listErr error
}

func (f *fakeStore) SaveAnalysis(_ context.Context, filename, jobDescription string, score float64) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	rec := store.AnalysisRecord{
		ID:             uuid.New(),
		Filename:       filename,
		JobDescription: jobDescription,
		Score:          score,
	}
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeStore) ListAnalyses(_ context.Context, limit int) ([]store.AnalysisRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func (f *fakeStore) Close() {}

func newTestServer(fs store.Store) *Server {
	return New(Config{Store: fs})
}

// multipartBody builds a multipart form with an optional resume file and
// extra fields.
func multipartBody(t *testing.T, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postAnalyze(t *testing.T, srv *Server, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, filename, content, fields)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_TextUpload(t *testing.T) {
	fs := &fakeStore{}
	srv := newTestServer(fs)

	resume := []byte("Led development of Python and SQL services. Improved latency by 40%.")
	rec := postAnalyze(t, srv, "resume.txt", resume, map[string]string{
		"job_description": "Python engineer with SQL experience",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "resume.txt", resp.Filename)
	assert.NotEmpty(t, resp.ID)
	assert.Greater(t, resp.Result.Score, 0.0)
	assert.Contains(t, resp.Result.Keywords.Matched, "python")
	assert.NotEmpty(t, resp.Result.Feedback)

	require.Len(t, fs.records, 1)
	assert.Equal(t, "resume.txt", fs.records[0].Filename)
	assert.Equal(t, resp.Result.Score, fs.records[0].Score)
}

func TestHandleAnalyze_MissingFile(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	rec := postAnalyze(t, srv, "", nil, map[string]string{
		"job_description": "Python engineer",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume file is required")
}

func TestHandleAnalyze_MissingJobDescription(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	rec := postAnalyze(t, srv, "resume.txt", []byte("text"), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description or job_url")
}

func TestHandleAnalyze_UnsupportedExtension(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	rec := postAnalyze(t, srv, "resume.exe", []byte("binary"), map[string]string{
		"job_description": "Python engineer",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported file type")
}

func TestHandleAnalyze_CorruptUploadIsGenericFailure(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	rec := postAnalyze(t, srv, "resume.pdf", []byte("not a pdf"), map[string]string{
		"job_description": "Python engineer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Analysis failed")
}

func TestHandleAnalyze_StoreFailureDoesNotFailAnalysis(t *testing.T) {
	fs := &fakeStore{saveErr: errors.New("db down")}
	srv := newTestServer(fs)

	rec := postAnalyze(t, srv, "resume.txt", []byte("Python developer"), map[string]string{
		"job_description": "Python engineer",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.ID)
}

func TestHandleHistory_ReturnsRecords(t *testing.T) {
	fs := &fakeStore{}
	srv := newTestServer(fs)
	_, err := fs.SaveAnalysis(context.Background(), "resume.pdf", "job", 42.5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Analyses, 1)
	assert.Equal(t, "resume.pdf", resp.Analyses[0].Filename)
}

func TestHandleHistory_DatabaseError(t *testing.T) {
	srv := newTestServer(&fakeStore{listErr: errors.New("connection lost")})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database error")
}

func TestHandleReport_RendersDocument(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	result := analyzer.Analyze("Led Python work", "Python engineer", 15)
	body, err := json.Marshal(ReportRequest{Filename: "resume.pdf", Result: result})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/report", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-tex", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `\section*{Summary}`)
	assert.Contains(t, rec.Body.String(), "resume.pdf")
}

func TestHandleReport_MissingFilename(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	result := analyzer.Analyze("Led Python work", "Python engineer", 15)
	body, err := json.Marshal(ReportRequest{Result: result})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/report", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid report request")
}

func TestHandleReport_InvalidJSON(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodPost, "/report", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRateLimit_RejectsAfterBudget(t *testing.T) {
	srv := New(Config{Store: &fakeStore{}, RateLimit: 2})

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/history", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		srv.Handler().ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

func TestRateLimit_HealthExempt(t *testing.T) {
	srv := New(Config{Store: &fakeStore{}, RateLimit: 1})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
