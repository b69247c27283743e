package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// AnalyzeResponse is the response for /analyze
type AnalyzeResponse struct {
	ID       string          `json:"id,omitempty"`
	Filename string          `json:"filename"`
	Result   analyzer.Result `json:"result"`
}

// HistoryResponse is the response for /history
type HistoryResponse struct {
	Analyses []store.AnalysisRecord `json:"analyses"`
}

// ReportRequest is the request body for /report
type ReportRequest struct {
	Filename string          `json:"filename" validate:"required"`
	Result   analyzer.Result `json:"result" validate:"required"`
}

// handleAnalyze accepts a multipart resume upload plus a job description
// (inline or by URL), runs the engine, and records the analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.uploadMaxBytes)

	if err := r.ParseMultipartForm(s.uploadMaxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer func() { _ = file.Close() }()

	jobDescription := strings.TrimSpace(r.FormValue("job_description"))
	jobURL := strings.TrimSpace(r.FormValue("job_url"))
	if jobDescription == "" && jobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	if !extract.Allowed(header.Filename) {
		s.errorResponse(w, http.StatusBadRequest, "Unsupported file type; expected one of: "+strings.Join(extract.SupportedExtensions, ", "))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	resumeText, err := extract.FromUpload(header.Filename, data)
	if err != nil {
		// The engine never sees a failed extraction; surface a generic
		// analysis failure instead.
		log.Printf("Text extraction failed for %s: %v", header.Filename, err)
		s.errorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: could not extract text from the uploaded file")
		return
	}

	if jobDescription == "" {
		jobDescription, err = fetch.JobDescription(r.Context(), jobURL, nil)
		if err != nil {
			log.Printf("Job description fetch failed for %s: %v", jobURL, err)
			s.errorResponse(w, http.StatusUnprocessableEntity, "Analysis failed: could not fetch the job description")
			return
		}
	}

	result := analyzer.Analyze(resumeText, jobDescription, s.maxItems)

	resp := AnalyzeResponse{Filename: header.Filename, Result: result}
	if s.store != nil {
		id, err := s.store.SaveAnalysis(r.Context(), header.Filename, jobDescription, result.Score)
		if err != nil {
			// History is best-effort; the analysis itself succeeded
			log.Printf("Failed to save analysis history: %v", err)
		} else if id != uuid.Nil {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHistory returns recent analyses, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.jsonResponse(w, http.StatusOK, HistoryResponse{Analyses: []store.AnalysisRecord{}})
		return
	}

	records, err := s.store.ListAnalyses(r.Context(), historyLimit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if records == nil {
		records = []store.AnalysisRecord{}
	}

	s.jsonResponse(w, http.StatusOK, HistoryResponse{Analyses: records})
}

// handleReport renders a previously returned analysis result as a LaTeX
// report document.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report request: "+err.Error())
		return
	}

	doc, err := report.Render(req.Result, req.Filename, time.Now().UTC())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render report: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/x-tex")
	w.Header().Set("Content-Disposition", `attachment; filename="resume_analysis.tex"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
