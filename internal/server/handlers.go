package server

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/jonathan/coverletter-agent/internal/extract"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/profile"
	"github.com/jonathan/coverletter-agent/internal/prompts"
	"github.com/jonathan/coverletter-agent/internal/search"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 32 << 20

// GenerateProfileRequest is the JSON body for the profile-based variant.
// linkedinURL and jobpostDesc are accepted as aliases for compatibility
// with older clients.
type GenerateProfileRequest struct {
	LinkedinProfileURL string `json:"linkedin_profile_url" validate:"omitempty,url"`
	LinkedinURL        string `json:"linkedinURL" validate:"omitempty,url"`
	CompanyName        string `json:"company_name"`
	JobpostDesc        string `json:"jobpostDesc"`
}

// handleGenerate dispatches on the request media type: multipart uploads
// carry a resume file, JSON bodies reference a public profile.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		s.errorResponse(w, http.StatusUnsupportedMediaType, "unrecognized content type")
		return
	}

	switch mediaType {
	case "multipart/form-data":
		s.handleGenerateUpload(w, r)
	case "application/json":
		s.handleGenerateProfile(w, r)
	default:
		s.errorResponse(w, http.StatusUnsupportedMediaType, "expected multipart/form-data or application/json")
	}
}

// handleGenerateUpload serves the upload variant: a resume file plus a job
// posting URL or pasted description.
func (s *Server) handleGenerateUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resumeFile")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resumeFile is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read resumeFile")
		return
	}

	jobURL := r.FormValue("jobpostURL")
	jobDesc := r.FormValue("jobpostDesc")
	if jobURL == "" && jobDesc == "" {
		s.errorResponse(w, http.StatusBadRequest, "either jobpostURL or jobpostDesc is required")
		return
	}

	resume := extract.Document(header.Filename, data)
	if resume.Warning != "" {
		s.logger.WarnContext(ctx, "resume extraction produced no text", "filename", header.Filename, "reason", resume.Warning)
	}

	target := jobDesc
	if jobURL != "" {
		page := extract.WebPage(ctx, jobURL, s.cfg.UseBrowser)
		if page.Warning != "" {
			s.logger.WarnContext(ctx, "job posting extraction produced no text", "url", jobURL, "reason", page.Warning)
		}
		target = page.Text
	}

	candidate := extract.Truncate(resume.Text, s.cfg.CandidateTextLimit)
	target = extract.Truncate(target, s.cfg.TargetTextLimit)

	s.streamLetter(w, r, prompts.Compose(candidate, target))
}

// handleGenerateProfile serves the profile variant: a public profile URL
// plus a company name or pasted description.
func (s *Server) handleGenerateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	profileURL := req.LinkedinProfileURL
	if profileURL == "" {
		profileURL = req.LinkedinURL
	}
	if profileURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "linkedin_profile_url is required")
		return
	}
	if req.CompanyName == "" && req.JobpostDesc == "" {
		s.errorResponse(w, http.StatusBadRequest, "either company_name or jobpostDesc is required")
		return
	}

	record := s.lookupProfile(ctx, profileURL)

	target := req.JobpostDesc
	if target == "" {
		target = s.companyContext(ctx, req.CompanyName)
	}

	candidate := extract.Truncate(record.Flatten(), s.cfg.CandidateTextLimit)
	target = extract.Truncate(target, s.cfg.TargetTextLimit)

	s.streamLetter(w, r, prompts.Compose(candidate, target))
}

// lookupProfile fetches and normalizes a people profile. Every failure mode
// degrades to an empty record; the request still produces a letter.
func (s *Server) lookupProfile(ctx context.Context, profileURL string) profile.Record {
	if s.profiles == nil {
		s.logger.WarnContext(ctx, "profile API not configured, proceeding with empty profile")
		return profile.Empty()
	}

	raw, err := s.profiles.Lookup(ctx, profileURL)
	if err != nil {
		s.logger.WarnContext(ctx, "profile lookup failed, proceeding with empty profile", "error", err)
		return profile.Empty()
	}

	return profile.Normalize(raw)
}

// companyContext resolves a company name into target text via web search.
// Failures degrade to empty text.
func (s *Server) companyContext(ctx context.Context, companyName string) string {
	if companyName == "" {
		return ""
	}
	if s.searcher == nil {
		s.logger.WarnContext(ctx, "search API not configured, proceeding without company context")
		return ""
	}

	results, err := s.searcher.Search(ctx, companyName)
	if err != nil {
		s.logger.WarnContext(ctx, "company search failed, proceeding without company context", "error", err)
		return ""
	}

	return search.FlattenResults(results)
}

// streamLetter runs the generation call and relays its chunks to the
// client. The first chunk is pulled before any streaming header is written
// so a connection failure still produces a normal error response.
func (s *Server) streamLetter(w http.ResponseWriter, r *http.Request, prompt string) {
	ctx := r.Context()

	opts := llm.DefaultStreamOptions()
	opts.MaxOutputTokens = s.cfg.MaxOutputTokens

	stream := s.llm.GenerateStream(ctx, prompt, opts)

	first, err := stream.Next()
	if err != nil && err != io.EOF {
		s.logger.ErrorContext(ctx, "failed to start generation", "error", err)
		s.errorResponse(w, http.StatusBadGateway, "generation failed")
		return
	}

	sw, swErr := NewStreamWriter(w)
	if swErr != nil {
		s.errorResponse(w, http.StatusInternalServerError, swErr.Error())
		return
	}
	if err == io.EOF {
		return
	}
	if writeErr := sw.WriteChunk(first); writeErr != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			// Client went away; stop pulling chunks.
			return
		default:
		}

		chunk, err := stream.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			// Mid-stream failure: the client observes a truncated stream.
			s.logger.WarnContext(ctx, "generation stream truncated", "error", err)
			return
		}
		if err := sw.WriteChunk(chunk); err != nil {
			return
		}
	}
}
