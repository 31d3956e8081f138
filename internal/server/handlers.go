package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/outreach-agent/internal/db"
	"github.com/jonathan/outreach-agent/internal/generation"
	"github.com/jonathan/outreach-agent/internal/types"
)

// handleGenerateEmail handles one email generation request.
// Field validation happens before the credential check, which happens
// before research: no outbound call is made for a request that cannot
// succeed.
func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, types.MissingFieldsMessage)
		return
	}

	email, err := s.generator.Generate(r.Context(), &req)
	if err != nil {
		switch err.(type) {
		case *generation.NotConfiguredError:
			s.errorResponse(w, HTTPStatus(err), err.Error())
		default:
			log.Printf("Email generation failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, FailedGenerationMessage)
		}
		return
	}

	s.recordGeneration(&req, email)
	s.jsonResponse(w, http.StatusOK, email)
}

// handleHistory returns recent generation records. Without a database
// the history is simply empty.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	if s.db == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"generations": []*db.Generation{}})
		return
	}

	generations, err := s.db.ListRecentGenerations(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list generations: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load generation history")
		return
	}
	if generations == nil {
		generations = []*db.Generation{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"generations": generations})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recordGeneration persists a history record when a database is
// configured. Failures are logged only; the response is already
// committed to succeed.
func (s *Server) recordGeneration(req *types.GenerateEmailRequest, email *types.GeneratedEmail) {
	if s.db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.SaveGeneration(ctx, &db.Generation{
		Company:   req.CompanyName,
		Recruiter: req.RecruiterName,
		JobTitle:  req.JobTitle,
		EmailType: string(req.EmailType),
		Tone:      string(req.Tone),
		Subject:   email.Subject,
		Fallback:  email.Fallback,
	})
	if err != nil {
		log.Printf("Failed to record generation history: %v", err)
	}
}
