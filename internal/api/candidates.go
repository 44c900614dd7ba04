package api

import (
	"encoding/json"
	"net/http"

	"talentdesk/internal/errors"
	"talentdesk/internal/validation"
)

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleListCandidates")
	defer span.End()

	candidates, err := s.candidates.List(ctx)
	if err != nil {
		s.respondError(w, err, "Failed to retrieve candidates.")
		return
	}
	s.respond(w, http.StatusOK, candidates)
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleCreateCandidate")
	defer span.End()
	defer r.Body.Close()

	var input validation.CandidateCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, errors.InvalidInput("invalid JSON body", err), "Failed to create candidate.")
		return
	}

	payload, err := validation.ValidateCandidateCreate(input)
	if err != nil {
		s.respondError(w, err, "Failed to create candidate.")
		return
	}

	candidate, err := s.candidates.Create(ctx, payload)
	if err != nil {
		s.respondError(w, err, "Failed to create candidate.")
		return
	}
	s.respond(w, http.StatusCreated, candidate)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleGetCandidate")
	defer span.End()

	candidate, err := s.candidates.Get(ctx, r.PathValue("id"))
	if err != nil {
		s.respondError(w, err, "Failed to retrieve candidate.")
		return
	}
	s.respond(w, http.StatusOK, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleUpdateCandidate")
	defer span.End()
	defer r.Body.Close()

	var input validation.CandidateUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, errors.InvalidInput("invalid JSON body", err), "Failed to update candidate.")
		return
	}

	payload, err := validation.ValidateCandidateUpdate(input)
	if err != nil {
		s.respondError(w, err, "Failed to update candidate.")
		return
	}

	candidate, err := s.candidates.Update(ctx, r.PathValue("id"), payload)
	if err != nil {
		s.respondError(w, err, "Failed to update candidate.")
		return
	}
	s.respond(w, http.StatusOK, candidate)
}

func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleDeleteCandidate")
	defer span.End()

	if err := s.candidates.Delete(ctx, r.PathValue("id")); err != nil {
		s.respondError(w, err, "Failed to delete candidate.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
