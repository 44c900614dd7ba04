package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"talentdesk/internal/errors"
	"talentdesk/internal/repository"
	"talentdesk/internal/validation"
)

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleListJobs")
	defer span.End()

	query := r.URL.Query()
	filter := repository.JobFilter{
		Status:   query.Get("status"),
		Location: query.Get("location"),
	}
	if skills := query.Get("skills"); skills != "" {
		filter.Skills = strings.Split(skills, ",")
	}

	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		s.respondError(w, err, "Failed to retrieve jobs.")
		return
	}
	s.respond(w, http.StatusOK, jobs)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleCreateJob")
	defer span.End()
	defer r.Body.Close()

	var input validation.JobCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, errors.InvalidInput("invalid JSON body", err), "Failed to create job.")
		return
	}

	payload, err := validation.ValidateJobCreate(input)
	if err != nil {
		s.respondError(w, err, "Failed to create job.")
		return
	}

	job, err := s.jobs.Create(ctx, payload)
	if err != nil {
		s.respondError(w, err, "Failed to create job.")
		return
	}
	s.respond(w, http.StatusCreated, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleGetJob")
	defer span.End()

	job, err := s.jobs.Get(ctx, r.PathValue("id"))
	if err != nil {
		s.respondError(w, err, "Failed to retrieve job.")
		return
	}
	s.respond(w, http.StatusOK, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleUpdateJob")
	defer span.End()
	defer r.Body.Close()

	var input validation.JobUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.respondError(w, errors.InvalidInput("invalid JSON body", err), "Failed to update job.")
		return
	}

	payload, err := validation.ValidateJobUpdate(input)
	if err != nil {
		s.respondError(w, err, "Failed to update job.")
		return
	}

	job, err := s.jobs.Update(ctx, r.PathValue("id"), payload)
	if err != nil {
		s.respondError(w, err, "Failed to update job.")
		return
	}
	s.respond(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "handleDeleteJob")
	defer span.End()

	if err := s.jobs.Delete(ctx, r.PathValue("id")); err != nil {
		s.respondError(w, err, "Failed to delete job.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
