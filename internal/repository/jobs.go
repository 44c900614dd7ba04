package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentdesk/internal/errors"
	"talentdesk/internal/events"
	"talentdesk/internal/models"
	"talentdesk/internal/store"
	"talentdesk/internal/telemetry"
	"talentdesk/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("talentdesk/repository")

// JobFilter narrows a job listing. Zero values mean "no constraint".
type JobFilter struct {
	Status   string
	Location string
	Skills   []string
}

type Jobs struct {
	store     *store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewJobs(st *store.Store, publisher events.Publisher, logger *zap.Logger) *Jobs {
	return &Jobs{
		store:     st,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns all jobs matching the filter, most recently posted first. Ties
// keep store order.
func (j *Jobs) List(ctx context.Context, filter JobFilter) ([]models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "Jobs.List")
	defer span.End()

	var jobs []models.JobPosting
	err := j.store.View(func(doc *models.Document) error {
		jobs = make([]models.JobPosting, 0, len(doc.Jobs))
		for _, job := range doc.Jobs {
			if matchesFilter(job, filter) {
				jobs = append(jobs, job)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].PostedDate.After(jobs[b].PostedDate)
	})

	span.SetAttributes(telemetry.Int("jobs.count", len(jobs)))
	return jobs, nil
}

func matchesFilter(job models.JobPosting, filter JobFilter) bool {
	if filter.Status != "" && !strings.EqualFold(string(job.Status), filter.Status) {
		return false
	}
	if filter.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(filter.Location)) {
		return false
	}
	for _, want := range filter.Skills {
		found := false
		for _, have := range job.Skills {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (j *Jobs) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	_, span := tracer.Start(ctx, "Jobs.Get")
	defer span.End()

	var job models.JobPosting
	err := j.store.View(func(doc *models.Document) error {
		idx := doc.FindJob(id)
		if idx < 0 {
			return errors.NotFound("Job not found", nil)
		}
		job = doc.Jobs[idx]
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &job, nil
}

func (j *Jobs) Create(ctx context.Context, payload *validation.JobCreate) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "Jobs.Create")
	defer span.End()

	job := models.JobPosting{
		ID:           fmt.Sprintf("JOB-%s", uuid.NewString()),
		Title:        payload.Title,
		Department:   payload.Department,
		Location:     payload.Location,
		Salary:       payload.Salary,
		Status:       payload.Status,
		Applications: 0,
		Deadline:     payload.Deadline,
		Description:  payload.Description,
		Skills:       payload.Skills,
		PostedDate:   time.Now().UTC(),
	}

	err := j.store.Update(func(doc *models.Document) error {
		doc.Jobs = append(doc.Jobs, job)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	j.logger.Info("job created",
		zap.String("id", job.ID),
		zap.String("title", job.Title))

	if err := j.publisher.Publish(ctx, events.SubjectJobCreated, job); err != nil {
		j.logger.Warn("job created event not published", zap.String("id", job.ID), zap.Error(err))
	}
	return &job, nil
}

// Update merges the present fields of payload onto the stored record.
func (j *Jobs) Update(ctx context.Context, id string, payload *validation.JobUpdate) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "Jobs.Update")
	defer span.End()

	var job models.JobPosting
	err := j.store.Update(func(doc *models.Document) error {
		idx := doc.FindJob(id)
		if idx < 0 {
			return errors.NotFound("Job not found", nil)
		}

		record := &doc.Jobs[idx]
		if payload.Title != nil {
			record.Title = *payload.Title
		}
		if payload.Department != nil {
			record.Department = *payload.Department
		}
		if payload.Location != nil {
			record.Location = *payload.Location
		}
		if payload.Salary != nil {
			record.Salary = *payload.Salary
		}
		if payload.Description != nil {
			record.Description = *payload.Description
		}
		if payload.Skills != nil {
			record.Skills = *payload.Skills
		}
		if payload.Status != nil {
			record.Status = *payload.Status
		}
		if payload.Deadline != nil {
			record.Deadline = *payload.Deadline
		}

		job = *record
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	j.logger.Info("job updated", zap.String("id", job.ID))

	if err := j.publisher.Publish(ctx, events.SubjectJobUpdated, job); err != nil {
		j.logger.Warn("job updated event not published", zap.String("id", job.ID), zap.Error(err))
	}
	return &job, nil
}

// Delete removes the job. Candidates referencing it keep their jobId; orphaned
// references are permitted.
func (j *Jobs) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Jobs.Delete")
	defer span.End()

	err := j.store.Update(func(doc *models.Document) error {
		idx := doc.FindJob(id)
		if idx < 0 {
			return errors.NotFound("Job not found", nil)
		}
		doc.Jobs = append(doc.Jobs[:idx], doc.Jobs[idx+1:]...)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	j.logger.Info("job deleted", zap.String("id", id))

	if err := j.publisher.Publish(ctx, events.SubjectJobDeleted, map[string]string{"id": id}); err != nil {
		j.logger.Warn("job deleted event not published", zap.String("id", id), zap.Error(err))
	}
	return nil
}
