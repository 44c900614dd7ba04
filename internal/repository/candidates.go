package repository

import (
	"context"
	"fmt"
	"sort"
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

type Candidates struct {
	store     *store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewCandidates(st *store.Store, publisher events.Publisher, logger *zap.Logger) *Candidates {
	return &Candidates{
		store:     st,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns all candidates, most recently contacted first.
func (c *Candidates) List(ctx context.Context) ([]models.Candidate, error) {
	_, span := tracer.Start(ctx, "Candidates.List")
	defer span.End()

	var candidates []models.Candidate
	err := c.store.View(func(doc *models.Document) error {
		candidates = make([]models.Candidate, len(doc.Candidates))
		copy(candidates, doc.Candidates)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].LastContact.After(candidates[b].LastContact)
	})

	span.SetAttributes(telemetry.Int("candidates.count", len(candidates)))
	return candidates, nil
}

func (c *Candidates) Get(ctx context.Context, id string) (*models.Candidate, error) {
	_, span := tracer.Start(ctx, "Candidates.Get")
	defer span.End()

	var candidate models.Candidate
	err := c.store.View(func(doc *models.Document) error {
		idx := doc.FindCandidate(id)
		if idx < 0 {
			return errors.NotFound("Candidate not found", nil)
		}
		candidate = doc.Candidates[idx]
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &candidate, nil
}

// Create records a new candidate. Every candidate enters the pipeline at
// Applied with an empty interaction log. The referenced job is not required to
// exist; when it does and the payload carries no jobTitle, the title is
// denormalized from it at association time and never re-synced afterwards.
func (c *Candidates) Create(ctx context.Context, payload *validation.CandidateCreate) (*models.Candidate, error) {
	ctx, span := tracer.Start(ctx, "Candidates.Create")
	defer span.End()

	candidate := models.Candidate{
		ID:           fmt.Sprintf("CAND-%s", uuid.NewString()),
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Avatar:       fmt.Sprintf("https://picsum.photos/seed/%s/40/40", uuid.NewString()),
		JobID:        payload.JobID,
		JobTitle:     payload.JobTitle,
		Stage:        models.StageApplied,
		Skills:       payload.Skills,
		Experience:   payload.Experience,
		LastContact:  time.Now().UTC(),
		Interactions: []models.Interaction{},
	}

	err := c.store.Update(func(doc *models.Document) error {
		if candidate.JobTitle == "" {
			if idx := doc.FindJob(candidate.JobID); idx >= 0 {
				candidate.JobTitle = doc.Jobs[idx].Title
			}
		}
		doc.Candidates = append(doc.Candidates, candidate)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Info("candidate created",
		zap.String("id", candidate.ID),
		zap.String("job_id", candidate.JobID))

	if err := c.publisher.Publish(ctx, events.SubjectCandidateCreated, candidate); err != nil {
		c.logger.Warn("candidate created event not published", zap.String("id", candidate.ID), zap.Error(err))
	}
	return &candidate, nil
}

// Update merges the present fields of payload onto the stored record. A
// replaced interactions log is taken as given; entries without an id get one
// assigned. Stage changes do not touch lastContact.
func (c *Candidates) Update(ctx context.Context, id string, payload *validation.CandidateUpdate) (*models.Candidate, error) {
	ctx, span := tracer.Start(ctx, "Candidates.Update")
	defer span.End()

	var candidate models.Candidate
	err := c.store.Update(func(doc *models.Document) error {
		idx := doc.FindCandidate(id)
		if idx < 0 {
			return errors.NotFound("Candidate not found", nil)
		}

		record := &doc.Candidates[idx]
		if payload.Name != nil {
			record.Name = *payload.Name
		}
		if payload.Email != nil {
			record.Email = *payload.Email
		}
		if payload.Phone != nil {
			record.Phone = *payload.Phone
		}
		if payload.JobID != nil {
			record.JobID = *payload.JobID
		}
		if payload.JobTitle != nil {
			record.JobTitle = *payload.JobTitle
		}
		if payload.Stage != nil {
			record.Stage = *payload.Stage
		}
		if payload.Skills != nil {
			record.Skills = *payload.Skills
		}
		if payload.Experience != nil {
			record.Experience = *payload.Experience
		}
		if payload.LastContact != nil {
			record.LastContact = *payload.LastContact
		}
		if payload.Interactions != nil {
			interactions := *payload.Interactions
			for i := range interactions {
				if interactions[i].ID == "" {
					interactions[i].ID = fmt.Sprintf("INT-%s", uuid.NewString())
				}
			}
			record.Interactions = interactions
		}

		candidate = *record
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Info("candidate updated", zap.String("id", candidate.ID))

	if err := c.publisher.Publish(ctx, events.SubjectCandidateUpdated, candidate); err != nil {
		c.logger.Warn("candidate updated event not published", zap.String("id", candidate.ID), zap.Error(err))
	}
	return &candidate, nil
}

func (c *Candidates) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Candidates.Delete")
	defer span.End()

	err := c.store.Update(func(doc *models.Document) error {
		idx := doc.FindCandidate(id)
		if idx < 0 {
			return errors.NotFound("Candidate not found", nil)
		}
		doc.Candidates = append(doc.Candidates[:idx], doc.Candidates[idx+1:]...)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	c.logger.Info("candidate deleted", zap.String("id", id))

	if err := c.publisher.Publish(ctx, events.SubjectCandidateDeleted, map[string]string{"id": id}); err != nil {
		c.logger.Warn("candidate deleted event not published", zap.String("id", id), zap.Error(err))
	}
	return nil
}
