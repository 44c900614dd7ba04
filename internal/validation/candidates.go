package validation

import (
	"time"

	"talentdesk/internal/errors"
	"talentdesk/internal/models"
)

// CandidateCreateInput is the raw POST /candidates payload. Stage is not
// accepted here: every candidate enters the pipeline at Applied.
type CandidateCreateInput struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	JobID      string   `json:"jobId"`
	JobTitle   string   `json:"jobTitle"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

type CandidateCreate struct {
	Name       string
	Email      string
	Phone      string
	JobID      string
	JobTitle   string
	Skills     []string
	Experience string
}

func ValidateCandidateCreate(in CandidateCreateInput) (*CandidateCreate, error) {
	fields := fieldErrors{}

	if len(in.Name) < 2 {
		fields.add("name", "Name must be at least 2 characters.")
	}
	if !validEmail(in.Email) {
		fields.add("email", "Please enter a valid email.")
	}
	if in.JobID == "" {
		fields.add("jobId", "Please select a job.")
	}
	if in.Skills == nil {
		fields.add("skills", "Skills must be provided")
	}

	if !fields.empty() {
		return nil, errors.Validation(fields)
	}

	return &CandidateCreate{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		JobID:      in.JobID,
		JobTitle:   in.JobTitle,
		Skills:     in.Skills,
		Experience: in.Experience,
	}, nil
}

// InteractionInput is one entry of a replaced interactions log. Entries without
// an id get one assigned by the repository.
type InteractionInput struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

// CandidateUpdateInput is the raw PUT /candidates/{id} payload.
type CandidateUpdateInput struct {
	Name         *string             `json:"name"`
	Email        *string             `json:"email"`
	Phone        *string             `json:"phone"`
	JobID        *string             `json:"jobId"`
	JobTitle     *string             `json:"jobTitle"`
	Stage        *string             `json:"stage"`
	Skills       *[]string           `json:"skills"`
	Experience   *string             `json:"experience"`
	LastContact  *string             `json:"lastContact"`
	Interactions *[]InteractionInput `json:"interactions"`
}

type CandidateUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	JobID        *string
	JobTitle     *string
	Stage        *models.CandidateStage
	Skills       *[]string
	Experience   *string
	LastContact  *time.Time
	Interactions *[]models.Interaction
}

func ValidateCandidateUpdate(in CandidateUpdateInput) (*CandidateUpdate, error) {
	fields := fieldErrors{}
	out := &CandidateUpdate{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		JobID:      in.JobID,
		JobTitle:   in.JobTitle,
		Skills:     in.Skills,
		Experience: in.Experience,
	}

	if in.Name != nil && len(*in.Name) < 2 {
		fields.add("name", "Name must be at least 2 characters.")
	}
	if in.Email != nil && !validEmail(*in.Email) {
		fields.add("email", "Please enter a valid email.")
	}
	if in.Stage != nil {
		stage := models.CandidateStage(*in.Stage)
		if !stage.Valid() {
			fields.add("stage", "Stage must be one of Applied, Screening, Interview, Offered, Hired, Rejected")
		} else {
			out.Stage = &stage
		}
	}
	if in.LastContact != nil {
		t, ok := parseTimestamp(*in.LastContact)
		if !ok {
			fields.add("lastContact", "Last contact must be a valid ISO 8601 timestamp")
		} else {
			out.LastContact = &t
		}
	}
	if in.Interactions != nil {
		interactions := make([]models.Interaction, 0, len(*in.Interactions))
		valid := true
		for _, entry := range *in.Interactions {
			iType := models.InteractionType(entry.Type)
			if !iType.Valid() {
				fields.add("interactions", "Interaction type must be one of note, email, call")
				valid = false
				continue
			}
			date, ok := parseTimestamp(entry.Date)
			if !ok {
				fields.add("interactions", "Interaction date must be a valid ISO 8601 timestamp")
				valid = false
				continue
			}
			interactions = append(interactions, models.Interaction{
				ID:      entry.ID,
				Type:    iType,
				Content: entry.Content,
				Date:    date,
				Author:  entry.Author,
			})
		}
		if valid {
			out.Interactions = &interactions
		}
	}

	if !fields.empty() {
		return nil, errors.Validation(fields)
	}
	return out, nil
}
