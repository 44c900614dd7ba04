package validation

import (
	"time"

	"talentdesk/internal/errors"
	"talentdesk/internal/models"
)

// JobCreateInput is the raw POST /jobs payload.
type JobCreateInput struct {
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Status      string   `json:"status"`
	Deadline    string   `json:"deadline"`
}

// JobCreate is the normalized result of a successful create validation.
type JobCreate struct {
	Title       string
	Department  string
	Location    string
	Salary      string
	Description string
	Skills      []string
	Status      models.JobStatus
	Deadline    time.Time
}

func ValidateJobCreate(in JobCreateInput) (*JobCreate, error) {
	fields := fieldErrors{}

	if len(in.Title) < 1 {
		fields.add("title", "Title is required")
	}
	if len(in.Department) < 1 {
		fields.add("department", "Department is required")
	}
	if len(in.Location) < 1 {
		fields.add("location", "Location is required")
	}
	if len(in.Salary) < 1 {
		fields.add("salary", "Salary is required")
	}
	if len(in.Description) < 1 {
		fields.add("description", "Description is required")
	}
	if len(in.Skills) < 1 {
		fields.add("skills", "At least one skill is required")
	}

	status := models.JobStatus(in.Status)
	if !status.Valid() {
		fields.add("status", "Status must be one of Open, Closed, On hold, Draft")
	}

	deadline, ok := parseTimestamp(in.Deadline)
	if !ok {
		fields.add("deadline", "Deadline must be a valid ISO 8601 timestamp")
	}

	if !fields.empty() {
		return nil, errors.Validation(fields)
	}

	return &JobCreate{
		Title:       in.Title,
		Department:  in.Department,
		Location:    in.Location,
		Salary:      in.Salary,
		Description: in.Description,
		Skills:      in.Skills,
		Status:      status,
		Deadline:    deadline,
	}, nil
}

// JobUpdateInput is the raw PUT /jobs/{id} payload. Absent fields stay nil and
// are left untouched by the merge.
type JobUpdateInput struct {
	Title       *string   `json:"title"`
	Department  *string   `json:"department"`
	Location    *string   `json:"location"`
	Salary      *string   `json:"salary"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Status      *string   `json:"status"`
	Deadline    *string   `json:"deadline"`
}

// JobUpdate carries the validated partial fields.
type JobUpdate struct {
	Title       *string
	Department  *string
	Location    *string
	Salary      *string
	Description *string
	Skills      *[]string
	Status      *models.JobStatus
	Deadline    *time.Time
}

func ValidateJobUpdate(in JobUpdateInput) (*JobUpdate, error) {
	fields := fieldErrors{}
	out := &JobUpdate{
		Title:       in.Title,
		Department:  in.Department,
		Location:    in.Location,
		Salary:      in.Salary,
		Description: in.Description,
		Skills:      in.Skills,
	}

	if in.Title != nil && len(*in.Title) < 1 {
		fields.add("title", "Title is required")
	}
	if in.Department != nil && len(*in.Department) < 1 {
		fields.add("department", "Department is required")
	}
	if in.Location != nil && len(*in.Location) < 1 {
		fields.add("location", "Location is required")
	}
	if in.Salary != nil && len(*in.Salary) < 1 {
		fields.add("salary", "Salary is required")
	}
	if in.Description != nil && len(*in.Description) < 1 {
		fields.add("description", "Description is required")
	}
	if in.Skills != nil && len(*in.Skills) < 1 {
		fields.add("skills", "At least one skill is required")
	}
	if in.Status != nil {
		status := models.JobStatus(*in.Status)
		if !status.Valid() {
			fields.add("status", "Status must be one of Open, Closed, On hold, Draft")
		} else {
			out.Status = &status
		}
	}
	if in.Deadline != nil {
		deadline, ok := parseTimestamp(*in.Deadline)
		if !ok {
			fields.add("deadline", "Deadline must be a valid ISO 8601 timestamp")
		} else {
			out.Deadline = &deadline
		}
	}

	if !fields.empty() {
		return nil, errors.Validation(fields)
	}
	return out, nil
}
