package models

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusOnHold JobStatus = "On hold"
	JobStatusDraft  JobStatus = "Draft"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusOnHold, JobStatusDraft:
		return true
	}
	return false
}

type CandidateStage string

const (
	StageApplied   CandidateStage = "Applied"
	StageScreening CandidateStage = "Screening"
	StageInterview CandidateStage = "Interview"
	StageOffered   CandidateStage = "Offered"
	StageHired     CandidateStage = "Hired"
	StageRejected  CandidateStage = "Rejected"
)

func (s CandidateStage) Valid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffered, StageHired, StageRejected:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionNote  InteractionType = "note"
	InteractionEmail InteractionType = "email"
	InteractionCall  InteractionType = "call"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionNote, InteractionEmail, InteractionCall:
		return true
	}
	return false
}

type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Status       JobStatus `json:"status"`
	Applications int       `json:"applications"`
	Deadline     time.Time `json:"deadline"`
	Description  string    `json:"description"`
	Skills       []string  `json:"skills"`
	PostedDate   time.Time `json:"postedDate"`
}

type Interaction struct {
	ID      string          `json:"id"`
	Type    InteractionType `json:"type"`
	Content string          `json:"content"`
	Date    time.Time       `json:"date"`
	Author  string          `json:"author"`
}

type Candidate struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone,omitempty"`
	Avatar       string         `json:"avatar"`
	JobID        string         `json:"jobId"`
	JobTitle     string         `json:"jobTitle"`
	Stage        CandidateStage `json:"stage"`
	Skills       []string       `json:"skills"`
	Experience   string         `json:"experience,omitempty"`
	LastContact  time.Time      `json:"lastContact"`
	Interactions []Interaction  `json:"interactions"`
}

// Document is the whole on-disk aggregate. The store reads and writes it as a
// unit; there are no secondary indices.
type Document struct {
	Jobs       []JobPosting `json:"jobs"`
	Candidates []Candidate  `json:"candidates"`
}

// FindJob returns the index of the job with the given id, or -1.
func (d *Document) FindJob(id string) int {
	for i := range d.Jobs {
		if d.Jobs[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCandidate returns the index of the candidate with the given id, or -1.
func (d *Document) FindCandidate(id string) int {
	for i := range d.Candidates {
		if d.Candidates[i].ID == id {
			return i
		}
	}
	return -1
}

// ExtractedCandidate is the fixed output schema of the resume extractor.
type ExtractedCandidate struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

func (e ExtractedCandidate) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

func (e *ExtractedCandidate) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}
