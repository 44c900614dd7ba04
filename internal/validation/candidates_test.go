package validation

import (
	"testing"

	"talentdesk/internal/errors"
	"talentdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidateInput() CandidateCreateInput {
	return CandidateCreateInput{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		JobID:  "JOB-1",
		Skills: []string{"Go", "SQL"},
	}
}

func TestValidateCandidateCreate(t *testing.T) {
	payload, err := ValidateCandidateCreate(validCandidateInput())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", payload.Email)
}

func TestValidateCandidateCreateShortName(t *testing.T) {
	in := validCandidateInput()
	in.Name = "A"
	_, err := ValidateCandidateCreate(in)
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "name")
}

func TestValidateCandidateCreateBadEmail(t *testing.T) {
	in := validCandidateInput()
	in.Email = "not-an-email"
	_, err := ValidateCandidateCreate(in)
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "email")
}

func TestValidateCandidateCreateMissingJob(t *testing.T) {
	in := validCandidateInput()
	in.JobID = ""
	_, err := ValidateCandidateCreate(in)
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "jobId")
}

func TestValidateCandidateUpdateStage(t *testing.T) {
	stage := "Interview"
	out, err := ValidateCandidateUpdate(CandidateUpdateInput{Stage: &stage})
	require.NoError(t, err)
	require.NotNil(t, out.Stage)
	assert.Equal(t, models.StageInterview, *out.Stage)
}

func TestValidateCandidateUpdateBadStage(t *testing.T) {
	stage := "Ghosted"
	_, err := ValidateCandidateUpdate(CandidateUpdateInput{Stage: &stage})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "stage")
}

func TestValidateCandidateUpdateInteractions(t *testing.T) {
	entries := []InteractionInput{{
		Type:    "note",
		Content: "Strong phone screen",
		Date:    "2025-06-01T10:00:00Z",
		Author:  "recruiter",
	}}
	out, err := ValidateCandidateUpdate(CandidateUpdateInput{Interactions: &entries})
	require.NoError(t, err)
	require.NotNil(t, out.Interactions)
	require.Len(t, *out.Interactions, 1)
	assert.Equal(t, models.InteractionNote, (*out.Interactions)[0].Type)
}

func TestValidateCandidateUpdateBadInteractionType(t *testing.T) {
	entries := []InteractionInput{{
		Type: "carrier pigeon",
		Date: "2025-06-01T10:00:00Z",
	}}
	_, err := ValidateCandidateUpdate(CandidateUpdateInput{Interactions: &entries})
	require.Error(t, err)
	assert.Contains(t, errors.FieldsOf(err), "interactions")
}
