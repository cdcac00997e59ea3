package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = ParseID("abc")
	assert.False(t, ok)

	_, ok = ParseID("0")
	assert.False(t, ok)

	_, ok = ParseID("")
	assert.False(t, ok)
}

func TestJobDocumentRoundTrip(t *testing.T) {
	job, err := NewJobFromDocument(map[string]any{
		"hr_email":     "hr@co.com",
		"company":      "Co",
		"title":        "Engineer",
		"company_logo": "https://co.com/logo.png",
		"salary":       "100k",
		"remote":       true,
	})
	require.NoError(t, err)
	job.ID = 7

	assert.Equal(t, "hr@co.com", job.HREmail)
	assert.Equal(t, "Engineer", job.Title)

	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "7", doc["id"])
	assert.Equal(t, "hr@co.com", doc["hr_email"])
	assert.Equal(t, "Co", doc["company"])
	// fields outside the typed columns survive verbatim
	assert.Equal(t, "100k", doc["salary"])
	assert.Equal(t, true, doc["remote"])
}

func TestApplicationMarshalBareOmitsEnrichment(t *testing.T) {
	app, err := NewApplicationFromDocument(map[string]any{
		"applicant": "a@x.com",
		"jobId":     "99",
		"status":    "pending",
	})
	require.NoError(t, err)
	app.ID = 1

	raw, err := json.Marshal(app)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "a@x.com", doc["applicant"])
	assert.Equal(t, "99", doc["jobId"])
	assert.NotContains(t, doc, "company")
	assert.NotContains(t, doc, "title")
	assert.NotContains(t, doc, "company_logo")
}

func TestApplicationMarshalEnriched(t *testing.T) {
	app := &Application{
		ID:          1,
		Applicant:   "a@x.com",
		JobID:       "3",
		Status:      "pending",
		Company:     "Co",
		Title:       "Engineer",
		CompanyLogo: "",
		Enriched:    true,
	}

	raw, err := json.Marshal(app)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "Co", doc["company"])
	assert.Equal(t, "Engineer", doc["title"])
	// copied verbatim from the job, even when empty
	assert.Contains(t, doc, "company_logo")
}
