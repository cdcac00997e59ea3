package models

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// Job and Application are open records: a handful of typed columns the API
// filters and joins on, plus an Extra JSON bag holding whatever else the
// client submitted. Nothing is validated on the way in; unknown fields are
// persisted verbatim and round-tripped back on reads.

type Job struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	HREmail     string `gorm:"column:hr_email;index"`
	Company     string
	Title       string
	CompanyLogo string `gorm:"column:company_logo"`

	Extra datatypes.JSON
}

type Application struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Applicant string `gorm:"index"`
	// JobID references a Job identifier but is stored as a plain string,
	// so it has to be parsed before joining. A dangling or garbage value
	// is tolerated: enrichment just skips it.
	JobID  string `gorm:"column:job_id;index"`
	Status string

	Extra datatypes.JSON

	// Enrichment fields, copied from the referenced Job at read time.
	// Never persisted and never written back.
	Company     string `gorm:"-"`
	Title       string `gorm:"-"`
	CompanyLogo string `gorm:"-"`
	Enriched    bool   `gorm:"-"`
}

// ParseID converts an external identifier string to the store's key type.
// A string that does not parse is simply not a valid identifier.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// FormatID renders a store key as the opaque identifier clients see.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// NewJobFromDocument splits a submitted document into the typed columns
// and the extras bag. The input map is consumed.
func NewJobFromDocument(doc map[string]any) (*Job, error) {
	job := &Job{
		HREmail:     popString(doc, "hr_email"),
		Company:     popString(doc, "company"),
		Title:       popString(doc, "title"),
		CompanyLogo: popString(doc, "company_logo"),
	}
	extra, err := packExtra(doc)
	if err != nil {
		return nil, err
	}
	job.Extra = extra
	return job, nil
}

// NewApplicationFromDocument is the Application counterpart of
// NewJobFromDocument.
func NewApplicationFromDocument(doc map[string]any) (*Application, error) {
	app := &Application{
		Applicant: popString(doc, "applicant"),
		JobID:     popString(doc, "jobId"),
		Status:    popString(doc, "status"),
	}
	extra, err := packExtra(doc)
	if err != nil {
		return nil, err
	}
	app.Extra = extra
	return app, nil
}

// MarshalJSON flattens the extras bag back into the document so the wire
// shape matches what was submitted, plus the assigned id.
func (j Job) MarshalJSON() ([]byte, error) {
	doc, err := unpackExtra(j.Extra)
	if err != nil {
		return nil, err
	}
	doc["id"] = FormatID(j.ID)
	putString(doc, "hr_email", j.HREmail)
	putString(doc, "company", j.Company)
	putString(doc, "title", j.Title)
	putString(doc, "company_logo", j.CompanyLogo)
	return json.Marshal(doc)
}

func (a Application) MarshalJSON() ([]byte, error) {
	doc, err := unpackExtra(a.Extra)
	if err != nil {
		return nil, err
	}
	doc["id"] = FormatID(a.ID)
	putString(doc, "applicant", a.Applicant)
	putString(doc, "jobId", a.JobID)
	putString(doc, "status", a.Status)
	if a.Enriched {
		doc["company"] = a.Company
		doc["title"] = a.Title
		doc["company_logo"] = a.CompanyLogo
	}
	return json.Marshal(doc)
}

func popString(doc map[string]any, key string) string {
	if s, ok := doc[key].(string); ok {
		delete(doc, key)
		return s
	}
	return ""
}

func putString(doc map[string]any, key, val string) {
	if val != "" {
		doc[key] = val
	}
}

func packExtra(doc map[string]any) (datatypes.JSON, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unpackExtra(extra datatypes.JSON) (map[string]any, error) {
	doc := make(map[string]any)
	if len(extra) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(extra, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
