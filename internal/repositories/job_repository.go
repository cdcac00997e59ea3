package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/models"
)

// JobRepository is the store adapter for job postings.
type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List returns jobs in insertion order, filtered by owner when hrEmail is
// non-empty.
func (r *JobRepository) List(ctx context.Context, hrEmail string) ([]models.Job, error) {
	q := r.db.WithContext(ctx).Order("id")
	if hrEmail != "" {
		q = q.Where("hr_email = ?", hrEmail)
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return jobs, nil
}

// Get looks a job up by its external identifier. A string that is not a
// valid identifier cannot match anything, so it is reported as not found
// rather than an error.
func (r *JobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	key, ok := models.ParseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound("job not found")
	}

	var job models.Job
	err := r.db.WithContext(ctx).First(&job, key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound("job not found")
	}
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return &job, nil
}

// Create inserts the submitted document verbatim and returns it with the
// store-assigned identifier. No schema validation happens here.
func (r *JobRepository) Create(ctx context.Context, doc map[string]any) (*models.Job, error) {
	job, err := models.NewJobFromDocument(doc)
	if err != nil {
		return nil, apperrors.ErrBadRequest("malformed document")
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return job, nil
}
