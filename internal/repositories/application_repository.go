package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/models"
)

// ApplicationRepository is the store adapter for job applications.
type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("applicant = ?", email).
		Order("id").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return apps, nil
}

// ListByJob filters on the stored jobId string as-is; it is a plain string
// compare, not an identifier lookup.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return apps, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, doc map[string]any) (*models.Application, error) {
	app, err := models.NewApplicationFromDocument(doc)
	if err != nil {
		return nil, apperrors.ErrBadRequest("malformed document")
	}
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, apperrors.ErrDatabase(err)
	}
	return app, nil
}

// UpdateStatus sets only the status column of one application. All other
// fields, including the extras bag, stay untouched.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	key, ok := models.ParseID(id)
	if !ok {
		return apperrors.ErrNotFound("application not found")
	}

	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", key).
		Update("status", status)
	if res.Error != nil {
		return apperrors.ErrDatabase(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound("application not found")
	}
	return nil
}
