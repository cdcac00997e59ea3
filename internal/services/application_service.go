package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/careercode/careercode-api/internal/apperrors"
	"github.com/careercode/careercode-api/internal/models"
)

// ApplicationStore is what the service needs from the application adapter.
type ApplicationStore interface {
	ListByApplicant(ctx context.Context, email string) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	Create(ctx context.Context, doc map[string]any) (*models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ApplicationService struct {
	apps ApplicationStore
	jobs JobStore
	log  *zap.Logger
}

func NewApplicationService(apps ApplicationStore, jobs JobStore, log *zap.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, log: log}
}

// ListForApplicant returns the applicant's applications enriched with the
// company, title and company_logo of each referenced job. One job lookup
// per application; fine at this data volume, would need a batched multi-get
// to scale further.
//
// An application whose jobId is dangling or unparseable is returned bare,
// without the three enrichment fields. Store failures still propagate.
func (s *ApplicationService) ListForApplicant(ctx context.Context, email string) ([]models.Application, error) {
	apps, err := s.apps.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range apps {
		job, err := s.jobs.Get(ctx, apps[i].JobID)
		if err != nil {
			if apperrors.IsCode(err, apperrors.CodeNotFound) {
				s.log.Debug("referenced job missing, returning bare application",
					zap.String("application_id", models.FormatID(apps[i].ID)),
					zap.String("job_id", apps[i].JobID))
				continue
			}
			return nil, err
		}
		apps[i].Company = job.Company
		apps[i].Title = job.Title
		apps[i].CompanyLogo = job.CompanyLogo
		apps[i].Enriched = true
	}
	return apps, nil
}

// ListByJob returns the raw applications for one job, no enrichment.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return s.apps.ListByJob(ctx, jobID)
}

func (s *ApplicationService) Create(ctx context.Context, doc map[string]any) (*models.Application, error) {
	return s.apps.Create(ctx, doc)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.apps.UpdateStatus(ctx, id, status)
}
