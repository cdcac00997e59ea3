package services

import (
	"context"

	"github.com/careercode/careercode-api/internal/models"
)

// JobStore is what the services need from the job adapter. Satisfied by
// repositories.JobRepository; tests substitute stubs.
type JobStore interface {
	List(ctx context.Context, hrEmail string) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, doc map[string]any) (*models.Job, error)
}

type JobService struct {
	jobs JobStore
}

func NewJobService(jobs JobStore) *JobService {
	return &JobService{jobs: jobs}
}

// List returns all jobs, or only the owner's when hrEmail is set.
func (s *JobService) List(ctx context.Context, hrEmail string) ([]models.Job, error) {
	return s.jobs.List(ctx, hrEmail)
}

func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.Get(ctx, id)
}

func (s *JobService) Create(ctx context.Context, doc map[string]any) (*models.Job, error) {
	return s.jobs.Create(ctx, doc)
}
