package service

import (
	"context"

	"github.com/protrack-dev/protrack-backend/internal/projects/domain"
)

// Repository is the persistence surface the service needs. Satisfied by
// repository.ProjectRepository.
type Repository interface {
	Create(ctx context.Context, ownerID string, in domain.NewProject) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error)
	GetOwned(ctx context.Context, ownerID string, id int64) (*domain.Project, error)
	Save(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, ownerID string, id int64) (bool, error)
}

// ProjectService handles project business logic. The owner id passed to
// every method is the authenticated principal, never client input.
type ProjectService struct {
	repo Repository
}

func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create stores a new project owned by the caller.
func (s *ProjectService) Create(ctx context.Context, ownerID string, in domain.NewProject) (*domain.Project, error) {
	return s.repo.Create(ctx, ownerID, in)
}

// List returns the caller's projects, newest id first.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns a single owned project, or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, ownerID string, id int64) (*domain.Project, error) {
	return s.repo.GetOwned(ctx, ownerID, id)
}

// Update applies a change set to an owned project. The owner-scoped fetch is
// the ownership gate: a foreign or missing id fails with domain.ErrNotFound
// before anything is written. Fields not present in the change set keep
// their prior values.
func (s *ProjectService) Update(ctx context.Context, ownerID string, id int64, upd domain.Update) (*domain.Project, error) {
	p, err := s.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.StatusSet {
		p.Status = upd.Status
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes an owned project permanently.
func (s *ProjectService) Delete(ctx context.Context, ownerID string, id int64) error {
	ok, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
