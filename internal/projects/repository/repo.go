package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/protrack-dev/protrack-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects.
// Every id-addressed query filters by owner_id, so a row owned by a
// different user scans the same as a row that does not exist.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project owned by the given user.
func (r *ProjectRepository) Create(ctx context.Context, ownerID string, in domain.NewProject) (*domain.Project, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("title required")
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}

	const q = `
insert into projects (owner_id, title, description, status)
values ($1::uuid, $2, $3, $4)
returning id, created_at;
`
	p := domain.Project{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	}
	err := r.db.QueryRow(ctx, q, ownerID, in.Title, in.Description, in.Status).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByOwner returns all projects owned by the given user, newest id first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	const q = `
select id, owner_id::text, title, description, status, created_at
from projects
where owner_id = $1::uuid
order by id desc;
`
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetOwned returns the project with the given id if it belongs to the given
// user, domain.ErrNotFound otherwise.
func (r *ProjectRepository) GetOwned(ctx context.Context, ownerID string, id int64) (*domain.Project, error) {
	const q = `
select id, owner_id::text, title, description, status, created_at
from projects
where owner_id = $1::uuid and id = $2;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, ownerID, id).
		Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save writes back the mutable fields of a project. The owner_id filter
// keeps the write owner-scoped; owner_id itself is never updated.
func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	const q = `
update projects
set title = $3, description = $4, status = $5
where owner_id = $1::uuid and id = $2;
`
	ct, err := r.db.Exec(ctx, q, p.OwnerID, p.ID, p.Title, p.Description, p.Status)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the project permanently. Returns false when no owned row
// matched the id.
func (r *ProjectRepository) Delete(ctx context.Context, ownerID string, id int64) (bool, error) {
	const q = `
delete from projects
where owner_id = $1::uuid and id = $2;
`
	ct, err := r.db.Exec(ctx, q, ownerID, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
