package http

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/protrack-dev/protrack-backend/internal/projects/domain"
)

// Service is the business-logic surface the handlers need. Satisfied by
// service.ProjectService.
type Service interface {
	Create(ctx context.Context, ownerID string, in domain.NewProject) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]domain.Project, error)
	Get(ctx context.Context, ownerID string, id int64) (*domain.Project, error)
	Update(ctx context.Context, ownerID string, id int64, upd domain.Update) (*domain.Project, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

var statusMessage = "must be one of: " + strings.Join(domain.StatusValues, ", ")

// parseWritePayload reads a create/update body into a change set. The body
// is decoded as a raw key map so that an omitted field and an explicit null
// can be told apart, and so that owner-like keys are dropped without being
// an error. With requireAll set, every mutable field must be present
// (full-update semantics).
func parseWritePayload(c *gin.Context, requireAll bool) (domain.Update, map[string]string) {
	var upd domain.Update

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		return upd, map[string]string{"body": "must be a JSON object"}
	}

	fields := map[string]string{}

	if v, ok := raw["title"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			fields["title"] = "must be a string"
		} else if strings.TrimSpace(s) == "" {
			fields["title"] = "must not be blank"
		} else {
			s = strings.TrimSpace(s)
			upd.Title = &s
		}
	} else if requireAll {
		fields["title"] = "required"
	}

	if v, ok := raw["description"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			fields["description"] = "must be a string"
		} else {
			upd.Description = &s
		}
	} else if requireAll {
		fields["description"] = "required"
	}

	if v, ok := raw["status"]; ok {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			upd.Status = nil
			upd.StatusSet = true
		} else {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				fields["status"] = "must be a string"
			} else if !domain.ValidStatus(s) {
				fields["status"] = statusMessage
			} else {
				upd.Status = &s
				upd.StatusSet = true
			}
		}
	} else if requireAll {
		fields["status"] = "required"
	}

	if len(fields) > 0 {
		return domain.Update{}, fields
	}
	return upd, nil
}
