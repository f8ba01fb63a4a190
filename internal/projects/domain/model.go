package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a missing id and a row owned by someone else.
// Callers must not be able to tell the two apart.
var ErrNotFound = errors.New("project not found")

// Valid values for the status column. Status is a plain attribute, not a
// workflow: any value may replace any other.
const (
	StatusDesign         = "Design"
	StatusImplementation = "Implementation"
	StatusTesting        = "Testing"
	StatusDeployment     = "Deployment"
	StatusCompleted      = "Completed"
	StatusAbandoned      = "Abandoned"
)

var validStatuses = map[string]bool{
	StatusDesign:         true,
	StatusImplementation: true,
	StatusTesting:        true,
	StatusDeployment:     true,
	StatusCompleted:      true,
	StatusAbandoned:      true,
}

// StatusValues lists the accepted statuses in display order.
var StatusValues = []string{
	StatusDesign,
	StatusImplementation,
	StatusTesting,
	StatusDeployment,
	StatusCompleted,
	StatusAbandoned,
}

func ValidStatus(s string) bool {
	return validStatuses[s]
}

// Project is the stored record. OwnerID is assigned at creation and never
// changes afterwards.
type Project struct {
	ID          int64
	OwnerID     string
	Title       string
	Description string
	Status      *string
	CreatedAt   time.Time
}

// NewProject carries the client-settable fields for a create.
type NewProject struct {
	Title       string
	Description string
	Status      *string
}

// Update carries a change set for an existing project. Nil pointers mean
// "leave as is"; StatusSet distinguishes an explicit null status from an
// omitted one.
type Update struct {
	Title       *string
	Description *string
	Status      *string
	StatusSet   bool
}

// SummaryView is the abbreviated representation used in list responses.
type SummaryView struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Status *string `json:"status"`
}

// DetailView is the full representation used in single-resource responses.
type DetailView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Status      *string   `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Project) Summary() SummaryView {
	return SummaryView{
		ID:     p.ID,
		Title:  p.Title,
		Status: p.Status,
	}
}

func (p *Project) Detail() DetailView {
	return DetailView{
		ID:          p.ID,
		Title:       p.Title,
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
