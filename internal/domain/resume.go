package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Resume is a stored resume document owned by one user.
type Resume struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	model.Resume
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResumeSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TemplateID string    `json:"templateId"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ResumeStats struct {
	TotalResumes  int             `json:"totalResumes"`
	RecentResumes []ResumeSummary `json:"recentResumes"`
}
