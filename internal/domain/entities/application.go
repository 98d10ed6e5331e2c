package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus tracks a candidate through the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "Applied"
	ApplicationInterviewing ApplicationStatus = "Interviewing"
	ApplicationRejected     ApplicationStatus = "Rejected"
	ApplicationHired        ApplicationStatus = "Hired"
)

// ParseApplicationStatus accepts any casing of the four statuses.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "applied":
		return ApplicationApplied, true
	case "interviewing":
		return ApplicationInterviewing, true
	case "rejected":
		return ApplicationRejected, true
	case "hired":
		return ApplicationHired, true
	}
	return "", false
}

// Application is a candidate's submission to a job.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	JobID          uuid.UUID         `json:"jobId"`
	CandidateID    null.String       `json:"candidateId,omitempty"`
	CandidateName  string            `json:"candidateName"`
	CandidateEmail string            `json:"candidateEmail"`
	CVURL          string            `json:"cvUrl"`
	CoverLetter    null.String       `json:"coverLetter,omitempty"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ApplyInput is the apply form. CVURL is validated by the usecase so the
// error message stays user facing.
type ApplyInput struct {
	CandidateName  string `json:"candidateName" binding:"required,min=2,max=200"`
	CandidateEmail string `json:"candidateEmail" binding:"omitempty,email"`
	CVURL          string `json:"cvUrl"`
	CoverLetter    string `json:"coverLetter" binding:"max=10000"`
}
